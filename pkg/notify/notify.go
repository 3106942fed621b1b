package notify

// Sender delivers out-of-band nudges to the user.
type Sender interface {
	SendMessage(text string) error
}

type noop struct{}

// NewNoop is used when no notification channel is configured.
func NewNoop() Sender { return noop{} }

func (noop) SendMessage(string) error { return nil }
