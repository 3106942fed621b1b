package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type telegramSender struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram builds a Sender that pushes messages to one chat.
func NewTelegram(token string, chatID int64) (Sender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &telegramSender{bot: bot, chatID: chatID}, nil
}

func (t *telegramSender) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := t.bot.Send(msg)
	return err
}
