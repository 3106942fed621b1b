package entities

// UserProfile holds optional personal attributes fed into plan generation.
// Every field may be empty.
type UserProfile struct {
	Age                  string `json:"age,omitempty"`
	Height               string `json:"height,omitempty"`
	Weight               string `json:"weight,omitempty"`
	Gender               string `json:"gender,omitempty"`
	FitnessGoals         string `json:"fitnessGoals,omitempty"`
	DietaryPreferences   string `json:"dietaryPreferences,omitempty"`
	HasBeard             bool   `json:"hasBeard,omitempty"`
	BeardLength          string `json:"beardLength,omitempty"`
	BeardStyle           string `json:"beardStyle,omitempty"`
	BeardCarePreferences string `json:"beardCarePreferences,omitempty"`
	OtherPreferences     string `json:"otherPreferences,omitempty"`
}
