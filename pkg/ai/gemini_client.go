// pkg/ai/gemini_client.go

package ai

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"kaio/entities"
)

type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini creates a Gemini-backed generator.
func NewGemini(ctx context.Context, apiKey, modelName string) (Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))
	return &geminiClient{client: client, model: model}, nil
}

func (c *geminiClient) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("generated content is not text")
	}
	return string(text), nil
}

func (c *geminiClient) GenerateDailyPlan(ctx context.Context, profile entities.UserProfile, goals, kbCtx string) (*entities.DailyPlan, error) {
	content, err := c.generate(ctx, renderDailyPrompt(profile, goals, kbCtx))
	if err != nil {
		return nil, err
	}
	return parseDailyPlan(content)
}

func (c *geminiClient) GenerateWeeklyPlan(ctx context.Context, profile entities.UserProfile, goals, kbCtx string) (map[string]entities.DailyPlan, []GroceryDraft, error) {
	content, err := c.generate(ctx, renderWeeklyPrompt(profile, goals, kbCtx))
	if err != nil {
		return nil, nil, err
	}
	return parseWeeklyPlan(content)
}

// Close releases the underlying API client.
func (c *geminiClient) Close() error {
	return c.client.Close()
}
