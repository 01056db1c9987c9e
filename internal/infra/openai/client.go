package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
)

const (
	requestTimeout = 30 * time.Second

	// maxInputChars caps translation input; longer messages are truncated
	// before the completion call.
	maxInputChars = 2000
)

// Client is the chat-completion translator client.
type Client struct {
	client         *gopenai.Client
	model          string
	systemTemplate string
}

// NewClient creates a new translator client. systemTemplate must contain
// one %s verb for the target language.
func NewClient(apiKey, model, systemTemplate string) *Client {
	if model == "" {
		model = gopenai.GPT3Dot5Turbo
	}
	return &Client{
		client:         gopenai.NewClient(apiKey),
		model:          model,
		systemTemplate: systemTemplate,
	}
}

// Translate renders text into the target language via one completion call.
func (c *Client) Translate(ctx context.Context, text string, target domain.LanguageCode) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty text")
	}
	if runes := []rune(text); len(runes) > maxInputChars {
		text = string(runes[:maxInputChars])
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: fmt.Sprintf(c.systemTemplate, target.DisplayName())},
			{Role: gopenai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.2, // Low temperature for faithful translations
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", fmt.Errorf("empty translation")
	}
	return translated, nil
}
