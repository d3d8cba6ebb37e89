package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var chatTracer = otel.Tracer("clinic.internal.chat")

const defaultModel = "gpt-4o-mini"

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionClient produces an assistant reply for a conversation.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error)
}

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient is the OpenAI-backed CompletionClient.
type OpenAIClient struct {
	client  chatCompleter
	model   string
	timeout time.Duration
}

// NewOpenAIClient builds a completion client for the given API key.
func NewOpenAIClient(apiKey, model string, timeout time.Duration) *OpenAIClient {
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OpenAIClient{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

// Complete sends the system prompt plus conversation history upstream and
// returns the assistant reply.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	ctx, span := chatTracer.Start(ctx, "chat.completion")
	defer span.End()

	history := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	history = append(history, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range messages {
		history = append(history, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    history,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("chat: completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		err := errors.New("chat: completion returned no choices")
		span.RecordError(err)
		return "", err
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		err := errors.New("chat: completion returned empty content")
		span.RecordError(err)
		return "", err
	}
	if span.IsRecording() {
		span.SetAttributes(attribute.Int("clinic.completion.choices", len(resp.Choices)))
	}
	return reply, nil
}
