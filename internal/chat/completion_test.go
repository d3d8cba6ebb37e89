package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type stubCompleter struct {
	response openai.ChatCompletionResponse
	err      error
	lastReq  openai.ChatCompletionRequest
}

func (s *stubCompleter) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.lastReq = request
	return s.response, s.err
}

func TestOpenAIClientComplete(t *testing.T) {
	stub := &stubCompleter{
		response: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "  Hello!  "}},
			},
		},
	}
	client := &OpenAIClient{client: stub, model: "gpt-4o-mini", timeout: time.Second}

	reply, err := client.Complete(context.Background(), "You are helpful.", []Message{
		{Role: "user", Content: "hi"},
	})
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if reply != "Hello!" {
		t.Fatalf("expected trimmed reply, got %q", reply)
	}
	if stub.lastReq.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %s", stub.lastReq.Model)
	}
	if stub.lastReq.MaxTokens != 500 {
		t.Fatalf("expected max tokens 500, got %d", stub.lastReq.MaxTokens)
	}
	if stub.lastReq.Temperature != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", stub.lastReq.Temperature)
	}
	if len(stub.lastReq.Messages) != 2 {
		t.Fatalf("expected system + user message, got %d", len(stub.lastReq.Messages))
	}
	if stub.lastReq.Messages[0].Role != openai.ChatMessageRoleSystem || stub.lastReq.Messages[0].Content != "You are helpful." {
		t.Fatalf("expected system prompt first, got %#v", stub.lastReq.Messages[0])
	}
}

func TestOpenAIClientCompleteUpstreamError(t *testing.T) {
	client := &OpenAIClient{client: &stubCompleter{err: errors.New("boom")}, model: "gpt-4o-mini", timeout: time.Second}
	if _, err := client.Complete(context.Background(), "prompt", []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenAIClientCompleteNoChoices(t *testing.T) {
	client := &OpenAIClient{client: &stubCompleter{}, model: "gpt-4o-mini", timeout: time.Second}
	if _, err := client.Complete(context.Background(), "prompt", []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}

func TestOpenAIClientCompleteEmptyContent(t *testing.T) {
	stub := &stubCompleter{
		response: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "   "}}},
		},
	}
	client := &OpenAIClient{client: stub, model: "gpt-4o-mini", timeout: time.Second}
	if _, err := client.Complete(context.Background(), "prompt", []Message{{Role: "user", Content: "hi"}}); err == nil {
		t.Fatalf("expected error for empty content")
	}
}
