package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/perspectivehealth/clinic-site/internal/clinic"
	"github.com/perspectivehealth/clinic-site/internal/http/middleware"
	"github.com/perspectivehealth/clinic-site/pkg/logging"
)

type stubCompletion struct {
	reply string
	err   error
	calls int
}

func (s *stubCompletion) Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func postChat(t *testing.T, h *Handler, req Request) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	r := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleChat(rec, r)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func userMessage(content string) Request {
	return Request{Messages: []Message{{Role: "user", Content: content}}}
}

func TestHandleChatValidation(t *testing.T) {
	h := NewHandler(nil, nil, nil, logging.Default())

	long := strings.Repeat("a", 2001)
	many := make([]Message, 51)
	for i := range many {
		many[i] = Message{Role: "user", Content: "hi"}
	}

	cases := []struct {
		name string
		req  Request
	}{
		{"no messages", Request{}},
		{"too many messages", Request{Messages: many}},
		{"empty content", Request{Messages: []Message{{Role: "user", Content: ""}}}},
		{"content too long", Request{Messages: []Message{{Role: "user", Content: long}}}},
		{"bad role", Request{Messages: []Message{{Role: "system", Content: "hi"}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postChat(t, h, tc.req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body["error"] == "" {
				t.Fatalf("expected error field in body: %s", rec.Body.String())
			}
		})
	}
}

func TestHandleChatMalformedJSON(t *testing.T) {
	h := NewHandler(nil, nil, nil, logging.Default())
	r := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.HandleChat(rec, r)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleChatFAQHoursEndToEnd(t *testing.T) {
	completion := &stubCompletion{reply: "should not be used"}
	h := NewHandler(completion, nil, nil, logging.Default())

	rec := postChat(t, h, userMessage("What are your hours?"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	resp := decodeResponse(t, rec)
	for _, line := range clinic.HoursLines() {
		if !strings.Contains(resp.Message, line) {
			t.Errorf("expected hours answer to contain %q", line)
		}
	}
	if !strings.Contains(resp.Message, clinic.Site.Phone) {
		t.Errorf("expected hours answer to contain phone %q", clinic.Site.Phone)
	}
	if completion.calls != 0 {
		t.Fatalf("expected FAQ hit to skip completion, got %d calls", completion.calls)
	}
}

func TestHandleChatFAQSkippedWhenLastMessageIsAssistant(t *testing.T) {
	h := NewHandler(nil, nil, nil, logging.Default())
	rec := postChat(t, h, Request{Messages: []Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "What are your hours?"},
	}})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	resp := decodeResponse(t, rec)
	if !reflect.DeepEqual(resp.Suggestions, smartFallbackSuggestions) {
		t.Fatalf("expected smart fallback, got %#v", resp)
	}
}

func TestHandleChatSmartFallbackWithoutCompletion(t *testing.T) {
	h := NewHandler(nil, nil, nil, logging.Default())
	rec := postChat(t, h, userMessage("tell me something unmatched xyzzy"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	resp := decodeResponse(t, rec)
	want := []string{"Our Services", "Hours & Location", "Insurance & Payment", "New Patient Info", "Meet Our Providers"}
	if !reflect.DeepEqual(resp.Suggestions, want) {
		t.Fatalf("expected suggestions %v, got %v", want, resp.Suggestions)
	}
	if !strings.Contains(resp.Message, clinic.Site.Phone) {
		t.Errorf("expected fallback to mention phone")
	}
}

func TestHandleChatCompletionSuccess(t *testing.T) {
	completion := &stubCompletion{reply: "We offer comprehensive primary care."}
	h := NewHandler(completion, nil, nil, logging.Default())

	rec := postChat(t, h, userMessage("tell me something unmatched xyzzy"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	resp := decodeResponse(t, rec)
	if resp.Message != "We offer comprehensive primary care." {
		t.Fatalf("unexpected reply: %q", resp.Message)
	}
	if len(resp.Suggestions) != 0 {
		t.Fatalf("expected no suggestions on completion, got %v", resp.Suggestions)
	}
	if completion.calls != 1 {
		t.Fatalf("expected 1 completion call, got %d", completion.calls)
	}
}

func TestHandleChatCompletionFailureDegradesToApology(t *testing.T) {
	completion := &stubCompletion{err: errors.New("upstream down")}
	h := NewHandler(completion, nil, nil, logging.Default())

	rec := postChat(t, h, userMessage("tell me something unmatched xyzzy"))
	if rec.Code != http.StatusOK {
		t.Fatalf("upstream failure must not surface as an error status, got %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if !strings.Contains(resp.Message, clinic.Site.Phone) || !strings.Contains(resp.Message, clinic.Site.Email) {
		t.Fatalf("expected apology naming phone and email, got %q", resp.Message)
	}
}

func TestHandleChatRateLimited(t *testing.T) {
	store := middleware.NewMemoryStore()
	limiter := middleware.NewLimiter(store, time.Minute, 2, logging.Default())
	h := NewHandler(nil, limiter, nil, logging.Default())

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = postChat(t, h, userMessage("What are your hours?"))
	}
	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, last.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(last.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !strings.Contains(body["message"], "too quickly") {
		t.Fatalf("unexpected rate limit message: %q", body["message"])
	}
}

func TestHandleWelcome(t *testing.T) {
	h := NewHandler(nil, nil, nil, logging.Default())

	r := httptest.NewRequest(http.MethodGet, "/api/chat/welcome?page=/contact", nil)
	rec := httptest.NewRecorder()
	h.HandleWelcome(rec, r)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var resp struct {
		Content     string   `json:"content"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode welcome: %v", err)
	}
	if resp.Content == "" || len(resp.Suggestions) == 0 {
		t.Fatalf("expected welcome content and suggestions, got %#v", resp)
	}
}
