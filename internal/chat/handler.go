package chat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/perspectivehealth/clinic-site/internal/chatbot"
	"github.com/perspectivehealth/clinic-site/internal/clinic"
	"github.com/perspectivehealth/clinic-site/internal/http/middleware"
	"github.com/perspectivehealth/clinic-site/internal/observability/metrics"
	"github.com/perspectivehealth/clinic-site/pkg/logging"
)

const (
	maxMessages      = 50
	maxContentLength = 2000
)

// Request is the chat endpoint request body.
type Request struct {
	Messages []Message `json:"messages"`
}

// Response is the chat endpoint response body.
type Response struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

var smartFallbackSuggestions = []string{
	"Our Services",
	"Hours & Location",
	"Insurance & Payment",
	"New Patient Info",
	"Meet Our Providers",
}

// Handler serves the chat endpoint. Conversations are ephemeral: the full
// history arrives with every request and nothing is persisted.
type Handler struct {
	completion CompletionClient
	limiter    *middleware.Limiter
	metrics    *metrics.ChatMetrics
	logger     *logging.Logger
	now        func() time.Time
}

// NewHandler builds a chat handler. completion may be nil when no upstream
// API key is configured; the handler then answers with a static fallback.
func NewHandler(completion CompletionClient, limiter *middleware.Limiter, m *metrics.ChatMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		completion: completion,
		limiter:    limiter,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

func fallbackMessage() string {
	return fmt.Sprintf(
		"I'm not fully connected yet, but I'd love to help! Please call us at %s or email %s and our team will be happy to assist you. You can also visit our Contact page to send us a message.",
		clinic.Site.Phone, clinic.Site.Email,
	)
}

func smartFallbackMessage() string {
	return fmt.Sprintf(
		"I'm not sure I have the answer to that one, but I can help with a lot of other things! Try one of the topics below, or call us at %s for anything specific.",
		clinic.Site.Phone,
	)
}

// HandleChat is POST /api/chat.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveRequest("invalid")
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request"})
		return
	}
	if err := validate(req); err != nil {
		h.metrics.ObserveRequest("invalid")
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request"})
		return
	}

	if h.limiter != nil && !h.limiter.CheckAndRecord(r.Context(), middleware.ClientKey(r)) {
		h.metrics.ObserveRequest("rate_limited")
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"message": "You're sending messages too quickly. Please wait a moment and try again.",
		})
		return
	}

	// FAQ shortcut: instant answers for common questions, no upstream call.
	last := req.Messages[len(req.Messages)-1]
	if last.Role == "user" {
		if match, ok := chatbot.MatchFAQ(last.Content); ok {
			h.metrics.ObserveRequest("faq_hit")
			writeJSON(w, http.StatusOK, Response{
				Message:     match.Answer,
				Suggestions: match.Suggestions,
			})
			return
		}
	}

	if h.completion == nil {
		h.metrics.ObserveRequest("fallback")
		writeJSON(w, http.StatusOK, Response{
			Message:     smartFallbackMessage(),
			Suggestions: smartFallbackSuggestions,
		})
		return
	}

	start := h.now()
	reply, err := h.completion.Complete(r.Context(), chatbot.SystemPrompt(), req.Messages)
	h.metrics.ObserveCompletionLatency(h.now().Sub(start).Seconds())
	if err != nil {
		// Fail soft: upstream trouble becomes a contact-us message, never
		// an error status.
		h.logger.Error("chat: completion failed", "error", err)
		h.metrics.ObserveRequest("completion_error")
		writeJSON(w, http.StatusOK, Response{Message: fallbackMessage()})
		return
	}

	h.metrics.ObserveRequest("completion")
	writeJSON(w, http.StatusOK, Response{Message: reply})
}

// HandleWelcome is GET /api/chat/welcome. The page query parameter carries
// the pathname the widget is embedded on.
func (h *Handler) HandleWelcome(w http.ResponseWriter, r *http.Request) {
	welcome := chatbot.Welcome(r.URL.Query().Get("page"))
	writeJSON(w, http.StatusOK, welcome)
}

func validate(req Request) error {
	if len(req.Messages) < 1 || len(req.Messages) > maxMessages {
		return fmt.Errorf("chat: message count %d out of range", len(req.Messages))
	}
	for i, m := range req.Messages {
		if m.Role != "user" && m.Role != "assistant" {
			return fmt.Errorf("chat: message %d has invalid role %q", i, m.Role)
		}
		if len(m.Content) < 1 || len(m.Content) > maxContentLength {
			return fmt.Errorf("chat: message %d content length out of range", i)
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
