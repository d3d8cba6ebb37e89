package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/perspectivehealth/clinic-site/internal/notify"
	"github.com/perspectivehealth/clinic-site/internal/observability/metrics"
	"github.com/perspectivehealth/clinic-site/pkg/logging"
)

// Handler handles the contact form endpoints.
type Handler struct {
	repo         Repository
	sender       notify.EmailSender
	contactEmail string
	metrics      *metrics.ChatMetrics
	logger       *logging.Logger
}

// NewHandler creates a contact handler. sender may be nil when notification
// email is disabled.
func NewHandler(repo Repository, sender notify.EmailSender, contactEmail string, m *metrics.ChatMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:         repo,
		sender:       sender,
		contactEmail: contactEmail,
		metrics:      m,
		logger:       logger,
	}
}

// HandleSubmit is POST /api/contact.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveContact("invalid")
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"errors":  FieldErrors{"body": {"Request body must be valid JSON"}},
		})
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.metrics.ObserveContact("invalid")
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"errors":  errs,
		})
		return
	}

	sub, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		h.logger.Error("contact: failed to store submission", "error", err)
		h.metrics.ObserveContact("failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Internal server error",
		})
		return
	}

	h.notifyTeam(r.Context(), sub)

	h.logger.Info("contact: submission received", "id", sub.ID, "name", sub.Name)
	h.metrics.ObserveContact("accepted")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message received successfully.",
	})
}

// notifyTeam emails the submission to the clinic inbox. Failures are logged
// only; the visitor's submission has already been accepted.
func (h *Handler) notifyTeam(ctx context.Context, sub *Submission) {
	if h.sender == nil || h.contactEmail == "" {
		return
	}
	data := notify.ContactEmailData{
		Name:             sub.Name,
		Email:            sub.Email,
		Phone:            sub.Phone,
		Service:          sub.Service,
		PreferredContact: sub.PreferredContact,
		Message:          sub.Message,
	}
	msg := notify.EmailMessage{
		To:      h.contactEmail,
		Subject: fmt.Sprintf("New Contact Form Submission — %s", sub.Name),
		Body:    notify.BuildContactEmailText(data),
		HTML:    notify.BuildContactEmailHTML(data),
	}
	if err := h.sender.Send(ctx, msg); err != nil {
		h.logger.Error("contact: notification email failed", "error", err, "id", sub.ID)
	}
}

// ListResponse is the response for listing submissions.
type ListResponse struct {
	Submissions []*Submission `json:"submissions"`
	Count       int           `json:"count"`
}

// HandleList is GET /admin/contact.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	subs, err := h.repo.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("contact: failed to list submissions", "error", err)
		http.Error(w, "failed to list submissions", http.StatusInternalServerError)
		return
	}
	if subs == nil {
		subs = []*Submission{}
	}

	writeJSON(w, http.StatusOK, ListResponse{Submissions: subs, Count: len(subs)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
