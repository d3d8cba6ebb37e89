package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/perspectivehealth/clinic-site/internal/notify"
	"github.com/perspectivehealth/clinic-site/pkg/logging"
)

type recordingSender struct {
	messages []notify.EmailMessage
	err      error
}

func (s *recordingSender) Send(ctx context.Context, msg notify.EmailMessage) error {
	s.messages = append(s.messages, msg)
	return s.err
}

func postContact(t *testing.T, h *Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	r := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, r)
	return rec
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		Name:             "Jane Doe",
		Email:            "jane@example.com",
		PreferredContact: "email",
		Message:          "I would like to schedule a visit.",
	}
}

func TestHandleSubmitSuccess(t *testing.T) {
	repo := NewInMemoryRepository()
	sender := &recordingSender{}
	h := NewHandler(repo, sender, "team@example.com", nil, logging.Default())

	rec := postContact(t, h, validRequest())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Message == "" {
		t.Fatalf("unexpected response: %#v", resp)
	}

	subs, err := repo.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 stored submission, got %d", len(subs))
	}
	if len(sender.messages) != 1 {
		t.Fatalf("expected 1 notification email, got %d", len(sender.messages))
	}
	if sender.messages[0].To != "team@example.com" {
		t.Fatalf("unexpected recipient: %s", sender.messages[0].To)
	}
	if !strings.Contains(sender.messages[0].Subject, "Jane Doe") {
		t.Fatalf("unexpected subject: %s", sender.messages[0].Subject)
	}
}

func TestHandleSubmitShortMessage(t *testing.T) {
	h := NewHandler(NewInMemoryRepository(), nil, "", nil, logging.Default())

	req := validRequest()
	req.Message = "hello"
	rec := postContact(t, h, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, rec.Code)
	}

	var resp struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected success=false")
	}
	if len(resp.Errors["message"]) == 0 {
		t.Fatalf("expected field error on message, got %#v", resp.Errors)
	}
}

func TestHandleSubmitValidation(t *testing.T) {
	h := NewHandler(NewInMemoryRepository(), nil, "", nil, logging.Default())

	cases := []struct {
		name   string
		mutate func(*SubmitRequest)
		field  string
	}{
		{"short name", func(r *SubmitRequest) { r.Name = "J" }, "name"},
		{"bad email", func(r *SubmitRequest) { r.Email = "not-an-email" }, "email"},
		{"bad preferred contact", func(r *SubmitRequest) { r.PreferredContact = "fax" }, "preferredContact"},
		{"long message", func(r *SubmitRequest) { r.Message = strings.Repeat("a", 1001) }, "message"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			rec := postContact(t, h, req)
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, rec.Code)
			}
			var resp struct {
				Errors map[string][]string `json:"errors"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(resp.Errors[tc.field]) == 0 {
				t.Fatalf("expected field error on %s, got %#v", tc.field, resp.Errors)
			}
		})
	}
}

func TestHandleSubmitOptionalFields(t *testing.T) {
	repo := NewInMemoryRepository()
	h := NewHandler(repo, nil, "", nil, logging.Default())

	req := validRequest()
	req.Phone = "555-0100"
	req.Service = "Primary Care"
	rec := postContact(t, h, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestHandleSubmitMalformedJSON(t *testing.T) {
	h := NewHandler(NewInMemoryRepository(), nil, "", nil, logging.Default())
	r := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, r)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, rec.Code)
	}
}

type failingRepo struct{}

func (failingRepo) Create(ctx context.Context, req *SubmitRequest) (*Submission, error) {
	return nil, errors.New("db down")
}

func (failingRepo) List(ctx context.Context, limit int) ([]*Submission, error) {
	return nil, errors.New("db down")
}

func TestHandleSubmitStorageFailure(t *testing.T) {
	h := NewHandler(failingRepo{}, nil, "", nil, logging.Default())
	rec := postContact(t, h, validRequest())
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestHandleSubmitEmailFailureDoesNotFailRequest(t *testing.T) {
	sender := &recordingSender{err: errors.New("sendgrid down")}
	h := NewHandler(NewInMemoryRepository(), sender, "team@example.com", nil, logging.Default())

	rec := postContact(t, h, validRequest())
	if rec.Code != http.StatusOK {
		t.Fatalf("notification failure must not fail the request, got %d", rec.Code)
	}
}

func TestHandleList(t *testing.T) {
	repo := NewInMemoryRepository()
	h := NewHandler(repo, nil, "", nil, logging.Default())

	for i := 0; i < 3; i++ {
		req := validRequest()
		if _, err := repo.Create(context.Background(), &req); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	r := httptest.NewRequest(http.MethodGet, "/admin/contact?limit=2", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 || len(resp.Submissions) != 2 {
		t.Fatalf("expected 2 submissions, got %#v", resp)
	}
}
