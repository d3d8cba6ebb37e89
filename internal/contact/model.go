package contact

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// Submission is a stored contact form submission.
type Submission struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Service          string    `json:"service,omitempty"`
	PreferredContact string    `json:"preferredContact"`
	Message          string    `json:"message"`
	CreatedAt        time.Time `json:"created_at"`
}

// SubmitRequest is the contact form request body.
type SubmitRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Service          string `json:"service"`
	PreferredContact string `json:"preferredContact"`
	Message          string `json:"message"`
}

// FieldErrors maps a field name to its validation messages.
type FieldErrors map[string][]string

func (e FieldErrors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Validate checks the request and returns per-field validation errors.
// An empty map means the request is valid.
func (r *SubmitRequest) Validate() FieldErrors {
	errs := FieldErrors{}

	if utf8.RuneCountInString(strings.TrimSpace(r.Name)) < 2 {
		errs.add("name", "Name must be at least 2 characters")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil || strings.ContainsAny(r.Email, " <>") {
		errs.add("email", "A valid email address is required")
	}
	switch r.PreferredContact {
	case "email", "phone", "either":
	default:
		errs.add("preferredContact", "Preferred contact must be email, phone, or either")
	}
	length := utf8.RuneCountInString(r.Message)
	if length < 10 {
		errs.add("message", "Message must be at least 10 characters")
	} else if length > 1000 {
		errs.add("message", "Message must be at most 1000 characters")
	}

	return errs
}
