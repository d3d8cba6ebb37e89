package notify

import (
	"fmt"
	"html"
	"strings"
)

// ContactEmailData carries the contact form fields into the notification email.
type ContactEmailData struct {
	Name             string
	Email            string
	Phone            string
	Service          string
	PreferredContact string
	Message          string
}

// BuildContactEmailHTML renders the notification email for a contact form
// submission. All user-supplied fields are escaped.
func BuildContactEmailHTML(data ContactEmailData) string {
	phone := data.Phone
	if phone == "" {
		phone = "Not provided"
	}
	service := data.Service
	if service == "" {
		service = "Not specified"
	}

	row := func(label, value string) string {
		return fmt.Sprintf(
			`<tr><td style="padding: 8px; font-weight: bold; width: 40%%;">%s</td><td style="padding: 8px;">%s</td></tr>`,
			label, html.EscapeString(value),
		)
	}

	var b strings.Builder
	b.WriteString(`<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">`)
	b.WriteString(`<h2 style="color: #00B5B8;">New Contact Form Submission</h2>`)
	b.WriteString(`<table style="width: 100%; border-collapse: collapse;">`)
	b.WriteString(row("Name:", data.Name))
	b.WriteString(fmt.Sprintf(
		`<tr><td style="padding: 8px; font-weight: bold;">Email:</td><td style="padding: 8px;"><a href="mailto:%s">%s</a></td></tr>`,
		html.EscapeString(data.Email), html.EscapeString(data.Email),
	))
	b.WriteString(row("Phone:", phone))
	b.WriteString(row("Service:", service))
	b.WriteString(row("Preferred Contact:", data.PreferredContact))
	b.WriteString(`</table>`)
	b.WriteString(`<div style="margin-top: 16px;"><strong>Message:</strong>`)
	b.WriteString(fmt.Sprintf(
		`<p style="background: #f5f5f5; padding: 12px; border-radius: 8px; white-space: pre-wrap;">%s</p>`,
		html.EscapeString(data.Message),
	))
	b.WriteString(`</div></div>`)
	return b.String()
}

// BuildContactEmailText renders a plain text version of the notification.
func BuildContactEmailText(data ContactEmailData) string {
	phone := data.Phone
	if phone == "" {
		phone = "Not provided"
	}
	service := data.Service
	if service == "" {
		service = "Not specified"
	}
	return fmt.Sprintf(
		"New Contact Form Submission\n\nName: %s\nEmail: %s\nPhone: %s\nService: %s\nPreferred Contact: %s\n\nMessage:\n%s\n",
		data.Name, data.Email, phone, service, data.PreferredContact, data.Message,
	)
}
