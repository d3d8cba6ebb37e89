package chatbot

import (
	"fmt"
	"strings"

	"github.com/perspectivehealth/clinic-site/internal/clinic"
)

// WelcomeMessage is the greeting seeded into a fresh chat session.
type WelcomeMessage struct {
	Content     string   `json:"content"`
	Suggestions []string `json:"suggestions"`
}

const genericWelcome = "Hi! I'm the Perspective Health assistant. I can help with questions about our services, providers, hours, insurance, and scheduling. What can I help you with?"

var defaultSuggestions = []string{"Our Services", "Hours & Location", "Insurance", "New Patient Info"}

// Welcome maps a page path to a context-specific greeting. Unknown or empty
// paths get the generic greeting; it never fails and never returns empty
// content. Pure function, safe to call repeatedly.
func Welcome(pathname string) WelcomeMessage {
	if pathname == "" || pathname == "/" {
		return WelcomeMessage{Content: genericWelcome, Suggestions: defaultSuggestions}
	}

	if slug, ok := strings.CutPrefix(pathname, "/services/"); ok {
		if svc, found := clinic.ServiceBySlug(slug); found {
			return WelcomeMessage{
				Content:     fmt.Sprintf("Hi! I see you're looking at our %s services. I'd be happy to answer any questions about what to expect, who it's for, or how to get started!", svc.Name),
				Suggestions: []string{"Who is this for?", "How do I schedule?", "Insurance", "Other Services"},
			}
		}
		// Unknown slug: fall through to the services-family greeting below.
		pathname = "/services"
	}

	switch pathname {
	case "/services":
		return WelcomeMessage{
			Content:     "Hi! You're browsing our services. I can help you find the right fit — whether it's primary care, hormone health, functional medicine, or something else. What are you looking for?",
			Suggestions: []string{"Hormone Health", "Primary Care", "Digestive Health", "Functional Medicine"},
		}
	case "/about":
		return WelcomeMessage{
			Content:     "Hi! You're checking out our team. Want to know more about one of our providers, or how our integrative approach works?",
			Suggestions: []string{"Tell me about Audrey", "Tell me about Stephanie", "Tell me about Tara", "Your Approach"},
		}
	case "/insurance":
		return WelcomeMessage{
			Content:     "Hi! I can help with insurance and payment questions. We accept most major plans, plus HSA/FSA and CareCredit. What would you like to know?",
			Suggestions: []string{"Which plans?", "Cash-pay options", "HSA/FSA", "CareCredit"},
		}
	case "/contact":
		return WelcomeMessage{
			Content:     "Hi! Looking to get in touch? I can help with scheduling info, directions, or any quick questions while you're here.",
			Suggestions: []string{"Hours & Location", "New Patient Info", "Telehealth", "Our Services"},
		}
	case "/for-patients":
		return WelcomeMessage{
			Content:     "Hi! I can help answer questions about what to expect as a patient — from your first visit to insurance and telehealth options.",
			Suggestions: []string{"New Patient Info", "Insurance", "Telehealth", "Hours & Location"},
		}
	}

	return WelcomeMessage{Content: genericWelcome, Suggestions: defaultSuggestions}
}
