package chatbot

import (
	"reflect"
	"strings"
	"testing"
)

func TestWelcomeDefault(t *testing.T) {
	for _, path := range []string{"", "/", "/privacy-policy", "/blog/some-post"} {
		w := Welcome(path)
		if w.Content == "" {
			t.Errorf("Welcome(%q) returned empty content", path)
		}
		if len(w.Suggestions) == 0 {
			t.Errorf("Welcome(%q) returned no suggestions", path)
		}
	}
}

func TestWelcomeKnownContexts(t *testing.T) {
	cases := map[string]string{
		"/services":     "browsing our services",
		"/about":        "checking out our team",
		"/insurance":    "insurance and payment",
		"/contact":      "get in touch",
		"/for-patients": "what to expect as a patient",
	}
	for path, want := range cases {
		w := Welcome(path)
		if !contains(w.Content, want) {
			t.Errorf("Welcome(%q) = %q, want substring %q", path, w.Content, want)
		}
	}
}

func TestWelcomeServiceSlug(t *testing.T) {
	w := Welcome("/services/hormone-health")
	if !contains(w.Content, "Hormone Health") {
		t.Errorf("expected service name in greeting, got %q", w.Content)
	}

	// Unknown slug falls back to the services-family greeting, never errors.
	unknown := Welcome("/services/underwater-basket-weaving")
	if unknown.Content == "" {
		t.Fatal("unknown slug returned empty greeting")
	}
	if !contains(unknown.Content, "browsing our services") {
		t.Errorf("expected services-family fallback, got %q", unknown.Content)
	}
}

func TestWelcomeIdempotent(t *testing.T) {
	for _, path := range []string{"/", "/services", "/services/hormone-health", "/somewhere-else"} {
		a := Welcome(path)
		b := Welcome(path)
		if a.Content != b.Content || !reflect.DeepEqual(a.Suggestions, b.Suggestions) {
			t.Errorf("Welcome(%q) is not idempotent", path)
		}
	}
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
