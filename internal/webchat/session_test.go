package webchat

import (
	"errors"
	"testing"
	"time"

	"github.com/perspectivehealth/clinic-site/internal/chatbot"
)

func newTestSession(page string) (*Session, *time.Time) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewSession(page)
	s.now = func() time.Time { return now }
	s.pageShownAt = now
	return s, &now
}

func TestOpenSeedsWelcome(t *testing.T) {
	s, _ := newTestSession("/contact")
	s.Open()

	if s.State() != StateOpen {
		t.Fatalf("expected open state, got %v", s.State())
	}
	msgs := s.Transcript()
	if len(msgs) != 1 || msgs[0].Role != "assistant" {
		t.Fatalf("expected one seeded assistant message, got %#v", msgs)
	}
	want := chatbot.Welcome("/contact")
	if msgs[0].Content != want.Content {
		t.Fatalf("expected page welcome, got %q", msgs[0].Content)
	}
	if len(s.Suggestions()) == 0 {
		t.Fatalf("expected seeded suggestions")
	}
}

func TestReopenReseeds(t *testing.T) {
	s, _ := newTestSession("/")
	s.Open()
	if _, err := s.Submit("hello there"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	s.Close()

	if got := len(s.Transcript()); got != 0 {
		t.Fatalf("expected transcript discarded on close, got %d messages", got)
	}

	s.Open()
	msgs := s.Transcript()
	if len(msgs) != 1 || msgs[0].Role != "assistant" {
		t.Fatalf("expected fresh welcome after reopen, got %#v", msgs)
	}
}

func TestSubmitOptimisticAppend(t *testing.T) {
	s, _ := newTestSession("/")
	s.Open()

	token, err := s.Submit("what are your hours?")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if token == 0 {
		t.Fatalf("expected a send token")
	}
	if s.State() != StateSending {
		t.Fatalf("expected sending state, got %v", s.State())
	}
	msgs := s.Transcript()
	if msgs[len(msgs)-1].Role != "user" {
		t.Fatalf("expected user message appended, got %#v", msgs)
	}
	if len(s.Suggestions()) != 0 {
		t.Fatalf("expected suggestions cleared while sending")
	}
}

func TestOnlyOneSendInFlight(t *testing.T) {
	s, _ := newTestSession("/")
	s.Open()
	if _, err := s.Submit("first"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := s.Submit("second"); !errors.Is(err, ErrSendInFlight) {
		t.Fatalf("expected ErrSendInFlight, got %v", err)
	}
}

func TestSubmitRequiresOpen(t *testing.T) {
	s, _ := newTestSession("/")
	if _, err := s.Submit("hi"); !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
}

func TestResolveAppendsReply(t *testing.T) {
	s, _ := newTestSession("/")
	s.Open()
	token, _ := s.Submit("question")

	s.Resolve(token, "answer", []string{"Our Services"})

	if s.State() != StateOpen {
		t.Fatalf("expected open state after resolve, got %v", s.State())
	}
	msgs := s.Transcript()
	last := msgs[len(msgs)-1]
	if last.Role != "assistant" || last.Content != "answer" {
		t.Fatalf("expected assistant reply appended, got %#v", last)
	}
	if len(s.Suggestions()) != 1 {
		t.Fatalf("expected new suggestions set")
	}
}

func TestFailSetsErrorSlot(t *testing.T) {
	s, _ := newTestSession("/")
	s.Open()
	token, _ := s.Submit("question")

	s.Fail(token, "Sorry, something went wrong. Please try again.")

	if s.State() != StateOpen {
		t.Fatalf("expected open state after fail, got %v", s.State())
	}
	if s.ErrorText() == "" {
		t.Fatalf("expected error slot set")
	}
	if len(s.Suggestions()) != 0 {
		t.Fatalf("expected suggestions cleared on failure")
	}
}

func TestLateResponseAfterCloseIsNoOp(t *testing.T) {
	s, _ := newTestSession("/")
	s.Open()
	token, _ := s.Submit("question")
	s.Close()

	s.Resolve(token, "too late", nil)

	if s.State() != StateClosed {
		t.Fatalf("expected closed state, got %v", s.State())
	}
	if got := len(s.Transcript()); got != 0 {
		t.Fatalf("expected discarded transcript to stay empty, got %d", got)
	}
}

func TestStaleTokenIgnored(t *testing.T) {
	s, _ := newTestSession("/")
	s.Open()
	token, _ := s.Submit("question")
	s.Fail(token, "network error")

	// The failed send's token is now stale.
	s.Resolve(token, "duplicate", nil)
	msgs := s.Transcript()
	if msgs[len(msgs)-1].Content == "duplicate" {
		t.Fatalf("expected stale resolve to be ignored")
	}
}

func TestPageChangeBeforeEngagementReseeds(t *testing.T) {
	s, _ := newTestSession("/")
	s.Open()
	s.SetPage("/insurance")

	msgs := s.Transcript()
	want := chatbot.Welcome("/insurance")
	if len(msgs) != 1 || msgs[0].Content != want.Content {
		t.Fatalf("expected reseeded welcome for new page, got %#v", msgs)
	}
}

func TestPageChangeAfterEngagementKeepsTranscript(t *testing.T) {
	s, _ := newTestSession("/")
	s.Open()
	token, _ := s.Submit("hello")
	s.Resolve(token, "hi!", nil)

	s.SetPage("/services")

	msgs := s.Transcript()
	if len(msgs) != 3 {
		t.Fatalf("expected transcript preserved after engagement, got %d messages", len(msgs))
	}
}

func TestNudgeAppearsAfterDelay(t *testing.T) {
	s, now := newTestSession("/")
	if s.NudgeVisible() {
		t.Fatalf("nudge must not show before the delay")
	}
	*now = now.Add(8 * time.Second)
	if !s.NudgeVisible() {
		t.Fatalf("expected nudge after delay")
	}
}

func TestNudgeSuppressedWhileOpen(t *testing.T) {
	s, now := newTestSession("/")
	s.Open()
	*now = now.Add(time.Minute)
	if s.NudgeVisible() {
		t.Fatalf("nudge must not show while window is open")
	}
}

func TestNudgeDismissalScopedToPage(t *testing.T) {
	s, now := newTestSession("/")
	*now = now.Add(10 * time.Second)
	s.DismissNudge()
	if s.NudgeVisible() {
		t.Fatalf("expected nudge hidden after dismissal")
	}

	s.SetPage("/about")
	*now = now.Add(10 * time.Second)
	if !s.NudgeVisible() {
		t.Fatalf("expected page change to reset dismissal")
	}
}

func TestOpeningDismissesNudgeForPage(t *testing.T) {
	s, now := newTestSession("/")
	s.Open()
	s.Close()
	*now = now.Add(time.Minute)
	if s.NudgeVisible() {
		t.Fatalf("expected opening the chat to dismiss the nudge for this page")
	}
}

func TestThinkingDelayIsAdditiveOnly(t *testing.T) {
	s, now := newTestSession("/")
	s.Open()

	// Fast response: the floor applies.
	token, _ := s.Submit("quick")
	*now = now.Add(100 * time.Millisecond)
	if delay := s.Resolve(token, "fast reply", nil); delay != 500*time.Millisecond {
		t.Fatalf("expected 500ms remaining floor, got %v", delay)
	}

	// Slow response: no extra wait.
	token, _ = s.Submit("slow")
	*now = now.Add(2 * time.Second)
	if delay := s.Resolve(token, "slow reply", nil); delay != 0 {
		t.Fatalf("expected no added delay for slow response, got %v", delay)
	}
}

func TestStateString(t *testing.T) {
	if StateClosed.String() != "closed" || StateOpen.String() != "open" || StateSending.String() != "sending" {
		t.Fatalf("unexpected state names")
	}
}
