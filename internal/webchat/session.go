package webchat

import (
	"errors"
	"sync"
	"time"

	"github.com/perspectivehealth/clinic-site/internal/chatbot"
)

// State is the chat window's lifecycle state. Modeling it as an enum keeps
// illegal combinations (nudge shown while open, two sends in flight)
// unrepresentable.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateSending
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateSending:
		return "sending"
	default:
		return "unknown"
	}
}

const (
	nudgeDelay  = 8 * time.Second
	minThinking = 600 * time.Millisecond
)

// TranscriptMessage is one visible entry in the chat window.
type TranscriptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SendToken identifies one in-flight send. A resolution carrying a stale
// token is ignored, which makes late responses after Close harmless.
type SendToken uint64

var (
	ErrNotOpen      = errors.New("webchat: session is not open")
	ErrSendInFlight = errors.New("webchat: a send is already in flight")
	ErrEmptyMessage = errors.New("webchat: message is empty")
)

// Session models one visitor's chat widget. Nothing here is persisted;
// closing the window discards the transcript.
type Session struct {
	mu sync.Mutex

	state       State
	page        string
	engaged     bool
	messages    []TranscriptMessage
	suggestions []string
	errorText   string

	nudgeDismissed bool
	pageShownAt    time.Time

	token          SendToken
	earliestReveal time.Time

	now func() time.Time
}

// NewSession creates a closed session mounted on the given page path.
func NewSession(page string) *Session {
	s := &Session{page: page, now: time.Now}
	s.pageShownAt = s.now()
	return s
}

// Open shows the chat window, seeding the transcript with the welcome
// greeting for the current page. Opening dismisses the nudge for this page.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateClosed {
		return
	}
	s.state = StateOpen
	s.nudgeDismissed = true
	s.seedWelcomeLocked()
}

// Close hides the window and discards all conversation state. Any in-flight
// send becomes stale.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateClosed
	s.engaged = false
	s.messages = nil
	s.suggestions = nil
	s.errorText = ""
	s.token++
}

// SetPage records a navigation to a new page path. The nudge dismissal is
// scoped to a page, so it resets. If the visitor has not engaged yet, the
// welcome greeting is reseeded for the new context.
func (s *Session) SetPage(page string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page == s.page {
		return
	}
	s.page = page
	s.pageShownAt = s.now()
	s.nudgeDismissed = false
	if s.state == StateOpen && !s.engaged {
		s.seedWelcomeLocked()
	}
}

// Submit appends the visitor's message optimistically and starts a send.
// Only one send may be in flight at a time.
func (s *Session) Submit(content string) (SendToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateClosed:
		return 0, ErrNotOpen
	case StateSending:
		return 0, ErrSendInFlight
	}
	if content == "" {
		return 0, ErrEmptyMessage
	}

	s.messages = append(s.messages, TranscriptMessage{Role: "user", Content: content})
	s.suggestions = nil
	s.errorText = ""
	s.engaged = true
	s.state = StateSending
	s.token++
	s.earliestReveal = s.now().Add(minThinking)
	return s.token, nil
}

// Resolve delivers the assistant reply for the send identified by token.
// It returns how long the caller should still keep the thinking indicator
// visible; the floor is additive only, a slower response waits zero extra.
// Stale tokens (a closed or superseded session) are no-ops.
func (s *Session) Resolve(token SendToken, reply string, suggestions []string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSending || token != s.token {
		return 0
	}
	s.messages = append(s.messages, TranscriptMessage{Role: "assistant", Content: reply})
	s.suggestions = suggestions
	s.state = StateOpen
	return s.revealDelayLocked()
}

// Fail marks the in-flight send as failed, surfacing an inline apology.
// Stale tokens are no-ops.
func (s *Session) Fail(token SendToken, errorText string) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSending || token != s.token {
		return 0
	}
	s.errorText = errorText
	s.suggestions = nil
	s.state = StateOpen
	return s.revealDelayLocked()
}

func (s *Session) revealDelayLocked() time.Duration {
	remaining := s.earliestReveal.Sub(s.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s *Session) seedWelcomeLocked() {
	welcome := chatbot.Welcome(s.page)
	s.messages = []TranscriptMessage{{Role: "assistant", Content: welcome.Content}}
	s.suggestions = welcome.Suggestions
	s.errorText = ""
}

// NudgeVisible reports whether the proactive prompt should be showing.
// The nudge only appears while the window is closed, after the delay on a
// page where it has not been dismissed.
func (s *Session) NudgeVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateClosed || s.nudgeDismissed {
		return false
	}
	return !s.now().Before(s.pageShownAt.Add(nudgeDelay))
}

// DismissNudge hides the nudge until the page context changes.
func (s *Session) DismissNudge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nudgeDismissed = true
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transcript returns a copy of the visible messages.
func (s *Session) Transcript() []TranscriptMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TranscriptMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Suggestions returns the current quick-reply chips.
func (s *Session) Suggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// ErrorText returns the inline error slot, empty when there is none.
func (s *Session) ErrorText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorText
}
