package chat

import "github.com/grievance-labs/complaintbot/internal/domain"

// State identifies where a session is in the complaint-filing dialogue.
type State int

const (
	// StateIdle means no filing dialogue is in progress.
	StateIdle State = iota
	// StateCollectingName waits for the filer's name.
	StateCollectingName
	// StateCollectingPhone waits for the filer's phone number.
	StateCollectingPhone
	// StateCollectingEmail waits for the filer's email address.
	StateCollectingEmail
	// StateCollectingDetails waits for the complaint description.
	StateCollectingDetails
)

// Turn is one (role, text) entry in the session transcript.
type Turn struct {
	Role string
	Text string
}

// Session is the per-client conversation state. It is not persisted and is
// discarded when the client disconnects. History is append-only and used only
// for display; the classifier never consults it.
type Session struct {
	History []Turn
	State   State
	Draft   domain.CreateComplaintRequest
}

// NewSession creates an idle session.
func NewSession() *Session {
	return &Session{State: StateIdle}
}

func (s *Session) append(role, text string) {
	s.History = append(s.History, Turn{Role: role, Text: text})
}

// resetDraft clears the pending filing together with the state flag.
func (s *Session) resetDraft() {
	s.Draft = domain.CreateComplaintRequest{}
	s.State = StateIdle
}
