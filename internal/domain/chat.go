package domain

import "time"

// InterviewPhase is the client-visible phase of the interview flow.
type InterviewPhase string

const (
	PhaseStructured  InterviewPhase = "structured"
	PhaseChat        InterviewPhase = "chat"
	PhasePostContact InterviewPhase = "post_contact"
	PhaseComplete    InterviewPhase = "complete"
)

// Session represents a persisted chat session
type Session struct {
	ID           string    `json:"id"`
	IPHash       string    `json:"ip_hash"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Message represents a chat message
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // user, assistant, system
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// InterviewAnswers maps question ids to the selected option value.
type InterviewAnswers map[string]string

// Merge copies all entries from other into a, last write wins per key.
func (a InterviewAnswers) Merge(other InterviewAnswers) {
	for k, v := range other {
		a[k] = v
	}
}

// Clone returns an independent copy of the answer map.
func (a InterviewAnswers) Clone() InterviewAnswers {
	out := make(InterviewAnswers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// StructuredAnswer is a single multiple-choice selection
type StructuredAnswer struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// ChatRequest is the request to the chat endpoint. The phase discriminates
// which of the optional fields are meaningful.
type ChatRequest struct {
	Message          string            `json:"message,omitempty"`
	SessionID        string            `json:"sessionId,omitempty"`
	Phase            InterviewPhase    `json:"phase"`
	StructuredAnswer *StructuredAnswer `json:"structuredAnswer,omitempty"`
	InterviewAnswers InterviewAnswers  `json:"interviewAnswers,omitempty"`
}

// ChatResponse is the response from the chat endpoint
type ChatResponse struct {
	Message       string         `json:"message,omitempty"`
	SessionID     string         `json:"sessionId"`
	LeadExtracted bool           `json:"leadExtracted,omitempty"`
	LeadScore     *int           `json:"leadScore,omitempty"`
	LeadTier      LeadTier       `json:"leadTier,omitempty"`
	NextPhase     InterviewPhase `json:"nextPhase,omitempty"`
	Error         string         `json:"error,omitempty"`
}
