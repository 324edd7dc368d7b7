package interview

import (
	"fmt"

	"github.com/vibes-run/leadchat/internal/domain"
)

// TranscriptMessage is a synthetic display message appended by the engine as
// it walks the interview, separate from the raw answer map.
type TranscriptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const chatTransitionMessage = "Great to connect! Based on what you've shared, " +
	"I'd love to learn more about what you're looking to build. " +
	"What's the main challenge you're trying to solve?"

const completeMessage = "That's everything we need for now — the team will review " +
	"your project and be in touch shortly."

// Engine walks the interview flow: the fixed structured question sequence,
// then free-form chat, then the single post-contact question, then done.
// Phases only ever move forward.
type Engine struct {
	phase            domain.InterviewPhase
	cursor           int
	answers          domain.InterviewAnswers
	contactCollected bool
	transcript       []TranscriptMessage

	structured  []Question
	postContact []Question
}

// NewEngine creates an engine positioned at the first structured question
func NewEngine() *Engine {
	e := &Engine{
		phase:       domain.PhaseStructured,
		answers:     domain.InterviewAnswers{},
		structured:  StructuredQuestions(),
		postContact: PostContactQuestions(),
	}
	if len(e.structured) > 0 {
		e.appendQuestion(e.structured[0])
	}
	return e
}

// Phase returns the current interview phase
func (e *Engine) Phase() domain.InterviewPhase { return e.phase }

// CurrentQuestionIndex returns the structured-phase cursor
func (e *Engine) CurrentQuestionIndex() int { return e.cursor }

// ContactCollected reports whether the backend confirmed contact collection
func (e *Engine) ContactCollected() bool { return e.contactCollected }

// Answers returns a copy of the accumulated answer map
func (e *Engine) Answers() domain.InterviewAnswers { return e.answers.Clone() }

// Transcript returns the synthetic display messages appended so far
func (e *Engine) Transcript() []TranscriptMessage { return e.transcript }

// CurrentQuestion returns the question awaiting an answer, or nil during
// chat and after completion.
func (e *Engine) CurrentQuestion() *Question {
	switch e.phase {
	case domain.PhaseStructured:
		if e.cursor < len(e.structured) {
			return &e.structured[e.cursor]
		}
	case domain.PhasePostContact:
		if len(e.postContact) > 0 {
			return &e.postContact[0]
		}
	}
	return nil
}

// Progress reports structured questions answered so far out of the total
func (e *Engine) Progress() (current, total int) {
	return e.cursor, len(e.structured)
}

// AnswerQuestion records an answer and advances the flow. In the structured
// phase the cursor moves to the next question, transitioning to chat when the
// list is exhausted. In post_contact only the single post-contact question id
// is accepted; answering it completes the interview.
func (e *Engine) AnswerQuestion(questionID, value string) error {
	switch e.phase {
	case domain.PhaseStructured:
		e.answers[questionID] = value
		e.cursor++
		if e.cursor >= len(e.structured) {
			e.phase = domain.PhaseChat
			e.append("assistant", chatTransitionMessage)
		} else {
			e.appendQuestion(e.structured[e.cursor])
		}
		return nil

	case domain.PhaseChat:
		// Answers in chat arrive indirectly (client echo); record only.
		e.answers[questionID] = value
		return nil

	case domain.PhasePostContact:
		if len(e.postContact) == 0 || questionID != e.postContact[0].ID {
			return fmt.Errorf("unexpected question %q in post_contact phase: %w",
				questionID, domain.ErrInvalidRequest)
		}
		e.answers[questionID] = value
		e.phase = domain.PhaseComplete
		e.append("assistant", completeMessage)
		return nil

	default:
		return fmt.Errorf("interview already complete: %w", domain.ErrInvalidRequest)
	}
}

// SetContactCollected marks that the conversation produced contact details.
// While in chat this surfaces the post-contact question.
func (e *Engine) SetContactCollected(collected bool) {
	e.contactCollected = collected
	if collected && e.phase == domain.PhaseChat {
		e.phase = domain.PhasePostContact
		if len(e.postContact) > 0 {
			e.appendQuestion(e.postContact[0])
		}
	}
}

func (e *Engine) append(role, content string) {
	e.transcript = append(e.transcript, TranscriptMessage{Role: role, Content: content})
}

func (e *Engine) appendQuestion(q Question) {
	e.append("assistant", q.Question)
}
