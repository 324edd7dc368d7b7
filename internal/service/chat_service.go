package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vibes-run/leadchat/internal/domain"
	"github.com/vibes-run/leadchat/internal/interview"
	"github.com/vibes-run/leadchat/internal/lead"
	"github.com/vibes-run/leadchat/internal/llm"
	"github.com/vibes-run/leadchat/internal/repository"
	"go.uber.org/zap"
)

// rateLimitMessage is the soft redirect returned when a session exhausts its
// message budget. Not an error: the response is a normal 200.
const rateLimitMessage = "Thanks for your interest! You've reached the message limit. " +
	"Please email us at hello@vibes.run to continue the conversation."

// Completer produces an assistant reply for a conversation turn
type Completer interface {
	Complete(ctx context.Context, history []*domain.Message, newMessage string, answers domain.InterviewAnswers) (string, error)
}

// LeadExtractor pulls structured lead fields from a transcript
type LeadExtractor interface {
	Extract(ctx context.Context, history []*domain.Message) (domain.ExtractedLead, error)
}

// Notifier dispatches the new-lead notification
type Notifier interface {
	NotifyTeam(extracted domain.ExtractedLead, prdDraft string, answers domain.InterviewAnswers, score int, tier domain.LeadTier) error
}

// ChatService is the conversation gateway. It routes a chat request to the
// structured-answer path (no completion call) or the free-form chat path, and
// runs the lead-completion chain when the model signals it is done.
type ChatService struct {
	sessionRepo *repository.SessionRepository
	leadRepo    *repository.LeadRepository
	completer   Completer
	extractor   LeadExtractor
	notifier    Notifier
	answers     *AnswerCache
	logger      *zap.Logger

	maxMessages int
	ipSalt      string
}

// NewChatService creates the conversation gateway. notifier may be nil when
// notifications are not configured.
func NewChatService(
	sessionRepo *repository.SessionRepository,
	leadRepo *repository.LeadRepository,
	completer Completer,
	extractor LeadExtractor,
	notifier Notifier,
	answers *AnswerCache,
	logger *zap.Logger,
	maxMessages int,
	ipSalt string,
) *ChatService {
	return &ChatService{
		sessionRepo: sessionRepo,
		leadRepo:    leadRepo,
		completer:   completer,
		extractor:   extractor,
		notifier:    notifier,
		answers:     answers,
		logger:      logger,
		maxMessages: maxMessages,
		ipSalt:      ipSalt,
	}
}

// Chat handles one inbound chat request
func (s *ChatService) Chat(ctx context.Context, clientIP string, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	session, err := s.sessionRepo.GetOrCreate(req.SessionID, HashIP(clientIP, s.ipSalt))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	s.answers.Merge(session.ID, req.InterviewAnswers)

	// Structured answers never touch the completion API and persist no
	// chat message.
	if req.StructuredAnswer != nil &&
		(req.Phase == domain.PhaseStructured || req.Phase == domain.PhasePostContact) {
		return s.recordStructuredAnswer(session.ID, req)
	}

	return s.chatTurn(ctx, session, req)
}

func (s *ChatService) recordStructuredAnswer(sessionID string, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	s.answers.Set(sessionID, req.StructuredAnswer.QuestionID, req.StructuredAnswer.Answer)

	resp := &domain.ChatResponse{SessionID: sessionID}

	if req.Phase == domain.PhasePostContact {
		// The budget answer arrives after extraction, so score
		// synchronously and refresh the stored lead's scoring columns.
		answers := s.answers.Get(sessionID)
		score := interview.Score(answers)
		tier := interview.Tier(score)

		if err := s.leadRepo.UpdateScoring(sessionID, answers, score, tier); err != nil {
			s.logger.Warn("failed to update lead scoring",
				zap.String("session_id", sessionID), zap.Error(err))
		}

		resp.LeadScore = &score
		resp.LeadTier = tier
		resp.NextPhase = domain.PhaseComplete
	}

	return resp, nil
}

func (s *ChatService) chatTurn(ctx context.Context, session *domain.Session, req *domain.ChatRequest) (*domain.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, fmt.Errorf("message is required: %w", domain.ErrInvalidRequest)
	}

	// Rate limit before persisting anything or spending a completion call.
	if limit := CheckRateLimit(session.MessageCount, s.maxMessages); !limit.Allowed {
		return &domain.ChatResponse{
			Error:     "Message limit reached for this session",
			Message:   rateLimitMessage,
			SessionID: session.ID,
		}, nil
	}

	if err := s.sessionRepo.SaveMessage(session.ID, "user", message); err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}
	if _, err := s.sessionRepo.IncrementMessageCount(session.ID); err != nil {
		return nil, fmt.Errorf("failed to increment message count: %w", err)
	}

	history, err := s.sessionRepo.GetHistory(session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	answers := s.answers.Get(session.ID)

	reply, err := s.completer.Complete(ctx, history, message, answers)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.SaveMessage(session.ID, "assistant", reply); err != nil {
		return nil, fmt.Errorf("failed to save assistant message: %w", err)
	}

	resp := &domain.ChatResponse{
		Message:   llm.StripCompletionMarker(reply),
		SessionID: session.ID,
	}

	if llm.SignalsCompletion(reply) {
		// A failure anywhere in the completion chain must never fail the
		// user-visible chat turn.
		if err := s.completeLead(ctx, session.ID, answers); err != nil {
			s.logger.Error("lead completion chain failed",
				zap.String("session_id", session.ID), zap.Error(err))
		} else {
			resp.LeadExtracted = true
			resp.NextPhase = domain.PhasePostContact
		}
	}

	return resp, nil
}

// completeLead runs extraction, scoring, PRD generation, persistence and
// notification for a finished conversation.
func (s *ChatService) completeLead(ctx context.Context, sessionID string, answers domain.InterviewAnswers) error {
	history, err := s.sessionRepo.GetHistory(sessionID)
	if err != nil {
		return fmt.Errorf("failed to load transcript: %w", err)
	}

	extracted, err := s.extractor.Extract(ctx, history)
	if err != nil {
		return err
	}

	score := interview.Score(answers)
	tier := interview.Tier(score)
	prdDraft := lead.GeneratePRD(extracted, time.Now())

	if err := s.leadRepo.Upsert(&domain.Lead{
		SessionID:        sessionID,
		Extracted:        extracted,
		PRDDraft:         prdDraft,
		InterviewAnswers: answers,
		LeadScore:        score,
		LeadTier:         tier,
	}); err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyTeam(extracted, prdDraft, answers, score, tier); err != nil {
			return err
		}
	}

	return nil
}
