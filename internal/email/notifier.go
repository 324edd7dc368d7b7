// Package email formats and dispatches lead notification emails
package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"
	"github.com/vibes-run/leadchat/internal/config"
	"github.com/vibes-run/leadchat/internal/domain"
)

// Notifier sends lead notifications via the Resend API
type Notifier struct {
	resend    *resend.Client
	to        string
	fromEmail string
	fromName  string
}

// NewNotifier creates a notifier from configuration. Returns nil when no API
// key or destination is configured; the caller treats a nil notifier as
// notifications disabled.
func NewNotifier(cfg config.EmailConfig) *Notifier {
	if cfg.ResendAPIKey == "" || cfg.NotificationEmail == "" {
		return nil
	}
	return &Notifier{
		resend:    resend.NewClient(cfg.ResendAPIKey),
		to:        cfg.NotificationEmail,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func truncate(text string, maxLength int) string {
	if len(text) > maxLength {
		return text[:maxLength] + "..."
	}
	return text
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NotifyTeam sends the new-lead email. A delivery failure is returned to the
// caller; the gateway decides whether to swallow it.
func (n *Notifier) NotifyTeam(extracted domain.ExtractedLead, prdDraft string, answers domain.InterviewAnswers, score int, tier domain.LeadTier) error {
	sender := deref(extracted.Company)
	if sender == "" {
		sender = deref(extracted.Name)
	}
	if sender == "" {
		sender = "Unknown"
	}

	summary := truncate(deref(extracted.ProjectSummary), 50)
	if summary == "" {
		summary = "New inquiry"
	}

	subject := fmt.Sprintf("%s New Lead: %s — %s", tierEmoji[tier], sender, summary)

	request := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", n.fromName, n.fromEmail),
		To:      []string{n.to},
		Subject: subject,
		Html:    FormatLeadEmail(extracted, prdDraft, answers, score, tier),
	}

	if _, err := n.resend.Emails.Send(request); err != nil {
		return fmt.Errorf("failed to send lead notification: %w", err)
	}

	return nil
}
