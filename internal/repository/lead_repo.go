package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/vibes-run/leadchat/internal/domain"
)

// LeadRepository handles lead persistence
type LeadRepository struct {
	db *DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// interview question ids stored as dedicated lead columns
var interviewColumns = []string{
	"intent", "role", "ai_maturity", "working_style",
	"timeline", "company_size", "industry", "budget_range",
}

func answerOrNil(answers domain.InterviewAnswers, key string) any {
	if v, ok := answers[key]; ok && v != "" {
		return v
	}
	return nil
}

// Upsert inserts the lead for a session, or replaces its fields when
// extraction runs more than once for the same session.
func (r *LeadRepository) Upsert(lead *domain.Lead) error {
	answersJSON, err := json.Marshal(lead.InterviewAnswers)
	if err != nil {
		return err
	}

	args := []any{
		lead.SessionID,
		lead.Extracted.Name,
		lead.Extracted.Email,
		lead.Extracted.Company,
		lead.Extracted.ProjectSummary,
		lead.Extracted.Problem,
		lead.Extracted.Vision,
		lead.Extracted.Users,
		lead.Extracted.Capabilities,
		lead.Extracted.Constraints,
		lead.PRDDraft,
	}
	for _, col := range interviewColumns {
		args = append(args, answerOrNil(lead.InterviewAnswers, col))
	}
	args = append(args, lead.LeadScore, string(lead.LeadTier), string(answersJSON))

	_, err = r.db.Exec(`
		INSERT INTO leads (session_id, name, email, company, project_summary,
			problem, vision, users, capabilities, constraints, prd_draft,
			intent, role, ai_maturity, working_style, timeline, company_size,
			industry, budget_range, lead_score, lead_tier, interview_answers)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			company = excluded.company,
			project_summary = excluded.project_summary,
			problem = excluded.problem,
			vision = excluded.vision,
			users = excluded.users,
			capabilities = excluded.capabilities,
			constraints = excluded.constraints,
			prd_draft = excluded.prd_draft,
			intent = excluded.intent,
			role = excluded.role,
			ai_maturity = excluded.ai_maturity,
			working_style = excluded.working_style,
			timeline = excluded.timeline,
			company_size = excluded.company_size,
			industry = excluded.industry,
			budget_range = excluded.budget_range,
			lead_score = excluded.lead_score,
			lead_tier = excluded.lead_tier,
			interview_answers = excluded.interview_answers
	`, args...)

	return err
}

// UpdateScoring refreshes the interview answer columns and the score/tier of
// an existing lead. Used when the budget answer arrives after extraction.
func (r *LeadRepository) UpdateScoring(sessionID string, answers domain.InterviewAnswers, score int, tier domain.LeadTier) error {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return err
	}

	args := []any{}
	for _, col := range interviewColumns {
		args = append(args, answerOrNil(answers, col))
	}
	args = append(args, score, string(tier), string(answersJSON), sessionID)

	_, err = r.db.Exec(`
		UPDATE leads SET
			intent = ?, role = ?, ai_maturity = ?, working_style = ?,
			timeline = ?, company_size = ?, industry = ?, budget_range = ?,
			lead_score = ?, lead_tier = ?, interview_answers = ?
		WHERE session_id = ?
	`, args...)

	return err
}

// GetBySession retrieves the lead captured for a session, or nil
func (r *LeadRepository) GetBySession(sessionID string) (*domain.Lead, error) {
	lead := &domain.Lead{SessionID: sessionID}
	var prdDraft, tier, answersJSON sql.NullString
	var score sql.NullInt64

	err := r.db.QueryRow(`
		SELECT name, email, company, project_summary, problem, vision, users,
			capabilities, constraints, prd_draft, lead_score, lead_tier,
			interview_answers, created_at
		FROM leads WHERE session_id = ?
	`, sessionID).Scan(&lead.Extracted.Name, &lead.Extracted.Email,
		&lead.Extracted.Company, &lead.Extracted.ProjectSummary,
		&lead.Extracted.Problem, &lead.Extracted.Vision, &lead.Extracted.Users,
		&lead.Extracted.Capabilities, &lead.Extracted.Constraints,
		&prdDraft, &score, &tier, &answersJSON, &lead.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lead.PRDDraft = prdDraft.String
	lead.LeadScore = int(score.Int64)
	lead.LeadTier = domain.LeadTier(tier.String)
	if answersJSON.Valid && answersJSON.String != "" {
		json.Unmarshal([]byte(answersJSON.String), &lead.InterviewAnswers)
	}

	return lead, nil
}
