package domain

import "time"

// LeadTier is the coarse qualification bucket derived from the lead score.
type LeadTier string

const (
	TierHot  LeadTier = "hot"
	TierWarm LeadTier = "warm"
	TierCool LeadTier = "cool"
	TierCold LeadTier = "cold"
)

// ExtractedLead holds the structured fields pulled out of a completed
// conversation. Every field is nullable; the extraction degrades to an
// all-null record rather than failing.
type ExtractedLead struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Company        *string `json:"company"`
	ProjectSummary *string `json:"projectSummary"`
	Problem        *string `json:"problem"`
	Vision         *string `json:"vision"`
	Users          *string `json:"users"`
	Capabilities   *string `json:"capabilities"`
	Constraints    *string `json:"constraints"`
}

// Lead is the persisted lead row, upserted once per session
type Lead struct {
	SessionID        string           `json:"session_id"`
	Extracted        ExtractedLead    `json:"extracted"`
	PRDDraft         string           `json:"prd_draft"`
	InterviewAnswers InterviewAnswers `json:"interview_answers"`
	LeadScore        int              `json:"lead_score"`
	LeadTier         LeadTier         `json:"lead_tier"`
	CreatedAt        time.Time        `json:"created_at"`
}
