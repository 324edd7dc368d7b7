package interview

import (
	"testing"

	"github.com/vibes-run/leadchat/internal/domain"
)

func TestScoreEmptyAnswers(t *testing.T) {
	if got := Score(domain.InterviewAnswers{}); got != 0 {
		t.Errorf("Score(empty) = %d, want 0", got)
	}
	if got := Score(nil); got != 0 {
		t.Errorf("Score(nil) = %d, want 0", got)
	}
}

func TestScoreTimeline(t *testing.T) {
	cases := map[string]int{"asap": 3, "quarter": 2, "year": 1, "exploring": 0}
	for value, want := range cases {
		if got := Score(domain.InterviewAnswers{"timeline": value}); got != want {
			t.Errorf("timeline=%s: score = %d, want %d", value, got, want)
		}
	}
}

func TestScoreBudget(t *testing.T) {
	cases := map[string]int{
		"500k_plus": 3, "150k_500k": 2, "50k_150k": 1, "under_50k": 0, "unsure": 0,
	}
	for value, want := range cases {
		if got := Score(domain.InterviewAnswers{"budget_range": value}); got != want {
			t.Errorf("budget_range=%s: score = %d, want %d", value, got, want)
		}
	}
}

func TestScoreIntent(t *testing.T) {
	cases := map[string]int{
		"specific_project": 3, "existing_system": 2, "upskill": 1, "exploring": 0,
	}
	for value, want := range cases {
		if got := Score(domain.InterviewAnswers{"intent": value}); got != want {
			t.Errorf("intent=%s: score = %d, want %d", value, got, want)
		}
	}
}

func TestScoreAIMaturity(t *testing.T) {
	cases := map[string]int{"committed": 2, "going_steady": 1, "first_date": 0}
	for value, want := range cases {
		if got := Score(domain.InterviewAnswers{"ai_maturity": value}); got != want {
			t.Errorf("ai_maturity=%s: score = %d, want %d", value, got, want)
		}
	}
}

func TestScoreCompanySize(t *testing.T) {
	cases := map[string]int{"enterprise": 2, "midmarket": 1, "growth": 0, "startup": 0}
	for value, want := range cases {
		if got := Score(domain.InterviewAnswers{"company_size": value}); got != want {
			t.Errorf("company_size=%s: score = %d, want %d", value, got, want)
		}
	}
}

func TestScoreCombined(t *testing.T) {
	hot := domain.InterviewAnswers{
		"timeline":     "asap",
		"budget_range": "500k_plus",
		"intent":       "specific_project",
		"ai_maturity":  "committed",
		"company_size": "enterprise",
	}
	if got := Score(hot); got != MaxScore {
		t.Errorf("Score(hot) = %d, want %d", got, MaxScore)
	}
}

func TestScoreUnrecognizedValues(t *testing.T) {
	junk := domain.InterviewAnswers{
		"timeline":     "yesterday",
		"budget_range": "infinite",
		"intent":       "",
		"unknown_key":  "whatever",
	}
	if got := Score(junk); got != 0 {
		t.Errorf("Score(junk) = %d, want 0", got)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	// Every combination of recognized values must land in [0, MaxScore].
	for _, q := range Questions {
		for _, opt := range q.Options {
			got := Score(domain.InterviewAnswers{q.ID: opt.Value})
			if got < 0 || got > MaxScore {
				t.Errorf("Score(%s=%s) = %d, out of range", q.ID, opt.Value, got)
			}
		}
	}
}

func TestTier(t *testing.T) {
	cases := []struct {
		score int
		want  domain.LeadTier
	}{
		{13, domain.TierHot},
		{12, domain.TierHot},
		{11, domain.TierWarm},
		{8, domain.TierWarm},
		{7, domain.TierCool},
		{4, domain.TierCool},
		{3, domain.TierCold},
		{0, domain.TierCold},
	}
	for _, tc := range cases {
		if got := Tier(tc.score); got != tc.want {
			t.Errorf("Tier(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
