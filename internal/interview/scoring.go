package interview

import "github.com/vibes-run/leadchat/internal/domain"

// MaxScore is the highest achievable lead score.
const MaxScore = 13

var scoreTable = map[string]map[string]int{
	"timeline": {
		"asap":    3,
		"quarter": 2,
		"year":    1,
	},
	"budget_range": {
		"500k_plus": 3,
		"150k_500k": 2,
		"50k_150k":  1,
	},
	"intent": {
		"specific_project": 3,
		"existing_system":  2,
		"upskill":          1,
	},
	"ai_maturity": {
		"committed":    2,
		"going_steady": 1,
	},
	"company_size": {
		"enterprise": 2,
		"midmarket":  1,
	},
}

// Score sums points over the scored interview dimensions. Absent or
// unrecognized values contribute 0, so any partial answer map is valid.
func Score(answers domain.InterviewAnswers) int {
	score := 0
	for dimension, points := range scoreTable {
		score += points[answers[dimension]]
	}
	return score
}

// Tier maps a score onto the hot/warm/cool/cold qualification buckets
func Tier(score int) domain.LeadTier {
	switch {
	case score >= 12:
		return domain.TierHot
	case score >= 8:
		return domain.TierWarm
	case score >= 4:
		return domain.TierCool
	default:
		return domain.TierCold
	}
}
