package email

import (
	"fmt"
	"strings"

	"github.com/vibes-run/leadchat/internal/domain"
)

// Human-readable labels substituted for raw enum values in the email.
var intentLabels = map[string]string{
	"specific_project": "Specific project in mind",
	"exploring":        "Exploring possibilities",
	"existing_system":  "Help with existing AI",
	"upskill":          "Team upskilling",
}

var roleLabels = map[string]string{
	"technical": "Technical (CTO/VP Eng/Dev)",
	"business":  "Business (CEO/COO/Strategy)",
	"ai_lead":   "AI/Innovation Lead",
	"founder":   "Founder",
}

var aiMaturityLabels = map[string]string{
	"first_date":   "First date — curious",
	"going_steady": "Going steady — experimenting",
	"committed":    "Committed — AI is core",
}

var workingStyleLabels = map[string]string{
	"full_ownership":     "Full ownership",
	"embedded":           "Embedded partnership",
	"knowledge_transfer": "Knowledge transfer",
}

var timelineLabels = map[string]string{
	"asap":      "ASAP (weeks)",
	"quarter":   "This quarter",
	"year":      "This year",
	"exploring": "Just exploring",
}

var companySizeLabels = map[string]string{
	"startup":    "Startup (1-20)",
	"growth":     "Growth (21-100)",
	"midmarket":  "Mid-market (101-1000)",
	"enterprise": "Enterprise (1000+)",
}

var industryLabels = map[string]string{
	"fintech":               "Fintech",
	"ecommerce":             "E-commerce",
	"saas":                  "SaaS",
	"professional_services": "Professional Services",
	"healthcare":            "Healthcare",
	"other":                 "Other",
}

var budgetLabels = map[string]string{
	"under_50k": "Under $50k",
	"50k_150k":  "$50k – $150k",
	"150k_500k": "$150k – $500k",
	"500k_plus": "$500k+",
	"unsure":    "Not sure yet",
}

var tierEmoji = map[domain.LeadTier]string{
	domain.TierHot:  "🔥",
	domain.TierWarm: "🌡️",
	domain.TierCool: "❄️",
	domain.TierCold: "🧊",
}

// interviewRows fixes the display order of the answer table.
var interviewRows = []struct {
	key    string
	label  string
	labels map[string]string
}{
	{"intent", "Intent", intentLabels},
	{"role", "Role", roleLabels},
	{"ai_maturity", "AI Maturity", aiMaturityLabels},
	{"working_style", "Working Style", workingStyleLabels},
	{"timeline", "Timeline", timelineLabels},
	{"company_size", "Company Size", companySizeLabels},
	{"industry", "Industry", industryLabels},
	{"budget_range", "Budget", budgetLabels},
}

func formatInterviewSection(answers domain.InterviewAnswers) string {
	var rows []string
	for _, row := range interviewRows {
		value, ok := answers[row.key]
		if !ok || value == "" {
			continue
		}
		label, ok := row.labels[value]
		if !ok {
			label = value
		}
		rows = append(rows, fmt.Sprintf(
			`<tr><td style="color:#64748b;padding:4px 8px;">%s</td><td style="padding:4px 8px;">%s</td></tr>`,
			row.label, label))
	}

	if len(rows) == 0 {
		return ""
	}

	return fmt.Sprintf(`
    <div class="section">
      <div class="label">Interview Profile</div>
      <table style="width:100%%;border-collapse:collapse;">
        %s
      </table>
    </div>
  `, strings.Join(rows, ""))
}

func contactBlock(extracted domain.ExtractedLead) string {
	name := "Name not provided"
	if v := deref(extracted.Name); v != "" {
		name = v
	}
	emailLine := "Email not provided"
	if v := deref(extracted.Email); v != "" {
		emailLine = fmt.Sprintf(`<a href="mailto:%s">%s</a>`, v, v)
	}
	company := "Company not provided"
	if v := deref(extracted.Company); v != "" {
		company = v
	}
	return fmt.Sprintf("<strong>%s</strong><br>%s<br>%s", name, emailLine, company)
}

// FormatLeadEmail renders the inline-styled notification HTML
func FormatLeadEmail(extracted domain.ExtractedLead, prdDraft string, answers domain.InterviewAnswers, score int, tier domain.LeadTier) string {
	scoreSection := ""
	if tier != "" {
		tierLabel := strings.ToUpper(string(tier)[:1]) + string(tier)[1:]
		scoreSection = fmt.Sprintf(`<div style="background:#f0fdf4;border:1px solid #22c55e;padding:12px;border-radius:8px;margin-bottom:20px;">
        <strong>%s %s Lead</strong> (Score: %d/13)
      </div>`, tierEmoji[tier], tierLabel, score)
	}

	summary := deref(extracted.ProjectSummary)
	if summary == "" {
		summary = "Not captured"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #0f172a; color: white; padding: 20px; border-radius: 8px 8px 0 0; }
    .content { background: #f8fafc; padding: 20px; border: 1px solid #e2e8f0; }
    .section { margin-bottom: 20px; }
    .label { font-weight: 600; color: #64748b; font-size: 12px; text-transform: uppercase; margin-bottom: 8px; }
    .value { font-size: 16px; margin-top: 4px; }
    .prd { background: white; padding: 16px; border-radius: 8px; border: 1px solid #e2e8f0; white-space: pre-wrap; font-family: monospace; font-size: 13px; }
    .footer { padding: 20px; text-align: center; color: #64748b; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1 style="margin: 0; font-size: 20px;">New Lead from Vibes Chat</h1>
    </div>
    <div class="content">
      %s

      <div class="section">
        <div class="label">Contact</div>
        <div class="value">
          %s
        </div>
      </div>

      %s

      <div class="section">
        <div class="label">Project Summary</div>
        <div class="value">%s</div>
      </div>

      <div class="section">
        <div class="label">Generated PRD Draft</div>
        <div class="prd">%s</div>
      </div>
    </div>
    <div class="footer">
      This lead was captured via the Vibes website chat.
    </div>
  </div>
</body>
</html>
`, scoreSection, contactBlock(extracted), formatInterviewSection(answers), summary,
		strings.ReplaceAll(prdDraft, "\n", "<br>"))
}
