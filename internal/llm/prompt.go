package llm

import (
	"fmt"
	"strings"

	"github.com/vibes-run/leadchat/internal/domain"
)

var intentContext = map[string]string{
	"specific_project": "They have a specific AI project in mind.",
	"exploring":        "They're exploring what's possible with AI.",
	"existing_system":  "They need help with an existing AI system.",
	"upskill":          "They want to upskill their team on AI.",
}

var roleContext = map[string]string{
	"technical": "They have a technical background (CTO, VP Eng, or developer).",
	"business":  "They focus on the business side (CEO, COO, or strategy).",
	"ai_lead":   "They lead AI or innovation initiatives.",
	"founder":   "They're a founder building something new.",
}

var maturityContext = map[string]string{
	"first_date":   "Their team is new to AI — they're curious but cautious.",
	"going_steady": "Their team has some AI experiments working.",
	"committed":    "AI is core to their strategy — they are committed.",
}

var workingStyleContext = map[string]string{
	"full_ownership":     "They prefer partners who take full ownership.",
	"embedded":           "They want close collaboration with embedded partnership.",
	"knowledge_transfer": "They prioritize knowledge transfer — teach them to fish.",
}

var timelineContext = map[string]string{
	"asap":      "They want to move ASAP (within weeks).",
	"quarter":   "Their timeline is this quarter.",
	"year":      "Their timeline is this year.",
	"exploring": "They're just exploring for now.",
}

var companySizeContext = map[string]string{
	"startup":    "They're a startup (1-20 people).",
	"growth":     "They're a growth-stage company (21-100 people).",
	"midmarket":  "They're a mid-market company (101-1000 people).",
	"enterprise": "They're an enterprise (1000+ people).",
}

var industryNames = map[string]string{
	"fintech":               "fintech",
	"ecommerce":             "e-commerce",
	"saas":                  "SaaS",
	"professional_services": "professional services",
	"healthcare":            "healthcare",
	"other":                 "another industry",
}

// BuildInterviewContext paraphrases the structured answers into natural
// language for the system prompt. Unknown values are skipped.
func BuildInterviewContext(answers domain.InterviewAnswers) string {
	var parts []string

	if s, ok := intentContext[answers["intent"]]; ok {
		parts = append(parts, s)
	}
	if s, ok := roleContext[answers["role"]]; ok {
		parts = append(parts, s)
	}
	if s, ok := maturityContext[answers["ai_maturity"]]; ok {
		parts = append(parts, s)
	}
	if s, ok := workingStyleContext[answers["working_style"]]; ok {
		parts = append(parts, s)
	}
	if s, ok := timelineContext[answers["timeline"]]; ok {
		parts = append(parts, s)
	}
	if s, ok := companySizeContext[answers["company_size"]]; ok {
		parts = append(parts, s)
	}
	if industry := answers["industry"]; industry != "" {
		name, ok := industryNames[industry]
		if !ok {
			name = industry
		}
		parts = append(parts, fmt.Sprintf("They work in %s.", name))
	}

	return strings.Join(parts, " ")
}

// BuildSystemPrompt assembles the conversation system prompt, optionally
// personalized with the interview-derived context.
func BuildSystemPrompt(answers domain.InterviewAnswers) string {
	contextSection := ""
	if interviewContext := BuildInterviewContext(answers); interviewContext != "" {
		contextSection = fmt.Sprintf(`
## What You Know About Them
%s

Use this context to personalize your questions and show you've been listening.
`, interviewContext)
	}

	return fmt.Sprintf(`You are a friendly, professional assistant for Vibes, an AI agent development studio. Your goal is to have a natural conversation that helps understand what the visitor is looking to build.

%s
## Your Objectives
1. Understand their project and business needs
2. Extract enough information to create a mini-PRD
3. Collect their contact information to follow up

## Information to Gather (naturally, not as a checklist)
- **Problem/Opportunity**: What challenge are they facing? What's the current pain?
- **Vision**: What does success look like? What would an ideal solution do?
- **Users**: Who will use this? What are their needs?
- **Key Capabilities**: What must it do? What's nice-to-have?
- **Contact**: Name, company, email

## Conversation Style
- Be warm and conversational, not robotic
- Ask follow-up questions that show you're listening
- Reference what you know about them from the interview
- Share brief, relevant insights when appropriate
- Keep responses concise (2-4 sentences typically)
- Don't ask multiple questions at once

## When You Have Enough Information
When you feel you have a good understanding of their needs AND have their contact info, summarize what you've learned and let them know the team will be in touch. Use the phrase "%s" somewhere in your response (this triggers our system to extract the data).

## Important
- Never make up information about Vibes' capabilities or past work
- If asked about pricing, say you'll connect them with the team who can discuss specifics
- If they seem unsure, help them articulate their needs through questions`, contextSection, completionSentinel)
}
