package interview

// QuestionOption is one selectable answer for a multiple-choice question
type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Question is a single multiple-choice interview question. Phase groups
// questions for presentation; every phase except post_contact belongs to the
// structured portion of the interview.
type Question struct {
	ID       string           `json:"id"`
	Question string           `json:"question"`
	Subtitle string           `json:"subtitle,omitempty"`
	Options  []QuestionOption `json:"options"`
	Phase    string           `json:"phase"` // opener, personality, qualification, post_contact
}

// Questions is the full ordered interview question set.
var Questions = []Question{
	// Opener
	{
		ID:       "intent",
		Question: "What brings you to Vibes today?",
		Subtitle: "We'll tailor the conversation to your needs",
		Phase:    "opener",
		Options: []QuestionOption{
			{Value: "specific_project", Label: "I have a specific AI project in mind", Icon: "🎯"},
			{Value: "exploring", Label: "I'm exploring what's possible with AI", Icon: "🔍"},
			{Value: "existing_system", Label: "I need help with an existing AI system", Icon: "🔧"},
			{Value: "upskill", Label: "I want to upskill my team", Icon: "🎓"},
		},
	},
	{
		ID:       "role",
		Question: "What's your perspective on this?",
		Phase:    "opener",
		Options: []QuestionOption{
			{Value: "technical", Label: "Technical (CTO, VP Eng, Developer)", Icon: "⚙️"},
			{Value: "business", Label: "Business (CEO, COO, Strategy)", Icon: "📊"},
			{Value: "ai_lead", Label: "AI/Innovation Lead", Icon: "🚀"},
			{Value: "founder", Label: "Founder building something new", Icon: "💡"},
		},
	},
	// Personality
	{
		ID:       "ai_maturity",
		Question: "Your team's relationship with AI is best described as...",
		Phase:    "personality",
		Options: []QuestionOption{
			{Value: "first_date", Label: "First date — curious but cautious", Icon: "🌱"},
			{Value: "going_steady", Label: "Going steady — some experiments working", Icon: "🔥"},
			{Value: "committed", Label: "Committed — AI is core to our strategy", Icon: "💍"},
		},
	},
	{
		ID:       "working_style",
		Question: "When you work with partners, you prefer...",
		Phase:    "personality",
		Options: []QuestionOption{
			{Value: "full_ownership", Label: "Give us the keys — full ownership", Icon: "🎯"},
			{Value: "embedded", Label: "Collaborate closely — embedded partnership", Icon: "🤝"},
			{Value: "knowledge_transfer", Label: "Teach us to fish — knowledge transfer focus", Icon: "🎓"},
		},
	},
	// Qualification
	{
		ID:       "timeline",
		Question: "When are you looking to move?",
		Phase:    "qualification",
		Options: []QuestionOption{
			{Value: "asap", Label: "ASAP (within weeks)", Icon: "🔥"},
			{Value: "quarter", Label: "This quarter", Icon: "📅"},
			{Value: "year", Label: "This year", Icon: "🗓️"},
			{Value: "exploring", Label: "Just exploring", Icon: "🔭"},
		},
	},
	{
		ID:       "company_size",
		Question: "How big is your organization?",
		Phase:    "qualification",
		Options: []QuestionOption{
			{Value: "startup", Label: "Startup (1-20)", Icon: "🚀"},
			{Value: "growth", Label: "Growth (21-100)", Icon: "📈"},
			{Value: "midmarket", Label: "Mid-market (101-1000)", Icon: "🏢"},
			{Value: "enterprise", Label: "Enterprise (1000+)", Icon: "🏛️"},
		},
	},
	{
		ID:       "industry",
		Question: "What space are you in?",
		Phase:    "qualification",
		Options: []QuestionOption{
			{Value: "fintech", Label: "Fintech", Icon: "💳"},
			{Value: "ecommerce", Label: "E-commerce", Icon: "🛒"},
			{Value: "saas", Label: "SaaS", Icon: "💻"},
			{Value: "professional_services", Label: "Professional Services", Icon: "👔"},
			{Value: "healthcare", Label: "Healthcare", Icon: "🏥"},
			{Value: "other", Label: "Other", Icon: "🎯"},
		},
	},
	// Post-contact
	{
		ID:       "budget_range",
		Question: "What's your budget range for this initiative?",
		Phase:    "post_contact",
		Options: []QuestionOption{
			{Value: "under_50k", Label: "Under $50k", Icon: "💰"},
			{Value: "50k_150k", Label: "$50k – $150k", Icon: "💰💰"},
			{Value: "150k_500k", Label: "$150k – $500k", Icon: "💰💰💰"},
			{Value: "500k_plus", Label: "$500k+", Icon: "💰💰💰💰"},
			{Value: "unsure", Label: "Not sure yet", Icon: "🤷"},
		},
	},
}

// QuestionByID returns the question with the given id, or nil
func QuestionByID(id string) *Question {
	for i := range Questions {
		if Questions[i].ID == id {
			return &Questions[i]
		}
	}
	return nil
}

// StructuredQuestions returns the questions asked before free-form chat
func StructuredQuestions() []Question {
	var out []Question
	for _, q := range Questions {
		if q.Phase != "post_contact" {
			out = append(out, q)
		}
	}
	return out
}

// PostContactQuestions returns the questions asked after contact collection.
// The flow assumes this set holds exactly one question (budget).
func PostContactQuestions() []Question {
	var out []Question
	for _, q := range Questions {
		if q.Phase == "post_contact" {
			out = append(out, q)
		}
	}
	return out
}

var responseStarters = map[string][]string{
	"problem": {
		"Our biggest challenge is...",
		"We've been struggling with...",
		"Our customers keep asking for...",
	},
	"vision": {
		"If this worked, we could...",
		"The dream scenario is...",
		"We'd measure success by...",
	},
	"users": {
		"Our internal team needs...",
		"Our customers want...",
		"Both internal and external...",
	},
}

// ResponseStarters returns suggested openers for a free-form prompt type
func ResponseStarters(promptType string) []string {
	return responseStarters[promptType]
}
