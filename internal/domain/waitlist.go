package domain

// WaitlistEntry is a product waitlist signup
type WaitlistEntry struct {
	Email     string `json:"email"`
	Product   string `json:"product"`
	Referrer  string `json:"referrer,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

// WaitlistResult is the outcome of a waitlist submission
type WaitlistResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
