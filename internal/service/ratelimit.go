package service

// RateLimitResult reports whether another user message may be accepted
type RateLimitResult struct {
	Allowed   bool
	Remaining int
}

// CheckRateLimit is a pure function of the session's current message count
// and the configured maximum.
func CheckRateLimit(messageCount, maxMessages int) RateLimitResult {
	remaining := maxMessages - messageCount
	if remaining < 0 {
		remaining = 0
	}
	return RateLimitResult{
		Allowed:   messageCount < maxMessages,
		Remaining: remaining,
	}
}
