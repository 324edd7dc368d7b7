package service

import (
	"sync"
	"time"

	"github.com/vibes-run/leadchat/internal/domain"
)

// AnswerCache holds per-session interview answers for the lifetime of the
// process. It is a convenience cache, not a system of record: the client
// echoes the answers on every chat request, so losing an entry only degrades
// personalization. Entries expire after the TTL and are swept lazily.
type AnswerCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	answers domain.InterviewAnswers
	expires time.Time
}

// NewAnswerCache creates an answer cache with the given TTL
func NewAnswerCache(ttl time.Duration) *AnswerCache {
	return &AnswerCache{
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
		now:     time.Now,
	}
}

// Merge folds answers into a session's entry, last write wins per key
func (c *AnswerCache) Merge(sessionID string, answers domain.InterviewAnswers) {
	if len(answers) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweepLocked()

	entry := c.entryLocked(sessionID)
	entry.answers.Merge(answers)
	entry.expires = c.now().Add(c.ttl)
}

// Set records a single answer for a session
func (c *AnswerCache) Set(sessionID, questionID, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := c.entryLocked(sessionID)
	entry.answers[questionID] = value
	entry.expires = c.now().Add(c.ttl)
}

// Get returns a copy of a session's answers, or an empty map
func (c *AnswerCache) Get(sessionID string) domain.InterviewAnswers {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[sessionID]
	if !ok || c.now().After(entry.expires) {
		delete(c.entries, sessionID)
		return domain.InterviewAnswers{}
	}
	return entry.answers.Clone()
}

func (c *AnswerCache) entryLocked(sessionID string) *cacheEntry {
	entry, ok := c.entries[sessionID]
	if !ok || c.now().After(entry.expires) {
		entry = &cacheEntry{answers: domain.InterviewAnswers{}}
		c.entries[sessionID] = entry
	}
	return entry
}

func (c *AnswerCache) sweepLocked() {
	now := c.now()
	for id, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, id)
		}
	}
}
