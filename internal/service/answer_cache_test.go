package service

import (
	"testing"
	"time"

	"github.com/vibes-run/leadchat/internal/domain"
)

func TestAnswerCacheMergeLastWriteWins(t *testing.T) {
	cache := NewAnswerCache(time.Hour)

	cache.Merge("s1", domain.InterviewAnswers{"intent": "exploring", "role": "founder"})
	cache.Merge("s1", domain.InterviewAnswers{"intent": "specific_project"})

	got := cache.Get("s1")
	if got["intent"] != "specific_project" {
		t.Errorf("intent = %q, want last write", got["intent"])
	}
	if got["role"] != "founder" {
		t.Errorf("role = %q, earlier keys must survive", got["role"])
	}
}

func TestAnswerCacheSetSingleAnswer(t *testing.T) {
	cache := NewAnswerCache(time.Hour)

	cache.Set("s1", "budget_range", "500k_plus")

	if got := cache.Get("s1")["budget_range"]; got != "500k_plus" {
		t.Errorf("budget_range = %q", got)
	}
}

func TestAnswerCacheGetReturnsCopy(t *testing.T) {
	cache := NewAnswerCache(time.Hour)
	cache.Set("s1", "intent", "upskill")

	got := cache.Get("s1")
	got["intent"] = "mutated"

	if cache.Get("s1")["intent"] != "upskill" {
		t.Error("mutating the returned map must not affect the cache")
	}
}

func TestAnswerCacheUnknownSessionIsEmpty(t *testing.T) {
	cache := NewAnswerCache(time.Hour)
	if got := cache.Get("nope"); len(got) != 0 {
		t.Errorf("answers = %v, want empty", got)
	}
}

func TestAnswerCacheExpiry(t *testing.T) {
	cache := NewAnswerCache(time.Hour)
	now := time.Now()
	cache.now = func() time.Time { return now }

	cache.Set("s1", "intent", "upskill")

	now = now.Add(2 * time.Hour)

	if got := cache.Get("s1"); len(got) != 0 {
		t.Errorf("answers = %v, want expired entry gone", got)
	}

	// A merge after expiry starts a fresh entry.
	cache.Merge("s1", domain.InterviewAnswers{"role": "technical"})
	got := cache.Get("s1")
	if got["intent"] != "" || got["role"] != "technical" {
		t.Errorf("answers = %v, want only the fresh entry", got)
	}
}
