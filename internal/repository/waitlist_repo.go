package repository

import (
	"time"

	"github.com/vibes-run/leadchat/internal/domain"
)

// WaitlistRepository handles waitlist persistence
type WaitlistRepository struct {
	db *DB
}

// NewWaitlistRepository creates a new waitlist repository
func NewWaitlistRepository(db *DB) *WaitlistRepository {
	return &WaitlistRepository{db: db}
}

// Add inserts a waitlist entry. A duplicate (email, product) pair is a no-op.
func (r *WaitlistRepository) Add(entry *domain.WaitlistEntry) error {
	_, err := r.db.Exec(`
		INSERT INTO waitlist (email, product, referrer, user_agent, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(email, product) DO NOTHING
	`, entry.Email, entry.Product, entry.Referrer, entry.UserAgent, time.Now())
	return err
}

// Count returns the number of waitlist rows for a product
func (r *WaitlistRepository) Count(product string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM waitlist WHERE product = ?`, product).Scan(&count)
	return count, err
}
