package service

import (
	"regexp"
	"strings"

	"github.com/vibes-run/leadchat/internal/domain"
	"github.com/vibes-run/leadchat/internal/repository"
	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validProducts = map[string]bool{
	"volt":  true,
	"vibes": true,
}

// WaitlistService validates and records product waitlist signups
type WaitlistService struct {
	repo   *repository.WaitlistRepository
	logger *zap.Logger
}

// NewWaitlistService creates a new waitlist service
func NewWaitlistService(repo *repository.WaitlistRepository, logger *zap.Logger) *WaitlistService {
	return &WaitlistService{repo: repo, logger: logger}
}

// IsValidEmail checks the email shape
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidProduct checks the product against the closed allow-list
func IsValidProduct(product string) bool {
	return validProducts[product]
}

// Add validates and inserts a waitlist entry. Duplicate submissions of the
// same (email, product) pair succeed without creating a second row.
func (s *WaitlistService) Add(entry *domain.WaitlistEntry) domain.WaitlistResult {
	if !IsValidEmail(entry.Email) {
		return domain.WaitlistResult{Success: false, Error: "Invalid email format"}
	}
	if !IsValidProduct(entry.Product) {
		return domain.WaitlistResult{Success: false, Error: "Invalid product"}
	}

	entry.Email = strings.ToLower(entry.Email)

	if err := s.repo.Add(entry); err != nil {
		s.logger.Error("waitlist insert failed",
			zap.String("product", entry.Product), zap.Error(err))
		return domain.WaitlistResult{Success: false, Error: "Failed to join waitlist"}
	}

	return domain.WaitlistResult{Success: true}
}
