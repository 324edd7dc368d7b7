package service

import (
	"testing"

	"github.com/vibes-run/leadchat/internal/domain"
	"github.com/vibes-run/leadchat/internal/repository"
	"go.uber.org/zap"
)

func newWaitlistFixture(t *testing.T) (*WaitlistService, *repository.WaitlistRepository) {
	t.Helper()
	db, err := repository.NewDB(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewWaitlistRepository(db)
	return NewWaitlistService(repo, zap.NewNop()), repo
}

func TestWaitlistRejectsInvalidEmail(t *testing.T) {
	svc, _ := newWaitlistFixture(t)

	result := svc.Add(&domain.WaitlistEntry{Email: "not-an-email", Product: "vibes"})
	if result.Success {
		t.Fatal("invalid email accepted")
	}
	if result.Error != "Invalid email format" {
		t.Errorf("error = %q", result.Error)
	}
}

func TestWaitlistRejectsUnknownProduct(t *testing.T) {
	svc, _ := newWaitlistFixture(t)

	result := svc.Add(&domain.WaitlistEntry{Email: "a@b.com", Product: "flux"})
	if result.Success {
		t.Fatal("unknown product accepted")
	}
	if result.Error != "Invalid product" {
		t.Errorf("error = %q", result.Error)
	}
}

func TestWaitlistDuplicateSubmissionIsIdempotent(t *testing.T) {
	svc, repo := newWaitlistFixture(t)

	if result := svc.Add(&domain.WaitlistEntry{Email: "a@b.com", Product: "volt"}); !result.Success {
		t.Fatalf("first submission failed: %s", result.Error)
	}
	if result := svc.Add(&domain.WaitlistEntry{Email: "a@b.com", Product: "volt"}); !result.Success {
		t.Fatalf("duplicate submission failed: %s", result.Error)
	}

	count, err := repo.Count("volt")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}

func TestWaitlistLowercasesEmail(t *testing.T) {
	svc, repo := newWaitlistFixture(t)

	svc.Add(&domain.WaitlistEntry{Email: "Ada@Example.COM", Product: "vibes"})
	svc.Add(&domain.WaitlistEntry{Email: "ada@example.com", Product: "vibes"})

	count, err := repo.Count("vibes")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, case variants of one address must collapse", count)
	}
}

func TestEmailValidation(t *testing.T) {
	valid := []string{"a@b.com", "first.last@sub.domain.io"}
	invalid := []string{"not-an-email", "a@b", "a b@c.com", "@b.com", "a@@b.com"}

	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true, want false", e)
		}
	}
}
