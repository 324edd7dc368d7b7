package repository

import (
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// One connection per test or every pooled connection gets its own
	// in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetOrCreateNewSession(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	session, err := repo.GetOrCreate("", "hash-a")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if session.ID == "" {
		t.Fatal("new session must get an id")
	}
	if session.IPHash != "hash-a" {
		t.Errorf("ip_hash = %q", session.IPHash)
	}
	if session.MessageCount != 0 {
		t.Errorf("message_count = %d, want 0", session.MessageCount)
	}
}

func TestGetOrCreateReturnsExisting(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	created, err := repo.GetOrCreate("", "hash-a")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}

	found, err := repo.GetOrCreate(created.ID, "different-hash")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("id = %q, want existing session %q", found.ID, created.ID)
	}
	if found.IPHash != "hash-a" {
		t.Errorf("ip_hash = %q, existing row must win", found.IPHash)
	}
}

func TestGetOrCreateUnknownIDCreatesFresh(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	session, err := repo.GetOrCreate("never-seen", "hash-a")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if session.ID == "never-seen" {
		t.Error("unknown id must not be adopted, a fresh session is created")
	}
}

func TestIncrementMessageCount(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	session, _ := repo.GetOrCreate("", "hash-a")

	for want := 1; want <= 3; want++ {
		count, err := repo.IncrementMessageCount(session.ID)
		if err != nil {
			t.Fatalf("IncrementMessageCount failed: %v", err)
		}
		if count != want {
			t.Errorf("count = %d, want %d", count, want)
		}
	}
}

func TestHistoryOrderedByCreation(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))
	session, _ := repo.GetOrCreate("", "hash-a")

	contents := []string{"first", "second", "third"}
	roles := []string{"user", "assistant", "user"}
	for i := range contents {
		if err := repo.SaveMessage(session.ID, roles[i], contents[i]); err != nil {
			t.Fatalf("SaveMessage failed: %v", err)
		}
	}

	history, err := repo.GetHistory(session.ID)
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("messages = %d, want 3", len(history))
	}
	for i, m := range history {
		if m.Content != contents[i] {
			t.Errorf("message[%d] = %q, want %q", i, m.Content, contents[i])
		}
	}
}

func TestHistoryEmptyForUnknownSession(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	history, err := repo.GetHistory("missing")
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("messages = %d, want 0", len(history))
	}
}
