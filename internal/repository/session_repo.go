package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/vibes-run/leadchat/internal/domain"
)

// SessionRepository handles session and message persistence
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// GetOrCreate returns the session with the given id, or creates a fresh one
// when the id is empty or unknown.
func (r *SessionRepository) GetOrCreate(sessionID, ipHash string) (*domain.Session, error) {
	if sessionID != "" {
		existing, err := r.Get(sessionID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.New().String(),
		IPHash:    ipHash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (id, ip_hash, message_count, created_at, updated_at)
		VALUES (?, ?, 0, ?, ?)
	`, session.ID, session.IPHash, session.CreatedAt, session.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Get retrieves a session by ID
func (r *SessionRepository) Get(id string) (*domain.Session, error) {
	session := &domain.Session{}

	err := r.db.QueryRow(`
		SELECT id, ip_hash, message_count, created_at, updated_at
		FROM sessions WHERE id = ?
	`, id).Scan(&session.ID, &session.IPHash, &session.MessageCount,
		&session.CreatedAt, &session.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return session, nil
}

// IncrementMessageCount bumps the session's message counter and returns the
// new count. The increment runs in a single UPDATE so concurrent turns never
// lose a count, though the surrounding rate-limit check is not transactional.
func (r *SessionRepository) IncrementMessageCount(id string) (int, error) {
	_, err := r.db.Exec(`
		UPDATE sessions SET message_count = message_count + 1, updated_at = ? WHERE id = ?
	`, time.Now(), id)
	if err != nil {
		return 0, err
	}

	var count int
	err = r.db.QueryRow(`SELECT message_count FROM sessions WHERE id = ?`, id).Scan(&count)
	return count, err
}

// SaveMessage appends a message to a session's transcript
func (r *SessionRepository) SaveMessage(sessionID, role, content string) error {
	_, err := r.db.Exec(`
		INSERT INTO messages (id, session_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.New().String(), sessionID, role, content, time.Now())
	return err
}

// GetHistory retrieves all messages for a session, ordered by creation time
func (r *SessionRepository) GetHistory(sessionID string) ([]*domain.Message, error) {
	rows, err := r.db.Query(`
		SELECT id, session_id, role, content, created_at
		FROM messages WHERE session_id = ?
		ORDER BY created_at ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		message := &domain.Message{}
		if err := rows.Scan(&message.ID, &message.SessionID, &message.Role,
			&message.Content, &message.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, rows.Err()
}
