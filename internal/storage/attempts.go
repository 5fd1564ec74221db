package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attempt is one recorded solve attempt.
type Attempt struct {
	AttemptID      string
	CreatedAt      time.Time
	Scramble       string
	Solution       string
	Solved         bool
	MoveCount      int
	StatesExplored int
	DurationMs     int64
	OracleUsed     bool
}

// AttemptRepository provides CRUD operations for solve attempts.
type AttemptRepository struct {
	db *DB
}

// NewAttemptRepository creates a new attempt repository.
func NewAttemptRepository(db *DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Create records an attempt and returns its ID.
func (r *AttemptRepository) Create(a Attempt) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO attempts (attempt_id, created_at, scramble, solution, solved, move_count, states_explored, duration_ms, oracle_used)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), a.Scramble, a.Solution,
		boolToInt(a.Solved), a.MoveCount, a.StatesExplored, a.DurationMs, boolToInt(a.OracleUsed))

	if err != nil {
		return "", fmt.Errorf("failed to create attempt: %w", err)
	}

	return id, nil
}

// Get retrieves an attempt by ID. Returns nil if not found.
func (r *AttemptRepository) Get(attemptID string) (*Attempt, error) {
	row := r.db.QueryRow(`
		SELECT attempt_id, created_at, scramble, solution, solved, move_count, states_explored, duration_ms, oracle_used
		FROM attempts
		WHERE attempt_id = ?
	`, attemptID)

	a, err := scanAttempt(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return a, nil
}

// List returns the most recent attempts, newest first.
func (r *AttemptRepository) List(limit int) ([]Attempt, error) {
	rows, err := r.db.Query(`
		SELECT attempt_id, created_at, scramble, solution, solved, move_count, states_explored, duration_ms, oracle_used
		FROM attempts
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, *a)
	}
	return attempts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row rowScanner) (*Attempt, error) {
	var a Attempt
	var createdAtStr string
	var solvedInt, oracleInt int

	err := row.Scan(&a.AttemptID, &createdAtStr, &a.Scramble, &a.Solution,
		&solvedInt, &a.MoveCount, &a.StatesExplored, &a.DurationMs, &oracleInt)
	if err != nil {
		return nil, err
	}

	a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	a.Solved = solvedInt != 0
	a.OracleUsed = oracleInt != 0
	return &a, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
