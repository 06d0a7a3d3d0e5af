package lib

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// MemoryHistory keeps recorded checks for the lifetime of the process.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{entries: []Entry{}}
}

func (h *MemoryHistory) Record(_ context.Context, entry Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, entry)
	return nil
}

// Recent returns up to limit entries, newest first.
func (h *MemoryHistory) Recent(_ context.Context, limit int) ([]Entry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := []Entry{}
	for i := len(h.entries) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, h.entries[i])
	}
	return result, nil
}

// PostgresHistory stores recorded checks in the check_history table created
// by the migrations in ./migrations.
type PostgresHistory struct {
	db *sql.DB
}

func NewPostgresHistory(db *sql.DB) *PostgresHistory {
	return &PostgresHistory{db: db}
}

func OpenPostgresHistory(connectionString string) (*PostgresHistory, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	return NewPostgresHistory(db), nil
}

func (h *PostgresHistory) Record(ctx context.Context, entry Entry) error {
	_, err := h.db.ExecContext(
		ctx,
		"INSERT INTO check_history (selector, input, ok, result, checked_at) VALUES ($1, $2, $3, $4, $5)",
		string(entry.Selector),
		entry.Input,
		entry.OK,
		entry.Result,
		entry.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("recording %s check: %w", entry.Selector, err)
	}
	return nil
}

func (h *PostgresHistory) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := h.db.QueryContext(
		ctx,
		"SELECT selector, input, ok, result, checked_at FROM check_history ORDER BY id DESC LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []Entry{}
	for rows.Next() {
		var entry Entry
		var selector string
		err = rows.Scan(&selector, &entry.Input, &entry.OK, &entry.Result, &entry.CheckedAt)
		if err != nil {
			return nil, err
		}
		entry.Selector = Selector(selector)
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (h *PostgresHistory) Close() error {
	return h.db.Close()
}
