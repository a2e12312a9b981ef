package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/mealplanner/internal/models"
)

// CreateOverride inserts a grocery override row.
func (s *SQLiteStore) CreateOverride(ctx context.Context, o *models.Override) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.CreatedAt == 0 {
		o.CreatedAt = time.Now().UnixMilli()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO grocery_overrides (id, user_id, label, section, done, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		o.ID, o.UserID, o.Label, o.Section, boolToInt(o.Done), o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert override: %w", err)
	}
	return nil
}

// ListOverrides returns the user's overrides, most recent first. Rows
// created in the same millisecond keep insertion order, newest first.
func (s *SQLiteStore) ListOverrides(ctx context.Context, userID string) ([]*models.Override, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, label, section, done, created_at
		FROM grocery_overrides
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get overrides: %w", err)
	}
	defer rows.Close()

	var overrides []*models.Override
	for rows.Next() {
		o := &models.Override{}
		var done int
		if err := rows.Scan(&o.ID, &o.UserID, &o.Label, &o.Section, &done, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		o.Done = done != 0
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overrides: %w", err)
	}
	return overrides, nil
}
