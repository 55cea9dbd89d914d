package ledger

import (
	"context"
	"fmt"

	"github.com/bizsakhi/sakhi/internal/model"
	"github.com/bizsakhi/sakhi/internal/service"
)

// RecordChat appends one exchange to the user's chat history.
func (l *SQLiteLedger) RecordChat(ctx context.Context, entry service.ChatEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUserID(entry.UserID); err != nil {
		return err
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO chat_history (user_id, message, response, modality, intent)
		VALUES (?, ?, ?, ?, ?)
	`, entry.UserID, entry.Message, entry.Response, string(entry.Modality), entry.Intent)
	if err != nil {
		return fmt.Errorf("failed to record chat entry: %w", err)
	}
	return nil
}

// ListChat returns the user's most recent exchanges, newest first.
func (l *SQLiteLedger) ListChat(ctx context.Context, userID string, limit int) ([]service.ChatEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT user_id, message, response, modality, intent
		FROM chat_history
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []service.ChatEntry
	for rows.Next() {
		var e service.ChatEntry
		var modality string
		if err := rows.Scan(&e.UserID, &e.Message, &e.Response, &modality, &e.Intent); err != nil {
			return nil, fmt.Errorf("failed to scan chat entry: %w", err)
		}
		e.Modality = model.Modality(modality)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chat history: %w", err)
	}

	return entries, nil
}
