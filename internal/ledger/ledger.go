package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/bizsakhi/sakhi/internal/model"
)

// CreditIncome records one income entry and returns its record ID.
func (l *SQLiteLedger) CreditIncome(ctx context.Context, userID string, intent model.TransactionIntent, source string) (string, error) {
	if err := l.validateWrite(ctx, userID, intent); err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO income (id, user_id, amount, description, category, source)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, userID, intent.Amount, intent.Description, intent.Category, source)
	if err != nil {
		return "", fmt.Errorf("failed to insert income: %w", err)
	}

	return id, nil
}

// DebitExpense records one expense entry and returns its record ID.
func (l *SQLiteLedger) DebitExpense(ctx context.Context, userID string, intent model.TransactionIntent, source string) (string, error) {
	if err := l.validateWrite(ctx, userID, intent); err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO expenses (id, user_id, amount, description, category, source)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, userID, intent.Amount, intent.Description, intent.Category, source)
	if err != nil {
		return "", fmt.Errorf("failed to insert expense: %w", err)
	}

	return id, nil
}

// AdjustInventory upserts an inventory item by product name. Existing
// products gain quantity and refresh cost per unit; new products insert.
func (l *SQLiteLedger) AdjustInventory(ctx context.Context, userID string, intent model.TransactionIntent) (string, error) {
	if err := l.validateWrite(ctx, userID, intent); err != nil {
		return "", err
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM inventory WHERE user_id = ? AND product_name = ?`,
		userID, intent.ProductName,
	).Scan(&id)

	switch {
	case err == sql.ErrNoRows:
		id = uuid.NewString()
		_, err = tx.ExecContext(ctx, `
			INSERT INTO inventory (id, user_id, product_name, quantity, unit, cost_per_unit)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, userID, intent.ProductName, intent.Quantity, intent.Unit, intent.CostPerUnit)
	case err == nil:
		_, err = tx.ExecContext(ctx, `
			UPDATE inventory
			SET quantity = quantity + ?, cost_per_unit = ?, unit = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`, intent.Quantity, intent.CostPerUnit, intent.Unit, id)
	default:
		return "", fmt.Errorf("failed to look up inventory item: %w", err)
	}

	if err != nil {
		return "", fmt.Errorf("failed to upsert inventory item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit inventory upsert: %w", err)
	}

	return id, nil
}

// ClearExpenses deletes all expense records for the user.
func (l *SQLiteLedger) ClearExpenses(ctx context.Context, userID string) (int64, error) {
	return l.clearTable(ctx, userID, "expenses")
}

// ClearIncome deletes all income records for the user.
func (l *SQLiteLedger) ClearIncome(ctx context.Context, userID string) (int64, error) {
	return l.clearTable(ctx, userID, "income")
}

// ClearChat deletes the user's chat history.
func (l *SQLiteLedger) ClearChat(ctx context.Context, userID string) (int64, error) {
	return l.clearTable(ctx, userID, "chat_history")
}

// ClearAll deletes every record the user owns across all tables.
func (l *SQLiteLedger) ClearAll(ctx context.Context, userID string) (int64, error) {
	var total int64
	for _, table := range []string{"income", "expenses", "inventory", "chat_history"} {
		n, err := l.clearTable(ctx, userID, table)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (l *SQLiteLedger) clearTable(ctx context.Context, userID, table string) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateUserID(userID); err != nil {
		return 0, err
	}

	// Table names come from a fixed internal set, never from input.
	res, err := l.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE user_id = ?", table), userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear %s: %w", table, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared rows: %w", err)
	}
	return n, nil
}

// Aggregate computes a read-only totals snapshot for the given scope.
func (l *SQLiteLedger) Aggregate(ctx context.Context, userID string, scope model.AggregateScope) (model.LedgerAggregate, error) {
	if err := validateContext(ctx); err != nil {
		return model.LedgerAggregate{}, err
	}
	if err := validateUserID(userID); err != nil {
		return model.LedgerAggregate{}, err
	}

	timeFilter := ""
	if scope == model.ScopeToday {
		timeFilter = " AND created_at >= datetime('now', 'start of day')"
	}

	var agg model.LedgerAggregate
	err := l.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM income WHERE user_id = ?`+timeFilter,
		userID,
	).Scan(&agg.TotalIncome, &agg.IncomeCount)
	if err != nil {
		return model.LedgerAggregate{}, fmt.Errorf("failed to aggregate income: %w", err)
	}

	err = l.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM expenses WHERE user_id = ?`+timeFilter,
		userID,
	).Scan(&agg.TotalExpenses, &agg.ExpenseCount)
	if err != nil {
		return model.LedgerAggregate{}, fmt.Errorf("failed to aggregate expenses: %w", err)
	}

	return agg, nil
}

// ListInventory returns the user's current stock, ordered by product name.
func (l *SQLiteLedger) ListInventory(ctx context.Context, userID string) ([]model.InventoryItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	rows, err := l.db.QueryContext(ctx, `
		SELECT product_name, quantity, unit, cost_per_unit
		FROM inventory
		WHERE user_id = ?
		ORDER BY product_name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]model.InventoryItem, 0)
	for rows.Next() {
		var item model.InventoryItem
		if err := rows.Scan(&item.ProductName, &item.Quantity, &item.Unit, &item.CostPerUnit); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory rows: %w", err)
	}

	return items, nil
}

func (l *SQLiteLedger) validateWrite(ctx context.Context, userID string, intent model.TransactionIntent) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateUserID(userID); err != nil {
		return err
	}
	return validateIntent(intent)
}
