package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsakhi/sakhi/internal/model"
	"github.com/bizsakhi/sakhi/internal/service"
)

func newTestLedger(t *testing.T) *SQLiteLedger {
	t.Helper()
	l, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestCreditIncomeAndAggregate(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	id, err := l.CreditIncome(ctx, "user-1", model.NewIncome(1000, "Income - ₹1000", "General"), "text")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = l.DebitExpense(ctx, "user-1", model.NewExpense(400, "Expense - ₹400", "General"), "text")
	require.NoError(t, err)

	agg, err := l.Aggregate(ctx, "user-1", model.ScopeAllTime)
	require.NoError(t, err)
	assert.InDelta(t, 1000, agg.TotalIncome, 0.001)
	assert.InDelta(t, 400, agg.TotalExpenses, 0.001)
	assert.Equal(t, 1, agg.IncomeCount)
	assert.Equal(t, 1, agg.ExpenseCount)
	assert.InDelta(t, 600, agg.NetProfit(), 0.001)
	assert.Equal(t, model.StatusProfit, agg.Status())
}

func TestAggregateIsolatedPerUser(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.CreditIncome(ctx, "user-1", model.NewIncome(500, "Income", "General"), "text")
	require.NoError(t, err)

	agg, err := l.Aggregate(ctx, "user-2", model.ScopeAllTime)
	require.NoError(t, err)
	assert.Zero(t, agg.TotalIncome)
	assert.Zero(t, agg.IncomeCount)
}

func TestLedgerRejectsInvalidIntent(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.CreditIncome(ctx, "user-1", model.NewIncome(0, "Income", "General"), "text")
	assert.ErrorIs(t, err, model.ErrNonPositiveAmount)

	_, err = l.DebitExpense(ctx, "user-1", model.NewExpense(-5, "Expense", "General"), "text")
	assert.ErrorIs(t, err, model.ErrNonPositiveAmount)

	agg, err := l.Aggregate(ctx, "user-1", model.ScopeAllTime)
	require.NoError(t, err)
	assert.Zero(t, agg.IncomeCount)
	assert.Zero(t, agg.ExpenseCount)
}

func TestAdjustInventoryUpserts(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	first, err := l.AdjustInventory(ctx, "user-1", model.NewInventoryDelta("rice", 10, "kg", 45))
	require.NoError(t, err)

	second, err := l.AdjustInventory(ctx, "user-1", model.NewInventoryDelta("rice", 5, "kg", 48))
	require.NoError(t, err)
	assert.Equal(t, first, second, "upsert must reuse the existing record")

	var quantity, costPerUnit float64
	err = l.db.QueryRow(
		`SELECT quantity, cost_per_unit FROM inventory WHERE user_id = ? AND product_name = ?`,
		"user-1", "rice",
	).Scan(&quantity, &costPerUnit)
	require.NoError(t, err)
	assert.InDelta(t, 15, quantity, 0.001)
	assert.InDelta(t, 48, costPerUnit, 0.001)
}

func TestListInventory(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.AdjustInventory(ctx, "user-1", model.NewInventoryDelta("rice", 10, "kg", 48))
	require.NoError(t, err)
	_, err = l.AdjustInventory(ctx, "user-1", model.NewInventoryDelta("oil", 2, "litre", 150))
	require.NoError(t, err)
	_, err = l.AdjustInventory(ctx, "user-2", model.NewInventoryDelta("sugar", 5, "kg", 40))
	require.NoError(t, err)

	items, err := l.ListInventory(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// Ordered by product name.
	assert.Equal(t, "oil", items[0].ProductName)
	assert.Equal(t, "rice", items[1].ProductName)
	assert.InDelta(t, 10, items[1].Quantity, 0.001)
	assert.InDelta(t, 480, items[1].StockValue(), 0.001)

	empty, err := l.ListInventory(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestClearOperations(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.CreditIncome(ctx, "user-1", model.NewIncome(100, "Income", "General"), "text")
	require.NoError(t, err)
	_, err = l.DebitExpense(ctx, "user-1", model.NewExpense(50, "Expense", "General"), "text")
	require.NoError(t, err)
	_, err = l.DebitExpense(ctx, "user-1", model.NewExpense(75, "Expense", "General"), "text")
	require.NoError(t, err)

	n, err := l.ClearExpenses(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	agg, err := l.Aggregate(ctx, "user-1", model.ScopeAllTime)
	require.NoError(t, err)
	assert.Zero(t, agg.ExpenseCount)
	assert.Equal(t, 1, agg.IncomeCount)

	n, err = l.ClearAll(ctx, "user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	agg, err = l.Aggregate(ctx, "user-1", model.ScopeAllTime)
	require.NoError(t, err)
	assert.Zero(t, agg.IncomeCount)
}

func TestChatHistoryRoundTrip(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	for _, entry := range []service.ChatEntry{
		{UserID: "user-1", Message: "income 500", Response: "recorded", Intent: "income", Modality: model.ModalityText},
		{UserID: "user-1", Message: "what is my profit", Response: "profit summary", Intent: "query", Modality: model.ModalityVoice},
	} {
		require.NoError(t, l.RecordChat(ctx, entry))
	}

	entries, err := l.ListChat(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, "what is my profit", entries[0].Message)
	assert.Equal(t, model.ModalityVoice, entries[0].Modality)
	assert.Equal(t, "income 500", entries[1].Message)
}

func TestTodayScopeExcludesOldRecords(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.DebitExpense(ctx, "user-1", model.NewExpense(200, "Expense", "General"), "text")
	require.NoError(t, err)

	// Backdate one record beyond the today window.
	_, err = l.db.Exec(`
		INSERT INTO expenses (id, user_id, amount, description, category, source, created_at)
		VALUES ('old-1', 'user-1', 999, 'Old expense', 'General', 'text', datetime('now', '-2 days'))
	`)
	require.NoError(t, err)

	agg, err := l.Aggregate(ctx, "user-1", model.ScopeToday)
	require.NoError(t, err)
	assert.InDelta(t, 200, agg.TotalExpenses, 0.001)
	assert.Equal(t, 1, agg.ExpenseCount)

	all, err := l.Aggregate(ctx, "user-1", model.ScopeAllTime)
	require.NoError(t, err)
	assert.Equal(t, 2, all.ExpenseCount)
}
