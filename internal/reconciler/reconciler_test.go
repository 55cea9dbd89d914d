package reconciler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsakhi/sakhi/internal/model"
)

// mockLedger records writes in memory and can be told to fail.
type mockLedger struct {
	failCredit bool
	failDebit  bool
	incomes    []model.TransactionIntent
	expenses   []model.TransactionIntent
	inventory  []model.TransactionIntent
	nextID     int
}

func (m *mockLedger) id() string {
	m.nextID++
	return fmt.Sprintf("rec-%d", m.nextID)
}

func (m *mockLedger) CreditIncome(_ context.Context, _ string, intent model.TransactionIntent, _ string) (string, error) {
	if m.failCredit {
		return "", errors.New("credit failed")
	}
	m.incomes = append(m.incomes, intent)
	return m.id(), nil
}

func (m *mockLedger) DebitExpense(_ context.Context, _ string, intent model.TransactionIntent, _ string) (string, error) {
	if m.failDebit {
		return "", errors.New("debit failed")
	}
	m.expenses = append(m.expenses, intent)
	return m.id(), nil
}

func (m *mockLedger) AdjustInventory(_ context.Context, _ string, intent model.TransactionIntent) (string, error) {
	m.inventory = append(m.inventory, intent)
	return m.id(), nil
}

func (m *mockLedger) ListInventory(context.Context, string) ([]model.InventoryItem, error) {
	return nil, nil
}

func (m *mockLedger) ClearExpenses(context.Context, string) (int64, error) { return 0, nil }
func (m *mockLedger) ClearIncome(context.Context, string) (int64, error)  { return 0, nil }
func (m *mockLedger) ClearChat(context.Context, string) (int64, error)    { return 0, nil }
func (m *mockLedger) ClearAll(context.Context, string) (int64, error)     { return 0, nil }
func (m *mockLedger) Aggregate(context.Context, string, model.AggregateScope) (model.LedgerAggregate, error) {
	return model.LedgerAggregate{}, nil
}

func TestApplyBatchPartialFailure(t *testing.T) {
	ledger := &mockLedger{}
	r := New(ledger)

	items := []model.TransactionIntent{
		model.NewIncome(500, "Sold vegetables", "Sales"),
		model.NewExpense(0, "Broken line", "General"), // invalid: non-positive amount
		model.NewExpense(200, "Supplies", "General"),
	}

	outcomes := r.Apply(context.Background(), "user-1", items, "chat", model.LangEnglish)

	require.Len(t, outcomes, 3, "exactly one outcome per item")
	assert.True(t, outcomes[0].Success)
	assert.False(t, outcomes[1].Success)
	assert.True(t, outcomes[2].Success)

	assert.Contains(t, outcomes[1].FailureReason, "amount must be positive")
	assert.Len(t, ledger.incomes, 1)
	assert.Len(t, ledger.expenses, 1, "valid items after a failure still apply")
}

func TestApplyOrderPreserved(t *testing.T) {
	ledger := &mockLedger{}
	r := New(ledger)

	items := []model.TransactionIntent{
		model.NewIncome(100, "first", "Sales"),
		model.NewExpense(50, "second", "General"),
		model.NewInventoryDelta("Rice", 10, "kg", 48),
	}

	outcomes := r.Apply(context.Background(), "user-1", items, "chat", model.LangEnglish)

	require.Len(t, outcomes, 3)
	assert.Equal(t, model.IntentIncome, outcomes[0].Kind)
	assert.Equal(t, model.IntentExpense, outcomes[1].Kind)
	assert.Equal(t, model.IntentInventory, outcomes[2].Kind)
	for _, o := range outcomes {
		assert.True(t, o.Success)
		assert.NotEmpty(t, o.RecordID)
		assert.NotEmpty(t, o.Message)
	}
}

func TestApplyLedgerErrorBecomesOutcome(t *testing.T) {
	ledger := &mockLedger{failDebit: true}
	r := New(ledger)

	outcomes := r.Apply(context.Background(), "user-1", []model.TransactionIntent{
		model.NewExpense(200, "Supplies", "General"),
	}, "chat", model.LangEnglish)

	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Success)
	assert.Contains(t, outcomes[0].FailureReason, "debit failed")
	assert.Empty(t, outcomes[0].Message)
}

func TestSummarize(t *testing.T) {
	r := New(&mockLedger{})

	success := []model.ApplicationOutcome{{Success: true, Message: "✅ Income of ₹500 added: sales"}}
	failure := []model.ApplicationOutcome{{Success: false, FailureReason: "amount must be positive"}}

	assert.Equal(t, "All recorded!", r.Summarize(success, "All recorded!", model.LangEnglish))
	assert.Equal(t, "✅ Income of ₹500 added: sales", r.Summarize(success, "", model.LangEnglish),
		"without a narrative the first success message is used")
	assert.Equal(t, "No valid transactions found.", r.Summarize(failure, "ignored narrative", model.LangEnglish))
}

func TestConfirmItems(t *testing.T) {
	ledger := &mockLedger{}
	r := New(ledger)

	items := []model.ClarificationItem{
		{Name: "Rice", Quantity: 10, Unit: "kg", Amount: 480, CostPerUnit: 48, SuggestedCategory: "inventory"},
		{Name: "Tea", Quantity: 2, Amount: 120, SuggestedCategory: "expense"},
		{Name: "Vegetables", Amount: 300, SuggestedCategory: "income"},
	}

	outcomes, summary := r.ConfirmItems(context.Background(), "user-1", items, model.LangEnglish)

	require.Len(t, outcomes, 3)
	assert.Equal(t, "✅ Successfully processed 3 items!", summary)

	require.Len(t, ledger.inventory, 1)
	assert.Equal(t, "Rice", ledger.inventory[0].ProductName)
	assert.InDelta(t, 48.0, ledger.inventory[0].CostPerUnit, 0.001)

	require.Len(t, ledger.expenses, 1)
	assert.Equal(t, "2x Tea", ledger.expenses[0].Description)
	assert.Equal(t, "General", ledger.expenses[0].Category)

	require.Len(t, ledger.incomes, 1)
	assert.Equal(t, "Sales", ledger.incomes[0].Category)
}

func TestConfirmItemsAllInvalid(t *testing.T) {
	r := New(&mockLedger{})

	outcomes, summary := r.ConfirmItems(context.Background(), "user-1", []model.ClarificationItem{
		{Name: "Ghost", Amount: 0, SuggestedCategory: "expense"},
	}, model.LangEnglish)

	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Success)
	assert.Equal(t, "No valid transactions found.", summary)
}

func TestConfirmItemsDerivesCostPerUnit(t *testing.T) {
	ledger := &mockLedger{}
	r := New(ledger)

	r.ConfirmItems(context.Background(), "user-1", []model.ClarificationItem{
		{Name: "Sugar", Quantity: 5, Unit: "kg", Amount: 250, SuggestedCategory: "inventory"},
	}, model.LangEnglish)

	require.Len(t, ledger.inventory, 1)
	assert.InDelta(t, 50.0, ledger.inventory[0].CostPerUnit, 0.001)
}
