package model

// AggregateScope selects the time window for a ledger aggregate.
type AggregateScope string

// Aggregate scopes.
const (
	ScopeAllTime AggregateScope = "all_time"
	ScopeToday   AggregateScope = "today"
)

// ProfitStatus classifies an aggregate by the sign of its net profit.
type ProfitStatus string

// Profit statuses.
const (
	StatusProfit    ProfitStatus = "profit"
	StatusLoss      ProfitStatus = "loss"
	StatusBreakEven ProfitStatus = "break_even"
)

// LedgerAggregate is a read-only snapshot of ledger totals. It is computed
// on demand and never cached across requests in this pipeline.
type LedgerAggregate struct {
	TotalIncome   float64
	TotalExpenses float64
	IncomeCount   int
	ExpenseCount  int
}

// InventoryItem is one stocked product as the ledger currently holds it.
type InventoryItem struct {
	ProductName string  `json:"product_name"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	CostPerUnit float64 `json:"cost_per_unit"`
}

// StockValue returns the item's quantity priced at cost.
func (i InventoryItem) StockValue() float64 {
	return i.Quantity * i.CostPerUnit
}

// NetProfit returns income minus expenses.
func (a LedgerAggregate) NetProfit() float64 {
	return a.TotalIncome - a.TotalExpenses
}

// ProfitMarginPct returns net profit as a percentage of income. Zero income
// is the explicit undefined case and yields 0.
func (a LedgerAggregate) ProfitMarginPct() float64 {
	if a.TotalIncome == 0 {
		return 0
	}
	return a.NetProfit() / a.TotalIncome * 100
}

// Status classifies the aggregate as profit, loss, or break-even.
func (a LedgerAggregate) Status() ProfitStatus {
	switch net := a.NetProfit(); {
	case net > 0:
		return StatusProfit
	case net < 0:
		return StatusLoss
	default:
		return StatusBreakEven
	}
}
