package model

import (
	"errors"
	"fmt"
)

// IntentKind discriminates the transaction intent variants.
type IntentKind string

// Transaction intent kinds.
const (
	IntentIncome    IntentKind = "income"
	IntentExpense   IntentKind = "expense"
	IntentInventory IntentKind = "inventory"
)

// Validation errors surfaced as per-item outcomes, never fatal to a batch.
var (
	ErrNonPositiveAmount   = errors.New("amount must be positive")
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	ErrMissingProductName  = errors.New("product name is required")
	ErrUnknownIntentKind   = errors.New("unknown intent kind")
)

// TransactionIntent is one structured transaction to apply to the ledger.
// Kind selects which fields are meaningful: Amount/Description/Category for
// income and expense, ProductName/Quantity/Unit/CostPerUnit for inventory.
type TransactionIntent struct {
	Kind        IntentKind
	Description string
	Category    string
	ProductName string
	Unit        string
	Amount      float64
	Quantity    float64
	CostPerUnit float64
}

// NewIncome builds an income intent.
func NewIncome(amount float64, description, category string) TransactionIntent {
	return TransactionIntent{Kind: IntentIncome, Amount: amount, Description: description, Category: category}
}

// NewExpense builds an expense intent.
func NewExpense(amount float64, description, category string) TransactionIntent {
	return TransactionIntent{Kind: IntentExpense, Amount: amount, Description: description, Category: category}
}

// NewInventoryDelta builds an inventory adjustment intent.
func NewInventoryDelta(productName string, quantity float64, unit string, costPerUnit float64) TransactionIntent {
	return TransactionIntent{
		Kind:        IntentInventory,
		ProductName: productName,
		Quantity:    quantity,
		Unit:        unit,
		CostPerUnit: costPerUnit,
	}
}

// Validate checks the discriminant-specific required fields. Intents that
// fail validation must never reach the ledger.
func (t TransactionIntent) Validate() error {
	switch t.Kind {
	case IntentIncome, IntentExpense:
		if t.Amount <= 0 {
			return fmt.Errorf("%s: %w", t.Kind, ErrNonPositiveAmount)
		}
	case IntentInventory:
		if t.ProductName == "" {
			return ErrMissingProductName
		}
		if t.Quantity <= 0 {
			return fmt.Errorf("%s: %w", t.ProductName, ErrNonPositiveQuantity)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownIntentKind, t.Kind)
	}
	return nil
}
