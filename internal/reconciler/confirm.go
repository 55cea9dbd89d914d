package reconciler

import (
	"context"
	"fmt"

	"github.com/bizsakhi/sakhi/internal/model"
	"github.com/bizsakhi/sakhi/internal/render"
)

// ConfirmItems applies user-approved clarification items. Each candidate is
// mapped to a concrete intent by its suggested category: income lands as a
// sale, inventory upserts stock, everything else books as a general expense.
func (r *Reconciler) ConfirmItems(ctx context.Context, userID string, items []model.ClarificationItem, lang model.Language) ([]model.ApplicationOutcome, string) {
	intents := make([]model.TransactionIntent, 0, len(items))
	for _, item := range items {
		intents = append(intents, confirmIntent(item))
	}

	outcomes := r.Apply(ctx, userID, intents, "confirmation", lang)

	applied := model.SuccessCount(outcomes)
	if applied == 0 {
		return outcomes, render.Render(render.KeyNoValidTransactions, lang, nil)
	}
	return outcomes, render.Render(render.KeyItemsConfirmed, lang, render.Values{
		"count": fmt.Sprintf("%d", applied),
	})
}

func confirmIntent(item model.ClarificationItem) model.TransactionIntent {
	description := item.Description
	if description == "" {
		description = fmt.Sprintf("%sx %s", render.Amount(item.Quantity), item.Name)
	}

	switch item.SuggestedCategory {
	case "income":
		return model.NewIncome(item.Amount, description, "Sales")
	case "inventory":
		costPerUnit := item.CostPerUnit
		if costPerUnit == 0 && item.Quantity > 0 {
			costPerUnit = item.Amount / item.Quantity
		}
		return model.NewInventoryDelta(item.Name, item.Quantity, item.Unit, costPerUnit)
	default:
		return model.NewExpense(item.Amount, description, "General")
	}
}
