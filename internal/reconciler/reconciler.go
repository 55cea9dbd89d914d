// Package reconciler applies classified transaction batches to the ledger.
// Items are applied independently and in order: one bad item never rolls
// back or blocks its neighbors, and the caller always receives exactly one
// outcome per input item.
package reconciler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bizsakhi/sakhi/internal/model"
	"github.com/bizsakhi/sakhi/internal/render"
	"github.com/bizsakhi/sakhi/internal/service"
)

// Reconciler turns transaction intents into ledger records.
type Reconciler struct {
	ledger service.Ledger
}

// New creates a reconciler over the given ledger.
func New(ledger service.Ledger) *Reconciler {
	return &Reconciler{ledger: ledger}
}

// Apply records each intent against the ledger, preserving input order.
// Validation failures and ledger errors become failed outcomes; the batch
// itself never fails.
func (r *Reconciler) Apply(ctx context.Context, userID string, items []model.TransactionIntent, source string, lang model.Language) []model.ApplicationOutcome {
	outcomes := make([]model.ApplicationOutcome, 0, len(items))
	for _, item := range items {
		outcomes = append(outcomes, r.applyOne(ctx, userID, item, source, lang))
	}
	return outcomes
}

func (r *Reconciler) applyOne(ctx context.Context, userID string, item model.TransactionIntent, source string, lang model.Language) model.ApplicationOutcome {
	outcome := model.ApplicationOutcome{Kind: item.Kind}

	if err := item.Validate(); err != nil {
		outcome.FailureReason = err.Error()
		slog.Debug("transaction rejected", "kind", item.Kind, "reason", err)
		return outcome
	}

	var (
		recordID string
		err      error
	)
	switch item.Kind {
	case model.IntentIncome:
		recordID, err = r.ledger.CreditIncome(ctx, userID, item, source)
		outcome.Message = render.Render(render.KeyIncomeAdded, lang, render.Values{
			"amount":      render.Amount(item.Amount),
			"description": item.Description,
		})
	case model.IntentExpense:
		recordID, err = r.ledger.DebitExpense(ctx, userID, item, source)
		outcome.Message = render.Render(render.KeyExpenseAdded, lang, render.Values{
			"amount":      render.Amount(item.Amount),
			"description": item.Description,
		})
	case model.IntentInventory:
		recordID, err = r.ledger.AdjustInventory(ctx, userID, item)
		outcome.Message = render.Render(render.KeyInventoryAdded, lang, render.Values{
			"product":  item.ProductName,
			"quantity": render.Amount(item.Quantity),
			"unit":     item.Unit,
		})
	default:
		err = fmt.Errorf("%w: %q", model.ErrUnknownIntentKind, item.Kind)
	}

	if err != nil {
		outcome.Message = ""
		outcome.FailureReason = err.Error()
		slog.Error("ledger write failed", "kind", item.Kind, "error", err)
		return outcome
	}

	outcome.RecordID = recordID
	outcome.Success = true
	return outcome
}

// Summarize builds the user-facing text for a batch: the classifier's
// narrative when at least one item landed, otherwise the localized
// no-valid-transactions notice with per-item failure context attached.
func (r *Reconciler) Summarize(outcomes []model.ApplicationOutcome, narrative string, lang model.Language) string {
	if model.SuccessCount(outcomes) > 0 {
		if narrative != "" {
			return narrative
		}
		for _, o := range outcomes {
			if o.Success {
				return o.Message
			}
		}
	}
	return render.Render(render.KeyNoValidTransactions, lang, nil)
}
