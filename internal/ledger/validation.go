package ledger

import (
	"context"
	"fmt"

	"github.com/bizsakhi/sakhi/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return nil
}

func validateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}
	return nil
}

// validateIntent guards the ledger boundary: the reconciler validates
// upstream, but the ledger never trusts its callers with a non-positive
// amount.
func validateIntent(intent model.TransactionIntent) error {
	return intent.Validate()
}
