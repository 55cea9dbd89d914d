package model

// ApplicationOutcome is the per-intent result of one ledger application.
// A batch of N intents always yields exactly N outcomes in input order.
type ApplicationOutcome struct {
	RecordID      string     `json:"record_id,omitempty"`
	Message       string     `json:"message"`
	FailureReason string     `json:"failure_reason,omitempty"`
	Kind          IntentKind `json:"kind"`
	Success       bool       `json:"success"`
}

// SuccessCount returns how many outcomes in the slice succeeded.
func SuccessCount(outcomes []ApplicationOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Success {
			n++
		}
	}
	return n
}
