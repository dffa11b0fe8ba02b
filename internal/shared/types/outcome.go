package types

// FetchOutcome classifica o resultado da busca das duas coleções.
type FetchOutcome int

const (
	FetchOK FetchOutcome = iota
	FetchInventoryFailed
	FetchTransactionsFailed
	FetchBothFailed
)

// ClassifyFetch derives the outcome from the two independent fetch errors.
func ClassifyFetch(inventoryErr, transactionErr error) FetchOutcome {
	switch {
	case inventoryErr != nil && transactionErr != nil:
		return FetchBothFailed
	case inventoryErr != nil:
		return FetchInventoryFailed
	case transactionErr != nil:
		return FetchTransactionsFailed
	default:
		return FetchOK
	}
}

// Message returns the user-facing description of the outcome.
func (o FetchOutcome) Message() string {
	switch o {
	case FetchInventoryFailed:
		return "No inventory available for this branch"
	case FetchTransactionsFailed:
		return "No transactions available for this range"
	case FetchBothFailed:
		return "Both inventory and transactions could not be loaded"
	default:
		return ""
	}
}
