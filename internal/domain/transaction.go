package domain

import "time"

type TransactionReason string

const (
	// ReasonUpdate records a direct quantity edit. ChangeAmount holds the new
	// absolute quantity, not a delta.
	ReasonUpdate TransactionReason = "update"
	// ReasonBought records a restock. ChangeAmount holds the quantity added.
	ReasonBought TransactionReason = "bought"
)

// StockTransaction is an append-only audit record of a quantity change.
// ItemID is deliberately not a foreign key: deleting an Item keeps its
// history intact.
type StockTransaction struct {
	ID           uint              `json:"id"`
	ItemID       *uint             `json:"item_id"`
	ChangeAmount float64           `json:"change_amount"`
	Reason       TransactionReason `json:"reason"`
	Timestamp    time.Time         `json:"timestamp"`
}
