package response

import (
	"time"

	"github.com/pantryops/grocery-api/internal/domain"
)

type Transaction struct {
	ID           uint    `json:"id"`
	ItemID       *uint   `json:"item_id"`
	ChangeAmount float64 `json:"change_amount"`
	Reason       string  `json:"reason"`
	Timestamp    string  `json:"timestamp"`
}

func NewTransactions(transactions []domain.StockTransaction) []Transaction {
	out := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, Transaction{
			ID:           t.ID,
			ItemID:       t.ItemID,
			ChangeAmount: t.ChangeAmount,
			Reason:       string(t.Reason),
			Timestamp:    t.Timestamp.Format(time.RFC3339),
		})
	}

	return out
}
