package repository

import (
	"context"
	"fmt"

	"github.com/pantryops/grocery-api/internal/domain"
	"github.com/pantryops/grocery-api/internal/repository/dao"
)

type TransactionDAO interface {
	FindAll(ctx context.Context) ([]dao.StockTransaction, error)
}

type TransactionRepository struct {
	dao TransactionDAO
}

func NewTransactionRepository(dao TransactionDAO) *TransactionRepository {
	return &TransactionRepository{
		dao: dao,
	}
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]domain.StockTransaction, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	transactions := make([]domain.StockTransaction, 0, len(found))
	for _, t := range found {
		transactions = append(transactions, domain.StockTransaction{
			ID:           t.ID,
			ItemID:       t.ItemID,
			ChangeAmount: t.ChangeAmount,
			Reason:       domain.TransactionReason(t.Reason),
			Timestamp:    t.Timestamp,
		})
	}

	return transactions, nil
}
