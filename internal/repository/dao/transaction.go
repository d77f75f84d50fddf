package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const (
	ReasonUpdate = "update"
	ReasonBought = "bought"
)

// StockTransaction rows are append-only. ItemID is indexed but carries no
// foreign-key constraint so that history outlives item deletion.
type StockTransaction struct {
	ID           uint  `gorm:"primaryKey"`
	ItemID       *uint `gorm:"index"`
	ChangeAmount float64
	Reason       string `gorm:"not null"`
	Timestamp    time.Time
}

func (StockTransaction) TableName() string {
	return "stock_transactions"
}

type TransactionDAO struct {
	db *gorm.DB
}

func NewTransactionDAO(db *gorm.DB) *TransactionDAO {
	return &TransactionDAO{
		db: db,
	}
}

func (d *TransactionDAO) FindAll(ctx context.Context) ([]StockTransaction, error) {
	var transactions []StockTransaction

	result := d.db.WithContext(ctx).Order("timestamp DESC, id DESC").Find(&transactions)
	if result.Error != nil {
		return nil, result.Error
	}

	return transactions, nil
}
