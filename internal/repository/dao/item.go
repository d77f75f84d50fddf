package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrItemNotFound = errors.New("item not found")

type Item struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	Category         string
	MaxQty           float64
	CurrentQty       float64
	ThresholdPercent float64
	LastUpdated      time.Time
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func (d *ItemDAO) Insert(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) FindAll(ctx context.Context) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (d *ItemDAO) FindByID(ctx context.Context, id uint) (Item, error) {
	var item Item

	result := d.db.WithContext(ctx).First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

// UpdateFields applies the given column map to one item and refreshes
// last_updated, inside a single transaction holding a row lock. When
// current_qty is among the columns, a stock transaction is appended in the
// same commit; its change_amount is the new absolute quantity, not a delta.
func (d *ItemDAO) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (Item, error) {
	var item Item

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}

			return err
		}

		now := time.Now().UTC()
		fields["last_updated"] = now

		if err := tx.Model(&item).Updates(fields).Error; err != nil {
			return err
		}

		if qty, ok := fields["current_qty"]; ok {
			amount, _ := qty.(float64)
			log := StockTransaction{
				ItemID:       &item.ID,
				ChangeAmount: amount,
				Reason:       ReasonUpdate,
				Timestamp:    now,
			}
			if err := tx.Create(&log).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Item{}, err
	}

	return item, nil
}

// AddQuantity increments current_qty by addQty, or tops the item up to
// capacity when addQty is nil, and appends a "bought" stock transaction
// carrying the amount actually added. The read-modify-write runs under a
// row lock so racing restocks cannot lose updates.
func (d *ItemDAO) AddQuantity(ctx context.Context, id uint, addQty *float64) (Item, error) {
	var item Item

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}

			return err
		}

		added := item.MaxQty - item.CurrentQty
		if addQty != nil {
			added = *addQty
		}

		now := time.Now().UTC()
		item.CurrentQty += added
		item.LastUpdated = now

		updates := map[string]interface{}{
			"current_qty":  item.CurrentQty,
			"last_updated": now,
		}
		if err := tx.Model(&item).Updates(updates).Error; err != nil {
			return err
		}

		log := StockTransaction{
			ItemID:       &item.ID,
			ChangeAmount: added,
			Reason:       ReasonBought,
			Timestamp:    now,
		}

		return tx.Create(&log).Error
	})
	if err != nil {
		return Item{}, err
	}

	return item, nil
}

// Delete removes the item row only. Stock transactions referencing it are
// retained.
func (d *ItemDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Item{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}
