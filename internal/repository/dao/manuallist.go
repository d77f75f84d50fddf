package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrManualEntryNotFound = errors.New("manual entry not found")

type ManualListEntry struct {
	ID        uint   `gorm:"primaryKey"`
	ItemName  string `gorm:"not null"`
	Qty       float64
	Regular   bool
	AddedAt   time.Time
	Completed bool
}

func (ManualListEntry) TableName() string {
	return "manual_list_entries"
}

type ManualListDAO struct {
	db *gorm.DB
}

func NewManualListDAO(db *gorm.DB) *ManualListDAO {
	return &ManualListDAO{
		db: db,
	}
}

func (d *ManualListDAO) Insert(ctx context.Context, entry ManualListEntry) (ManualListEntry, error) {
	result := d.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		return ManualListEntry{}, result.Error
	}

	return entry, nil
}

func (d *ManualListDAO) FindActive(ctx context.Context) ([]ManualListEntry, error) {
	var entries []ManualListEntry

	result := d.db.WithContext(ctx).Where("completed = ?", false).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

// MarkCompleted soft-completes an entry. Entries are never deleted; the
// active list simply filters them out.
func (d *ManualListDAO) MarkCompleted(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).
		Model(&ManualListEntry{}).
		Where("id = ?", id).
		Update("completed", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrManualEntryNotFound
	}

	return nil
}
