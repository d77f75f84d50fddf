package repository

import (
	"context"
	"fmt"

	"github.com/pantryops/grocery-api/internal/domain"
	"github.com/pantryops/grocery-api/internal/repository/dao"
)

var ErrManualEntryNotFound = dao.ErrManualEntryNotFound

type ManualListDAO interface {
	Insert(ctx context.Context, entry dao.ManualListEntry) (dao.ManualListEntry, error)
	FindActive(ctx context.Context) ([]dao.ManualListEntry, error)
	MarkCompleted(ctx context.Context, id uint) error
}

type ManualListRepository struct {
	dao ManualListDAO
}

func NewManualListRepository(dao ManualListDAO) *ManualListRepository {
	return &ManualListRepository{
		dao: dao,
	}
}

func (r *ManualListRepository) Create(ctx context.Context, entry domain.ManualListEntry) (domain.ManualListEntry, error) {
	created, err := r.dao.Insert(ctx, dao.ManualListEntry{
		ItemName:  entry.ItemName,
		Qty:       entry.Qty,
		Regular:   entry.Regular,
		AddedAt:   entry.AddedAt,
		Completed: entry.Completed,
	})
	if err != nil {
		return domain.ManualListEntry{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ManualListRepository) FindActive(ctx context.Context) ([]domain.ManualListEntry, error) {
	found, err := r.dao.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	entries := make([]domain.ManualListEntry, 0, len(found))
	for _, e := range found {
		entries = append(entries, r.daoToDomain(e))
	}

	return entries, nil
}

func (r *ManualListRepository) MarkCompleted(ctx context.Context, id uint) error {
	if err := r.dao.MarkCompleted(ctx, id); err != nil {
		return fmt.Errorf("r.dao.MarkCompleted -> %w", err)
	}

	return nil
}

func (r *ManualListRepository) daoToDomain(e dao.ManualListEntry) domain.ManualListEntry {
	return domain.ManualListEntry{
		ID:        e.ID,
		ItemName:  e.ItemName,
		Qty:       e.Qty,
		Regular:   e.Regular,
		AddedAt:   e.AddedAt,
		Completed: e.Completed,
	}
}
