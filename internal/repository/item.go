package repository

import (
	"context"
	"fmt"

	"github.com/pantryops/grocery-api/internal/domain"
	"github.com/pantryops/grocery-api/internal/repository/dao"
)

var ErrItemNotFound = dao.ErrItemNotFound

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	FindAll(ctx context.Context) ([]dao.Item, error)
	FindByID(ctx context.Context, id uint) (dao.Item, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (dao.Item, error)
	AddQuantity(ctx context.Context, id uint, addQty *float64) (dao.Item, error)
	Delete(ctx context.Context, id uint) error
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(item))
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	items := make([]domain.Item, 0, len(found))
	for _, it := range found {
		items = append(items, r.daoToDomain(it))
	}

	return items, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id uint) (domain.Item, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

// Update applies only the non-nil fields of the patch. The DAO refreshes
// last_updated and logs a stock transaction when current_qty is touched.
func (r *ItemRepository) Update(ctx context.Context, id uint, patch domain.ItemPatch) (domain.Item, error) {
	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.MaxQty != nil {
		fields["max_qty"] = *patch.MaxQty
	}
	if patch.CurrentQty != nil {
		fields["current_qty"] = *patch.CurrentQty
	}
	if patch.ThresholdPercent != nil {
		fields["threshold_percent"] = *patch.ThresholdPercent
	}

	updated, err := r.dao.UpdateFields(ctx, id, fields)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.UpdateFields -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) AddQuantity(ctx context.Context, id uint, addQty *float64) (domain.Item, error) {
	updated, err := r.dao.AddQuantity(ctx, id, addQty)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.AddQuantity -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ItemRepository) domainToDAO(i domain.Item) dao.Item {
	return dao.Item{
		ID:               i.ID,
		Name:             i.Name,
		Category:         i.Category,
		MaxQty:           i.MaxQty,
		CurrentQty:       i.CurrentQty,
		ThresholdPercent: i.ThresholdPercent,
		LastUpdated:      i.LastUpdated,
	}
}

func (r *ItemRepository) daoToDomain(i dao.Item) domain.Item {
	return domain.Item{
		ID:               i.ID,
		Name:             i.Name,
		Category:         i.Category,
		MaxQty:           i.MaxQty,
		CurrentQty:       i.CurrentQty,
		ThresholdPercent: i.ThresholdPercent,
		LastUpdated:      i.LastUpdated,
	}
}
