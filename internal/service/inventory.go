package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pantryops/grocery-api/internal/domain"
	"github.com/pantryops/grocery-api/internal/repository"
)

var (
	ErrItemNotFound = repository.ErrItemNotFound
	ErrNameRequired = errors.New("name is required")
)

const (
	defaultCategory         = "Other"
	defaultThresholdPercent = 20
)

type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	FindAll(ctx context.Context) ([]domain.Item, error)
	Update(ctx context.Context, id uint, patch domain.ItemPatch) (domain.Item, error)
	AddQuantity(ctx context.Context, id uint, addQty *float64) (domain.Item, error)
	Delete(ctx context.Context, id uint) error
}

type TransactionRepository interface {
	FindAll(ctx context.Context) ([]domain.StockTransaction, error)
}

type InventoryService struct {
	repo         ItemRepository
	transactions TransactionRepository
}

func NewInventoryService(repo ItemRepository, transactions TransactionRepository) *InventoryService {
	return &InventoryService{
		repo:         repo,
		transactions: transactions,
	}
}

func (s *InventoryService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return items, nil
}

// CreateItem validates the name, fills the stock defaults for omitted fields
// and persists the item. Creation is not recorded in the transaction log.
func (s *InventoryService) CreateItem(ctx context.Context, params domain.NewItem) (domain.Item, error) {
	if strings.TrimSpace(params.Name) == "" {
		return domain.Item{}, ErrNameRequired
	}

	item := domain.Item{
		Name:             params.Name,
		Category:         defaultCategory,
		ThresholdPercent: defaultThresholdPercent,
		LastUpdated:      time.Now().UTC(),
	}
	if params.Category != nil {
		item.Category = *params.Category
	}
	if params.MaxQty != nil {
		item.MaxQty = *params.MaxQty
	}
	if params.CurrentQty != nil {
		item.CurrentQty = *params.CurrentQty
	}
	if params.ThresholdPercent != nil {
		item.ThresholdPercent = *params.ThresholdPercent
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateItem applies a partial update. last_updated is refreshed even when
// the patch is empty, and a quantity edit lands in the transaction log with
// the literal new value as its change_amount.
func (s *InventoryService) UpdateItem(ctx context.Context, id uint, patch domain.ItemPatch) (domain.Item, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *InventoryService) DeleteItem(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *InventoryService) ListLowItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	low := make([]domain.Item, 0)
	for _, item := range items {
		if item.IsLow() {
			low = append(low, item)
		}
	}

	return low, nil
}

// MarkItemBought restocks an item. A nil addQty tops the item up to capacity;
// an explicit addQty is added as-is and may push current_qty past max_qty.
func (s *InventoryService) MarkItemBought(ctx context.Context, id uint, addQty *float64) (domain.Item, error) {
	item, err := s.repo.AddQuantity(ctx, id, addQty)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.AddQuantity -> %w", err)
	}

	return item, nil
}

func (s *InventoryService) ListTransactions(ctx context.Context) ([]domain.StockTransaction, error) {
	transactions, err := s.transactions.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.transactions.FindAll -> %w", err)
	}

	return transactions, nil
}
