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
	ErrManualEntryNotFound = repository.ErrManualEntryNotFound
	ErrNoIDProvided        = errors.New("no id provided")
)

type ManualListRepository interface {
	Create(ctx context.Context, entry domain.ManualListEntry) (domain.ManualListEntry, error)
	FindActive(ctx context.Context) ([]domain.ManualListEntry, error)
	MarkCompleted(ctx context.Context, id uint) error
}

type InventoryProvider interface {
	ListLowItems(ctx context.Context) ([]domain.Item, error)
	MarkItemBought(ctx context.Context, id uint, addQty *float64) (domain.Item, error)
}

type ShoppingListService struct {
	repo      ManualListRepository
	inventory InventoryProvider
}

func NewShoppingListService(repo ManualListRepository, inventory InventoryProvider) *ShoppingListService {
	return &ShoppingListService{
		repo:      repo,
		inventory: inventory,
	}
}

func (s *ShoppingListService) ManualAdd(ctx context.Context, params domain.NewManualEntry) (domain.ManualListEntry, error) {
	if strings.TrimSpace(params.ItemName) == "" {
		return domain.ManualListEntry{}, ErrNameRequired
	}

	entry := domain.ManualListEntry{
		ItemName: params.ItemName,
		Qty:      1,
		AddedAt:  time.Now().UTC(),
	}
	if params.Qty != nil {
		entry.Qty = *params.Qty
	}
	if params.Regular != nil {
		entry.Regular = *params.Regular
	}

	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return domain.ManualListEntry{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// GetShoppingList assembles both sources side by side: low-stock items and
// active manual entries. A manual entry whose name matches a low item is not
// merged away; the two lists are independent.
func (s *ShoppingListService) GetShoppingList(ctx context.Context) (domain.ShoppingList, error) {
	auto, err := s.inventory.ListLowItems(ctx)
	if err != nil {
		return domain.ShoppingList{}, fmt.Errorf("s.inventory.ListLowItems -> %w", err)
	}

	manual, err := s.repo.FindActive(ctx)
	if err != nil {
		return domain.ShoppingList{}, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return domain.ShoppingList{
		Auto:   auto,
		Manual: manual,
	}, nil
}

// MarkBought resolves one shopping-list line. A manual id soft-completes the
// entry without touching the transaction log; an item id restocks the item
// through the inventory service. When both are present the manual id wins,
// and when neither is present the call is rejected.
func (s *ShoppingListService) MarkBought(ctx context.Context, manualID, itemID *uint, addQty *float64) error {
	switch {
	case manualID != nil:
		if err := s.repo.MarkCompleted(ctx, *manualID); err != nil {
			return fmt.Errorf("s.repo.MarkCompleted -> %w", err)
		}
	case itemID != nil:
		if _, err := s.inventory.MarkItemBought(ctx, *itemID, addQty); err != nil {
			return fmt.Errorf("s.inventory.MarkItemBought -> %w", err)
		}
	default:
		return ErrNoIDProvided
	}

	return nil
}
