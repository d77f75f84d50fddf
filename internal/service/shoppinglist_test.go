package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantryops/grocery-api/internal/domain"
	"github.com/pantryops/grocery-api/internal/repository"
	"github.com/pantryops/grocery-api/internal/service"
)

type fakeManualListRepository struct {
	nextID  uint
	entries map[uint]domain.ManualListEntry
}

func newFakeManualListRepository() *fakeManualListRepository {
	return &fakeManualListRepository{
		nextID:  1,
		entries: make(map[uint]domain.ManualListEntry),
	}
}

func (f *fakeManualListRepository) Create(_ context.Context, entry domain.ManualListEntry) (domain.ManualListEntry, error) {
	entry.ID = f.nextID
	f.nextID++
	f.entries[entry.ID] = entry

	return entry, nil
}

func (f *fakeManualListRepository) FindActive(_ context.Context) ([]domain.ManualListEntry, error) {
	active := make([]domain.ManualListEntry, 0)
	for id := uint(1); id < f.nextID; id++ {
		if entry, ok := f.entries[id]; ok && !entry.Completed {
			active = append(active, entry)
		}
	}

	return active, nil
}

func (f *fakeManualListRepository) MarkCompleted(_ context.Context, id uint) error {
	entry, ok := f.entries[id]
	if !ok {
		return repository.ErrManualEntryNotFound
	}

	entry.Completed = true
	f.entries[id] = entry

	return nil
}

type markBoughtCall struct {
	id     uint
	addQty *float64
}

type fakeInventoryProvider struct {
	lowItems    []domain.Item
	boughtCalls []markBoughtCall
}

func (f *fakeInventoryProvider) ListLowItems(_ context.Context) ([]domain.Item, error) {
	return f.lowItems, nil
}

func (f *fakeInventoryProvider) MarkItemBought(_ context.Context, id uint, addQty *float64) (domain.Item, error) {
	f.boughtCalls = append(f.boughtCalls, markBoughtCall{id: id, addQty: addQty})

	for _, item := range f.lowItems {
		if item.ID == id {
			return item, nil
		}
	}

	return domain.Item{}, repository.ErrItemNotFound
}

func uintPtr(v uint) *uint { return &v }
func boolPtr(v bool) *bool { return &v }

func TestShoppingListService_ManualAdd(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		svc := service.NewShoppingListService(newFakeManualListRepository(), &fakeInventoryProvider{})

		_, err := svc.ManualAdd(context.Background(), domain.NewManualEntry{ItemName: ""})

		assert.ErrorIs(t, err, service.ErrNameRequired)
	})

	t.Run("applies defaults", func(t *testing.T) {
		svc := service.NewShoppingListService(newFakeManualListRepository(), &fakeInventoryProvider{})

		entry, err := svc.ManualAdd(context.Background(), domain.NewManualEntry{ItemName: "Olive oil"})

		require.NoError(t, err)
		assert.Equal(t, 1.0, entry.Qty)
		assert.False(t, entry.Regular)
		assert.False(t, entry.Completed)
		assert.False(t, entry.AddedAt.IsZero())
	})

	t.Run("explicit fields win", func(t *testing.T) {
		svc := service.NewShoppingListService(newFakeManualListRepository(), &fakeInventoryProvider{})

		entry, err := svc.ManualAdd(context.Background(), domain.NewManualEntry{
			ItemName: "Coffee",
			Qty:      floatPtr(2),
			Regular:  boolPtr(true),
		})

		require.NoError(t, err)
		assert.Equal(t, 2.0, entry.Qty)
		assert.True(t, entry.Regular)
	})
}

func TestShoppingListService_GetShoppingList(t *testing.T) {
	repo := newFakeManualListRepository()
	inventory := &fakeInventoryProvider{
		lowItems: []domain.Item{
			{ID: 1, Name: "Milk", CurrentQty: 1, MaxQty: 10, ThresholdPercent: 20},
		},
	}
	svc := service.NewShoppingListService(repo, inventory)

	// A manual entry sharing a low item's name stays its own line.
	_, err := svc.ManualAdd(context.Background(), domain.NewManualEntry{ItemName: "Milk"})
	require.NoError(t, err)
	completed, err := svc.ManualAdd(context.Background(), domain.NewManualEntry{ItemName: "Bread"})
	require.NoError(t, err)
	require.NoError(t, repo.MarkCompleted(context.Background(), completed.ID))

	list, err := svc.GetShoppingList(context.Background())

	require.NoError(t, err)
	require.Len(t, list.Auto, 1)
	assert.Equal(t, "Milk", list.Auto[0].Name)
	assert.Equal(t, 9.0, list.Auto[0].SuggestedQty())
	require.Len(t, list.Manual, 1, "completed entries are filtered out")
	assert.Equal(t, "Milk", list.Manual[0].ItemName)
}

func TestShoppingListService_MarkBought(t *testing.T) {
	t.Run("no id provided", func(t *testing.T) {
		svc := service.NewShoppingListService(newFakeManualListRepository(), &fakeInventoryProvider{})

		err := svc.MarkBought(context.Background(), nil, nil, nil)

		assert.ErrorIs(t, err, service.ErrNoIDProvided)
	})

	t.Run("manual entry is soft-completed", func(t *testing.T) {
		repo := newFakeManualListRepository()
		inventory := &fakeInventoryProvider{}
		svc := service.NewShoppingListService(repo, inventory)

		entry, err := svc.ManualAdd(context.Background(), domain.NewManualEntry{ItemName: "Tea"})
		require.NoError(t, err)

		require.NoError(t, svc.MarkBought(context.Background(), uintPtr(entry.ID), nil, nil))

		assert.True(t, repo.entries[entry.ID].Completed)
		assert.Empty(t, inventory.boughtCalls, "manual entries are not inventory-tracked")
	})

	t.Run("unknown manual entry", func(t *testing.T) {
		svc := service.NewShoppingListService(newFakeManualListRepository(), &fakeInventoryProvider{})

		err := svc.MarkBought(context.Background(), uintPtr(99), nil, nil)

		assert.ErrorIs(t, err, service.ErrManualEntryNotFound)
	})

	t.Run("item id delegates to the inventory", func(t *testing.T) {
		inventory := &fakeInventoryProvider{
			lowItems: []domain.Item{{ID: 3, Name: "Milk", MaxQty: 10}},
		}
		svc := service.NewShoppingListService(newFakeManualListRepository(), inventory)

		require.NoError(t, svc.MarkBought(context.Background(), nil, uintPtr(3), floatPtr(5)))

		require.Len(t, inventory.boughtCalls, 1)
		assert.Equal(t, uint(3), inventory.boughtCalls[0].id)
		require.NotNil(t, inventory.boughtCalls[0].addQty)
		assert.Equal(t, 5.0, *inventory.boughtCalls[0].addQty)
	})

	t.Run("manual id wins when both are given", func(t *testing.T) {
		repo := newFakeManualListRepository()
		inventory := &fakeInventoryProvider{}
		svc := service.NewShoppingListService(repo, inventory)

		entry, err := svc.ManualAdd(context.Background(), domain.NewManualEntry{ItemName: "Rice"})
		require.NoError(t, err)

		require.NoError(t, svc.MarkBought(context.Background(), uintPtr(entry.ID), uintPtr(1), nil))

		assert.True(t, repo.entries[entry.ID].Completed)
		assert.Empty(t, inventory.boughtCalls)
	})
}
