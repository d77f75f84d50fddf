package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/pantryops/grocery-api/internal/api/handler/v1"
	"github.com/pantryops/grocery-api/internal/domain"
	"github.com/pantryops/grocery-api/internal/service"
)

type stubInventoryService struct {
	listItems        func(ctx context.Context) ([]domain.Item, error)
	createItem       func(ctx context.Context, params domain.NewItem) (domain.Item, error)
	updateItem       func(ctx context.Context, id uint, patch domain.ItemPatch) (domain.Item, error)
	deleteItem       func(ctx context.Context, id uint) error
	listLowItems     func(ctx context.Context) ([]domain.Item, error)
	listTransactions func(ctx context.Context) ([]domain.StockTransaction, error)
}

func (s *stubInventoryService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.listItems(ctx)
}

func (s *stubInventoryService) CreateItem(ctx context.Context, params domain.NewItem) (domain.Item, error) {
	return s.createItem(ctx, params)
}

func (s *stubInventoryService) UpdateItem(ctx context.Context, id uint, patch domain.ItemPatch) (domain.Item, error) {
	return s.updateItem(ctx, id, patch)
}

func (s *stubInventoryService) DeleteItem(ctx context.Context, id uint) error {
	return s.deleteItem(ctx, id)
}

func (s *stubInventoryService) ListLowItems(ctx context.Context) ([]domain.Item, error) {
	return s.listLowItems(ctx)
}

func (s *stubInventoryService) ListTransactions(ctx context.Context) ([]domain.StockTransaction, error) {
	return s.listTransactions(ctx)
}

func setupInventoryRouter(svc v1.InventoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := v1.NewInventoryHandler(svc)
	router := gin.New()
	router.GET("/api/items", handler.HandleListItems)
	router.POST("/api/items", handler.HandleCreateItem)
	router.GET("/api/items/low", handler.HandleListLowItems)
	router.PUT("/api/items/:itemID", handler.HandleUpdateItem)
	router.DELETE("/api/items/:itemID", handler.HandleDeleteItem)
	router.GET("/api/transactions", handler.HandleListTransactions)

	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestHandleListItems(t *testing.T) {
	lastUpdated := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	svc := &stubInventoryService{
		listItems: func(_ context.Context) ([]domain.Item, error) {
			return []domain.Item{
				{
					ID:               1,
					Name:             "Milk",
					Category:         "Dairy",
					MaxQty:           20,
					CurrentQty:       5,
					ThresholdPercent: 20,
					LastUpdated:      lastUpdated,
				},
			}, nil
		},
	}
	router := setupInventoryRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/items", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{
			"id": 1,
			"name": "Milk",
			"category": "Dairy",
			"max_qty": 20,
			"current_qty": 5,
			"threshold_percent": 20,
			"percent_left": 25.0,
			"low": false,
			"last_updated": "2024-05-01T10:00:00Z"
		}
	]`, w.Body.String())
}

func TestHandleCreateItem(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var got domain.NewItem
		svc := &stubInventoryService{
			createItem: func(_ context.Context, params domain.NewItem) (domain.Item, error) {
				got = params
				return domain.Item{ID: 7}, nil
			},
		}
		router := setupInventoryRouter(svc)

		w := performRequest(router, http.MethodPost, "/api/items",
			`{"name":"Milk","max_qty":10,"current_qty":1}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":7}`, w.Body.String())
		assert.Equal(t, "Milk", got.Name)
		require.NotNil(t, got.MaxQty)
		assert.Equal(t, 10.0, *got.MaxQty)
		assert.Nil(t, got.ThresholdPercent, "omitted fields stay nil")
	})

	t.Run("missing name", func(t *testing.T) {
		router := setupInventoryRouter(&stubInventoryService{})

		w := performRequest(router, http.MethodPost, "/api/items", `{"max_qty":10}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "name")
	})
}

func TestHandleUpdateItem(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		var gotPatch domain.ItemPatch
		svc := &stubInventoryService{
			updateItem: func(_ context.Context, id uint, patch domain.ItemPatch) (domain.Item, error) {
				gotPatch = patch
				return domain.Item{ID: id}, nil
			},
		}
		router := setupInventoryRouter(svc)

		w := performRequest(router, http.MethodPut, "/api/items/3", `{"category":"Pantry"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		require.NotNil(t, gotPatch.Category)
		assert.Equal(t, "Pantry", *gotPatch.Category)
		assert.Nil(t, gotPatch.CurrentQty)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := &stubInventoryService{
			updateItem: func(_ context.Context, _ uint, _ domain.ItemPatch) (domain.Item, error) {
				return domain.Item{}, service.ErrItemNotFound
			},
		}
		router := setupInventoryRouter(svc)

		w := performRequest(router, http.MethodPut, "/api/items/9", `{"name":"Oats"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"item with ID 9 is not found"}`, w.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		router := setupInventoryRouter(&stubInventoryService{})

		w := performRequest(router, http.MethodPut, "/api/items/abc", `{"name":"Oats"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleDeleteItem(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &stubInventoryService{
			deleteItem: func(_ context.Context, _ uint) error {
				return nil
			},
		}
		router := setupInventoryRouter(svc)

		w := performRequest(router, http.MethodDelete, "/api/items/3", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := &stubInventoryService{
			deleteItem: func(_ context.Context, _ uint) error {
				return service.ErrItemNotFound
			},
		}
		router := setupInventoryRouter(svc)

		w := performRequest(router, http.MethodDelete, "/api/items/3", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleListLowItems(t *testing.T) {
	svc := &stubInventoryService{
		listLowItems: func(_ context.Context) ([]domain.Item, error) {
			return []domain.Item{
				{
					ID:               2,
					Name:             "Milk",
					Category:         "Dairy",
					MaxQty:           10,
					CurrentQty:       1,
					ThresholdPercent: 20,
					LastUpdated:      time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}
	router := setupInventoryRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/items/low", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"low":true`)
	assert.Contains(t, w.Body.String(), `"percent_left":10`)
}

func TestHandleListTransactions(t *testing.T) {
	itemID := uint(4)
	svc := &stubInventoryService{
		listTransactions: func(_ context.Context) ([]domain.StockTransaction, error) {
			return []domain.StockTransaction{
				{
					ID:           1,
					ItemID:       &itemID,
					ChangeAmount: 8,
					Reason:       domain.ReasonBought,
					Timestamp:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}
	router := setupInventoryRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/transactions", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{
			"id": 1,
			"item_id": 4,
			"change_amount": 8,
			"reason": "bought",
			"timestamp": "2024-05-01T10:00:00Z"
		}
	]`, w.Body.String())
}
