package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pantryops/grocery-api/internal/api/handler/v1/request"
	"github.com/pantryops/grocery-api/internal/api/handler/v1/response"
	"github.com/pantryops/grocery-api/internal/domain"
	"github.com/pantryops/grocery-api/internal/service"
)

type InventoryService interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	CreateItem(ctx context.Context, params domain.NewItem) (domain.Item, error)
	UpdateItem(ctx context.Context, id uint, patch domain.ItemPatch) (domain.Item, error)
	DeleteItem(ctx context.Context, id uint) error
	ListLowItems(ctx context.Context) ([]domain.Item, error)
	ListTransactions(ctx context.Context) ([]domain.StockTransaction, error)
}

type InventoryHandler struct {
	svc InventoryService
}

func NewInventoryHandler(svc InventoryService) *InventoryHandler {
	return &InventoryHandler{
		svc: svc,
	}
}

// HandleListItems godoc
// @Summary      List all tracked items
// @Description  Returns every item with its derived percent_left and low flags
// @Tags         items
// @Produce      json
// @Success      200  {array}   response.Item
// @Failure      500  {object}  response.Err
// @Router       /items [get]
func (h *InventoryHandler) HandleListItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewItems(items))
}

// HandleCreateItem godoc
// @Summary      Create a tracked item
// @Description  Omitted fields default to category "Other", quantities 0 and threshold 20
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateItemRequest  true  "item to create"
// @Success      201    {object}  response.Created
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /items [post]
func (h *InventoryHandler) HandleCreateItem(ctx *gin.Context) {
	var req request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.CreateItem(ctx.Request.Context(), domain.NewItem{
		Name:             req.Name,
		Category:         req.Category,
		MaxQty:           req.MaxQty,
		CurrentQty:       req.CurrentQty,
		ThresholdPercent: req.ThresholdPercent,
	})
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrNameRequired))
			return
		}

		err = fmt.Errorf("v1.HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.Created{ID: item.ID})
}

// HandleUpdateItem godoc
// @Summary      Update an item
// @Description  Applies only the fields present in the payload; editing current_qty is recorded in the transaction log
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        itemID  path      int                        true  "item ID"
// @Param        input   body      request.UpdateItemRequest  true  "fields to update"
// @Success      200     {object}  response.OK
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /items/{itemID} [put]
func (h *InventoryHandler) HandleUpdateItem(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "itemID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateItemRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	_, err = h.svc.UpdateItem(ctx.Request.Context(), id, domain.ItemPatch{
		Name:             req.Name,
		Category:         req.Category,
		MaxQty:           req.MaxQty,
		CurrentQty:       req.CurrentQty,
		ThresholdPercent: req.ThresholdPercent,
	})
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateItem -> h.svc.UpdateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK{OK: true})
}

// HandleDeleteItem godoc
// @Summary      Delete an item
// @Description  Removes the item permanently; its stock transactions are retained
// @Tags         items
// @Produce      json
// @Param        itemID  path      int  true  "item ID"
// @Success      200     {object}  response.OK
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /items/{itemID} [delete]
func (h *InventoryHandler) HandleDeleteItem(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "itemID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteItem(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteItem -> h.svc.DeleteItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OK{OK: true})
}

// HandleListLowItems godoc
// @Summary      List low-stock items
// @Tags         items
// @Produce      json
// @Success      200  {array}   response.Item
// @Failure      500  {object}  response.Err
// @Router       /items/low [get]
func (h *InventoryHandler) HandleListLowItems(ctx *gin.Context) {
	items, err := h.svc.ListLowItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListLowItems -> h.svc.ListLowItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewItems(items))
}

// HandleListTransactions godoc
// @Summary      List the stock transaction log
// @Description  Flat append-only log of quantity changes, newest first
// @Tags         transactions
// @Produce      json
// @Success      200  {array}   response.Transaction
// @Failure      500  {object}  response.Err
// @Router       /transactions [get]
func (h *InventoryHandler) HandleListTransactions(ctx *gin.Context) {
	transactions, err := h.svc.ListTransactions(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListTransactions -> h.svc.ListTransactions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewTransactions(transactions))
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v %q", name, raw)
	}

	return uint(id), nil
}
