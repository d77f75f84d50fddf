package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantryops/grocery-api/internal/api/handler/v1/request"
	"github.com/pantryops/grocery-api/internal/api/handler/v1/response"
	"github.com/pantryops/grocery-api/internal/domain"
	"github.com/pantryops/grocery-api/internal/service"
)

type ShoppingListService interface {
	ManualAdd(ctx context.Context, params domain.NewManualEntry) (domain.ManualListEntry, error)
	GetShoppingList(ctx context.Context) (domain.ShoppingList, error)
	MarkBought(ctx context.Context, manualID, itemID *uint, addQty *float64) error
}

type ShoppingListHandler struct {
	svc ShoppingListService
}

func NewShoppingListHandler(svc ShoppingListService) *ShoppingListHandler {
	return &ShoppingListHandler{
		svc: svc,
	}
}

// HandleGetShoppingList godoc
// @Summary      Get the combined shopping list
// @Description  Low-stock items with suggested quantities next to active manual entries
// @Tags         shopping-list
// @Produce      json
// @Success      200  {object}  response.ShoppingList
// @Failure      500  {object}  response.Err
// @Router       /shopping-list [get]
func (h *ShoppingListHandler) HandleGetShoppingList(ctx *gin.Context) {
	list, err := h.svc.GetShoppingList(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetShoppingList -> h.svc.GetShoppingList -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewShoppingList(list))
}

// HandleManualAdd godoc
// @Summary      Add a manual shopping-list entry
// @Tags         shopping-list
// @Accept       json
// @Produce      json
// @Param        input  body      request.ManualAddRequest  true  "entry to add"
// @Success      201    {object}  response.Created
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /manual-add [post]
func (h *ShoppingListHandler) HandleManualAdd(ctx *gin.Context) {
	var req request.ManualAddRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := h.svc.ManualAdd(ctx.Request.Context(), domain.NewManualEntry{
		ItemName: req.Name,
		Qty:      req.Qty,
		Regular:  req.Regular,
	})
	if err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrNameRequired))
			return
		}

		err = fmt.Errorf("v1.HandleManualAdd -> h.svc.ManualAdd -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.Created{ID: entry.ID})
}

// HandleMarkBought godoc
// @Summary      Mark a shopping-list line as bought
// @Description  Pass manual_id to complete a manual entry, or item_id (with optional add_qty) to restock an item
// @Tags         shopping-list
// @Accept       json
// @Produce      json
// @Param        input  body      request.MarkBoughtRequest  true  "line to resolve"
// @Success      200    {object}  response.OK
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /mark-bought [post]
func (h *ShoppingListHandler) HandleMarkBought(ctx *gin.Context) {
	var req request.MarkBoughtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err := h.svc.MarkBought(ctx.Request.Context(), req.ManualID, req.ItemID, req.AddQty)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoIDProvided):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrNoIDProvided))
		case errors.Is(err, service.ErrManualEntryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("manual entry", "ID", *req.ManualID))
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", *req.ItemID))
		default:
			err = fmt.Errorf("v1.HandleMarkBought -> h.svc.MarkBought -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.OK{OK: true})
}
