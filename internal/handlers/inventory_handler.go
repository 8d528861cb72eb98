package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"medical-store/internal/clock"
	"medical-store/internal/domain"
	apperrors "medical-store/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InventoryService is the part of the inventory store the HTTP layer uses.
type InventoryService interface {
	Create(ctx context.Context, input domain.NewItem) domain.InventoryItem
	Update(ctx context.Context, id string, patch domain.ItemPatch) (domain.InventoryItem, error)
	AdjustQuantity(ctx context.Context, id string, delta int) (domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) []domain.InventoryItem

	Items() []domain.InventoryItem
	Get(id string) (domain.InventoryItem, error)
	Filtered(filters domain.Filters) []domain.InventoryItem
	Alerts() []domain.InventoryItem
	Snapshot() domain.Snapshot
	Categories() []string
	SupplierCount() int
	Today() time.Time
}

type InventoryHandler struct {
	logger *zap.Logger
	store  InventoryService
}

func NewInventoryHandler(logger *zap.Logger, store InventoryService) *InventoryHandler {
	return &InventoryHandler{
		logger: logger,
		store:  store,
	}
}

// RegisterRoutes mounts the inventory endpoints under group
func (h *InventoryHandler) RegisterRoutes(group *gin.RouterGroup) {
	inventory := group.Group("/inventory")
	{
		inventory.GET("/items", h.ListItems)
		inventory.GET("/items/:id", h.GetItem)
		inventory.POST("/items", h.CreateItem)
		inventory.PUT("/items/:id", h.ReplaceItem)
		inventory.PATCH("/items/:id", h.UpdateItem)
		inventory.DELETE("/items/:id", h.DeleteItem)
		inventory.POST("/items/:id/adjust", h.AdjustQuantity)
		inventory.POST("/reset", h.ResetInventory)
		inventory.GET("/snapshot", h.GetSnapshot)
		inventory.GET("/alerts", h.GetAlerts)
		inventory.GET("/categories", h.GetCategories)
		inventory.GET("/suppliers", h.GetSuppliers)
		inventory.GET("/vocabulary", h.GetVocabulary)
	}
}

func (h *InventoryHandler) toResponse(item domain.InventoryItem, today time.Time) ItemResponse {
	status := domain.Classify(item, today)
	return ItemResponse{
		InventoryItem:   item,
		Status:          status,
		StatusLabel:     status.Label(),
		DaysUntilExpiry: clock.DaysUntil(item.ExpiryDate, today),
		Countdown:       domain.FormatCountdown(item.ExpiryDate, today),
	}
}

func (h *InventoryHandler) toResponses(items []domain.InventoryItem) []ItemResponse {
	today := h.store.Today()
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, h.toResponse(item, today))
	}
	return out
}

// abortWithStoreError maps a store error onto the standard error shape
func (h *InventoryHandler) abortWithStoreError(c *gin.Context, id string, err error) {
	if errors.Is(err, domain.ErrItemNotFound) {
		_ = c.Error(apperrors.NewItemNotFound(id))
		return
	}
	_ = c.Error(apperrors.NewInternalError("inventory operation failed", err))
}

// ListItems handles GET /api/v1/inventory/items
// @Summary      List inventory items
// @Description  Filters by search term (name, batch number, supplier), category and status. Results are ordered by expiry date, earliest first.
// @Tags         inventory
// @Produce      json
// @Param        search    query     string  false  "Case-insensitive substring"
// @Param        category  query     string  false  "Exact category or 'all'"
// @Param        status    query     string  false  "all, healthy, expiring, expired or low-stock"
// @Success      200       {object}  ItemListResponse
// @Failure      400       {object}  ErrorResponse
// @Router       /inventory/items [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	filters := domain.Filters{
		Search:   c.Query("search"),
		Category: c.DefaultQuery("category", domain.FilterAll),
		Status:   c.DefaultQuery("status", domain.FilterAll),
	}

	if !validStatusFilter(filters.Status) {
		_ = c.Error(apperrors.NewValidationError("unknown status filter "+filters.Status, "status"))
		return
	}

	items := h.store.Filtered(filters)
	c.JSON(http.StatusOK, ItemListResponse{
		Items:   h.toResponses(items),
		Count:   len(items),
		Filters: filters,
	})
}

func validStatusFilter(value string) bool {
	for _, v := range domain.StatusFilterValues {
		if v == value {
			return true
		}
	}
	return false
}

// GetItem handles GET /api/v1/inventory/items/:id
// @Summary      Get an inventory item
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  ItemResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /inventory/items/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id := c.Param("id")
	item, err := h.store.Get(id)
	if err != nil {
		h.abortWithStoreError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(item, h.store.Today()))
}

// CreateItem handles POST /api/v1/inventory/items
// @Summary      Create an inventory item
// @Description  Adds a SKU batch at the top of the list with a newly generated id.
// @Description  Send an Idempotency-Key header to make retries safe.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Replays the first response for repeated keys"
// @Param        request          body      CreateItemRequest  true   "Item to create"
// @Success      201              {object}  ItemResponse
// @Failure      400              {object}  ErrorResponse
// @Router       /inventory/items [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request", zap.Error(err))
		_ = c.Error(apperrors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	input, err := req.toNewItem(h.store.Today().Location())
	if err != nil {
		_ = c.Error(err)
		return
	}

	item := h.store.Create(c.Request.Context(), input)
	c.JSON(http.StatusCreated, h.toResponse(item, h.store.Today()))
}

// ReplaceItem handles PUT /api/v1/inventory/items/:id
// @Summary      Replace an inventory item
// @Description  Overwrites every editable field. The id is kept.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Item ID"
// @Param        request  body      CreateItemRequest  true  "Full item"
// @Success      200      {object}  ItemResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /inventory/items/{id} [put]
func (h *InventoryHandler) ReplaceItem(c *gin.Context) {
	id := c.Param("id")

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	patch, err := req.toPatch(h.store.Today().Location())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.applyPatch(c, id, patch)
}

// UpdateItem handles PATCH /api/v1/inventory/items/:id
// @Summary      Update an inventory item
// @Description  Merges the supplied fields into the item. The id never changes.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Item ID"
// @Param        request  body      UpdateItemRequest  true  "Fields to change"
// @Success      200      {object}  ItemResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /inventory/items/{id} [patch]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id := c.Param("id")

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	patch, err := req.toPatch(h.store.Today().Location())
	if err != nil {
		_ = c.Error(err)
		return
	}
	if patch.IsEmpty() {
		_ = c.Error(apperrors.NewInvalidRequest("no fields to update", ""))
		return
	}
	h.applyPatch(c, id, patch)
}

func (h *InventoryHandler) applyPatch(c *gin.Context, id string, patch domain.ItemPatch) {
	item, err := h.store.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.abortWithStoreError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(item, h.store.Today()))
}

// AdjustQuantity handles POST /api/v1/inventory/items/:id/adjust
// @Summary      Adjust stock quantity
// @Description  Adds a signed delta to the quantity. The result is clamped at zero.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Item ID"
// @Param        request  body      AdjustQuantityRequest  true  "Quantity change"
// @Success      200      {object}  ItemResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /inventory/items/{id}/adjust [post]
func (h *InventoryHandler) AdjustQuantity(c *gin.Context) {
	id := c.Param("id")

	var req AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	item, err := h.store.AdjustQuantity(c.Request.Context(), id, *req.Delta)
	if err != nil {
		h.abortWithStoreError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(item, h.store.Today()))
}

// DeleteItem handles DELETE /api/v1/inventory/items/:id
// @Summary      Delete an inventory item
// @Tags         inventory
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  SuccessResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /inventory/items/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.abortWithStoreError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "item deleted successfully"})
}

// ResetInventory handles POST /api/v1/inventory/reset
// @Summary      Restore demo data
// @Description  Replaces the whole inventory with the three seed items.
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  ItemListResponse
// @Router       /inventory/reset [post]
func (h *InventoryHandler) ResetInventory(c *gin.Context) {
	items := h.store.Reset(c.Request.Context())
	c.JSON(http.StatusOK, ItemListResponse{
		Items:   h.toResponses(items),
		Count:   len(items),
		Filters: domain.DefaultFilters(),
	})
}

// GetSnapshot handles GET /api/v1/inventory/snapshot
// @Summary      Dashboard counters
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.Snapshot
// @Router       /inventory/snapshot [get]
func (h *InventoryHandler) GetSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// GetAlerts handles GET /api/v1/inventory/alerts
// @Summary      Expired and expiring items
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  ItemResponse
// @Router       /inventory/alerts [get]
func (h *InventoryHandler) GetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, h.toResponses(h.store.Alerts()))
}

// GetCategories handles GET /api/v1/inventory/categories
// @Summary      Known categories
// @Description  Suggested categories plus every category in use, sorted.
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  string
// @Router       /inventory/categories [get]
func (h *InventoryHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Categories())
}

// GetSuppliers handles GET /api/v1/inventory/suppliers
// @Summary      Distinct supplier count
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  SuppliersResponse
// @Router       /inventory/suppliers [get]
func (h *InventoryHandler) GetSuppliers(c *gin.Context) {
	c.JSON(http.StatusOK, SuppliersResponse{Count: h.store.SupplierCount()})
}

// GetVocabulary handles GET /api/v1/inventory/vocabulary
// @Summary      Units, suggested categories and status filters
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  VocabularyResponse
// @Router       /inventory/vocabulary [get]
func (h *InventoryHandler) GetVocabulary(c *gin.Context) {
	statuses := make([]StatusOption, 0, len(domain.StatusFilterValues))
	for _, value := range domain.StatusFilterValues {
		statuses = append(statuses, StatusOption{Value: value, Label: domain.StatusFilterLabel(value)})
	}
	c.JSON(http.StatusOK, VocabularyResponse{
		Units:               domain.Units,
		SuggestedCategories: domain.SuggestedCategories,
		Statuses:            statuses,
		ExpiryThresholdDays: domain.ExpiryThresholdDays,
	})
}
