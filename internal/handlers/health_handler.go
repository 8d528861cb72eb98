package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and the storage backend in use.
type HealthHandler struct {
	service string
	storage string
	store   InventoryService
}

func NewHealthHandler(service, storage string, store InventoryService) *HealthHandler {
	return &HealthHandler{service: service, storage: storage, store: store}
}

// HealthCheck godoc
// @Summary      Health check endpoint
// @Description  Returns the service name, the storage driver and the current item count.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.service,
		"storage": h.storage,
		"items":   len(h.store.Items()),
	})
}
