package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CraftLedger/craft_api/internal/repository"
	"github.com/CraftLedger/craft_api/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides the liveness endpoint.
type HealthHandler struct {
	productRepo *repository.ProductRepository
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(productRepo *repository.ProductRepository) *HealthHandler {
	return &HealthHandler{productRepo: productRepo}
}

// GetHealth responds with service status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	storeStatus := "ok"
	products := 0
	if n, err := h.productRepo.Count(); err != nil {
		storeStatus = "unavailable"
	} else {
		products = n
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status": "ok",
		"uptime": int(time.Since(startTime).Seconds()),
		"store": gin.H{
			"status":   storeStatus,
			"products": products,
		},
	})
}
