package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	inventoryapp "github.com/tradecore/backend/internal/application/inventory"
)

// StockHandler handles stock lot, movement, adjustment and on-hand endpoints
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *inventoryapp.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// IntakeLot books a stock lot into a warehouse
func (h *StockHandler) IntakeLot(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.IntakeLotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	lot, err := h.stockService.IntakeLot(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, lot)
}

// RecordMovement records an inbound, outbound or transfer movement
func (h *StockHandler) RecordMovement(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	movement, err := h.stockService.RecordMovement(c.Request.Context(), companyID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, movement)
}

// PostAdjustment posts a signed inventory adjustment
func (h *StockHandler) PostAdjustment(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.PostAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	adjustment, err := h.stockService.PostAdjustment(c.Request.Context(), companyID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, adjustment)
}

// OnHand returns the on-hand quantity for a product across all warehouses
func (h *StockHandler) OnHand(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	onHand, err := h.stockService.OnHand(c.Request.Context(), companyID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, onHand)
}

// OnHandInWarehouse returns the on-hand quantity for a product in one warehouse
func (h *StockHandler) OnHandInWarehouse(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := parseIDParam(c, "product_id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	warehouseID, err := parseIDParam(c, "warehouse_id")
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	onHand, err := h.stockService.OnHandInWarehouse(c.Request.Context(), companyID, productID, warehouseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, onHand)
}

// LowStock lists products whose on-hand quantity is at or below the threshold
func (h *StockHandler) LowStock(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	threshold := decimal.NewFromInt(10)
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			h.BadRequest(c, "Invalid threshold value")
			return
		}
		threshold = parsed
	}

	items, err := h.stockService.LowStock(c.Request.Context(), companyID, threshold)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}
