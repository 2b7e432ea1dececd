package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"curbside/middleware"
	"curbside/models"
	"curbside/services/order"
	"curbside/utils"
)

// OrderHandler exposes order creation for customers and status transitions
// for vendors.
type OrderHandler struct {
	Service order.OrderService
	Logger  *zap.Logger
}

func NewOrderHandler(svc order.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{Service: svc, Logger: logger}
}

// CreateOrderHandler places an order against one truck. Any caller-supplied
// status is ignored; new orders always start pending.
func (h *OrderHandler) CreateOrderHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "")
		return
	}

	var input struct {
		Items []models.OrderItem `json:"items"`
		Total float64            `json:"total"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ord, err := h.Service.CreateOrder(c.Request.Context(), models.OrderInput{
		TruckID: c.Param("id"),
		UserID:  ident.UID,
		Items:   input.Items,
		Total:   input.Total,
	})
	if err != nil {
		utils.JSONError(c, utils.ErrorStatus(err), "failed to create order", err.Error())
		return
	}
	c.JSON(http.StatusCreated, ord)
}

// SetStatusHandler advances an order through the fixed status progression.
func (h *OrderHandler) SetStatusHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "")
		return
	}

	var input struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	err := h.Service.SetStatus(c.Request.Context(), ident.UID, c.Param("id"), c.Param("orderId"), input.Status)
	if err != nil {
		utils.JSONError(c, utils.ErrorStatus(err), "failed to update order status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

// MyOrdersHandler returns the caller's cross-truck order history.
func (h *OrderHandler) MyOrdersHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "")
		return
	}

	orders, err := h.Service.MyOrders(c.Request.Context(), ident.UID)
	if err != nil {
		utils.JSONError(c, utils.ErrorStatus(err), "failed to list orders", err.Error())
		return
	}
	c.JSON(http.StatusOK, orders)
}
