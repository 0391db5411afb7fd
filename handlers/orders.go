package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gourmet-express/api/middleware"
	"github.com/gourmet-express/api/service"
)

type OrderHandler struct {
	Orders *service.OrderService
}

type PlaceOrderRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
	Items        []struct {
		ItemID   string `json:"item_id" binding:"required"`
		Quantity int    `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1,dive"`
}

// PlaceOrder creates a new order for the authenticated user.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]service.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.LineItem{ItemID: it.ItemID, Quantity: it.Quantity})
	}

	order, err := h.Orders.PlaceOrder(middleware.GetUserID(c), req.RestaurantID, items)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.Orders.ListOrders(middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.Orders.GetOrder(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// GetOrderStatus returns just the status view of an order.
func (h *OrderHandler) GetOrderStatus(c *gin.Context) {
	order, err := h.Orders.GetOrder(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":          order.ID,
		"status":      order.Status,
		"eta_minutes": order.EtaMinutes,
	})
}

// TrackOrder advances the tracking view to the client-supplied step. Clients
// poll this endpoint periodically; it never holds the connection open.
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	step, err := strconv.Atoi(c.DefaultQuery("step", "0"))
	if err != nil || step < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step must be a non-negative integer"})
		return
	}

	order, err := h.Orders.AdvanceTracking(middleware.GetUserID(c), c.Param("id"), step)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":            order.ID,
		"status":        order.Status,
		"tracking_note": order.TrackingNote,
		"eta_minutes":   order.EtaMinutes,
	})
}
