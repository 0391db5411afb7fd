package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gourmet-express/api/middleware"
	"github.com/gourmet-express/api/service"
)

type PaymentHandler struct {
	Payments *service.PaymentService
}

type PaymentInitiateRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Method  string `json:"method" binding:"required,oneof=card wallet cod"`
}

type PaymentVerifyRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}

func (h *PaymentHandler) Initiate(c *gin.Context) {
	var req PaymentInitiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intent, err := h.Payments.Initiate(middleware.GetUserID(c), req.OrderID, service.PaymentMethod(req.Method))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, intent)
}

func (h *PaymentHandler) Verify(c *gin.Context) {
	var req PaymentVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := h.Payments.Verify(middleware.GetUserID(c), req.PaymentID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Payment verified",
		"order_id": receipt.OrderID,
		"status":   receipt.Status,
	})
}
