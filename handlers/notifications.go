package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gourmet-express/api/middleware"
	"github.com/gourmet-express/api/models"
	"github.com/gourmet-express/api/store"
)

// NotificationHandler is a stub: it records delivery targets and pretends to
// send, but no real push provider is wired.
type NotificationHandler struct {
	Subs store.SubscriptionStore
}

type SubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
	Provider string `json:"provider" binding:"required"`
}

type NotifyRequest struct {
	Title   string `json:"title" binding:"required"`
	Body    string `json:"body" binding:"required"`
	OrderID string `json:"order_id"`
}

func (h *NotificationHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.GetUserID(c)
	err := h.Subs.Put(&models.Subscription{
		UserID:   userID,
		Endpoint: req.Endpoint,
		Provider: req.Provider,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscribed", "user_id": userID})
}

func (h *NotificationHandler) Send(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.Subs.Get(middleware.GetUserID(c))
	delivered := err == nil

	var to *models.Subscription
	if delivered {
		to = sub
	}
	c.JSON(http.StatusOK, gin.H{
		"delivered": delivered,
		"to":        to,
		"title":     req.Title,
		"body":      req.Body,
		"order_id":  req.OrderID,
	})
}
