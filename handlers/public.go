package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gourmet-express/api/statemachine"
	"github.com/gourmet-express/api/store"
)

// CatalogHandler serves the public restaurant and menu surface.
type CatalogHandler struct {
	Catalog store.CatalogStore
}

// ListRestaurants returns all restaurants, optionally narrowed by ?q= which
// matches name or cuisine.
func (h *CatalogHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.Catalog.ListRestaurants(c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

func (h *CatalogHandler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.Catalog.GetRestaurant(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// ListMenuItems returns the available menu of a restaurant.
func (h *CatalogHandler) ListMenuItems(c *gin.Context) {
	items, err := h.Catalog.ListMenuItems(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

func (h *CatalogHandler) GetMenuItem(c *gin.Context) {
	item, err := h.Catalog.GetMenuItem(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_item": item})
}

// TrackingStages dumps the tracking stage table for documentation.
func (h *CatalogHandler) TrackingStages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stages":      statemachine.Stages(),
		"description": "Fixed order tracking progression; the step query parameter indexes this table",
	})
}
