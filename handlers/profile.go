package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gourmet-express/api/middleware"
	"github.com/gourmet-express/api/models"
	"github.com/gourmet-express/api/store"
)

type ProfileHandler struct {
	Users store.IdentityStore
}

type ProfileUpdateRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.Users.FindByID(middleware.GetUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profileJSON(user))
}

// UpdateProfile applies a partial update; absent fields keep their value.
// Email and credentials cannot be changed here.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.UpdateProfile(middleware.GetUserID(c), store.ProfilePatch{
		FullName: req.FullName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profileJSON(user))
}

func profileJSON(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"phone":     user.Phone,
		"address":   user.Address,
	}
}
