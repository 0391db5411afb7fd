package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gourmet-express/api/apperr"
)

var kindStatus = map[apperr.Kind]int{
	apperr.Unauthorized:  http.StatusUnauthorized,
	apperr.NotFound:      http.StatusNotFound,
	apperr.Conflict:      http.StatusConflict,
	apperr.InvalidItem:   http.StatusBadRequest,
	apperr.InvalidFormat: http.StatusBadRequest,
	apperr.Validation:    http.StatusBadRequest,
}

// fail translates a service error into the HTTP response for its kind.
func fail(c *gin.Context, err error) {
	if kind, ok := apperr.KindOf(err); ok {
		if status, known := kindStatus[kind]; known {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
