package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet-service/internal/http/middleware"
)

// runSync copies the requested tables to the external database and
// reports a per-table outcome.
func (h *Handler) runSync(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	// empty body means the default table set
	var req struct {
		Tables []string `json:"tables"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
	}

	results, err := h.syncService.Run(c.Request.Context(), principal, req.Tables)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"results": results}))
}
