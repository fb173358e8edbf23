package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/service"
)

// recordLocation ingests one GPS fix from a driver device and fans it
// out to dashboard subscribers.
func (h *Handler) recordLocation(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		TripID     string  `json:"trip_id" binding:"required"`
		Latitude   float64 `json:"latitude"`
		Longitude  float64 `json:"longitude"`
		Heading    float64 `json:"heading"`
		Speed      float64 `json:"speed"`
		Accuracy   float64 `json:"accuracy"`
		RecordedAt string  `json:"recorded_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	tripID, err := uuid.Parse(strings.TrimSpace(req.TripID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid trip_id"))
		return
	}

	input := service.LocationInput{
		TripID:    tripID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Heading:   req.Heading,
		Speed:     req.Speed,
		Accuracy:  req.Accuracy,
	}
	if raw := strings.TrimSpace(req.RecordedAt); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("invalid recorded_at"))
			return
		}
		input.RecordedAt = &ts
	}

	loc, err := h.locationService.Record(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(loc))
}

// latestLocations returns the newest fix for every trip in progress,
// used to seed the map before the websocket feed takes over.
func (h *Handler) latestLocations(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	locations, err := h.locationService.Latest(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": locations}))
}

func (h *Handler) serveLocationFeed(c *gin.Context) {
	if err := h.hub.Serve(c.Writer, c.Request); err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
	}
}
