package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/service"
)

func (h *Handler) listLiveTrips(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	trips, err := h.tripService.ListLive(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": trips}))
}

func (h *Handler) listTripHistory(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	opts, err := parseHistoryQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	trips, err := h.tripService.ListHistory(c.Request.Context(), opts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": trips}))
}

func (h *Handler) getTrip(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	trip, err := h.tripService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trip))
}

// updateTripStatus drives a trip through its lifecycle. Moving to
// completed settles the preorder, books the fare and frees the car and
// driver in one transaction.
func (h *Handler) updateTripStatus(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	target := model.TripStatus(strings.ToLower(strings.TrimSpace(req.Status)))

	if err := h.tripService.UpdateStatus(c.Request.Context(), principal, id, target); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "updated"}))
}

func parseHistoryQuery(c *gin.Context) (service.HistoryOptions, error) {
	var opts service.HistoryOptions

	dateFrom, err := parseTimeQuery(c, "date_from")
	if err != nil {
		return opts, err
	}
	opts.DateFrom = dateFrom

	dateTo, err := parseTimeQuery(c, "date_to")
	if err != nil {
		return opts, err
	}
	opts.DateTo = dateTo

	driverID, err := parseUUIDQuery(c, "driver_id")
	if err != nil {
		return opts, err
	}
	opts.DriverID = driverID

	routeID, err := parseUUIDQuery(c, "route_id")
	if err != nil {
		return opts, err
	}
	opts.RouteID = routeID

	opts.Limit = parseIntQuery(c, "limit")
	opts.Offset = parseIntQuery(c, "offset")

	return opts, nil
}
