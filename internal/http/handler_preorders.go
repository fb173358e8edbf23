package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/service"
	"fleet-service/internal/storage"
)

// createBooking is the public preorder form. No session required.
func (h *Handler) createBooking(c *gin.Context) {
	var req struct {
		CustomerName    string `json:"customer_name" binding:"required"`
		CustomerPhone   string `json:"customer_phone" binding:"required"`
		CustomerAddress string `json:"customer_address"`
		RouteID         string `json:"route_id" binding:"required"`
		ScheduledDate   string `json:"scheduled_date" binding:"required"`
		ScheduledTime   string `json:"scheduled_time" binding:"required"`
		Notes           string `json:"notes"`
		PaymentProofURL string `json:"payment_proof_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	routeID, err := uuid.Parse(strings.TrimSpace(req.RouteID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid route_id"))
		return
	}

	preorder, err := h.preorderService.CreateBooking(c.Request.Context(), service.BookingInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		RouteID:         routeID,
		ScheduledDate:   req.ScheduledDate,
		ScheduledTime:   req.ScheduledTime,
		Notes:           req.Notes,
		PaymentProofURL: req.PaymentProofURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(preorder))
}

// uploadPaymentProof stores a booking payment screenshot and returns
// the URL to attach to the preorder.
func (h *Handler) uploadPaymentProof(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("file missing"))
		return
	}

	url, err := h.store.SaveImage(header)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotImage):
			c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, storage.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, errorResponse(err.Error()))
		default:
			h.log.Error().Err(err).Msg("save upload")
			c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
		}
		return
	}

	c.JSON(http.StatusCreated, successResponse(gin.H{"url": url}))
}

func (h *Handler) listPreorders(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var opts service.ListPreordersOptions
	if statusParam := c.Query("status"); statusParam != "" {
		for _, val := range splitCSV(statusParam) {
			opts.Statuses = append(opts.Statuses, model.PreorderStatus(strings.ToLower(val)))
		}
	}
	opts.ScheduledDate = strings.TrimSpace(c.Query("date"))
	opts.Limit = parseIntQuery(c, "limit")
	opts.Offset = parseIntQuery(c, "offset")

	preorders, err := h.preorderService.List(c.Request.Context(), opts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": preorders}))
}

func (h *Handler) getPreorder(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	preorder, err := h.preorderService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(preorder))
}

func (h *Handler) updatePreorder(c *gin.Context) {
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
		CustomerName  string  `json:"customer_name"`
		CustomerPhone string  `json:"customer_phone"`
		RouteID       string  `json:"route_id"`
		ScheduledDate string  `json:"scheduled_date"`
		ScheduledTime string  `json:"scheduled_time"`
		Notes         *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	routeID, err := parseUUIDPtr(req.RouteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid route_id"))
		return
	}

	preorder, err := h.preorderService.Update(c.Request.Context(), principal, id, service.PreorderUpdateInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		RouteID:       routeID,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Notes:         req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(preorder))
}

func (h *Handler) assignPreorder(c *gin.Context) {
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
		DriverID string `json:"driver_id" binding:"required"`
		CarID    string `json:"car_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	driverID, err := uuid.Parse(strings.TrimSpace(req.DriverID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid driver_id"))
		return
	}
	carID, err := uuid.Parse(strings.TrimSpace(req.CarID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid car_id"))
		return
	}

	if err := h.preorderService.Assign(c.Request.Context(), principal, id, driverID, carID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "assigned"}))
}

// startPreorderTrip turns an assigned preorder into a live trip and
// flips the car and driver to their working statuses.
func (h *Handler) startPreorderTrip(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	trip, err := h.preorderService.StartTrip(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(trip))
}

func (h *Handler) cancelPreorder(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.preorderService.Cancel(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "cancelled"}))
}

func (h *Handler) deletePreorder(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.preorderService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}
