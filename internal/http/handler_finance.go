package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fleet-service/internal/http/middleware"
	"fleet-service/internal/model"
	"fleet-service/internal/service"
)

func (h *Handler) listLedger(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	opts, err := parseLedgerQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	entries, summary, err := h.financeService.ListLedger(c.Request.Context(), opts)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": entries, "summary": summary}))
}

func (h *Handler) createLedgerEntry(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		EntryType   string  `json:"entry_type" binding:"required"`
		Category    string  `json:"category"`
		Amount      float64 `json:"amount" binding:"required"`
		Description string  `json:"description"`
		CarID       string  `json:"car_id"`
		DriverID    string  `json:"driver_id"`
		TripID      string  `json:"trip_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	input := service.LedgerEntryInput{
		EntryType:   model.EntryType(strings.ToLower(strings.TrimSpace(req.EntryType))),
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
	}
	if category := strings.ToLower(strings.TrimSpace(req.Category)); category != "" {
		cat := model.ExpenseCategory(category)
		input.Category = &cat
	}

	var err error
	if input.CarID, err = parseUUIDPtr(req.CarID); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid car_id"))
		return
	}
	if input.DriverID, err = parseUUIDPtr(req.DriverID); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid driver_id"))
		return
	}
	if input.TripID, err = parseUUIDPtr(req.TripID); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid trip_id"))
		return
	}

	entry, err := h.financeService.CreateLedgerEntry(c.Request.Context(), principal, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(entry))
}

func (h *Handler) deleteLedgerEntry(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.financeService.DeleteLedgerEntry(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) listEnergyLogs(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	carID, err := parseUUIDQuery(c, "car_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid car_id"))
		return
	}

	logs, err := h.financeService.ListEnergyLogs(c.Request.Context(), carID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": logs}))
}

// createEnergyLog books a charging or fueling session together with
// its ledger expense.
func (h *Handler) createEnergyLog(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		CarID        string   `json:"car_id" binding:"required"`
		LogType      string   `json:"log_type" binding:"required"`
		Location     string   `json:"location"`
		Amount       float64  `json:"amount" binding:"required"`
		Cost         float64  `json:"cost"`
		Kwh          *float64 `json:"kwh"`
		PricePerUnit *float64 `json:"price_per_unit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	carID, err := uuid.Parse(strings.TrimSpace(req.CarID))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid car_id"))
		return
	}

	log, err := h.financeService.CreateEnergyLog(c.Request.Context(), principal, service.EnergyLogInput{
		CarID:        carID,
		LogType:      model.EnergyLogType(strings.ToLower(strings.TrimSpace(req.LogType))),
		Location:     strings.TrimSpace(req.Location),
		Amount:       req.Amount,
		Cost:         req.Cost,
		Kwh:          req.Kwh,
		PricePerUnit: req.PricePerUnit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(log))
}

func (h *Handler) deleteEnergyLog(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.financeService.DeleteEnergyLog(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func parseLedgerQuery(c *gin.Context) (service.LedgerListOptions, error) {
	var opts service.LedgerListOptions

	if raw := strings.ToLower(strings.TrimSpace(c.Query("entry_type"))); raw != "" {
		entryType := model.EntryType(raw)
		opts.EntryType = &entryType
	}
	if raw := strings.ToLower(strings.TrimSpace(c.Query("category"))); raw != "" {
		category := model.ExpenseCategory(raw)
		opts.Category = &category
	}

	carID, err := parseUUIDQuery(c, "car_id")
	if err != nil {
		return opts, err
	}
	opts.CarID = carID

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

	opts.Limit = parseIntQuery(c, "limit")
	opts.Offset = parseIntQuery(c, "offset")

	return opts, nil
}
