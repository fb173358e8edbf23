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

func (h *Handler) listCars(c *gin.Context) {
	var (
		cars []model.Car
		err  error
	)
	if strings.EqualFold(c.Query("status"), "idle") {
		cars, err = h.fleetService.ListIdleCars(c.Request.Context())
	} else {
		cars, err = h.fleetService.ListCars(c.Request.Context())
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": cars}))
}

type carPayload struct {
	PlateNumber string  `json:"plate_number" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	Year        int     `json:"year" binding:"required"`
	CarType     string  `json:"car_type" binding:"required"`
	Mileage     float64 `json:"mileage"`
}

func (p carPayload) toInput() service.CarInput {
	return service.CarInput{
		PlateNumber: strings.TrimSpace(p.PlateNumber),
		Model:       strings.TrimSpace(p.Model),
		Year:        p.Year,
		CarType:     model.CarType(strings.ToLower(strings.TrimSpace(p.CarType))),
		Mileage:     p.Mileage,
	}
}

func (h *Handler) createCar(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req carPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	car, err := h.fleetService.CreateCar(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(car))
}

func (h *Handler) updateCar(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req carPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	car, err := h.fleetService.UpdateCar(c.Request.Context(), principal, id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(car))
}

func (h *Handler) deleteCar(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.fleetService.DeleteCar(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) listDrivers(c *gin.Context) {
	var (
		drivers []model.Driver
		err     error
	)
	if strings.EqualFold(c.Query("status"), "available") {
		drivers, err = h.fleetService.ListAvailableDrivers(c.Request.Context())
	} else {
		drivers, err = h.fleetService.ListDrivers(c.Request.Context())
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": drivers}))
}

type driverPayload struct {
	Name             string   `json:"name" binding:"required"`
	Phone            string   `json:"phone"`
	Email            string   `json:"email"`
	Status           string   `json:"status"`
	HoursDrivenToday *float64 `json:"hours_driven_today"`
	LicenseUploaded  *bool    `json:"license_uploaded"`
	PermitUploaded   *bool    `json:"permit_uploaded"`
}

func (p driverPayload) toInput() service.DriverInput {
	return service.DriverInput{
		Name:             strings.TrimSpace(p.Name),
		Phone:            strings.TrimSpace(p.Phone),
		Email:            strings.TrimSpace(p.Email),
		Status:           model.DriverStatus(strings.ToLower(strings.TrimSpace(p.Status))),
		HoursDrivenToday: p.HoursDrivenToday,
		LicenseUploaded:  p.LicenseUploaded,
		PermitUploaded:   p.PermitUploaded,
	}
}

func (h *Handler) createDriver(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req driverPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	driver, err := h.fleetService.CreateDriver(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(driver))
}

func (h *Handler) updateDriver(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req driverPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	driver, err := h.fleetService.UpdateDriver(c.Request.Context(), principal, id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(driver))
}

func (h *Handler) deleteDriver(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.fleetService.DeleteDriver(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

// listRoutes is also mounted on the public group so the booking page
// can offer the route catalogue without a session.
func (h *Handler) listRoutes(c *gin.Context) {
	routes, err := h.fleetService.ListRoutes(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": routes}))
}

type routePayload struct {
	Name           string  `json:"name" binding:"required"`
	Origin         string  `json:"origin" binding:"required"`
	Destination    string  `json:"destination" binding:"required"`
	DistanceKm     float64 `json:"distance_km" binding:"required"`
	BasePrice      float64 `json:"base_price" binding:"required"`
	EstimatedTolls float64 `json:"estimated_tolls"`
}

func (p routePayload) toInput() service.RouteInput {
	return service.RouteInput{
		Name:           strings.TrimSpace(p.Name),
		Origin:         strings.TrimSpace(p.Origin),
		Destination:    strings.TrimSpace(p.Destination),
		DistanceKm:     p.DistanceKm,
		BasePrice:      p.BasePrice,
		EstimatedTolls: p.EstimatedTolls,
	}
}

func (h *Handler) createRoute(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req routePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	route, err := h.fleetService.CreateRoute(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(route))
}

func (h *Handler) updateRoute(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req routePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	route, err := h.fleetService.UpdateRoute(c.Request.Context(), principal, id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(route))
}

func (h *Handler) deleteRoute(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.fleetService.DeleteRoute(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

func (h *Handler) listMaintenanceLogs(c *gin.Context) {
	carID, err := parseUUIDQuery(c, "car_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid car_id"))
		return
	}

	logs, err := h.fleetService.ListMaintenanceLogs(c.Request.Context(), carID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": logs}))
}

func (h *Handler) createMaintenanceLog(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req struct {
		CarID            string   `json:"car_id" binding:"required"`
		MaintenanceType  string   `json:"maintenance_type" binding:"required"`
		Cost             float64  `json:"cost"`
		Description      string   `json:"description"`
		MileageAtService *float64 `json:"mileage_at_service"`
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

	log, err := h.fleetService.CreateMaintenanceLog(c.Request.Context(), principal, service.MaintenanceInput{
		CarID:            carID,
		MaintenanceType:  strings.TrimSpace(req.MaintenanceType),
		Cost:             req.Cost,
		Description:      strings.TrimSpace(req.Description),
		MileageAtService: req.MileageAtService,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(log))
}

func (h *Handler) deleteMaintenanceLog(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.fleetService.DeleteMaintenanceLog(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}

// listActivePaymentMethods serves the public booking page.
func (h *Handler) listActivePaymentMethods(c *gin.Context) {
	methods, err := h.fleetService.ListPaymentMethods(c.Request.Context(), true)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": methods}))
}

func (h *Handler) listPaymentMethods(c *gin.Context) {
	methods, err := h.fleetService.ListPaymentMethods(c.Request.Context(), false)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"items": methods}))
}

type paymentMethodPayload struct {
	Name          string `json:"name" binding:"required"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	QRCodeURL     string `json:"qr_code_url"`
	IsActive      *bool  `json:"is_active"`
}

func (p paymentMethodPayload) toInput() service.PaymentMethodInput {
	return service.PaymentMethodInput{
		Name:          strings.TrimSpace(p.Name),
		AccountName:   strings.TrimSpace(p.AccountName),
		AccountNumber: strings.TrimSpace(p.AccountNumber),
		QRCodeURL:     strings.TrimSpace(p.QRCodeURL),
		IsActive:      p.IsActive,
	}
}

func (h *Handler) createPaymentMethod(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	var req paymentMethodPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	method, err := h.fleetService.CreatePaymentMethod(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(method))
}

func (h *Handler) updatePaymentMethod(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req paymentMethodPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	method, err := h.fleetService.UpdatePaymentMethod(c.Request.Context(), principal, id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(method))
}

func (h *Handler) deletePaymentMethod(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("principal missing"))
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.fleetService.DeletePaymentMethod(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"status": "deleted"}))
}
