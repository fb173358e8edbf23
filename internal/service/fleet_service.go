package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

// FleetService covers the flat registries: cars, drivers, routes,
// maintenance logs and payment methods. Writes are admin-only; staff
// of either role may read.
type FleetService struct {
	carRepo         *repository.CarRepository
	driverRepo      *repository.DriverRepository
	routeRepo       *repository.RouteRepository
	maintenanceRepo *repository.MaintenanceRepository
	paymentRepo     *repository.PaymentMethodRepository
}

func NewFleetService(
	carRepo *repository.CarRepository,
	driverRepo *repository.DriverRepository,
	routeRepo *repository.RouteRepository,
	maintenanceRepo *repository.MaintenanceRepository,
	paymentRepo *repository.PaymentMethodRepository,
) *FleetService {
	return &FleetService{
		carRepo:         carRepo,
		driverRepo:      driverRepo,
		routeRepo:       routeRepo,
		maintenanceRepo: maintenanceRepo,
		paymentRepo:     paymentRepo,
	}
}

type CarInput struct {
	PlateNumber string
	Model       string
	Year        int
	CarType     model.CarType
	Mileage     float64
}

func (s *FleetService) ListCars(ctx context.Context) ([]model.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *FleetService) ListIdleCars(ctx context.Context) ([]model.Car, error) {
	return s.carRepo.ListByStatus(ctx, model.TripStatusIdle)
}

func (s *FleetService) CreateCar(ctx context.Context, principal model.Principal, input CarInput) (*model.Car, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.PlateNumber) == "" || strings.TrimSpace(input.Model) == "" || input.Year == 0 {
		return nil, ErrInvalidInput
	}
	if !input.CarType.Valid() {
		return nil, ErrInvalidInput
	}

	car := &model.Car{
		PlateNumber: strings.TrimSpace(input.PlateNumber),
		Model:       strings.TrimSpace(input.Model),
		Year:        input.Year,
		CarType:     input.CarType,
		Mileage:     input.Mileage,
		Status:      model.TripStatusIdle,
	}
	car.ApplyTypeDefaults()

	if err := s.carRepo.Create(ctx, car); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return car, nil
}

func (s *FleetService) UpdateCar(ctx context.Context, principal model.Principal, id uuid.UUID, input CarInput) (*model.Car, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if err := applyCarUpdate(car, input); err != nil {
		return nil, err
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// applyCarUpdate merges non-empty input fields onto the car. Changing
// the drivetrain reinitializes the energy columns so a converted car
// does not keep the old type's gauges.
func applyCarUpdate(car *model.Car, input CarInput) error {
	if strings.TrimSpace(input.PlateNumber) != "" {
		car.PlateNumber = strings.TrimSpace(input.PlateNumber)
	}
	if strings.TrimSpace(input.Model) != "" {
		car.Model = strings.TrimSpace(input.Model)
	}
	if input.Year != 0 {
		car.Year = input.Year
	}
	if input.CarType != "" {
		if !input.CarType.Valid() {
			return ErrInvalidInput
		}
		if input.CarType != car.CarType {
			car.CarType = input.CarType
			car.ApplyTypeDefaults()
		}
	}
	if input.Mileage > 0 {
		car.Mileage = input.Mileage
	}
	return nil
}

func (s *FleetService) DeleteCar(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return s.carRepo.Delete(ctx, id)
}

type DriverInput struct {
	Name             string
	Phone            string
	Email            string
	Status           model.DriverStatus
	HoursDrivenToday *float64
	LicenseUploaded  *bool
	PermitUploaded   *bool
}

func (s *FleetService) ListDrivers(ctx context.Context) ([]model.Driver, error) {
	return s.driverRepo.List(ctx)
}

func (s *FleetService) ListAvailableDrivers(ctx context.Context) ([]model.Driver, error) {
	return s.driverRepo.ListAvailable(ctx)
}

func (s *FleetService) CreateDriver(ctx context.Context, principal model.Principal, input DriverInput) (*model.Driver, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidInput
	}

	driver := &model.Driver{
		Name:   strings.TrimSpace(input.Name),
		Phone:  strings.TrimSpace(input.Phone),
		Email:  normalizeEmail(input.Email),
		Status: model.DriverStatusAvailable,
	}
	if input.Status != "" {
		if !input.Status.Valid() {
			return nil, ErrInvalidInput
		}
		driver.Status = input.Status
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *FleetService) UpdateDriver(ctx context.Context, principal model.Principal, id uuid.UUID, input DriverInput) (*model.Driver, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if strings.TrimSpace(input.Name) != "" {
		driver.Name = strings.TrimSpace(input.Name)
	}
	if input.Phone != "" {
		driver.Phone = strings.TrimSpace(input.Phone)
	}
	if input.Email != "" {
		driver.Email = normalizeEmail(input.Email)
	}
	if input.Status != "" {
		if !input.Status.Valid() {
			return nil, ErrInvalidInput
		}
		driver.Status = input.Status
	}
	if input.HoursDrivenToday != nil {
		driver.HoursDrivenToday = *input.HoursDrivenToday
	}
	if input.LicenseUploaded != nil {
		driver.LicenseUploaded = *input.LicenseUploaded
	}
	if input.PermitUploaded != nil {
		driver.PermitUploaded = *input.PermitUploaded
	}

	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *FleetService) DeleteDriver(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return s.driverRepo.Delete(ctx, id)
}

type RouteInput struct {
	Name           string
	Origin         string
	Destination    string
	DistanceKm     float64
	BasePrice      float64
	EstimatedTolls float64
}

func (s *FleetService) ListRoutes(ctx context.Context) ([]model.Route, error) {
	return s.routeRepo.List(ctx)
}

func (s *FleetService) CreateRoute(ctx context.Context, principal model.Principal, input RouteInput) (*model.Route, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Origin) == "" ||
		strings.TrimSpace(input.Destination) == "" {
		return nil, ErrInvalidInput
	}
	if input.DistanceKm <= 0 || input.BasePrice <= 0 {
		return nil, ErrInvalidInput
	}

	route := &model.Route{
		Name:           strings.TrimSpace(input.Name),
		Origin:         strings.TrimSpace(input.Origin),
		Destination:    strings.TrimSpace(input.Destination),
		DistanceKm:     input.DistanceKm,
		BasePrice:      input.BasePrice,
		EstimatedTolls: input.EstimatedTolls,
	}

	if err := s.routeRepo.Create(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *FleetService) UpdateRoute(ctx context.Context, principal model.Principal, id uuid.UUID, input RouteInput) (*model.Route, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	route, err := s.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if strings.TrimSpace(input.Name) != "" {
		route.Name = strings.TrimSpace(input.Name)
	}
	if strings.TrimSpace(input.Origin) != "" {
		route.Origin = strings.TrimSpace(input.Origin)
	}
	if strings.TrimSpace(input.Destination) != "" {
		route.Destination = strings.TrimSpace(input.Destination)
	}
	if input.DistanceKm > 0 {
		route.DistanceKm = input.DistanceKm
	}
	if input.BasePrice > 0 {
		route.BasePrice = input.BasePrice
	}
	if input.EstimatedTolls >= 0 {
		route.EstimatedTolls = input.EstimatedTolls
	}

	if err := s.routeRepo.Update(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

func (s *FleetService) DeleteRoute(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return s.routeRepo.Delete(ctx, id)
}

type MaintenanceInput struct {
	CarID            uuid.UUID
	MaintenanceType  string
	Cost             float64
	Description      string
	MileageAtService *float64
}

func (s *FleetService) ListMaintenanceLogs(ctx context.Context, carID *uuid.UUID) ([]model.MaintenanceLog, error) {
	return s.maintenanceRepo.List(ctx, carID)
}

func (s *FleetService) CreateMaintenanceLog(ctx context.Context, principal model.Principal, input MaintenanceInput) (*model.MaintenanceLog, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if input.CarID == uuid.Nil || strings.TrimSpace(input.MaintenanceType) == "" {
		return nil, ErrInvalidInput
	}
	if _, err := s.carRepo.GetByID(ctx, input.CarID); err != nil {
		return nil, notFoundOr(err)
	}

	log := &model.MaintenanceLog{
		CarID:            input.CarID,
		MaintenanceType:  strings.TrimSpace(input.MaintenanceType),
		Cost:             input.Cost,
		Description:      input.Description,
		MileageAtService: input.MileageAtService,
	}

	if err := s.maintenanceRepo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *FleetService) DeleteMaintenanceLog(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return s.maintenanceRepo.Delete(ctx, id)
}

type PaymentMethodInput struct {
	Name          string
	AccountName   string
	AccountNumber string
	QRCodeURL     string
	IsActive      *bool
}

// ListPaymentMethods serves both surfaces: the public booking page only
// sees active methods, staff see everything.
func (s *FleetService) ListPaymentMethods(ctx context.Context, activeOnly bool) ([]model.PaymentMethod, error) {
	return s.paymentRepo.List(ctx, activeOnly)
}

func (s *FleetService) CreatePaymentMethod(ctx context.Context, principal model.Principal, input PaymentMethodInput) (*model.PaymentMethod, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidInput
	}

	method := &model.PaymentMethod{
		Name:          strings.TrimSpace(input.Name),
		AccountName:   strings.TrimSpace(input.AccountName),
		AccountNumber: strings.TrimSpace(input.AccountNumber),
		QRCodeURL:     input.QRCodeURL,
		IsActive:      true,
	}
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}

	if err := s.paymentRepo.Create(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *FleetService) UpdatePaymentMethod(ctx context.Context, principal model.Principal, id uuid.UUID, input PaymentMethodInput) (*model.PaymentMethod, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	method, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if strings.TrimSpace(input.Name) != "" {
		method.Name = strings.TrimSpace(input.Name)
	}
	if input.AccountName != "" {
		method.AccountName = strings.TrimSpace(input.AccountName)
	}
	if input.AccountNumber != "" {
		method.AccountNumber = strings.TrimSpace(input.AccountNumber)
	}
	if input.QRCodeURL != "" {
		method.QRCodeURL = input.QRCodeURL
	}
	if input.IsActive != nil {
		method.IsActive = *input.IsActive
	}

	if err := s.paymentRepo.Update(ctx, method); err != nil {
		return nil, err
	}
	return method, nil
}

func (s *FleetService) DeletePaymentMethod(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return s.paymentRepo.Delete(ctx, id)
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
