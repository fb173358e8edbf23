package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type PreorderService struct {
	preorderRepo *repository.PreorderRepository
	tripRepo     *repository.TripRepository
	routeRepo    *repository.RouteRepository
	carRepo      *repository.CarRepository
	driverRepo   *repository.DriverRepository
}

func NewPreorderService(
	preorderRepo *repository.PreorderRepository,
	tripRepo *repository.TripRepository,
	routeRepo *repository.RouteRepository,
	carRepo *repository.CarRepository,
	driverRepo *repository.DriverRepository,
) *PreorderService {
	return &PreorderService{
		preorderRepo: preorderRepo,
		tripRepo:     tripRepo,
		routeRepo:    routeRepo,
		carRepo:      carRepo,
		driverRepo:   driverRepo,
	}
}

type BookingInput struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	RouteID         uuid.UUID
	ScheduledDate   string
	ScheduledTime   string
	Notes           string
	PaymentProofURL string
}

// ValidateBooking enforces the public form's required fields.
func ValidateBooking(input BookingInput) error {
	if strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.CustomerPhone) == "" ||
		input.RouteID == uuid.Nil ||
		strings.TrimSpace(input.ScheduledDate) == "" ||
		strings.TrimSpace(input.ScheduledTime) == "" {
		return ErrInvalidInput
	}
	return nil
}

// CreateBooking serves the public booking page; no principal required.
func (s *PreorderService) CreateBooking(ctx context.Context, input BookingInput) (*model.Preorder, error) {
	if err := ValidateBooking(input); err != nil {
		return nil, err
	}

	if _, err := s.routeRepo.GetByID(ctx, input.RouteID); err != nil {
		return nil, notFoundOr(err)
	}

	routeID := input.RouteID
	preorder := &model.Preorder{
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerAddress: strings.TrimSpace(input.CustomerAddress),
		RouteID:         &routeID,
		ScheduledDate:   input.ScheduledDate,
		ScheduledTime:   input.ScheduledTime,
		Status:          model.PreorderStatusPending,
		Notes:           strings.TrimSpace(input.Notes),
		PaymentProofURL: input.PaymentProofURL,
	}

	if err := s.preorderRepo.Create(ctx, preorder); err != nil {
		return nil, err
	}
	return preorder, nil
}

type ListPreordersOptions struct {
	Statuses      []model.PreorderStatus
	ScheduledDate string
	Limit         int
	Offset        int
}

func (s *PreorderService) List(ctx context.Context, opts ListPreordersOptions) ([]model.Preorder, error) {
	return s.preorderRepo.List(ctx, repository.PreorderFilter{
		Statuses:      opts.Statuses,
		ScheduledDate: opts.ScheduledDate,
		Limit:         opts.Limit,
		Offset:        opts.Offset,
	})
}

func (s *PreorderService) Get(ctx context.Context, id uuid.UUID) (*model.Preorder, error) {
	preorder, err := s.preorderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return preorder, nil
}

type PreorderUpdateInput struct {
	CustomerName  string
	CustomerPhone string
	RouteID       *uuid.UUID
	ScheduledDate string
	ScheduledTime string
	Notes         *string
}

func (s *PreorderService) Update(ctx context.Context, principal model.Principal, id uuid.UUID, input PreorderUpdateInput) (*model.Preorder, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	preorder, err := s.preorderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if strings.TrimSpace(input.CustomerName) != "" {
		preorder.CustomerName = strings.TrimSpace(input.CustomerName)
	}
	if input.CustomerPhone != "" {
		preorder.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	}
	if input.RouteID != nil {
		if _, err := s.routeRepo.GetByID(ctx, *input.RouteID); err != nil {
			return nil, notFoundOr(err)
		}
		preorder.RouteID = input.RouteID
	}
	if input.ScheduledDate != "" {
		preorder.ScheduledDate = input.ScheduledDate
	}
	if input.ScheduledTime != "" {
		preorder.ScheduledTime = input.ScheduledTime
	}
	if input.Notes != nil {
		preorder.Notes = strings.TrimSpace(*input.Notes)
	}

	if err := s.preorderRepo.Update(ctx, preorder); err != nil {
		return nil, err
	}
	return preorder, nil
}

// Assign binds a driver and car to a pending preorder.
func (s *PreorderService) Assign(ctx context.Context, principal model.Principal, id, driverID, carID uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	preorder, err := s.preorderRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundOr(err)
	}
	if preorder.Status != model.PreorderStatusPending && preorder.Status != model.PreorderStatusAssigned {
		return ErrInvalidStatus
	}

	if _, err := s.driverRepo.GetByID(ctx, driverID); err != nil {
		return notFoundOr(err)
	}
	if _, err := s.carRepo.GetByID(ctx, carID); err != nil {
		return notFoundOr(err)
	}

	return s.preorderRepo.Assign(ctx, id, driverID, carID)
}

// StartTrip turns an assigned preorder into a live trip. The fare is
// seeded from the route's base price when a route is still linked.
func (s *PreorderService) StartTrip(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Trip, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}

	preorder, err := s.preorderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if preorder.Status != model.PreorderStatusAssigned {
		return nil, ErrInvalidStatus
	}
	if preorder.AssignedCarID == nil {
		return nil, ErrInvalidStatus
	}

	var fare *float64
	if preorder.Route != nil {
		price := preorder.Route.BasePrice
		fare = &price
	}

	return s.tripRepo.StartFromPreorder(ctx, preorder, fare)
}

func (s *PreorderService) Cancel(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}

	preorder, err := s.preorderRepo.GetByID(ctx, id)
	if err != nil {
		return notFoundOr(err)
	}
	if preorder.Status == model.PreorderStatusCompleted || preorder.Status == model.PreorderStatusInProgress {
		return ErrInvalidStatus
	}

	return s.preorderRepo.UpdateStatus(ctx, id, model.PreorderStatusCancelled)
}

func (s *PreorderService) Delete(ctx context.Context, principal model.Principal, id uuid.UUID) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	return s.preorderRepo.Delete(ctx, id)
}
