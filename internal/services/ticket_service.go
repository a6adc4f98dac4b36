package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gbenitez/multatrack/internal/models"
	"github.com/gbenitez/multatrack/internal/validation"
)

// TicketService runs the issuance and payment workflows against a Store.
type TicketService struct {
	store Store
	now   func() time.Time
}

func NewTicketService(store Store) *TicketService {
	return &TicketService{store: store, now: time.Now}
}

type IssueInput struct {
	DriverDNI string
	Plate     string
	Reason    string
	Amount    float64
	Severity  string
}

// IssueResult reports the ticket created and the driver's balance after the
// deduction.
type IssueResult struct {
	Ticket *models.Ticket
	Driver *models.Driver
}

// Issue validates the candidate, resolves driver and vehicle, deducts license
// points by severity (floored at zero, driver disabled on reaching zero) and
// persists the driver update and the new ticket atomically.
func (s *TicketService) Issue(ctx context.Context, in IssueInput) (*IssueResult, error) {
	candidate := validation.TicketCandidate{
		DriverDNI: in.DriverDNI,
		Plate:     models.NormalizePlate(in.Plate),
		Reason:    in.Reason,
		Amount:    in.Amount,
		Severity:  in.Severity,
	}
	if errs := validation.ValidateTicket(candidate); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	if _, err := s.store.DriverByDNI(ctx, candidate.DriverDNI); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	vehicle, err := s.store.VehicleByPlate(ctx, candidate.Plate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	deduct := models.PointsForSeverity(models.Severity(candidate.Severity))
	issuedAt := s.now()
	ticket := &models.Ticket{
		ID:             uuid.New(),
		DriverDNI:      candidate.DriverDNI,
		Plate:          vehicle.Plate,
		Reason:         candidate.Reason,
		Amount:         candidate.Amount,
		Severity:       models.Severity(candidate.Severity),
		PointsDeducted: deduct,
		IssuedAt:       issuedAt,
		Paid:           false,
	}

	driver, err := s.store.SaveIssue(ctx, candidate.DriverDNI, deduct, ticket)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, err
	}

	return &IssueResult{Ticket: ticket, Driver: driver}, nil
}

// Pay marks a ticket as paid, recording the payment time. The transition is
// one-way; paying an already-paid ticket re-applies paid_at and nothing else.
// Points are never restored by payment.
func (s *TicketService) Pay(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	ticket, err := s.store.TicketByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	paidAt := s.now()
	matched, err := s.store.MarkPaid(ctx, id, paidAt)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrTicketNotFound
	}

	ticket.Paid = true
	ticket.PaidAt = &paidAt
	return ticket, nil
}

func (s *TicketService) List(ctx context.Context) ([]models.Ticket, error) {
	return s.store.ListTickets(ctx)
}

func (s *TicketService) ListByDriver(ctx context.Context, dni string) ([]models.Ticket, error) {
	return s.store.ListTicketsByDriver(ctx, dni)
}
