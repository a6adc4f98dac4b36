package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gbenitez/multatrack/internal/models"
)

// fakeStore mirrors the SQL semantics of Repo in memory: the deduction is
// applied as one step and enabled comes from the unclamped new balance.
type fakeStore struct {
	drivers  map[string]*models.Driver
	vehicles map[string]*models.Vehicle
	tickets  map[uuid.UUID]*models.Ticket
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		drivers:  map[string]*models.Driver{},
		vehicles: map[string]*models.Vehicle{},
		tickets:  map[uuid.UUID]*models.Ticket{},
	}
}

func (f *fakeStore) DriverByDNI(ctx context.Context, dni string) (*models.Driver, error) {
	if driver, ok := f.drivers[dni]; ok {
		copied := *driver
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) VehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	if vehicle, ok := f.vehicles[plate]; ok {
		copied := *vehicle
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) TicketByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	if ticket, ok := f.tickets[id]; ok {
		copied := *ticket
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	var tickets []models.Ticket
	for _, ticket := range f.tickets {
		tickets = append(tickets, *ticket)
	}
	return tickets, nil
}

func (f *fakeStore) ListTicketsByDriver(ctx context.Context, dni string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	for _, ticket := range f.tickets {
		if ticket.DriverDNI == dni {
			tickets = append(tickets, *ticket)
		}
	}
	return tickets, nil
}

func (f *fakeStore) SaveIssue(ctx context.Context, dni string, deduct int, ticket *models.Ticket) (*models.Driver, error) {
	driver, ok := f.drivers[dni]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	newPoints := driver.Points - deduct
	driver.Enabled = newPoints > 0
	if newPoints < 0 {
		newPoints = 0
	}
	driver.Points = newPoints
	f.tickets[ticket.ID] = ticket
	copied := *driver
	return &copied, nil
}

func (f *fakeStore) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (int64, error) {
	ticket, ok := f.tickets[id]
	if !ok {
		return 0, nil
	}
	ticket.Paid = true
	at := paidAt
	ticket.PaidAt = &at
	return 1, nil
}

func seedStore() *fakeStore {
	store := newFakeStore()
	store.drivers["12345678"] = &models.Driver{
		ID: uuid.New(), Name: "Juan Perez", Email: "juan@example.com",
		DNI: "12345678", License: "B12345", Points: models.InitialPoints, Enabled: true,
	}
	store.vehicles["ABC123"] = &models.Vehicle{
		ID: uuid.New(), Plate: "ABC123", Make: "Toyota", Model: "Corolla", Year: 2020, Color: "Gris", Active: true,
	}
	return store
}

func validInput() IssueInput {
	return IssueInput{
		DriverDNI: "12345678",
		Plate:     "ABC123",
		Reason:    "Exceso de velocidad grave",
		Amount:    30000,
		Severity:  "grave",
	}
}

func TestIssueDeductsPointsBySeverity(t *testing.T) {
	store := seedStore()
	svc := NewTicketService(store)

	result, err := svc.Issue(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if result.Driver.Points != 15 {
		t.Fatalf("expected 15 points after a grave ticket, got %d", result.Driver.Points)
	}
	if !result.Driver.Enabled {
		t.Fatalf("driver with points left should stay enabled")
	}
	if result.Ticket.PointsDeducted != 5 {
		t.Fatalf("expected 5 points deducted, got %d", result.Ticket.PointsDeducted)
	}
	if result.Ticket.Paid {
		t.Fatalf("new ticket must start unpaid")
	}
}

func TestIssueFloorsPointsAndDisablesDriver(t *testing.T) {
	store := seedStore()
	store.drivers["12345678"].Points = 2
	svc := NewTicketService(store)

	result, err := svc.Issue(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if result.Driver.Points != 0 {
		t.Fatalf("expected points floored at 0, got %d", result.Driver.Points)
	}
	if result.Driver.Enabled {
		t.Fatalf("driver at 0 points must be disabled")
	}
}

func TestIssueUnknownDriverCreatesNoTicket(t *testing.T) {
	store := seedStore()
	svc := NewTicketService(store)

	in := validInput()
	in.DriverDNI = "99999999"
	if _, err := svc.Issue(context.Background(), in); !errors.Is(err, ErrDriverNotFound) {
		t.Fatalf("expected ErrDriverNotFound, got %v", err)
	}
	if len(store.tickets) != 0 {
		t.Fatalf("no ticket should be created for an unknown driver")
	}
}

func TestIssueUnknownVehicleLeavesDriverUntouched(t *testing.T) {
	store := seedStore()
	svc := NewTicketService(store)

	in := validInput()
	in.Plate = "ZZZ999"
	if _, err := svc.Issue(context.Background(), in); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
	if store.drivers["12345678"].Points != models.InitialPoints {
		t.Fatalf("driver points must not change when the vehicle is unknown")
	}
	if len(store.tickets) != 0 {
		t.Fatalf("no ticket should be created for an unknown vehicle")
	}
}

func TestIssueNormalizesPlateCase(t *testing.T) {
	store := seedStore()
	svc := NewTicketService(store)

	in := validInput()
	in.Plate = "abc123"
	result, err := svc.Issue(context.Background(), in)
	if err != nil {
		t.Fatalf("lowercase plate should resolve the registered vehicle: %v", err)
	}
	if result.Ticket.Plate != "ABC123" {
		t.Fatalf("ticket should carry the normalized plate, got %q", result.Ticket.Plate)
	}
}

func TestIssueReportsAllValidationErrors(t *testing.T) {
	store := seedStore()
	svc := NewTicketService(store)

	_, err := svc.Issue(context.Background(), IssueInput{Amount: -5})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Fields) != 5 {
		t.Fatalf("expected 5 violations, got %d: %v", len(validationErr.Fields), validationErr.Fields)
	}
	if len(store.tickets) != 0 {
		t.Fatalf("invalid input must not create a ticket")
	}
}

func TestIssueUnknownSeverityDeductsOnePoint(t *testing.T) {
	store := seedStore()
	svc := NewTicketService(store)

	in := validInput()
	in.Severity = "desconocida"
	result, err := svc.Issue(context.Background(), in)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if result.Ticket.PointsDeducted != 1 {
		t.Fatalf("unknown severity should deduct 1 point, got %d", result.Ticket.PointsDeducted)
	}
	if result.Driver.Points != models.InitialPoints-1 {
		t.Fatalf("expected %d points, got %d", models.InitialPoints-1, result.Driver.Points)
	}
}

func TestPaySetsPaidAndTimestamp(t *testing.T) {
	store := seedStore()
	svc := NewTicketService(store)

	result, err := svc.Issue(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	paid, err := svc.Pay(context.Background(), result.Ticket.ID)
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if !paid.Paid || paid.PaidAt == nil {
		t.Fatalf("expected ticket marked paid with timestamp, got %+v", paid)
	}
	if store.drivers["12345678"].Points != 15 {
		t.Fatalf("payment must not restore driver points")
	}
}

func TestPayAgainKeepsPaidAndReappliesTimestamp(t *testing.T) {
	store := seedStore()
	svc := NewTicketService(store)
	first := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	times := []time.Time{time.Now(), first, second}
	svc.now = func() time.Time {
		next := times[0]
		times = times[1:]
		return next
	}

	result, err := svc.Issue(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Pay(context.Background(), result.Ticket.ID); err != nil {
		t.Fatalf("first Pay: %v", err)
	}
	repaid, err := svc.Pay(context.Background(), result.Ticket.ID)
	if err != nil {
		t.Fatalf("second Pay: %v", err)
	}
	if !repaid.Paid {
		t.Fatalf("paid must never regress")
	}
	if !repaid.PaidAt.Equal(second) {
		t.Fatalf("re-payment re-applies paid_at: got %v, want %v", repaid.PaidAt, second)
	}
}

func TestPayUnknownTicket(t *testing.T) {
	svc := NewTicketService(seedStore())
	if _, err := svc.Pay(context.Background(), uuid.New()); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}
}
