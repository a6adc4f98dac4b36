package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gbenitez/multatrack/internal/models"
)

// Store is the persistence surface the ticket workflow needs. Lookups return
// gorm.ErrRecordNotFound when the record is absent.
type Store interface {
	DriverByDNI(ctx context.Context, dni string) (*models.Driver, error)
	VehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error)
	TicketByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error)
	ListTickets(ctx context.Context) ([]models.Ticket, error)
	ListTicketsByDriver(ctx context.Context, dni string) ([]models.Ticket, error)
	SaveIssue(ctx context.Context, dni string, deduct int, ticket *models.Ticket) (*models.Driver, error)
	MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (int64, error)
}

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) DriverByDNI(ctx context.Context, dni string) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.WithContext(ctx).Where("dni = ?", dni).First(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *Repo) VehicleByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).Where("plate = ?", plate).First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *Repo) TicketByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *Repo) ListTickets(ctx context.Context) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := r.db.WithContext(ctx).Order("issued_at desc").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *Repo) ListTicketsByDriver(ctx context.Context, dni string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if err := r.db.WithContext(ctx).Where("driver_dni = ?", dni).Order("issued_at desc").Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// SaveIssue deducts points from the driver and inserts the ticket in one
// transaction. The deduction is a single UPDATE so concurrent issuances
// cannot lose each other's writes; both SET expressions read the pre-update
// row, so enabled reflects the unclamped new balance.
func (r *Repo) SaveIssue(ctx context.Context, dni string, deduct int, ticket *models.Ticket) (*models.Driver, error) {
	var driver models.Driver
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Driver{}).Where("dni = ?", dni).Updates(map[string]interface{}{
			"points":  gorm.Expr("GREATEST(points - ?, 0)", deduct),
			"enabled": gorm.Expr("points - ? > 0", deduct),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Create(ticket).Error; err != nil {
			return err
		}
		return tx.Where("dni = ?", dni).First(&driver).Error
	})
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *Repo) MarkPaid(ctx context.Context, id uuid.UUID, paidAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Ticket{}).Where("id = ?", id).Updates(map[string]interface{}{
		"paid":    true,
		"paid_at": paidAt,
	})
	return result.RowsAffected, result.Error
}
