package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ticket references its driver and vehicle by value (DNI and plate), not by
// stored foreign key: deleting either leaves the ticket orphaned on purpose.
type Ticket struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	DriverDNI      string     `gorm:"not null;index" json:"driver_dni"`
	Plate          string     `gorm:"not null" json:"plate"`
	Reason         string     `gorm:"not null" json:"reason"`
	Amount         float64    `gorm:"not null" json:"amount"`
	Severity       Severity   `gorm:"not null" json:"severity"`
	PointsDeducted int        `gorm:"not null" json:"points_deducted"`
	IssuedAt       time.Time  `gorm:"not null" json:"issued_at"`
	Paid           bool       `gorm:"not null;default:false" json:"paid"`
	PaidAt         *time.Time `json:"paid_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (ticket *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	return
}
