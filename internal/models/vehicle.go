package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Vehicle struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Plate     string    `gorm:"unique;not null" json:"plate"`
	Make      string    `gorm:"not null" json:"make"`
	Model     string    `gorm:"not null" json:"model"`
	Year      int       `gorm:"not null" json:"year"`
	Color     string    `json:"color"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Plates are stored upper-cased so lookups are case-insensitive.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

func (vehicle *Vehicle) BeforeCreate(tx *gorm.DB) (err error) {
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	vehicle.Plate = NormalizePlate(vehicle.Plate)
	return
}
