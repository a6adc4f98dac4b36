package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InitialPoints is the license credit every driver starts with.
const InitialPoints = 20

type Driver struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	DNI       string    `gorm:"unique;not null" json:"dni"`
	License   string    `gorm:"unique;not null" json:"license"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Points    int       `gorm:"not null;default:20" json:"points"`
	Enabled   bool      `gorm:"not null;default:true" json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (driver *Driver) BeforeCreate(tx *gorm.DB) (err error) {
	if driver.ID == uuid.Nil {
		driver.ID = uuid.New()
	}
	return
}
