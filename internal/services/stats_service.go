package services

import (
	"context"
	"math"

	"gorm.io/gorm"

	"github.com/gbenitez/multatrack/internal/models"
)

type DashboardStats struct {
	TotalDrivers   int64 `json:"total_drivers"`
	TotalVehicles  int64 `json:"total_vehicles"`
	TotalTickets   int64 `json:"total_tickets"`
	PendingTickets int64 `json:"pending_tickets"`
	PaidTickets    int64 `json:"paid_tickets"`
	PayRate        int   `json:"pay_rate"`
	EnabledDrivers int64 `json:"enabled_drivers"`
	ActiveVehicles int64 `json:"active_vehicles"`
}

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Dashboard recomputes the aggregate counts on every call; nothing is cached.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	db := s.db.WithContext(ctx)

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalDrivers, db.Model(&models.Driver{})},
		{&stats.TotalVehicles, db.Model(&models.Vehicle{})},
		{&stats.TotalTickets, db.Model(&models.Ticket{})},
		{&stats.PendingTickets, db.Model(&models.Ticket{}).Where("paid = ?", false)},
		{&stats.PaidTickets, db.Model(&models.Ticket{}).Where("paid = ?", true)},
		{&stats.EnabledDrivers, db.Model(&models.Driver{}).Where("enabled = ?", true)},
		{&stats.ActiveVehicles, db.Model(&models.Vehicle{}).Where("active = ?", true)},
	}
	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			return nil, err
		}
	}

	stats.PayRate = PayRate(stats.PaidTickets, stats.TotalTickets)
	return stats, nil
}

// PayRate is the paid percentage rounded to the nearest integer, 0 when there
// are no tickets at all.
func PayRate(paid, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(paid) / float64(total) * 100))
}
