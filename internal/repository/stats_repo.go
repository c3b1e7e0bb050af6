package repository

import (
	"bluecycle/internal/domain"
	"bluecycle/internal/models"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalUsers       int64 `json:"total_users"`
	TotalDrivers     int64 `json:"total_drivers"`
	TotalPickups     int64 `json:"total_pickups"`
	PendingPickups   int64 `json:"pending_pickups"`
	CompletedPickups int64 `json:"completed_pickups"`
	TotalVolume      int64 `json:"total_volume"`
	TotalCommission  int64 `json:"total_commission"`
	PendingPayouts   int64 `json:"pending_payouts"`
}

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) GetDashboardStats() (*DashboardStats, error) {
	var s DashboardStats
	r.db.Model(&models.User{}).Where("role = ?", domain.RoleUser).Count(&s.TotalUsers)
	r.db.Model(&models.User{}).Where("role = ?", domain.RoleDriver).Count(&s.TotalDrivers)
	r.db.Model(&models.Pickup{}).Count(&s.TotalPickups)
	r.db.Model(&models.Pickup{}).Where("status = ?", domain.PickupPending).Count(&s.PendingPickups)
	r.db.Model(&models.Pickup{}).Where("status = ?", domain.PickupCompleted).Count(&s.CompletedPickups)

	var vol struct{ Total int64 }
	r.db.Model(&models.Pickup{}).Select("COALESCE(SUM(price), 0) as total").
		Where("status = ?", domain.PickupCompleted).Scan(&vol)
	s.TotalVolume = vol.Total

	var com struct{ Total int64 }
	r.db.Model(&models.Pickup{}).Select("COALESCE(SUM(admin_commission), 0) as total").
		Where("status = ?", domain.PickupCompleted).Scan(&com)
	s.TotalCommission = com.Total

	r.db.Model(&models.PayoutRequest{}).Where("status = ?", domain.PayoutPending).Count(&s.PendingPayouts)
	return &s, nil
}
