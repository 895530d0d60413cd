package repository

import (
	"time"

	"femcare/internal/models"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	SummaryCounts() (*models.DashboardSummary, error)
	PieChartBuckets() ([]models.PieSlice, error)
	MonthlyHistogram(year int) ([]models.MonthCount, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

// SummaryCounts computes the admin landing-page figures. Every call reads
// the live tables; there is no cached snapshot to invalidate.
func (r *dashboardRepository) SummaryCounts() (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}
	nonAdmin := []models.Role{models.RoleFeminine, models.RoleHealthWorker}

	yearStart := time.Date(time.Now().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)
	if err := r.db.Model(&models.MenstruationPeriod{}).
		Where("menstruation_date >= ? AND menstruation_date < ?", yearStart, yearEnd).
		Count(&summary.TotalPeriodsThisYear).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.User{}).
		Where("user_role_id = ?", models.RoleHealthWorker).
		Count(&summary.HealthWorkerCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).
		Where("user_role_id IN ?", nonAdmin).
		Count(&summary.UserCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).
		Where("user_role_id IN ? AND is_active = ?", nonAdmin, false).
		Count(&summary.InactiveCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).
		Where("user_role_id = ? AND is_active = ?", models.RoleHealthWorker, false).
		Count(&summary.InactiveWorkerCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).
		Where("user_role_id = ? AND is_active = ?", models.RoleFeminine, false).
		Count(&summary.InactiveFeminine).Error; err != nil {
		return nil, err
	}

	return summary, nil
}

// PieChartBuckets returns the three feminine-status buckets. The categories
// are mutually exclusive and zero-count buckets are omitted entirely, never
// emitted with a zero value.
func (r *dashboardRepository) PieChartBuckets() ([]models.PieSlice, error) {
	var active, inactive, pending int64

	if err := r.db.Model(&models.User{}).
		Where("user_role_id = ? AND is_active = ? AND menstruation_status = ?",
			models.RoleFeminine, true, true).
		Count(&active).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).
		Where("user_role_id = ? AND is_active = ? AND menstruation_status = ?",
			models.RoleFeminine, true, false).
		Count(&inactive).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.User{}).
		Where("user_role_id = ? AND is_active = ?", models.RoleFeminine, false).
		Count(&pending).Error; err != nil {
		return nil, err
	}

	slices := []models.PieSlice{}
	if active != 0 {
		slices = append(slices, models.PieSlice{Value: active, Category: "Active Period"})
	}
	if inactive != 0 {
		slices = append(slices, models.PieSlice{Value: inactive, Category: "Inactive Period"})
	}
	if pending != 0 {
		slices = append(slices, models.PieSlice{Value: pending, Category: "Pending Feminine (Not verify yet)"})
	}
	return slices, nil
}

// MonthlyHistogram returns exactly twelve entries, January through December,
// zero months included; the consuming chart expects a dense series.
func (r *dashboardRepository) MonthlyHistogram(year int) ([]models.MonthCount, error) {
	histogram := make([]models.MonthCount, 0, 12)
	for month := time.January; month <= time.December; month++ {
		monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		monthEnd := monthStart.AddDate(0, 1, 0)

		var count int64
		if err := r.db.Model(&models.MenstruationPeriod{}).
			Where("menstruation_date >= ? AND menstruation_date < ?", monthStart, monthEnd).
			Count(&count).Error; err != nil {
			return nil, err
		}
		histogram = append(histogram, models.MonthCount{Month: month.String(), Count: count})
	}
	return histogram, nil
}
