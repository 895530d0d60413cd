package repository

import (
	"femcare/internal/models"

	"gorm.io/gorm"
)

type PeriodRepository interface {
	Create(period *models.MenstruationPeriod) error
	MarkSeen(id uint) error
	UnseenGlobal() ([]models.PeriodNotification, error)
	UnseenForHealthWorker(healthWorkerID uint) ([]models.PeriodNotification, error)
	LatestPeriods(userID uint, limit int) ([]models.MenstruationPeriod, error)
}

type periodRepository struct {
	db *gorm.DB
}

func NewPeriodRepository(db *gorm.DB) PeriodRepository {
	return &periodRepository{db}
}

func (r *periodRepository) Create(period *models.MenstruationPeriod) error {
	return r.db.Create(period).Error
}

func (r *periodRepository) MarkSeen(id uint) error {
	var period models.MenstruationPeriod
	if err := r.db.First(&period, id).Error; err != nil {
		return err
	}
	return r.db.Model(&period).Update("is_seen", true).Error
}

// UnseenGlobal lists every unacknowledged period entry of active feminine
// users. Notifications are recomputed on each call; nothing is materialized.
func (r *periodRepository) UnseenGlobal() ([]models.PeriodNotification, error) {
	var notifications []models.PeriodNotification
	err := r.db.Table("menstruation_periods").
		Select("menstruation_periods.id, users.id AS user_id, menstruation_periods.menstruation_date, "+
			"users.first_name, users.last_name, users.middle_name").
		Joins("JOIN users ON users.id = menstruation_periods.user_id").
		Where("users.user_role_id = ? AND users.is_active = ? AND menstruation_periods.is_seen = ?",
			models.RoleFeminine, true, false).
		Order("menstruation_periods.menstruation_date DESC").
		Scan(&notifications).Error
	if err != nil {
		return nil, err
	}
	for i := range notifications {
		notifications[i].FormatDate()
	}
	return notifications, nil
}

// UnseenForHealthWorker narrows the unseen queue to feminine users linked to
// the given worker through the assignment table.
func (r *periodRepository) UnseenForHealthWorker(healthWorkerID uint) ([]models.PeriodNotification, error) {
	var notifications []models.PeriodNotification
	err := r.db.Table("menstruation_periods").
		Select("menstruation_periods.id, users.id AS user_id, menstruation_periods.menstruation_date, "+
			"users.first_name, users.last_name, users.middle_name").
		Joins("JOIN users ON users.id = menstruation_periods.user_id").
		Joins("JOIN feminine_health_worker_groups ON feminine_health_worker_groups.feminine_id = menstruation_periods.user_id").
		Where("feminine_health_worker_groups.health_worker_id = ?", healthWorkerID).
		Where("users.user_role_id = ? AND users.is_active = ? AND menstruation_periods.is_seen = ?",
			models.RoleFeminine, true, false).
		Order("menstruation_periods.menstruation_date DESC").
		Scan(&notifications).Error
	if err != nil {
		return nil, err
	}
	for i := range notifications {
		notifications[i].FormatDate()
	}
	return notifications, nil
}

func (r *periodRepository) LatestPeriods(userID uint, limit int) ([]models.MenstruationPeriod, error) {
	var periods []models.MenstruationPeriod
	err := r.db.Where("user_id = ?", userID).
		Order("menstruation_date DESC").
		Limit(limit).
		Find(&periods).Error
	return periods, err
}
