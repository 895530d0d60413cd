package repository

import (
	"errors"

	"femcare/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrEmptyFeminineList is returned when an assign request carries no
// feminine ids.
var ErrEmptyFeminineList = errors.New("at least one feminine id is required")

// ErrRoleMismatch is returned when a referenced user exists but does not
// carry the role the link expects.
var ErrRoleMismatch = errors.New("assignment references a user with the wrong role")

type AssignmentRepository interface {
	Assign(healthWorkerID uint, feminineIDs []uint) (int, error)
	Unassign(assignmentID uint) (uint, error)
	ListAssignedFeminine(healthWorkerID uint) ([]models.AssignedFeminine, error)
	ListUnassignedFeminine(healthWorkerID uint) ([]models.FeminineOption, error)
	CountForWorker(healthWorkerID uint) (int64, error)
	IsAssigned(feminineID uint) (bool, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db}
}

// Assign links every given feminine id to the worker. Pairs that already
// exist are skipped by the store's unique index rather than pre-checked, so
// concurrent duplicate submissions cannot produce a second row. Returns the
// number of ids processed.
func (r *assignmentRepository) Assign(healthWorkerID uint, feminineIDs []uint) (int, error) {
	if len(feminineIDs) == 0 {
		return 0, ErrEmptyFeminineList
	}

	var worker models.User
	if err := r.db.First(&worker, healthWorkerID).Error; err != nil {
		return 0, err
	}
	if worker.Role != models.RoleHealthWorker {
		return 0, ErrRoleMismatch
	}

	var feminineCount int64
	if err := r.db.Model(&models.User{}).
		Where("id IN ? AND user_role_id = ?", feminineIDs, models.RoleFeminine).
		Count(&feminineCount).Error; err != nil {
		return 0, err
	}
	if feminineCount != int64(len(feminineIDs)) {
		return 0, gorm.ErrRecordNotFound
	}

	links := make([]models.FeminineHealthWorkerGroup, 0, len(feminineIDs))
	for _, feminineID := range feminineIDs {
		links = append(links, models.FeminineHealthWorkerGroup{
			FeminineID:     feminineID,
			HealthWorkerID: healthWorkerID,
		})
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
		return 0, err
	}
	return len(feminineIDs), nil
}

// Unassign deletes one link by its own id and reports which worker it
// belonged to, so callers can recount that worker's remaining links.
func (r *assignmentRepository) Unassign(assignmentID uint) (uint, error) {
	var link models.FeminineHealthWorkerGroup
	if err := r.db.First(&link, assignmentID).Error; err != nil {
		return 0, err
	}
	if err := r.db.Delete(&link).Error; err != nil {
		return 0, err
	}
	return link.HealthWorkerID, nil
}

func (r *assignmentRepository) ListAssignedFeminine(healthWorkerID uint) ([]models.AssignedFeminine, error) {
	var assigned []models.AssignedFeminine
	err := r.db.Table("feminine_health_worker_groups").
		Select("users.id AS id, feminine_health_worker_groups.id AS feminine_health_worker_group_id, "+
			"(users.last_name || ', ' || users.first_name) AS full_name").
		Joins("JOIN users ON users.id = feminine_health_worker_groups.feminine_id").
		Where("feminine_health_worker_groups.health_worker_id = ?", healthWorkerID).
		Order("users.last_name ASC").
		Scan(&assigned).Error
	return assigned, err
}

// ListUnassignedFeminine returns active feminine users not linked to this
// worker. Links to other workers do not exclude anyone; the relation is
// many-to-many.
func (r *assignmentRepository) ListUnassignedFeminine(healthWorkerID uint) ([]models.FeminineOption, error) {
	linked := r.db.Model(&models.FeminineHealthWorkerGroup{}).
		Select("feminine_id").
		Where("health_worker_id = ?", healthWorkerID)

	var options []models.FeminineOption
	err := r.db.Model(&models.User{}).
		Select("id, (last_name || ', ' || first_name) AS full_name").
		Where("user_role_id = ? AND is_active = ?", models.RoleFeminine, true).
		Where("id NOT IN (?)", linked).
		Order("last_name ASC").
		Scan(&options).Error
	return options, err
}

func (r *assignmentRepository) CountForWorker(healthWorkerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.FeminineHealthWorkerGroup{}).
		Where("health_worker_id = ?", healthWorkerID).
		Count(&count).Error
	return count, err
}

func (r *assignmentRepository) IsAssigned(feminineID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.FeminineHealthWorkerGroup{}).
		Where("feminine_id = ?", feminineID).
		Count(&count).Error
	return count > 0, err
}
