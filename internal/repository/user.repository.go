package repository

import (
	"femcare/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	VerifyAccount(id uint) error
	ResetPassword(id uint, passwordHash string) error
	DeleteUserCascade(id uint) error
	FeminineRoster() ([]models.User, error)
	HealthWorkerRoster() ([]models.User, error)
	ActiveAccounts() ([]models.User, error)
	ActiveFeminine() ([]models.User, error)
	SignupNotifications() ([]models.SignupNotification, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *models.User) error {
	// Accounts always start unverified; an admin flips them active later.
	user.IsActive = false
	user.IsVerified = false
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) VerifyAccount(id uint) error {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return err
	}
	return r.db.Model(&user).Updates(map[string]interface{}{
		"is_active":   true,
		"is_verified": true,
	}).Error
}

func (r *userRepository) ResetPassword(id uint, passwordHash string) error {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return err
	}
	return r.db.Model(&user).Update("password", passwordHash).Error
}

// DeleteUserCascade removes the user together with their period entries and
// every assignment link referencing them, in one transaction.
func (r *userRepository) DeleteUserCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.MenstruationPeriod{}).Error; err != nil {
			return err
		}
		if err := tx.Where("feminine_id = ? OR health_worker_id = ?", id, id).
			Delete(&models.FeminineHealthWorkerGroup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func (r *userRepository) FeminineRoster() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("user_role_id = ?", models.RoleFeminine).
		Order("last_name ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) HealthWorkerRoster() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("user_role_id = ?", models.RoleHealthWorker).
		Order("last_name ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) ActiveAccounts() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("user_role_id IN ? AND is_active = ?",
		[]models.Role{models.RoleFeminine, models.RoleHealthWorker}, true).
		Order("last_name ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) ActiveFeminine() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("user_role_id = ? AND is_active = ?", models.RoleFeminine, true).
		Order("last_name ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) SignupNotifications() ([]models.SignupNotification, error) {
	var notifications []models.SignupNotification
	err := r.db.Model(&models.User{}).
		Select("id, first_name, last_name, middle_name, email, menstruation_status").
		Where("user_role_id = ? AND is_active = ?", models.RoleFeminine, false).
		Order("created_at DESC").
		Scan(&notifications).Error
	return notifications, err
}
