package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"femcare/internal/models"
	"femcare/internal/repository"
	"femcare/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type UserController struct {
	userRepo       repository.UserRepository
	periodRepo     repository.PeriodRepository
	assignmentRepo repository.AssignmentRepository
}

func NewUserController(userRepo repository.UserRepository, periodRepo repository.PeriodRepository, assignmentRepo repository.AssignmentRepository) *UserController {
	return &UserController{
		userRepo:       userRepo,
		periodRepo:     periodRepo,
		assignmentRepo: assignmentRepo,
	}
}

type RegisterRequest struct {
	FirstName          string  `json:"first_name" binding:"required,max=255"`
	MiddleName         string  `json:"middle_name" binding:"max=255"`
	LastName           string  `json:"last_name" binding:"required,max=255"`
	Address            string  `json:"address" binding:"required,max=255"`
	Birthdate          string  `json:"birthdate" binding:"required"`
	Email              *string `json:"email" binding:"omitempty,email"`
	ContactNo          *string `json:"contact_no" binding:"omitempty,max=10"`
	Password           string  `json:"password" binding:"required,min=8"`
	Role               string  `json:"role" binding:"required,oneof='Feminine' 'Health Worker'"`
	MenstruationStatus *bool   `json:"menstruation_status"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate") ||
		strings.Contains(err.Error(), "UNIQUE")
}

// Register creates an unverified account. The account stays invisible to
// notification and roster views until an admin confirms it.
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	birthdate, err := time.Parse("2006-01-02", req.Birthdate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid birthdate, use YYYY-MM-DD",
			"error":   err.Error(),
		})
		return
	}

	role := models.RoleFeminine
	if req.Role == "Health Worker" {
		role = models.RoleHealthWorker
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   "Password hashing failed",
		})
		return
	}

	user := models.User{
		Role:               role,
		FirstName:          req.FirstName,
		MiddleName:         req.MiddleName,
		LastName:           req.LastName,
		Address:            req.Address,
		Email:              req.Email,
		ContactNo:          req.ContactNo,
		Birthdate:          &birthdate,
		Password:           hash,
		MenstruationStatus: req.MenstruationStatus,
	}

	if err := user.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid registration data",
			"error":   err.Error(),
		})
		return
	}

	if err := uc.userRepo.Create(&user); err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "Email or contact number is already in use",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Registration successful! Please wait for account verification.",
		"data":    nil,
	})
}

func (uc *UserController) LoginUser(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.userRepo.FindByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No account associated with this email",
		})
		return
	}

	if !utils.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Incorrect password",
			"error":   "Invalid credentials",
		})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Your account is pending verification, please try again later.",
			"error":   "Account not yet verified",
		})
		return
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    int(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to sign in",
			"error":   "Token signing failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User logged in successfully",
		"token":   signed,
		"data": gin.H{
			"id":        user.ID,
			"role":      user.Role.String(),
			"full_name": user.FullName(),
		},
	})
}

// VerifyAccount confirms a pending signup. Both verification flags are set
// in one go; visibility predicates elsewhere read is_active only.
func (uc *UserController) VerifyAccount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := uc.userRepo.VerifyAccount(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Something went wrong, please refresh your browser and try again.",
				"error":   "No user exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to verify account",
			"error":   err.Error(),
		})
		return
	}

	notifications, err := uc.userRepo.SignupNotifications()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to recount signup notifications",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":                 "success",
		"message":                "Account successfully confirmed.",
		"new_notification_count": len(notifications),
	})
}

// ResetPassword is the admin reset; the account goes back to the default
// password.
func (uc *UserController) ResetPassword(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	hash, err := utils.HashPassword(utils.DefaultResetPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to reset password",
			"error":   "Password hashing failed",
		})
		return
	}

	if err := uc.userRepo.ResetPassword(uint(id), hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "User not found, please try again.",
				"error":   "No user exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Something went wrong, please try again.",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password successfully reset.",
	})
}

// DeleteUser hard-deletes an account and cascades to its period entries and
// assignment links.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := uc.userRepo.DeleteUserCascade(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Something went wrong, please try again.",
				"error":   "No user exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User successfully deleted.",
	})
}

// FeminineRoster lists every feminine account with assignment status and the
// latest logged periods. Structured data only; rendering belongs to the
// frontend.
func (uc *UserController) FeminineRoster(c *gin.Context) {
	users, err := uc.userRepo.FeminineRoster()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load feminine list",
			"error":   err.Error(),
		})
		return
	}

	rows := make([]gin.H, 0, len(users))
	for _, user := range users {
		assigned, err := uc.assignmentRepo.IsAssigned(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to load assignment status",
				"error":   err.Error(),
			})
			return
		}

		periods, err := uc.periodRepo.LatestPeriods(user.ID, 3)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to load period entries",
				"error":   err.Error(),
			})
			return
		}

		rows = append(rows, gin.H{
			"id":                  user.ID,
			"full_name":           user.FullName(),
			"email":               user.Email,
			"contact_no":          user.ContactNo,
			"address":             user.Address,
			"birthdate":           user.Birthdate,
			"menstruation_status": user.MenstruationStatus,
			"is_active":           user.IsActive,
			"is_assigned":         assigned,
			"remarks":             user.Remarks,
			"last_periods":        periods,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   rows,
	})
}

// HealthWorkerRoster lists every health worker with their monitoring list.
func (uc *UserController) HealthWorkerRoster(c *gin.Context) {
	users, err := uc.userRepo.HealthWorkerRoster()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load health worker list",
			"error":   err.Error(),
		})
		return
	}

	rows := make([]gin.H, 0, len(users))
	for _, user := range users {
		assigned, err := uc.assignmentRepo.ListAssignedFeminine(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to load assigned feminine list",
				"error":   err.Error(),
			})
			return
		}

		rows = append(rows, gin.H{
			"id":                     user.ID,
			"full_name":              user.FullName(),
			"email":                  user.Email,
			"contact_no":             user.ContactNo,
			"address":                user.Address,
			"birthdate":              user.Birthdate,
			"is_active":              user.IsActive,
			"remarks":                user.Remarks,
			"assigned_feminine_list": assigned,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   rows,
	})
}

// AccountData lists active non-admin accounts for the password-reset screen.
func (uc *UserController) AccountData(c *gin.Context) {
	users, err := uc.userRepo.ActiveAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load accounts",
			"error":   err.Error(),
		})
		return
	}

	rows := make([]gin.H, 0, len(users))
	for _, user := range users {
		rows = append(rows, gin.H{
			"id":        user.ID,
			"full_name": user.FullName(),
			"email":     user.Email,
			"role":      user.Role.String(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   rows,
	})
}
