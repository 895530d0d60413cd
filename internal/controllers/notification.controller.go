package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"femcare/internal/models"
	"femcare/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NotificationController serves the pull-computed notification queues. No
// notification rows exist; every call re-runs the unseen/unverified
// predicates against the store.
type NotificationController struct {
	userRepo   repository.UserRepository
	periodRepo repository.PeriodRepository
}

func NewNotificationController(userRepo repository.UserRepository, periodRepo repository.PeriodRepository) *NotificationController {
	return &NotificationController{
		userRepo:   userRepo,
		periodRepo: periodRepo,
	}
}

// scopedUnseen picks the caller's period-notification scope from the token:
// health workers see only their assigned feminine users, admins see all.
func (nc *NotificationController) scopedUnseen(c *gin.Context) ([]models.PeriodNotification, error) {
	role, _ := c.Get("role")
	if role == models.RoleHealthWorker {
		userID, _ := c.Get("user_id")
		return nc.periodRepo.UnseenForHealthWorker(userID.(uint))
	}
	return nc.periodRepo.UnseenGlobal()
}

// GetSignupNotifications lists unverified feminine signups, newest first.
func (nc *NotificationController) GetSignupNotifications(c *gin.Context) {
	notifications, err := nc.userRepo.SignupNotifications()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load signup notifications",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(notifications),
		"data":   notifications,
	})
}

// GetPeriodNotifications lists unseen period entries in the caller's scope.
func (nc *NotificationController) GetPeriodNotifications(c *gin.Context) {
	notifications, err := nc.scopedUnseen(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load period notifications",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(notifications),
		"data":   notifications,
	})
}

// MarkPeriodSeen acknowledges one period entry and reports the recomputed
// unseen count for the caller's scope, so the badge updates without a
// reload.
func (nc *NotificationController) MarkPeriodSeen(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid period ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := nc.periodRepo.MarkSeen(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Something went wrong, please try again.",
				"error":   "No period entry exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to acknowledge period entry",
			"error":   err.Error(),
		})
		return
	}

	notifications, err := nc.scopedUnseen(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to recount period notifications",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":                 "success",
		"id":                     uint(id),
		"new_notification_count": len(notifications),
	})
}
