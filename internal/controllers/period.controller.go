package controllers

import (
	"net/http"
	"time"

	"femcare/internal/models"
	"femcare/internal/repository"

	"github.com/gin-gonic/gin"
)

type PeriodController struct {
	periodRepo repository.PeriodRepository
	userRepo   repository.UserRepository
}

func NewPeriodController(periodRepo repository.PeriodRepository, userRepo repository.UserRepository) *PeriodController {
	return &PeriodController{
		periodRepo: periodRepo,
		userRepo:   userRepo,
	}
}

type LogPeriodRequest struct {
	MenstruationDate string `json:"menstruation_date" binding:"required"`
}

// LogPeriod records a cycle-start date for the authenticated feminine user.
// Entries of unverified accounts are stored but stay out of notification
// views until the account is confirmed.
func (pc *PeriodController) LogPeriod(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "Missing user claim",
		})
		return
	}

	var req LogPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.MenstruationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid menstruation date, use YYYY-MM-DD",
			"error":   err.Error(),
		})
		return
	}

	user, err := pc.userRepo.FindByID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}
	if user.Role != models.RoleFeminine {
		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Only feminine accounts can log period entries.",
			"error":   "Role mismatch",
		})
		return
	}

	period := models.MenstruationPeriod{
		UserID:           user.ID,
		MenstruationDate: date,
	}
	if err := pc.periodRepo.Create(&period); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log period entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Period entry successfully recorded.",
		"data":    period,
	})
}

// Calendar returns the latest period date of every active feminine user.
func (pc *PeriodController) Calendar(c *gin.Context) {
	users, err := pc.userRepo.ActiveFeminine()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load calendar data",
			"error":   err.Error(),
		})
		return
	}

	rows := make([]gin.H, 0, len(users))
	for _, user := range users {
		periods, err := pc.periodRepo.LatestPeriods(user.ID, 1)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to load period entries",
				"error":   err.Error(),
			})
			return
		}

		row := gin.H{"name": user.FullName(), "period_date": nil}
		if len(periods) > 0 {
			row["period_date"] = periods[0]
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   rows,
	})
}
