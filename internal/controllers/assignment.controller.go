package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"femcare/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AssignmentController struct {
	assignmentRepo repository.AssignmentRepository
}

func NewAssignmentController(assignmentRepo repository.AssignmentRepository) *AssignmentController {
	return &AssignmentController{assignmentRepo: assignmentRepo}
}

type AssignFeminineRequest struct {
	HealthWorkerID uint   `json:"health_worker_id" binding:"required"`
	FeminineIDs    []uint `json:"feminine_ids" binding:"required,min=1"`
}

// AssignFeminine bulk-links feminine users to one worker. Already-linked
// pairs are skipped silently; the response echoes how many ids were
// processed.
func (ac *AssignmentController) AssignFeminine(c *gin.Context) {
	var req AssignFeminineRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Please select at least one feminine.",
			"error":   err.Error(),
		})
		return
	}

	count, err := ac.assignmentRepo.Assign(req.HealthWorkerID, req.FeminineIDs)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmptyFeminineList):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Please select at least one feminine.",
				"error":   err.Error(),
			})
		case errors.Is(err, repository.ErrRoleMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Selected users do not have the expected roles.",
				"error":   err.Error(),
			})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Something went wrong, please try again.",
				"error":   "Referenced user does not exist",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to assign feminine users",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"message":        fmt.Sprintf("%d Feminine successfully assigned.", count),
		"assigned_count": count,
	})
}

// Unassign removes one link and reports the worker's remaining link count so
// the dialog can refresh in place.
func (ac *AssignmentController) Unassign(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid assignment ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	healthWorkerID, err := ac.assignmentRepo.Unassign(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Something went wrong, please try again.",
				"error":   "No assignment exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to remove assignment",
			"error":   err.Error(),
		})
		return
	}

	remaining, err := ac.assignmentRepo.CountForWorker(healthWorkerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to recount assignments",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"message":       "Feminine successfully removed.",
		"updated_count": remaining,
	})
}

// AssignmentOptions returns a worker's current monitoring list together with
// the active feminine users still available to them.
func (ac *AssignmentController) AssignmentOptions(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("health_worker_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid health worker ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	assigned, err := ac.assignmentRepo.ListAssignedFeminine(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load assigned feminine list",
			"error":   err.Error(),
		})
		return
	}

	available, err := ac.assignmentRepo.ListUnassignedFeminine(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load available feminine list",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":                 "success",
		"assigned_feminine_list": assigned,
		"feminine_list":          available,
	})
}
