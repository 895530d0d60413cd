package controllers

import (
	"net/http"
	"strconv"
	"time"

	"femcare/internal/repository"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboardRepo  repository.DashboardRepository
	assignmentRepo repository.AssignmentRepository
}

func NewDashboardController(dashboardRepo repository.DashboardRepository, assignmentRepo repository.AssignmentRepository) *DashboardController {
	return &DashboardController{
		dashboardRepo:  dashboardRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Summary returns the admin landing-page counts, computed fresh on every
// request.
func (dc *DashboardController) Summary(c *gin.Context) {
	summary, err := dc.dashboardRepo.SummaryCounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load dashboard summary",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   summary,
	})
}

// PieChart returns the nonzero feminine-status buckets.
func (dc *DashboardController) PieChart(c *gin.Context) {
	slices, err := dc.dashboardRepo.PieChartBuckets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load pie chart data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   slices,
	})
}

// MonthlyHistogram returns twelve month buckets for the requested year,
// defaulting to the current one.
func (dc *DashboardController) MonthlyHistogram(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid year",
				"error":   "Year must be a valid integer",
			})
			return
		}
		year = parsed
	}

	histogram, err := dc.dashboardRepo.MonthlyHistogram(year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load monthly graph data",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"year":   year,
		"data":   histogram,
	})
}

// AssignmentStatus reports whether a feminine user has at least one
// monitoring link; it drives the Assigned / Not Assigned display.
func (dc *DashboardController) AssignmentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("feminine_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid feminine ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	assigned, err := dc.assignmentRepo.IsAssigned(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load assignment status",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"assigned": assigned,
	})
}
