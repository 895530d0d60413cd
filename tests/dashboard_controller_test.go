package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"femcare/internal/controllers"
	"femcare/internal/models"
	"femcare/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupDashboardTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestDashboardSummary(t *testing.T) {
	mockDashboardRepo := new(mocks.MockDashboardRepository)
	mockAssignmentRepo := new(mocks.MockAssignmentRepository)
	mockDashboardRepo.On("SummaryCounts").Return(&models.DashboardSummary{
		TotalPeriodsThisYear: 42,
		HealthWorkerCount:    5,
		UserCount:            30,
		InactiveCount:        4,
		InactiveWorkerCount:  1,
		InactiveFeminine:     3,
	}, nil)

	controller := controllers.NewDashboardController(mockDashboardRepo, mockAssignmentRepo)
	router := setupDashboardTestRouter()
	router.GET("/dashboard/summary", addAuthContext(1, models.RoleAdmin), controller.Summary)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(42), data["total_period_per_year"])
	assert.Equal(t, float64(5), data["health_worker_count"])

	mockDashboardRepo.AssertExpectations(t)
}

func TestPieChartPassesThroughNonzeroBuckets(t *testing.T) {
	mockDashboardRepo := new(mocks.MockDashboardRepository)
	mockAssignmentRepo := new(mocks.MockAssignmentRepository)
	mockDashboardRepo.On("PieChartBuckets").Return([]models.PieSlice{
		{Value: 12, Category: "Active Period"},
		{Value: 3, Category: "Pending Feminine (Not verify yet)"},
	}, nil)

	controller := controllers.NewDashboardController(mockDashboardRepo, mockAssignmentRepo)
	router := setupDashboardTestRouter()
	router.GET("/dashboard/pie-chart", addAuthContext(1, models.RoleAdmin), controller.PieChart)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/pie-chart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["data"], 2)

	mockDashboardRepo.AssertExpectations(t)
}

func TestMonthlyHistogramDefaultsToCurrentYear(t *testing.T) {
	histogram := make([]models.MonthCount, 0, 12)
	for month := time.January; month <= time.December; month++ {
		histogram = append(histogram, models.MonthCount{Month: month.String()})
	}

	mockDashboardRepo := new(mocks.MockDashboardRepository)
	mockAssignmentRepo := new(mocks.MockAssignmentRepository)
	mockDashboardRepo.On("MonthlyHistogram", time.Now().Year()).Return(histogram, nil)

	controller := controllers.NewDashboardController(mockDashboardRepo, mockAssignmentRepo)
	router := setupDashboardTestRouter()
	router.GET("/dashboard/graph", addAuthContext(1, models.RoleAdmin), controller.MonthlyHistogram)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/graph", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response["data"], 12)

	mockDashboardRepo.AssertExpectations(t)
}

func TestMonthlyHistogramRejectsBadYear(t *testing.T) {
	mockDashboardRepo := new(mocks.MockDashboardRepository)
	mockAssignmentRepo := new(mocks.MockAssignmentRepository)

	controller := controllers.NewDashboardController(mockDashboardRepo, mockAssignmentRepo)
	router := setupDashboardTestRouter()
	router.GET("/dashboard/graph", addAuthContext(1, models.RoleAdmin), controller.MonthlyHistogram)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/graph?year=banana", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockDashboardRepo.AssertNotCalled(t, "MonthlyHistogram")
}

func TestAssignmentStatusEndpoint(t *testing.T) {
	mockDashboardRepo := new(mocks.MockDashboardRepository)
	mockAssignmentRepo := new(mocks.MockAssignmentRepository)
	mockAssignmentRepo.On("IsAssigned", uint(4)).Return(true, nil)

	controller := controllers.NewDashboardController(mockDashboardRepo, mockAssignmentRepo)
	router := setupDashboardTestRouter()
	router.GET("/dashboard/assignment-status/:feminine_id", addAuthContext(1, models.RoleAdmin), controller.AssignmentStatus)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/assignment-status/4", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["assigned"])

	mockAssignmentRepo.AssertExpectations(t)
}
