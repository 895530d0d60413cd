package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"femcare/internal/controllers"
	"femcare/internal/models"
	"femcare/tests/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupPeriodTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestLogPeriod(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockPeriodRepository)
		expectedStatus int
	}{
		{
			name:        "feminine user logs an entry",
			userID:      4,
			requestBody: map[string]interface{}{"menstruation_date": "2025-04-01"},
			setupMocks: func(userRepo *mocks.MockUserRepository, periodRepo *mocks.MockPeriodRepository) {
				userRepo.On("FindByID", uint(4)).Return(&models.User{ID: 4, Role: models.RoleFeminine, IsActive: true}, nil)
				periodRepo.On("Create", mock.AnythingOfType("*models.MenstruationPeriod")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "health worker cannot log entries",
			userID:      7,
			requestBody: map[string]interface{}{"menstruation_date": "2025-04-01"},
			setupMocks: func(userRepo *mocks.MockUserRepository, periodRepo *mocks.MockPeriodRepository) {
				userRepo.On("FindByID", uint(7)).Return(&models.User{ID: 7, Role: models.RoleHealthWorker, IsActive: true}, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "malformed date",
			userID:         4,
			requestBody:    map[string]interface{}{"menstruation_date": "04/01/2025"},
			setupMocks:     func(userRepo *mocks.MockUserRepository, periodRepo *mocks.MockPeriodRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(mocks.MockUserRepository)
			mockPeriodRepo := new(mocks.MockPeriodRepository)
			tt.setupMocks(mockUserRepo, mockPeriodRepo)

			controller := controllers.NewPeriodController(mockPeriodRepo, mockUserRepo)
			router := setupPeriodTestRouter()
			router.POST("/periods", addAuthContext(tt.userID, models.RoleFeminine), controller.LogPeriod)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/periods", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockUserRepo.AssertExpectations(t)
			mockPeriodRepo.AssertExpectations(t)
		})
	}
}
