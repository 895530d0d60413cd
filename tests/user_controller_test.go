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
	"gorm.io/gorm"
)

func setupUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func setupUserControllerWithMocks() (*controllers.UserController, *mocks.MockUserRepository, *mocks.MockPeriodRepository, *mocks.MockAssignmentRepository) {
	mockUserRepo := new(mocks.MockUserRepository)
	mockPeriodRepo := new(mocks.MockPeriodRepository)
	mockAssignmentRepo := new(mocks.MockAssignmentRepository)
	controller := controllers.NewUserController(mockUserRepo, mockPeriodRepo, mockAssignmentRepo)
	return controller, mockUserRepo, mockPeriodRepo, mockAssignmentRepo
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*mocks.MockUserRepository)
		expectedStatus int
	}{
		{
			name: "successful feminine registration",
			requestBody: map[string]interface{}{
				"first_name": "Ana",
				"last_name":  "Flores",
				"address":    "Purok 4, San Isidro",
				"birthdate":  "2000-05-12",
				"email":      "ana@example.com",
				"password":   "password123",
				"role":       "Feminine",
			},
			setupMocks: func(repo *mocks.MockUserRepository) {
				repo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing both contact channels",
			requestBody: map[string]interface{}{
				"first_name": "Ana",
				"last_name":  "Flores",
				"address":    "Purok 4, San Isidro",
				"birthdate":  "2000-05-12",
				"password":   "password123",
				"role":       "Feminine",
			},
			setupMocks:     func(repo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "admin role not registrable",
			requestBody: map[string]interface{}{
				"first_name": "Ana",
				"last_name":  "Flores",
				"address":    "Purok 4, San Isidro",
				"birthdate":  "2000-05-12",
				"email":      "ana@example.com",
				"password":   "password123",
				"role":       "Admin",
			},
			setupMocks:     func(repo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid birthdate",
			requestBody: map[string]interface{}{
				"first_name": "Ana",
				"last_name":  "Flores",
				"address":    "Purok 4, San Isidro",
				"birthdate":  "May 12, 2000",
				"email":      "ana@example.com",
				"password":   "password123",
				"role":       "Feminine",
			},
			setupMocks:     func(repo *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockUserRepo, _, _ := setupUserControllerWithMocks()
			tt.setupMocks(mockUserRepo)

			router := setupUserTestRouter()
			router.POST("/users", controller.Register)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestVerifyAccountReturnsBadgeCount(t *testing.T) {
	controller, mockUserRepo, _, _ := setupUserControllerWithMocks()
	mockUserRepo.On("VerifyAccount", uint(9)).Return(nil)
	mockUserRepo.On("SignupNotifications").Return([]models.SignupNotification{
		{ID: 8, FirstName: "Bea", LastName: "Gomez"},
	}, nil)

	router := setupUserTestRouter()
	router.POST("/users/:id/verify", addAuthContext(1, models.RoleAdmin), controller.VerifyAccount)

	req := httptest.NewRequest(http.MethodPost, "/users/9/verify", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Account successfully confirmed.", response["message"])
	assert.Equal(t, float64(1), response["new_notification_count"])

	mockUserRepo.AssertExpectations(t)
}

func TestVerifyAccountUnknownUser(t *testing.T) {
	controller, mockUserRepo, _, _ := setupUserControllerWithMocks()
	mockUserRepo.On("VerifyAccount", uint(404)).Return(gorm.ErrRecordNotFound)

	router := setupUserTestRouter()
	router.POST("/users/:id/verify", addAuthContext(1, models.RoleAdmin), controller.VerifyAccount)

	req := httptest.NewRequest(http.MethodPost, "/users/404/verify", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUserRepo.AssertExpectations(t)
}

func TestDeleteUserCascades(t *testing.T) {
	controller, mockUserRepo, _, _ := setupUserControllerWithMocks()
	mockUserRepo.On("DeleteUserCascade", uint(4)).Return(nil)

	router := setupUserTestRouter()
	router.DELETE("/users/:id", addAuthContext(1, models.RoleAdmin), controller.DeleteUser)

	req := httptest.NewRequest(http.MethodDelete, "/users/4", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "User successfully deleted.", response["message"])

	mockUserRepo.AssertExpectations(t)
}

func TestFeminineRosterDecoratesRows(t *testing.T) {
	controller, mockUserRepo, mockPeriodRepo, mockAssignmentRepo := setupUserControllerWithMocks()
	status := true
	mockUserRepo.On("FeminineRoster").Return([]models.User{
		{ID: 4, FirstName: "Ana", LastName: "Flores", Role: models.RoleFeminine, IsActive: true, MenstruationStatus: &status},
	}, nil)
	mockAssignmentRepo.On("IsAssigned", uint(4)).Return(true, nil)
	mockPeriodRepo.On("LatestPeriods", uint(4), 3).Return([]models.MenstruationPeriod{}, nil)

	router := setupUserTestRouter()
	router.GET("/users/feminine", addAuthContext(1, models.RoleAdmin), controller.FeminineRoster)

	req := httptest.NewRequest(http.MethodGet, "/users/feminine", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	rows := response["data"].([]interface{})
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "Flores, Ana", row["full_name"])
	assert.Equal(t, true, row["is_assigned"])

	mockUserRepo.AssertExpectations(t)
	mockAssignmentRepo.AssertExpectations(t)
	mockPeriodRepo.AssertExpectations(t)
}
