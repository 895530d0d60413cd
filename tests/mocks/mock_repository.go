package mocks

import (
	"femcare/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyAccount(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) ResetPassword(id uint, passwordHash string) error {
	args := m.Called(id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUserCascade(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) FeminineRoster() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) HealthWorkerRoster() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) ActiveAccounts() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) ActiveFeminine() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) SignupNotifications() ([]models.SignupNotification, error) {
	args := m.Called()
	return args.Get(0).([]models.SignupNotification), args.Error(1)
}

// Shared MockPeriodRepository
type MockPeriodRepository struct {
	mock.Mock
}

func (m *MockPeriodRepository) Create(period *models.MenstruationPeriod) error {
	args := m.Called(period)
	return args.Error(0)
}

func (m *MockPeriodRepository) MarkSeen(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPeriodRepository) UnseenGlobal() ([]models.PeriodNotification, error) {
	args := m.Called()
	return args.Get(0).([]models.PeriodNotification), args.Error(1)
}

func (m *MockPeriodRepository) UnseenForHealthWorker(healthWorkerID uint) ([]models.PeriodNotification, error) {
	args := m.Called(healthWorkerID)
	return args.Get(0).([]models.PeriodNotification), args.Error(1)
}

func (m *MockPeriodRepository) LatestPeriods(userID uint, limit int) ([]models.MenstruationPeriod, error) {
	args := m.Called(userID, limit)
	return args.Get(0).([]models.MenstruationPeriod), args.Error(1)
}

// Shared MockAssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Assign(healthWorkerID uint, feminineIDs []uint) (int, error) {
	args := m.Called(healthWorkerID, feminineIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockAssignmentRepository) Unassign(assignmentID uint) (uint, error) {
	args := m.Called(assignmentID)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockAssignmentRepository) ListAssignedFeminine(healthWorkerID uint) ([]models.AssignedFeminine, error) {
	args := m.Called(healthWorkerID)
	return args.Get(0).([]models.AssignedFeminine), args.Error(1)
}

func (m *MockAssignmentRepository) ListUnassignedFeminine(healthWorkerID uint) ([]models.FeminineOption, error) {
	args := m.Called(healthWorkerID)
	return args.Get(0).([]models.FeminineOption), args.Error(1)
}

func (m *MockAssignmentRepository) CountForWorker(healthWorkerID uint) (int64, error) {
	args := m.Called(healthWorkerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssignmentRepository) IsAssigned(feminineID uint) (bool, error) {
	args := m.Called(feminineID)
	return args.Bool(0), args.Error(1)
}

// Shared MockDashboardRepository
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) SummaryCounts() (*models.DashboardSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardSummary), args.Error(1)
}

func (m *MockDashboardRepository) PieChartBuckets() ([]models.PieSlice, error) {
	args := m.Called()
	return args.Get(0).([]models.PieSlice), args.Error(1)
}

func (m *MockDashboardRepository) MonthlyHistogram(year int) ([]models.MonthCount, error) {
	args := m.Called(year)
	return args.Get(0).([]models.MonthCount), args.Error(1)
}
