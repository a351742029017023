package employees_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/services/employees"
	mocks "github.com/Houeta/staffdesk/mock"
)

func newService(repo *mocks.EmployeeRepoIface) *employees.Service {
	return employees.NewService(slog.Default(), repo, metrics.NewMetrics(prometheus.NewRegistry()))
}

func TestNewService(t *testing.T) {
	t.Parallel()

	mockRepo := new(mocks.EmployeeRepoIface)

	s := newService(mockRepo)

	assert.NotNil(t, s)
}

func TestGetAllEmployees_Success(t *testing.T) {
	t.Parallel()

	expected := []models.Employee{
		{ID: 1, FirstName: "Alice", LastName: "Smith"},
		{ID: 2, FirstName: "Bob", LastName: "Jones"},
	}
	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("ListEmployees", ctx).Return(expected, nil)

	employeeList, err := newService(mockRepo).GetAllEmployees(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, employeeList)
}

func TestGetAllEmployees_Error(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("ListEmployees", ctx).Return(nil, assert.AnError)

	employeeList, err := newService(mockRepo).GetAllEmployees(ctx)

	require.Error(t, err)
	assert.Nil(t, employeeList)
}

func TestSaveEmployee_Insert(t *testing.T) {
	t.Parallel()

	newEmployee := models.Employee{FirstName: "Alice", LastName: "Smith", Department: "Eng"}
	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("CreateEmployee", ctx, newEmployee).Return(int64(7), nil)

	saved, err := newService(mockRepo).SaveEmployee(ctx, newEmployee)

	require.NoError(t, err)
	assert.Equal(t, int64(7), saved.ID)
	assert.Equal(t, "Alice", saved.FirstName)
	mockRepo.AssertNotCalled(t, "UpdateEmployee")
}

func TestSaveEmployee_InsertError(t *testing.T) {
	t.Parallel()

	newEmployee := models.Employee{FirstName: "Alice"}
	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("CreateEmployee", ctx, newEmployee).Return(int64(0), assert.AnError)

	_, err := newService(mockRepo).SaveEmployee(ctx, newEmployee)

	require.Error(t, err)
}

func TestSaveEmployee_Update(t *testing.T) {
	t.Parallel()

	existing := models.Employee{ID: 1, FirstName: "Alicia", LastName: "Smith"}
	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("UpdateEmployee", ctx, existing).Return(nil)

	saved, err := newService(mockRepo).SaveEmployee(ctx, existing)

	require.NoError(t, err)
	assert.Equal(t, existing, saved)
	mockRepo.AssertNotCalled(t, "CreateEmployee")
}

func TestSaveEmployee_UpdateError(t *testing.T) {
	t.Parallel()

	existing := models.Employee{ID: 1, FirstName: "Alicia"}
	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("UpdateEmployee", ctx, existing).Return(assert.AnError)

	_, err := newService(mockRepo).SaveEmployee(ctx, existing)

	require.Error(t, err)
}

func TestGetEmployeeByID_Success(t *testing.T) {
	t.Parallel()

	expected := models.Employee{ID: 123, FirstName: "testuser", Position: "test"}
	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("GetEmployeeByID", ctx, int64(123)).Return(expected, nil)

	employee, err := newService(mockRepo).GetEmployeeByID(ctx, 123)

	require.NoError(t, err)
	require.NotNil(t, employee)
	assert.Equal(t, expected, *employee)
}

func TestGetEmployeeByID_NoRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("GetEmployeeByID", ctx, int64(123)).Return(models.Employee{}, pgx.ErrNoRows)

	employee, err := newService(mockRepo).GetEmployeeByID(ctx, 123)

	require.NoError(t, err)
	assert.Nil(t, employee)
}

func TestGetEmployeeByID_Error(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("GetEmployeeByID", ctx, int64(123)).Return(models.Employee{}, assert.AnError)

	employee, err := newService(mockRepo).GetEmployeeByID(ctx, 123)

	require.Error(t, err)
	assert.Nil(t, employee)
}

func TestDeleteEmployee_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("DeleteEmployee", ctx, int64(1)).Return(nil)

	err := newService(mockRepo).DeleteEmployee(ctx, 1)

	require.NoError(t, err)
}

func TestDeleteEmployee_Error(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("DeleteEmployee", ctx, int64(1)).Return(assert.AnError)

	err := newService(mockRepo).DeleteEmployee(ctx, 1)

	require.Error(t, err)
}
