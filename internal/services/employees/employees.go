package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/repository"
)

// EmployeeServiceIface is the surface the HTTP layer talks to.
type EmployeeServiceIface interface {
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int64) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int64) error
}

// Service is a stateless adapter between the HTTP handlers and the employee
// repository. It exists as an indirection layer; it performs no validation,
// caching, or transaction management.
type Service struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewService(log *slog.Logger, repo repository.EmployeeRepoIface, mts *metrics.Metrics) *Service {
	return &Service{log: log, repo: repo, metrics: mts}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// GetAllEmployees returns every stored employee, ordered by id.
func (s *Service) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all employees: %w", err)
	}

	return employees, nil
}

// SaveEmployee persists the employee: a zero ID means a new record, otherwise
// the existing record is updated. The returned entity carries the assigned id.
func (s *Service) SaveEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	const opn = "Employee.Save"
	log := s.initLogger(opn)

	if employee.IsNew() {
		identifier, err := s.repo.CreateEmployee(ctx, employee)
		if err != nil {
			return models.Employee{}, fmt.Errorf("failed to save new employee: %w", err)
		}
		employee.ID = identifier
		s.metrics.EmployeesSaved.WithLabelValues("create").Inc()
		log.InfoContext(ctx, "employee created", "id", employee.ID)

		return employee, nil
	}

	if err := s.repo.UpdateEmployee(ctx, employee); err != nil {
		return models.Employee{}, fmt.Errorf("failed to update employee %d: %w", employee.ID, err)
	}
	s.metrics.EmployeesSaved.WithLabelValues("update").Inc()
	log.InfoContext(ctx, "employee updated", "id", employee.ID)

	return employee, nil
}

// GetEmployeeByID returns the employee with the given id, or nil when no such
// row exists. Store errors other than no-rows propagate to the caller.
func (s *Service) GetEmployeeByID(ctx context.Context, identifier int64) (*models.Employee, error) {
	employee, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil //nolint:nilnil // absent row is a valid result, not an error
		}
		return nil, fmt.Errorf("failed to get employee by id %d: %w", identifier, err)
	}

	return &employee, nil
}

// DeleteEmployee removes the employee with the given id. Deleting a missing
// id is treated as success.
func (s *Service) DeleteEmployee(ctx context.Context, identifier int64) error {
	const opn = "Employee.Delete"
	log := s.initLogger(opn)

	if err := s.repo.DeleteEmployee(ctx, identifier); err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", identifier, err)
	}
	log.InfoContext(ctx, "employee deleted", "id", identifier)

	return nil
}
