package repository

import (
	"context"

	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/models"
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, employee models.Employee) (int64, error)
	UpdateEmployee(ctx context.Context, employee models.Employee) error
	GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int64) error
}

func NewEmployeeRepository(db Database, mts *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mts}
}
