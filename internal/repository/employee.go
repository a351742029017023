package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Houeta/staffdesk/internal/models"
)

// ErrNotUpdated is returned when an update targets an id that no longer exists.
var ErrNotUpdated = errors.New("employee was not updated")

// ListEmployees retrieves every employee from the database, ordered by id so
// the listing page is stable between requests.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_employees").Observe(duration)
	}()
	query := `
		SELECT id, first_name, last_name, email, position, department, salary
		FROM employees
		ORDER BY id;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var employee models.Employee
		if err = rows.Scan(
			&employee.ID, &employee.FirstName, &employee.LastName,
			&employee.Email, &employee.Position, &employee.Department, &employee.Salary,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, employee)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

// CreateEmployee inserts a new employee and returns the id assigned by the store.
func (r *Repository) CreateEmployee(ctx context.Context, employee models.Employee) (int64, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_employee").Observe(duration)
	}()
	query := `
		INSERT INTO employees (first_name, last_name, email, position, department, salary)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`

	var identifier int64
	err := r.db.QueryRow(ctx, query,
		employee.FirstName, employee.LastName, employee.Email,
		employee.Position, employee.Department, employee.Salary,
	).Scan(&identifier)
	if err != nil {
		return 0, fmt.Errorf("failed to create employee: %w", err)
	}

	return identifier, nil
}

// UpdateEmployee updates an employee's information in the database.
func (r *Repository) UpdateEmployee(ctx context.Context, employee models.Employee) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("update_employee").Observe(duration)
	}()
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, position = $5, department = $6, salary = $7,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1;
	`

	tag, err := r.db.Exec(ctx, query,
		employee.ID, employee.FirstName, employee.LastName, employee.Email,
		employee.Position, employee.Department, employee.Salary,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee data: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to update employee %d: %w", employee.ID, ErrNotUpdated)
	}

	return nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
// The pgx.ErrNoRows sentinel stays reachable through the wrapped error.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error) {
	var result models.Employee

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_id").Observe(duration)
	}()
	query := `
		SELECT id, first_name, last_name, email, position, department, salary
		FROM employees WHERE id=$1
	`

	err := r.db.QueryRow(ctx, query, identifier).Scan(
		&result.ID, &result.FirstName, &result.LastName,
		&result.Email, &result.Position, &result.Department, &result.Salary)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// DeleteEmployee removes the employee with the given ID. Deleting an id that
// does not exist is a no-op.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int64) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("delete_employee").Observe(duration)
	}()
	query := `DELETE FROM employees WHERE id = $1;`

	_, err := r.db.Exec(ctx, query, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
