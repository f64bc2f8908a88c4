package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/model"
)

// ServiceByID resolves an active service within the business. Returns nil
// when the service is missing, inactive, or owned by another tenant.
func (s *Store) ServiceByID(ctx context.Context, db Querier, businessID, serviceID uuid.UUID) (*model.Service, error) {
	query := `
		SELECT id, business_id, name, duration_minutes, price, points_reward,
		       is_active, created_at, updated_at
		FROM services
		WHERE id = $1 AND business_id = $2 AND is_active
	`

	var svc model.Service
	err := db.QueryRow(ctx, query, serviceID, businessID).Scan(
		&svc.ID,
		&svc.BusinessID,
		&svc.Name,
		&svc.DurationMinutes,
		&svc.Price,
		&svc.PointsReward,
		&svc.IsActive,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &svc, nil
}

func (s *Store) EmployeeByID(ctx context.Context, db Querier, businessID, employeeID uuid.UUID) (*model.Employee, error) {
	query := `
		SELECT id, business_id, full_name, is_active, created_at, updated_at
		FROM employees
		WHERE id = $1 AND business_id = $2
	`

	var e model.Employee
	err := db.QueryRow(ctx, query, employeeID, businessID).Scan(
		&e.ID,
		&e.BusinessID,
		&e.FullName,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// ServiceEmployees lists active employees assigned to a service, optionally
// narrowed to a single employee.
func (s *Store) ServiceEmployees(ctx context.Context, db Querier, businessID, serviceID uuid.UUID, employeeID *uuid.UUID) ([]model.Employee, error) {
	query := `
		SELECT e.id, e.business_id, e.full_name, e.is_active, e.created_at, e.updated_at
		FROM employees e
		JOIN employee_services es ON es.employee_id = e.id
		WHERE e.business_id = $1
		  AND es.service_id = $2
		  AND e.is_active
		  AND ($3::uuid IS NULL OR e.id = $3)
		ORDER BY e.full_name, e.id
	`

	rows, err := db.Query(ctx, query, businessID, serviceID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list service employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.BusinessID, &e.FullName, &e.IsActive, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// EmployeeAssignedToService reports whether the employee performs the service.
func (s *Store) EmployeeAssignedToService(ctx context.Context, db Querier, employeeID, serviceID uuid.UUID) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employee_services WHERE employee_id = $1 AND service_id = $2)`,
		employeeID, serviceID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check employee service: %w", err)
	}
	return exists, nil
}
