package controller

import (
	"context"
	"errors"
	"fmt"

	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/events"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/google/uuid"
)

// CreateEmployee adds a new Employee after validating required fields and
// the global email/phone uniqueness, then triggers an event.
func (s *CatalogService) CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	err := checkRequired([]requiredField{
		{"full_name", employee.FullName},
		{"job_role", employee.JobRole},
		{"email", employee.Email},
		{"status", employee.Status},
		{"phone", employee.Phone},
	})
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, s.repo.EmployeeValueTaken, "email", employee.Email, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, s.repo.EmployeeValueTaken, "phone", employee.Phone, uuid.Nil); err != nil {
		return nil, err
	}

	employee.ID = uuid.New()
	if err := s.repo.CreateEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordCreated, events.EntityEmployee, employee.ID, employee)
	}()
	return employee, nil
}

// GetEmployee retrieves an Employee by ID, returning an error if not found.
func (s *CatalogService) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func (s *CatalogService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// UpdateEmployee modifies the provided Employee fields. Required fields
// cannot be cleared and changed contact fields are re-checked for
// uniqueness against every other employee.
func (s *CatalogService) UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) (*models.Employee, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid employee ID", e.ErrValidation)
	}
	err := checkNotBlanked([]requiredPtrField{
		{"full_name", update.FullName},
		{"job_role", update.JobRole},
		{"email", update.Email},
		{"status", update.Status},
		{"phone", update.Phone},
	})
	if err != nil {
		return nil, err
	}
	if update.Email != nil {
		if err := s.checkUnique(ctx, s.repo.EmployeeValueTaken, "email", *update.Email, update.ID); err != nil {
			return nil, err
		}
	}
	if update.Phone != nil {
		if err := s.checkUnique(ctx, s.repo.EmployeeValueTaken, "phone", *update.Phone, update.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateEmployee(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.repo.GetEmployee(ctx, update.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated employee: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordUpdated, events.EntityEmployee, updated.ID, updated)
	}()
	return updated, nil
}

// DeleteEmployee removes an Employee. Without cascade the delete is
// rejected while assignment rows still reference the employee; with
// cascade those assignments are removed first.
func (s *CatalogService) DeleteEmployee(ctx context.Context, id uuid.UUID, cascade bool) error {
	employee, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get employee for deletion: %w", err)
	}

	if cascade {
		if err := s.repo.DeleteEmployeeCascade(ctx, id); err != nil {
			return fmt.Errorf("failed to cascade delete employee: %w", err)
		}
	} else {
		dependents, err := s.repo.CountAssignmentsByEmployee(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count employee assignments: %w", err)
		}
		if dependents > 0 {
			return fmt.Errorf("%w: employee has %d assignments", e.ErrDependency, dependents)
		}
		if err := s.repo.DeleteEmployee(ctx, id); err != nil {
			return fmt.Errorf("failed to delete employee: %w", err)
		}
	}

	go func() {
		s.producer.Produce(events.RecordDeleted, events.EntityEmployee, id, employee)
	}()
	return nil
}
