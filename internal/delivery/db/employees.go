package db

import (
	"context"

	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/google/uuid"
)

func (r *Repository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	result := r.db.WithContext(ctx).Create(employee)
	if result.Error != nil {
		return translate(result.Error)
	}
	return nil
}

func (r *Repository) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.WithContext(ctx).First(&employee, "id = ?", id)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &employee, nil
}

func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	result := r.db.WithContext(ctx).Order("full_name, id").Find(&employees)
	return employees, result.Error
}

func (r *Repository) UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) error {
	changes := update.Changes()
	if len(changes) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("id = ?", update.ID).
		Updates(changes)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// DeleteEmployeeCascade removes the employee together with all of its
// assignments, in one transaction.
func (r *Repository) DeleteEmployeeCascade(ctx context.Context, id uuid.UUID) error {
	return r.WithTransaction(ctx, func(repo *Repository) error {
		if err := repo.db.Delete(&models.Assignment{}, "employee_id = ?", id).Error; err != nil {
			return err
		}
		return repo.DeleteEmployee(ctx, id)
	})
}

func (r *Repository) EmployeeExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, &models.Employee{}, id)
}

// EmployeeValueTaken reports whether another employee already uses value
// in the given unique column ("email" or "phone").
func (r *Repository) EmployeeValueTaken(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error) {
	return r.valueTaken(ctx, &models.Employee{}, column, value, exclude)
}

func (r *Repository) CountAssignmentsByEmployee(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Assignment{}).
		Where("employee_id = ?", id).
		Count(&count)
	return count, result.Error
}
