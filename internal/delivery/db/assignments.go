package db

import (
	"context"

	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/google/uuid"
)

func (r *Repository) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	result := r.db.WithContext(ctx).Create(assignment)
	if result.Error != nil {
		return translate(result.Error)
	}
	return nil
}

func (r *Repository) GetAssignment(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	result := r.db.WithContext(ctx).First(&assignment, "id = ?", id)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &assignment, nil
}

func (r *Repository) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	result := r.db.WithContext(ctx).Order("task_start_date, id").Find(&assignments)
	return assignments, result.Error
}

func (r *Repository) UpdateAssignment(ctx context.Context, update *models.AssignmentUpdate) error {
	changes := update.Changes()
	if len(changes) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Assignment{}).
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

func (r *Repository) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Assignment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}
