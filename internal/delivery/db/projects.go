package db

import (
	"context"

	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/google/uuid"
)

func (r *Repository) CreateProject(ctx context.Context, project *models.Project) error {
	result := r.db.WithContext(ctx).Create(project)
	if result.Error != nil {
		return translate(result.Error)
	}
	return nil
}

func (r *Repository) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	result := r.db.WithContext(ctx).First(&project, "id = ?", id)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &project, nil
}

func (r *Repository) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.WithContext(ctx).Order("name, id").Find(&projects)
	return projects, result.Error
}

func (r *Repository) UpdateProject(ctx context.Context, update *models.ProjectUpdate) error {
	changes := update.Changes()
	if len(changes) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Project{}).
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

func (r *Repository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// DeleteProjectCascade removes the project together with its assignments
// and procurement records, in one transaction.
func (r *Repository) DeleteProjectCascade(ctx context.Context, id uuid.UUID) error {
	return r.WithTransaction(ctx, func(repo *Repository) error {
		if err := repo.db.Delete(&models.Assignment{}, "project_id = ?", id).Error; err != nil {
			return err
		}
		if err := repo.db.Delete(&models.ProcurementRecord{}, "project_id = ?", id).Error; err != nil {
			return err
		}
		return repo.DeleteProject(ctx, id)
	})
}

func (r *Repository) ProjectExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, &models.Project{}, id)
}

func (r *Repository) CountAssignmentsByProject(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Assignment{}).
		Where("project_id = ?", id).
		Count(&count)
	return count, result.Error
}

func (r *Repository) CountProcurementsByProject(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.ProcurementRecord{}).
		Where("project_id = ?", id).
		Count(&count)
	return count, result.Error
}
