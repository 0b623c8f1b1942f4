package db

import (
	"context"

	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/google/uuid"
)

func (r *Repository) CreateClient(ctx context.Context, client *models.Client) error {
	result := r.db.WithContext(ctx).Create(client)
	if result.Error != nil {
		return translate(result.Error)
	}
	return nil
}

func (r *Repository) GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	var client models.Client
	result := r.db.WithContext(ctx).First(&client, "id = ?", id)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &client, nil
}

func (r *Repository) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	result := r.db.WithContext(ctx).Order("name, id").Find(&clients)
	return clients, result.Error
}

func (r *Repository) UpdateClient(ctx context.Context, update *models.ClientUpdate) error {
	changes := update.Changes()
	if len(changes) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Client{}).
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

func (r *Repository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// DeleteClientCascade removes the client together with its projects and,
// transitively, their assignments and procurement records, in one
// transaction and in dependency order.
func (r *Repository) DeleteClientCascade(ctx context.Context, id uuid.UUID) error {
	return r.WithTransaction(ctx, func(repo *Repository) error {
		var projectIDs []uuid.UUID
		err := repo.db.Model(&models.Project{}).
			Where("client_id = ?", id).
			Pluck("id", &projectIDs).Error
		if err != nil {
			return err
		}
		if len(projectIDs) > 0 {
			if err := repo.db.Delete(&models.Assignment{}, "project_id IN ?", projectIDs).Error; err != nil {
				return err
			}
			if err := repo.db.Delete(&models.ProcurementRecord{}, "project_id IN ?", projectIDs).Error; err != nil {
				return err
			}
			if err := repo.db.Delete(&models.Project{}, "id IN ?", projectIDs).Error; err != nil {
				return err
			}
		}
		return repo.DeleteClient(ctx, id)
	})
}

func (r *Repository) ClientExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, &models.Client{}, id)
}

// ClientValueTaken reports whether another client already uses value in
// the given unique column ("email" or "phone").
func (r *Repository) ClientValueTaken(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error) {
	return r.valueTaken(ctx, &models.Client{}, column, value, exclude)
}

func (r *Repository) CountProjectsByClient(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("client_id = ?", id).
		Count(&count)
	return count, result.Error
}
