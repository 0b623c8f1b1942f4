package db

import (
	"context"

	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/google/uuid"
)

func (r *Repository) CreateMaterial(ctx context.Context, material *models.Material) error {
	result := r.db.WithContext(ctx).Create(material)
	if result.Error != nil {
		return translate(result.Error)
	}
	return nil
}

func (r *Repository) GetMaterial(ctx context.Context, id uuid.UUID) (*models.Material, error) {
	var material models.Material
	result := r.db.WithContext(ctx).First(&material, "id = ?", id)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &material, nil
}

func (r *Repository) ListMaterials(ctx context.Context) ([]models.Material, error) {
	var materials []models.Material
	result := r.db.WithContext(ctx).Order("name, id").Find(&materials)
	return materials, result.Error
}

func (r *Repository) UpdateMaterial(ctx context.Context, update *models.MaterialUpdate) error {
	changes := update.Changes()
	if len(changes) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Material{}).
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

func (r *Repository) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Material{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// DeleteMaterialCascade removes the material together with its
// procurement records, in one transaction.
func (r *Repository) DeleteMaterialCascade(ctx context.Context, id uuid.UUID) error {
	return r.WithTransaction(ctx, func(repo *Repository) error {
		if err := repo.db.Delete(&models.ProcurementRecord{}, "material_id = ?", id).Error; err != nil {
			return err
		}
		return repo.DeleteMaterial(ctx, id)
	})
}

func (r *Repository) MaterialExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, &models.Material{}, id)
}

func (r *Repository) CountProcurementsByMaterial(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.ProcurementRecord{}).
		Where("material_id = ?", id).
		Count(&count)
	return count, result.Error
}
