package db

import (
	"context"

	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/google/uuid"
)

func (r *Repository) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	result := r.db.WithContext(ctx).Create(supplier)
	if result.Error != nil {
		return translate(result.Error)
	}
	return nil
}

func (r *Repository) GetSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	result := r.db.WithContext(ctx).First(&supplier, "id = ?", id)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &supplier, nil
}

func (r *Repository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	result := r.db.WithContext(ctx).Order("name, id").Find(&suppliers)
	return suppliers, result.Error
}

func (r *Repository) UpdateSupplier(ctx context.Context, update *models.SupplierUpdate) error {
	changes := update.Changes()
	if len(changes) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Supplier{}).
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

func (r *Repository) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// DeleteSupplierCascade removes the supplier together with its
// procurement records, in one transaction.
func (r *Repository) DeleteSupplierCascade(ctx context.Context, id uuid.UUID) error {
	return r.WithTransaction(ctx, func(repo *Repository) error {
		if err := repo.db.Delete(&models.ProcurementRecord{}, "supplier_id = ?", id).Error; err != nil {
			return err
		}
		return repo.DeleteSupplier(ctx, id)
	})
}

func (r *Repository) SupplierExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, &models.Supplier{}, id)
}

// SupplierValueTaken reports whether another supplier already uses value
// in the given unique column ("email" or "phone").
func (r *Repository) SupplierValueTaken(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error) {
	return r.valueTaken(ctx, &models.Supplier{}, column, value, exclude)
}

func (r *Repository) CountProcurementsBySupplier(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.ProcurementRecord{}).
		Where("supplier_id = ?", id).
		Count(&count)
	return count, result.Error
}
