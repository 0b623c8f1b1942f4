package db

import (
	"context"

	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/google/uuid"
)

func (r *Repository) CreateProcurement(ctx context.Context, record *models.ProcurementRecord) error {
	result := r.db.WithContext(ctx).Create(record)
	if result.Error != nil {
		return translate(result.Error)
	}
	return nil
}

func (r *Repository) GetProcurement(ctx context.Context, id uuid.UUID) (*models.ProcurementRecord, error) {
	var record models.ProcurementRecord
	result := r.db.WithContext(ctx).First(&record, "id = ?", id)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	return &record, nil
}

func (r *Repository) ListProcurements(ctx context.Context) ([]models.ProcurementRecord, error) {
	var records []models.ProcurementRecord
	result := r.db.WithContext(ctx).Order("purchase_date, id").Find(&records)
	return records, result.Error
}

func (r *Repository) UpdateProcurement(ctx context.Context, update *models.ProcurementRecordUpdate) error {
	changes := update.Changes()
	if len(changes) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.ProcurementRecord{}).
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

func (r *Repository) DeleteProcurement(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProcurementRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}
