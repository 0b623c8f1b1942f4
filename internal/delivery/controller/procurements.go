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

// CreateProcurement records a purchase. All three references are
// required and must name existing records; nothing is written when any
// check fails.
func (s *CatalogService) CreateProcurement(ctx context.Context, record *models.ProcurementRecord) (*models.ProcurementRecord, error) {
	if record.ProjectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project_id is required", e.ErrValidation)
	}
	if record.SupplierID == uuid.Nil {
		return nil, fmt.Errorf("%w: supplier_id is required", e.ErrValidation)
	}
	if record.MaterialID == uuid.Nil {
		return nil, fmt.Errorf("%w: material_id is required", e.ErrValidation)
	}
	if err := s.checkReference(ctx, s.repo.ProjectExists, "project_id", record.ProjectID); err != nil {
		return nil, err
	}
	if err := s.checkReference(ctx, s.repo.SupplierExists, "supplier_id", record.SupplierID); err != nil {
		return nil, err
	}
	if err := s.checkReference(ctx, s.repo.MaterialExists, "material_id", record.MaterialID); err != nil {
		return nil, err
	}

	record.ID = uuid.New()
	if err := s.repo.CreateProcurement(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create procurement record: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordCreated, events.EntityProcurement, record.ID, record)
	}()
	return record, nil
}

func (s *CatalogService) GetProcurement(ctx context.Context, id uuid.UUID) (*models.ProcurementRecord, error) {
	record, err := s.repo.GetProcurement(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get procurement record: %w", err)
	}
	return record, nil
}

func (s *CatalogService) ListProcurements(ctx context.Context) ([]models.ProcurementRecord, error) {
	records, err := s.repo.ListProcurements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list procurement records: %w", err)
	}
	return records, nil
}

func (s *CatalogService) UpdateProcurement(ctx context.Context, update *models.ProcurementRecordUpdate) (*models.ProcurementRecord, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid procurement record ID", e.ErrValidation)
	}
	refs := []struct {
		field  string
		value  *uuid.UUID
		exists func(context.Context, uuid.UUID) (bool, error)
	}{
		{"project_id", update.ProjectID, s.repo.ProjectExists},
		{"supplier_id", update.SupplierID, s.repo.SupplierExists},
		{"material_id", update.MaterialID, s.repo.MaterialExists},
	}
	for _, ref := range refs {
		if ref.value == nil {
			continue
		}
		if *ref.value == uuid.Nil {
			return nil, fmt.Errorf("%w: %s is required", e.ErrValidation, ref.field)
		}
		if err := s.checkReference(ctx, ref.exists, ref.field, *ref.value); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateProcurement(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update procurement record: %w", err)
	}

	updated, err := s.repo.GetProcurement(ctx, update.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated procurement record: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordUpdated, events.EntityProcurement, updated.ID, updated)
	}()
	return updated, nil
}

// DeleteProcurement removes a procurement record. Nothing references
// procurement records, so no cascade variant exists.
func (s *CatalogService) DeleteProcurement(ctx context.Context, id uuid.UUID) error {
	record, err := s.repo.GetProcurement(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get procurement record for deletion: %w", err)
	}

	if err := s.repo.DeleteProcurement(ctx, id); err != nil {
		return fmt.Errorf("failed to delete procurement record: %w", err)
	}

	go func() {
		s.producer.Produce(events.RecordDeleted, events.EntityProcurement, id, record)
	}()
	return nil
}
