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

// CreateMaterial adds a new Material. Every attribute except the
// generated identifier is optional.
func (s *CatalogService) CreateMaterial(ctx context.Context, material *models.Material) (*models.Material, error) {
	material.ID = uuid.New()
	if err := s.repo.CreateMaterial(ctx, material); err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordCreated, events.EntityMaterial, material.ID, material)
	}()
	return material, nil
}

func (s *CatalogService) GetMaterial(ctx context.Context, id uuid.UUID) (*models.Material, error) {
	material, err := s.repo.GetMaterial(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get material: %w", err)
	}
	return material, nil
}

func (s *CatalogService) ListMaterials(ctx context.Context) ([]models.Material, error) {
	materials, err := s.repo.ListMaterials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	return materials, nil
}

func (s *CatalogService) UpdateMaterial(ctx context.Context, update *models.MaterialUpdate) (*models.Material, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid material ID", e.ErrValidation)
	}

	if err := s.repo.UpdateMaterial(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update material: %w", err)
	}

	updated, err := s.repo.GetMaterial(ctx, update.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated material: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordUpdated, events.EntityMaterial, updated.ID, updated)
	}()
	return updated, nil
}

// DeleteMaterial removes a Material. Without cascade the delete is
// rejected while procurement records still reference the material; with
// cascade those records are removed first.
func (s *CatalogService) DeleteMaterial(ctx context.Context, id uuid.UUID, cascade bool) error {
	material, err := s.repo.GetMaterial(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get material for deletion: %w", err)
	}

	if cascade {
		if err := s.repo.DeleteMaterialCascade(ctx, id); err != nil {
			return fmt.Errorf("failed to cascade delete material: %w", err)
		}
	} else {
		dependents, err := s.repo.CountProcurementsByMaterial(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count material procurements: %w", err)
		}
		if dependents > 0 {
			return fmt.Errorf("%w: material has %d procurement records", e.ErrDependency, dependents)
		}
		if err := s.repo.DeleteMaterial(ctx, id); err != nil {
			return fmt.Errorf("failed to delete material: %w", err)
		}
	}

	go func() {
		s.producer.Produce(events.RecordDeleted, events.EntityMaterial, id, material)
	}()
	return nil
}
