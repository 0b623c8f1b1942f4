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

// CreateSupplier adds a new Supplier. Email and phone are optional but
// must be unique across all suppliers when present.
func (s *CatalogService) CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error) {
	if err := checkRequired([]requiredField{{"name", supplier.Name}}); err != nil {
		return nil, err
	}
	if supplier.Email != nil {
		if err := s.checkUnique(ctx, s.repo.SupplierValueTaken, "email", *supplier.Email, uuid.Nil); err != nil {
			return nil, err
		}
	}
	if supplier.Phone != nil {
		if err := s.checkUnique(ctx, s.repo.SupplierValueTaken, "phone", *supplier.Phone, uuid.Nil); err != nil {
			return nil, err
		}
	}

	supplier.ID = uuid.New()
	if err := s.repo.CreateSupplier(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordCreated, events.EntitySupplier, supplier.ID, supplier)
	}()
	return supplier, nil
}

func (s *CatalogService) GetSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	supplier, err := s.repo.GetSupplier(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return supplier, nil
}

func (s *CatalogService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := s.repo.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

func (s *CatalogService) UpdateSupplier(ctx context.Context, update *models.SupplierUpdate) (*models.Supplier, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid supplier ID", e.ErrValidation)
	}
	if err := checkNotBlanked([]requiredPtrField{{"name", update.Name}}); err != nil {
		return nil, err
	}
	if update.Email != nil {
		if err := s.checkUnique(ctx, s.repo.SupplierValueTaken, "email", *update.Email, update.ID); err != nil {
			return nil, err
		}
	}
	if update.Phone != nil {
		if err := s.checkUnique(ctx, s.repo.SupplierValueTaken, "phone", *update.Phone, update.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateSupplier(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	updated, err := s.repo.GetSupplier(ctx, update.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated supplier: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordUpdated, events.EntitySupplier, updated.ID, updated)
	}()
	return updated, nil
}

// DeleteSupplier removes a Supplier. Without cascade the delete is
// rejected while procurement records still reference the supplier; with
// cascade those records are removed first.
func (s *CatalogService) DeleteSupplier(ctx context.Context, id uuid.UUID, cascade bool) error {
	supplier, err := s.repo.GetSupplier(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get supplier for deletion: %w", err)
	}

	if cascade {
		if err := s.repo.DeleteSupplierCascade(ctx, id); err != nil {
			return fmt.Errorf("failed to cascade delete supplier: %w", err)
		}
	} else {
		dependents, err := s.repo.CountProcurementsBySupplier(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count supplier procurements: %w", err)
		}
		if dependents > 0 {
			return fmt.Errorf("%w: supplier has %d procurement records", e.ErrDependency, dependents)
		}
		if err := s.repo.DeleteSupplier(ctx, id); err != nil {
			return fmt.Errorf("failed to delete supplier: %w", err)
		}
	}

	go func() {
		s.producer.Produce(events.RecordDeleted, events.EntitySupplier, id, supplier)
	}()
	return nil
}
