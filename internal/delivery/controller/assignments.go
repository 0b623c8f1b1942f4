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

// CreateAssignment places an employee on a project. Both references are
// required and must name existing records.
func (s *CatalogService) CreateAssignment(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	if assignment.ProjectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project_id is required", e.ErrValidation)
	}
	if assignment.EmployeeID == uuid.Nil {
		return nil, fmt.Errorf("%w: employee_id is required", e.ErrValidation)
	}
	if err := s.checkReference(ctx, s.repo.ProjectExists, "project_id", assignment.ProjectID); err != nil {
		return nil, err
	}
	if err := s.checkReference(ctx, s.repo.EmployeeExists, "employee_id", assignment.EmployeeID); err != nil {
		return nil, err
	}

	assignment.ID = uuid.New()
	if err := s.repo.CreateAssignment(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordCreated, events.EntityAssignment, assignment.ID, assignment)
	}()
	return assignment, nil
}

func (s *CatalogService) GetAssignment(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	assignment, err := s.repo.GetAssignment(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

func (s *CatalogService) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	assignments, err := s.repo.ListAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

func (s *CatalogService) UpdateAssignment(ctx context.Context, update *models.AssignmentUpdate) (*models.Assignment, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid assignment ID", e.ErrValidation)
	}
	refs := []struct {
		field  string
		value  *uuid.UUID
		exists func(context.Context, uuid.UUID) (bool, error)
	}{
		{"project_id", update.ProjectID, s.repo.ProjectExists},
		{"employee_id", update.EmployeeID, s.repo.EmployeeExists},
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

	if err := s.repo.UpdateAssignment(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	updated, err := s.repo.GetAssignment(ctx, update.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated assignment: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordUpdated, events.EntityAssignment, updated.ID, updated)
	}()
	return updated, nil
}

// DeleteAssignment removes an assignment row. Nothing references
// assignments, so no cascade variant exists.
func (s *CatalogService) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	assignment, err := s.repo.GetAssignment(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get assignment for deletion: %w", err)
	}

	if err := s.repo.DeleteAssignment(ctx, id); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	go func() {
		s.producer.Produce(events.RecordDeleted, events.EntityAssignment, id, assignment)
	}()
	return nil
}
