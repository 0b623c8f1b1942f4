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

// CreateProject adds a new Project. The client reference is optional but
// must name an existing client when set. Actual cost and actual end date
// may only be recorded under a terminal status.
func (s *CatalogService) CreateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	if err := checkRequired([]requiredField{{"name", project.Name}}); err != nil {
		return nil, err
	}
	if project.ClientID != nil {
		if err := s.checkReference(ctx, s.repo.ClientExists, "client_id", *project.ClientID); err != nil {
			return nil, err
		}
	}
	if (project.ActualCost != nil || project.ActualEndDate != nil) && !isTerminal(project.Status) {
		return nil, fmt.Errorf("%w: actual cost and actual end date require a terminal status", e.ErrValidation)
	}

	project.ID = uuid.New()
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordCreated, events.EntityProject, project.ID, project)
	}()
	return project, nil
}

func (s *CatalogService) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *CatalogService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *CatalogService) UpdateProject(ctx context.Context, update *models.ProjectUpdate) (*models.Project, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid project ID", e.ErrValidation)
	}
	if err := checkNotBlanked([]requiredPtrField{{"name", update.Name}}); err != nil {
		return nil, err
	}
	if update.ClientID != nil {
		if err := s.checkReference(ctx, s.repo.ClientExists, "client_id", *update.ClientID); err != nil {
			return nil, err
		}
	}
	if update.ActualCost != nil || update.ActualEndDate != nil {
		status, err := s.resultingStatus(ctx, update)
		if err != nil {
			return nil, err
		}
		if !isTerminal(status) {
			return nil, fmt.Errorf("%w: actual cost and actual end date require a terminal status", e.ErrValidation)
		}
	}

	if err := s.repo.UpdateProject(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	updated, err := s.repo.GetProject(ctx, update.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated project: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordUpdated, events.EntityProject, updated.ID, updated)
	}()
	return updated, nil
}

// resultingStatus is the status label the project will carry once the
// update is applied.
func (s *CatalogService) resultingStatus(ctx context.Context, update *models.ProjectUpdate) (string, error) {
	if update.Status != nil {
		return *update.Status, nil
	}
	current, err := s.repo.GetProject(ctx, update.ID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to get project: %w", err)
	}
	return current.Status, nil
}

// DeleteProject removes a Project. Without cascade the delete is
// rejected while assignments or procurement records still reference the
// project; with cascade those dependents are removed first.
func (s *CatalogService) DeleteProject(ctx context.Context, id uuid.UUID, cascade bool) error {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get project for deletion: %w", err)
	}

	if cascade {
		if err := s.repo.DeleteProjectCascade(ctx, id); err != nil {
			return fmt.Errorf("failed to cascade delete project: %w", err)
		}
	} else {
		assignments, err := s.repo.CountAssignmentsByProject(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count project assignments: %w", err)
		}
		procurements, err := s.repo.CountProcurementsByProject(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count project procurements: %w", err)
		}
		if assignments+procurements > 0 {
			return fmt.Errorf("%w: project has %d assignments and %d procurement records",
				e.ErrDependency, assignments, procurements)
		}
		if err := s.repo.DeleteProject(ctx, id); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
	}

	go func() {
		s.producer.Produce(events.RecordDeleted, events.EntityProject, id, project)
	}()
	return nil
}
