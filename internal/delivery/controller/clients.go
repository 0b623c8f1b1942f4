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

// CreateClient adds a new Client. Email and phone are optional but must
// be unique across all clients when present.
func (s *CatalogService) CreateClient(ctx context.Context, client *models.Client) (*models.Client, error) {
	if err := checkRequired([]requiredField{{"name", client.Name}}); err != nil {
		return nil, err
	}
	if client.Email != nil {
		if err := s.checkUnique(ctx, s.repo.ClientValueTaken, "email", *client.Email, uuid.Nil); err != nil {
			return nil, err
		}
	}
	if client.Phone != nil {
		if err := s.checkUnique(ctx, s.repo.ClientValueTaken, "phone", *client.Phone, uuid.Nil); err != nil {
			return nil, err
		}
	}

	client.ID = uuid.New()
	if err := s.repo.CreateClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordCreated, events.EntityClient, client.ID, client)
	}()
	return client, nil
}

func (s *CatalogService) GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	client, err := s.repo.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return client, nil
}

func (s *CatalogService) ListClients(ctx context.Context) ([]models.Client, error) {
	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *CatalogService) UpdateClient(ctx context.Context, update *models.ClientUpdate) (*models.Client, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid client ID", e.ErrValidation)
	}
	if err := checkNotBlanked([]requiredPtrField{{"name", update.Name}}); err != nil {
		return nil, err
	}
	if update.Email != nil {
		if err := s.checkUnique(ctx, s.repo.ClientValueTaken, "email", *update.Email, update.ID); err != nil {
			return nil, err
		}
	}
	if update.Phone != nil {
		if err := s.checkUnique(ctx, s.repo.ClientValueTaken, "phone", *update.Phone, update.ID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateClient(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	updated, err := s.repo.GetClient(ctx, update.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated client: %w", err)
	}
	go func() {
		s.producer.Produce(events.RecordUpdated, events.EntityClient, updated.ID, updated)
	}()
	return updated, nil
}

// DeleteClient removes a Client. Without cascade the delete is rejected
// while projects still reference the client; with cascade the projects
// and, transitively, their assignments and procurement records are
// removed first.
func (s *CatalogService) DeleteClient(ctx context.Context, id uuid.UUID, cascade bool) error {
	client, err := s.repo.GetClient(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get client for deletion: %w", err)
	}

	if cascade {
		if err := s.repo.DeleteClientCascade(ctx, id); err != nil {
			return fmt.Errorf("failed to cascade delete client: %w", err)
		}
	} else {
		dependents, err := s.repo.CountProjectsByClient(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count client projects: %w", err)
		}
		if dependents > 0 {
			return fmt.Errorf("%w: client has %d projects", e.ErrDependency, dependents)
		}
		if err := s.repo.DeleteClient(ctx, id); err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}
	}

	go func() {
		s.producer.Produce(events.RecordDeleted, events.EntityClient, id, client)
	}()
	return nil
}
