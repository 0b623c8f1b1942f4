package db

import (
	"context"

	"github.com/parsel/projectops/internal/delivery/models"
)

// ResetSchema drops every entity table and recreates it from the model
// definitions. This is a setup/testing operation; removing records during
// normal operation goes through the per-entity delete methods and their
// cascade variants, never through a table drop.
func (r *Repository) ResetSchema(ctx context.Context) error {
	migrator := r.db.WithContext(ctx).Migrator()

	// Referencing tables drop first.
	tables := []interface{}{
		&models.Assignment{},
		&models.ProcurementRecord{},
		&models.Project{},
		&models.Material{},
		&models.Supplier{},
		&models.Employee{},
		&models.Client{},
	}
	for _, table := range tables {
		if !migrator.HasTable(table) {
			continue
		}
		if err := migrator.DropTable(table); err != nil {
			return err
		}
	}
	return migrate(r.db.WithContext(ctx))
}
