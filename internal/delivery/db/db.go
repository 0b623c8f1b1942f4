// Package db implements the GORM-backed repository for the seven entity
// collections and the aggregation queries behind the reports.
package db

import (
	"context"
	"errors"
	"fmt"

	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewRepository(cfg *Config) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}

// migrate creates or updates the seven entity tables. Referencing tables
// come last so their FK indexes always have a target.
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.Employee{},
		&models.Supplier{},
		&models.Material{},
		&models.Project{},
		&models.ProcurementRecord{},
		&models.Assignment{},
	)
}

// translate maps GORM errors onto the domain error taxonomy.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return e.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return e.ErrConflict
	default:
		return err
	}
}

// exists reports whether a row of the given model with the given id is
// present.
func (r *Repository) exists(ctx context.Context, model interface{}, id uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(model).
		Where("id = ?", id).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

// valueTaken reports whether the given column already holds value in
// another row than exclude. Pass uuid.Nil to consider every row.
func (r *Repository) valueTaken(ctx context.Context, model interface{}, column, value string, exclude uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(model).
		Where(fmt.Sprintf("%s = ?", column), value)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}
	var count int64
	result := query.Limit(1).Count(&count)
	return count > 0, result.Error
}

func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) Exec(ctx context.Context, query string, params ...interface{}) error {
	result := r.db.WithContext(ctx).Exec(query, params...)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *Repository) Close() error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
