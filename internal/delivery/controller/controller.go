// Package controller implements the core business logic (service layer)
// for the entity catalog: required-field validation, uniqueness and
// referential checks, the delete policy, and mutation event production.
package controller

import (
	"context"
	"fmt"

	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/events"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventProducer interface {
	Produce(eventType events.EventType, entity string, id uuid.UUID, record interface{})
}

// Repository defines the storage interface for the entity catalog.
type Repository interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) error
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
	DeleteEmployeeCascade(ctx context.Context, id uuid.UUID) error
	EmployeeExists(ctx context.Context, id uuid.UUID) (bool, error)
	EmployeeValueTaken(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error)
	CountAssignmentsByEmployee(ctx context.Context, id uuid.UUID) (int64, error)

	CreateClient(ctx context.Context, client *models.Client) error
	GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, update *models.ClientUpdate) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
	DeleteClientCascade(ctx context.Context, id uuid.UUID) error
	ClientExists(ctx context.Context, id uuid.UUID) (bool, error)
	ClientValueTaken(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error)
	CountProjectsByClient(ctx context.Context, id uuid.UUID) (int64, error)

	CreateProject(ctx context.Context, project *models.Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, update *models.ProjectUpdate) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
	DeleteProjectCascade(ctx context.Context, id uuid.UUID) error
	ProjectExists(ctx context.Context, id uuid.UUID) (bool, error)
	CountAssignmentsByProject(ctx context.Context, id uuid.UUID) (int64, error)
	CountProcurementsByProject(ctx context.Context, id uuid.UUID) (int64, error)

	CreateSupplier(ctx context.Context, supplier *models.Supplier) error
	GetSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	UpdateSupplier(ctx context.Context, update *models.SupplierUpdate) error
	DeleteSupplier(ctx context.Context, id uuid.UUID) error
	DeleteSupplierCascade(ctx context.Context, id uuid.UUID) error
	SupplierExists(ctx context.Context, id uuid.UUID) (bool, error)
	SupplierValueTaken(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error)
	CountProcurementsBySupplier(ctx context.Context, id uuid.UUID) (int64, error)

	CreateMaterial(ctx context.Context, material *models.Material) error
	GetMaterial(ctx context.Context, id uuid.UUID) (*models.Material, error)
	ListMaterials(ctx context.Context) ([]models.Material, error)
	UpdateMaterial(ctx context.Context, update *models.MaterialUpdate) error
	DeleteMaterial(ctx context.Context, id uuid.UUID) error
	DeleteMaterialCascade(ctx context.Context, id uuid.UUID) error
	MaterialExists(ctx context.Context, id uuid.UUID) (bool, error)
	CountProcurementsByMaterial(ctx context.Context, id uuid.UUID) (int64, error)

	CreateProcurement(ctx context.Context, record *models.ProcurementRecord) error
	GetProcurement(ctx context.Context, id uuid.UUID) (*models.ProcurementRecord, error)
	ListProcurements(ctx context.Context) ([]models.ProcurementRecord, error)
	UpdateProcurement(ctx context.Context, update *models.ProcurementRecordUpdate) error
	DeleteProcurement(ctx context.Context, id uuid.UUID) error

	CreateAssignment(ctx context.Context, assignment *models.Assignment) error
	GetAssignment(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
	UpdateAssignment(ctx context.Context, update *models.AssignmentUpdate) error
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}

// CatalogService provides the mutation operations over the seven entity
// collections, enforcing the integrity rules on every call.
type CatalogService struct {
	repo     Repository
	producer EventProducer
	logger   *zap.Logger
}

// NewCatalogService constructs a CatalogService with a repository, an
// event producer, and a logger.
func NewCatalogService(repo Repository, producer EventProducer, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("catalog_service"),
	}
}

// terminalStatuses are the lifecycle labels under which actual cost and
// actual end date may be recorded. The status field itself stays free
// text.
var terminalStatuses = map[string]bool{
	"Completed": true,
	"Cancelled": true,
}

func isTerminal(status string) bool {
	return terminalStatuses[status]
}

type requiredField struct {
	name  string
	value string
}

func checkRequired(fields []requiredField) error {
	for _, field := range fields {
		if field.value == "" {
			return fmt.Errorf("%w: %s is required", e.ErrValidation, field.name)
		}
	}
	return nil
}

type requiredPtrField struct {
	name  string
	value *string
}

// checkNotBlanked rejects updates that clear a required field.
func checkNotBlanked(fields []requiredPtrField) error {
	for _, field := range fields {
		if field.value != nil && *field.value == "" {
			return fmt.Errorf("%w: %s is required", e.ErrValidation, field.name)
		}
	}
	return nil
}

// checkUnique probes a unique column through the given repository
// method, excluding the record being updated.
func (s *CatalogService) checkUnique(ctx context.Context, taken func(context.Context, string, string, uuid.UUID) (bool, error), column, value string, exclude uuid.UUID) error {
	inUse, err := taken(ctx, column, value, exclude)
	if err != nil {
		return fmt.Errorf("failed to check %s uniqueness: %w", column, err)
	}
	if inUse {
		return fmt.Errorf("%w: %s %q", e.ErrConflict, column, value)
	}
	return nil
}

// checkReference verifies that a reference field names an existing
// record.
func (s *CatalogService) checkReference(ctx context.Context, exists func(context.Context, uuid.UUID) (bool, error), field string, id uuid.UUID) error {
	found, err := exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check %s reference: %w", field, err)
	}
	if !found {
		return fmt.Errorf("%w: %s %s", e.ErrReference, field, id)
	}
	return nil
}
