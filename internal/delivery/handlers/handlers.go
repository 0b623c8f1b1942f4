// Package handlers exposes the entity catalog and the reports over HTTP,
// bridging the transport layer and the business logic and mapping the
// domain error taxonomy onto status codes.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/parsel/projectops/internal/delivery/analytics"
	e "github.com/parsel/projectops/internal/delivery/errors"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogController defines the business logic interface the entity
// routes invoke.
type CatalogController interface {
	CreateEmployee(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID, cascade bool) error

	CreateClient(ctx context.Context, client *models.Client) (*models.Client, error)
	GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, update *models.ClientUpdate) (*models.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID, cascade bool) error

	CreateProject(ctx context.Context, project *models.Project) (*models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, update *models.ProjectUpdate) (*models.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID, cascade bool) error

	CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error)
	GetSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	UpdateSupplier(ctx context.Context, update *models.SupplierUpdate) (*models.Supplier, error)
	DeleteSupplier(ctx context.Context, id uuid.UUID, cascade bool) error

	CreateMaterial(ctx context.Context, material *models.Material) (*models.Material, error)
	GetMaterial(ctx context.Context, id uuid.UUID) (*models.Material, error)
	ListMaterials(ctx context.Context) ([]models.Material, error)
	UpdateMaterial(ctx context.Context, update *models.MaterialUpdate) (*models.Material, error)
	DeleteMaterial(ctx context.Context, id uuid.UUID, cascade bool) error

	CreateProcurement(ctx context.Context, record *models.ProcurementRecord) (*models.ProcurementRecord, error)
	GetProcurement(ctx context.Context, id uuid.UUID) (*models.ProcurementRecord, error)
	ListProcurements(ctx context.Context) ([]models.ProcurementRecord, error)
	UpdateProcurement(ctx context.Context, update *models.ProcurementRecordUpdate) (*models.ProcurementRecord, error)
	DeleteProcurement(ctx context.Context, id uuid.UUID) error

	CreateAssignment(ctx context.Context, assignment *models.Assignment) (*models.Assignment, error)
	GetAssignment(ctx context.Context, id uuid.UUID) (*models.Assignment, error)
	ListAssignments(ctx context.Context) ([]models.Assignment, error)
	UpdateAssignment(ctx context.Context, update *models.AssignmentUpdate) (*models.Assignment, error)
	DeleteAssignment(ctx context.Context, id uuid.UUID) error
}

// ReportController defines the read-only report interface.
type ReportController interface {
	CostVariance(ctx context.Context) ([]models.CostVarianceRow, error)
	DurationPerformance(ctx context.Context) ([]models.DurationPerformanceRow, error)
	SupplierRanking(ctx context.Context, opts analytics.RankingOptions) ([]models.SupplierRankingRow, error)
	EmployeeWorkload(ctx context.Context, opts analytics.WorkloadOptions) ([]models.EmployeeWorkloadRow, error)
}

// SchemaResetter drops and recreates the schema. Setup/testing only.
type SchemaResetter interface {
	ResetSchema(ctx context.Context) error
}

// Handler wires the HTTP routes to the services.
type Handler struct {
	catalog CatalogController
	reports ReportController
	schema  SchemaResetter
	logger  *zap.Logger
}

func NewHandler(catalog CatalogController, reports ReportController, schema SchemaResetter, logger *zap.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		reports: reports,
		schema:  schema,
		logger:  logger.Named("http_handler"),
	}
}

// Routes builds the gin engine with every route registered.
func (h *Handler) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		employees := v1.Group("/employees")
		employees.POST("", h.CreateEmployee)
		employees.GET("", h.ListEmployees)
		employees.GET("/:id", h.GetEmployee)
		employees.PATCH("/:id", h.UpdateEmployee)
		employees.DELETE("/:id", h.DeleteEmployee)

		clients := v1.Group("/clients")
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
		clients.PATCH("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)

		projects := v1.Group("/projects")
		projects.POST("", h.CreateProject)
		projects.GET("", h.ListProjects)
		projects.GET("/:id", h.GetProject)
		projects.PATCH("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)

		suppliers := v1.Group("/suppliers")
		suppliers.POST("", h.CreateSupplier)
		suppliers.GET("", h.ListSuppliers)
		suppliers.GET("/:id", h.GetSupplier)
		suppliers.PATCH("/:id", h.UpdateSupplier)
		suppliers.DELETE("/:id", h.DeleteSupplier)

		materials := v1.Group("/materials")
		materials.POST("", h.CreateMaterial)
		materials.GET("", h.ListMaterials)
		materials.GET("/:id", h.GetMaterial)
		materials.PATCH("/:id", h.UpdateMaterial)
		materials.DELETE("/:id", h.DeleteMaterial)

		procurements := v1.Group("/procurements")
		procurements.POST("", h.CreateProcurement)
		procurements.GET("", h.ListProcurements)
		procurements.GET("/:id", h.GetProcurement)
		procurements.PATCH("/:id", h.UpdateProcurement)
		procurements.DELETE("/:id", h.DeleteProcurement)

		assignments := v1.Group("/assignments")
		assignments.POST("", h.CreateAssignment)
		assignments.GET("", h.ListAssignments)
		assignments.GET("/:id", h.GetAssignment)
		assignments.PATCH("/:id", h.UpdateAssignment)
		assignments.DELETE("/:id", h.DeleteAssignment)

		reports := v1.Group("/reports")
		reports.GET("/cost-variance", h.CostVarianceReport)
		reports.GET("/duration-performance", h.DurationPerformanceReport)
		reports.GET("/supplier-ranking", h.SupplierRankingReport)
		reports.GET("/employee-workload", h.EmployeeWorkloadReport)

		v1.POST("/admin/schema/reset", h.ResetSchema)
	}

	return router
}

// respondError maps a service error onto an HTTP status. Unexpected
// errors are logged and masked as 500s.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, e.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, e.ErrDependency):
		status = http.StatusConflict
	case errors.Is(err, e.ErrReference):
		status = http.StatusUnprocessableEntity
	default:
		h.logger.Error("Request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"success": false, "error": err.Error()})
}

func (h *Handler) respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// parseID reads the :id path parameter; on failure the 400 response has
// already been written.
func (h *Handler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.respondBadRequest(c, "invalid record ID")
		return uuid.Nil, false
	}
	return id, true
}

// checkImmutableID rejects update bodies that try to change the record
// identifier; the path id always wins.
func (h *Handler) checkImmutableID(c *gin.Context, bodyID, pathID uuid.UUID) bool {
	if bodyID != uuid.Nil && bodyID != pathID {
		h.respondError(c, fmt.Errorf("%w: record ID is immutable", e.ErrValidation))
		return false
	}
	return true
}

func cascadeRequested(c *gin.Context) bool {
	return c.Query("cascade") == "true"
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter; the bool
// is false when the value was present but malformed (a 400 has been
// written).
func (h *Handler) parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		h.respondBadRequest(c, fmt.Sprintf("invalid %s date, expected YYYY-MM-DD", name))
		return nil, false
	}
	return &t, true
}
