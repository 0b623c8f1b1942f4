package controller

import (
	"context"
	"sync"

	"github.com/parsel/projectops/internal/delivery/events"
	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/google/uuid"
)

// MockRepository implements the Repository interface for testing. Each
// method delegates to the matching func field; tests set only the fields
// the path under test touches.
type MockRepository struct {
	createEmployee             func(context.Context, *models.Employee) error
	getEmployee                func(context.Context, uuid.UUID) (*models.Employee, error)
	listEmployees              func(context.Context) ([]models.Employee, error)
	updateEmployee             func(context.Context, *models.EmployeeUpdate) error
	deleteEmployee             func(context.Context, uuid.UUID) error
	deleteEmployeeCascade      func(context.Context, uuid.UUID) error
	employeeExists             func(context.Context, uuid.UUID) (bool, error)
	employeeValueTaken         func(context.Context, string, string, uuid.UUID) (bool, error)
	countAssignmentsByEmployee func(context.Context, uuid.UUID) (int64, error)

	createClient          func(context.Context, *models.Client) error
	getClient             func(context.Context, uuid.UUID) (*models.Client, error)
	listClients           func(context.Context) ([]models.Client, error)
	updateClient          func(context.Context, *models.ClientUpdate) error
	deleteClient          func(context.Context, uuid.UUID) error
	deleteClientCascade   func(context.Context, uuid.UUID) error
	clientExists          func(context.Context, uuid.UUID) (bool, error)
	clientValueTaken      func(context.Context, string, string, uuid.UUID) (bool, error)
	countProjectsByClient func(context.Context, uuid.UUID) (int64, error)

	createProject              func(context.Context, *models.Project) error
	getProject                 func(context.Context, uuid.UUID) (*models.Project, error)
	listProjects               func(context.Context) ([]models.Project, error)
	updateProject              func(context.Context, *models.ProjectUpdate) error
	deleteProject              func(context.Context, uuid.UUID) error
	deleteProjectCascade       func(context.Context, uuid.UUID) error
	projectExists              func(context.Context, uuid.UUID) (bool, error)
	countAssignmentsByProject  func(context.Context, uuid.UUID) (int64, error)
	countProcurementsByProject func(context.Context, uuid.UUID) (int64, error)

	createSupplier              func(context.Context, *models.Supplier) error
	getSupplier                 func(context.Context, uuid.UUID) (*models.Supplier, error)
	listSuppliers               func(context.Context) ([]models.Supplier, error)
	updateSupplier              func(context.Context, *models.SupplierUpdate) error
	deleteSupplier              func(context.Context, uuid.UUID) error
	deleteSupplierCascade       func(context.Context, uuid.UUID) error
	supplierExists              func(context.Context, uuid.UUID) (bool, error)
	supplierValueTaken          func(context.Context, string, string, uuid.UUID) (bool, error)
	countProcurementsBySupplier func(context.Context, uuid.UUID) (int64, error)

	createMaterial              func(context.Context, *models.Material) error
	getMaterial                 func(context.Context, uuid.UUID) (*models.Material, error)
	listMaterials               func(context.Context) ([]models.Material, error)
	updateMaterial              func(context.Context, *models.MaterialUpdate) error
	deleteMaterial              func(context.Context, uuid.UUID) error
	deleteMaterialCascade       func(context.Context, uuid.UUID) error
	materialExists              func(context.Context, uuid.UUID) (bool, error)
	countProcurementsByMaterial func(context.Context, uuid.UUID) (int64, error)

	createProcurement func(context.Context, *models.ProcurementRecord) error
	getProcurement    func(context.Context, uuid.UUID) (*models.ProcurementRecord, error)
	listProcurements  func(context.Context) ([]models.ProcurementRecord, error)
	updateProcurement func(context.Context, *models.ProcurementRecordUpdate) error
	deleteProcurement func(context.Context, uuid.UUID) error

	createAssignment func(context.Context, *models.Assignment) error
	getAssignment    func(context.Context, uuid.UUID) (*models.Assignment, error)
	listAssignments  func(context.Context) ([]models.Assignment, error)
	updateAssignment func(context.Context, *models.AssignmentUpdate) error
	deleteAssignment func(context.Context, uuid.UUID) error
}

func (m *MockRepository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	return m.createEmployee(ctx, employee)
}

func (m *MockRepository) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	return m.getEmployee(ctx, id)
}

func (m *MockRepository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return m.listEmployees(ctx)
}

func (m *MockRepository) UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) error {
	return m.updateEmployee(ctx, update)
}

func (m *MockRepository) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return m.deleteEmployee(ctx, id)
}

func (m *MockRepository) DeleteEmployeeCascade(ctx context.Context, id uuid.UUID) error {
	return m.deleteEmployeeCascade(ctx, id)
}

func (m *MockRepository) EmployeeExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.employeeExists(ctx, id)
}

func (m *MockRepository) EmployeeValueTaken(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error) {
	return m.employeeValueTaken(ctx, column, value, exclude)
}

func (m *MockRepository) CountAssignmentsByEmployee(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.countAssignmentsByEmployee(ctx, id)
}

func (m *MockRepository) CreateClient(ctx context.Context, client *models.Client) error {
	return m.createClient(ctx, client)
}

func (m *MockRepository) GetClient(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	return m.getClient(ctx, id)
}

func (m *MockRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	return m.listClients(ctx)
}

func (m *MockRepository) UpdateClient(ctx context.Context, update *models.ClientUpdate) error {
	return m.updateClient(ctx, update)
}

func (m *MockRepository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return m.deleteClient(ctx, id)
}

func (m *MockRepository) DeleteClientCascade(ctx context.Context, id uuid.UUID) error {
	return m.deleteClientCascade(ctx, id)
}

func (m *MockRepository) ClientExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.clientExists(ctx, id)
}

func (m *MockRepository) ClientValueTaken(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error) {
	return m.clientValueTaken(ctx, column, value, exclude)
}

func (m *MockRepository) CountProjectsByClient(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.countProjectsByClient(ctx, id)
}

func (m *MockRepository) CreateProject(ctx context.Context, project *models.Project) error {
	return m.createProject(ctx, project)
}

func (m *MockRepository) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return m.getProject(ctx, id)
}

func (m *MockRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	return m.listProjects(ctx)
}

func (m *MockRepository) UpdateProject(ctx context.Context, update *models.ProjectUpdate) error {
	return m.updateProject(ctx, update)
}

func (m *MockRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return m.deleteProject(ctx, id)
}

func (m *MockRepository) DeleteProjectCascade(ctx context.Context, id uuid.UUID) error {
	return m.deleteProjectCascade(ctx, id)
}

func (m *MockRepository) ProjectExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.projectExists(ctx, id)
}

func (m *MockRepository) CountAssignmentsByProject(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.countAssignmentsByProject(ctx, id)
}

func (m *MockRepository) CountProcurementsByProject(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.countProcurementsByProject(ctx, id)
}

func (m *MockRepository) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	return m.createSupplier(ctx, supplier)
}

func (m *MockRepository) GetSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	return m.getSupplier(ctx, id)
}

func (m *MockRepository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return m.listSuppliers(ctx)
}

func (m *MockRepository) UpdateSupplier(ctx context.Context, update *models.SupplierUpdate) error {
	return m.updateSupplier(ctx, update)
}

func (m *MockRepository) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	return m.deleteSupplier(ctx, id)
}

func (m *MockRepository) DeleteSupplierCascade(ctx context.Context, id uuid.UUID) error {
	return m.deleteSupplierCascade(ctx, id)
}

func (m *MockRepository) SupplierExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.supplierExists(ctx, id)
}

func (m *MockRepository) SupplierValueTaken(ctx context.Context, column, value string, exclude uuid.UUID) (bool, error) {
	return m.supplierValueTaken(ctx, column, value, exclude)
}

func (m *MockRepository) CountProcurementsBySupplier(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.countProcurementsBySupplier(ctx, id)
}

func (m *MockRepository) CreateMaterial(ctx context.Context, material *models.Material) error {
	return m.createMaterial(ctx, material)
}

func (m *MockRepository) GetMaterial(ctx context.Context, id uuid.UUID) (*models.Material, error) {
	return m.getMaterial(ctx, id)
}

func (m *MockRepository) ListMaterials(ctx context.Context) ([]models.Material, error) {
	return m.listMaterials(ctx)
}

func (m *MockRepository) UpdateMaterial(ctx context.Context, update *models.MaterialUpdate) error {
	return m.updateMaterial(ctx, update)
}

func (m *MockRepository) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	return m.deleteMaterial(ctx, id)
}

func (m *MockRepository) DeleteMaterialCascade(ctx context.Context, id uuid.UUID) error {
	return m.deleteMaterialCascade(ctx, id)
}

func (m *MockRepository) MaterialExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.materialExists(ctx, id)
}

func (m *MockRepository) CountProcurementsByMaterial(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.countProcurementsByMaterial(ctx, id)
}

func (m *MockRepository) CreateProcurement(ctx context.Context, record *models.ProcurementRecord) error {
	return m.createProcurement(ctx, record)
}

func (m *MockRepository) GetProcurement(ctx context.Context, id uuid.UUID) (*models.ProcurementRecord, error) {
	return m.getProcurement(ctx, id)
}

func (m *MockRepository) ListProcurements(ctx context.Context) ([]models.ProcurementRecord, error) {
	return m.listProcurements(ctx)
}

func (m *MockRepository) UpdateProcurement(ctx context.Context, update *models.ProcurementRecordUpdate) error {
	return m.updateProcurement(ctx, update)
}

func (m *MockRepository) DeleteProcurement(ctx context.Context, id uuid.UUID) error {
	return m.deleteProcurement(ctx, id)
}

func (m *MockRepository) CreateAssignment(ctx context.Context, assignment *models.Assignment) error {
	return m.createAssignment(ctx, assignment)
}

func (m *MockRepository) GetAssignment(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	return m.getAssignment(ctx, id)
}

func (m *MockRepository) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	return m.listAssignments(ctx)
}

func (m *MockRepository) UpdateAssignment(ctx context.Context, update *models.AssignmentUpdate) error {
	return m.updateAssignment(ctx, update)
}

func (m *MockRepository) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	return m.deleteAssignment(ctx, id)
}

// producedEvent captures one Produce call.
type producedEvent struct {
	Type   events.EventType
	Entity string
	ID     uuid.UUID
	Record interface{}
}

// MockProducer is a test double for the Kafka producer.
type MockProducer struct {
	mu             sync.Mutex
	producedEvents []producedEvent
	wg             *sync.WaitGroup
}

// Produce records the event and signals the wait group.
func (m *MockProducer) Produce(eventType events.EventType, entity string, id uuid.UUID, record interface{}) {
	m.mu.Lock()
	m.producedEvents = append(m.producedEvents, producedEvent{eventType, entity, id, record})
	m.mu.Unlock()
	if m.wg != nil {
		m.wg.Done()
	}
}

func (m *MockProducer) events() []producedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]producedEvent(nil), m.producedEvents...)
}
