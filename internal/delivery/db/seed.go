package db

import (
	"context"
	"time"

	"github.com/parsel/projectops/internal/delivery/models"
	"github.com/parsel/projectops/internal/pkg/utils"
	"github.com/google/uuid"
)

// Seed loads a small, internally consistent fixture set: one client with
// a completed and an in-progress project, three employees, two suppliers,
// two materials, and the procurement and assignment rows tying them
// together. Intended for development databases and smoke tests; it
// assumes empty tables.
func (r *Repository) Seed(ctx context.Context) error {
	date := func(value string) *time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return &t
	}

	client := &models.Client{
		ID:    uuid.New(),
		Name:  "Harbor City Council",
		Email: utils.Ptr("infra@harborcity.gov"),
		Phone: utils.Ptr("555-0100"),
	}

	employees := []*models.Employee{
		{ID: uuid.New(), FullName: "Alice Moran", JobRole: "Site Engineer", Email: "alice@parsel.com", Status: "Active", Phone: "555-0199"},
		{ID: uuid.New(), FullName: "Ben Okafor", JobRole: "Project Manager", Email: "ben@parsel.com", Status: "Active", Phone: "555-0198"},
		{ID: uuid.New(), FullName: "Carla Diaz", JobRole: "Surveyor", Email: "carla@parsel.com", Status: "On Leave", Phone: "555-0197"},
	}

	suppliers := []*models.Supplier{
		{ID: uuid.New(), Name: "Granite Works Ltd", Email: utils.Ptr("sales@graniteworks.example"), Phone: utils.Ptr("555-0301"), Rating: utils.Ptr(4.5)},
		{ID: uuid.New(), Name: "SteelFast Supply", Email: utils.Ptr("orders@steelfast.example"), Phone: utils.Ptr("555-0302")},
	}

	materials := []*models.Material{
		{ID: uuid.New(), Name: utils.Ptr("Rebar 16mm"), UnitOfMeasure: utils.Ptr("t"), UnitCost: utils.Ptr(820.0)},
		{ID: uuid.New(), Name: utils.Ptr("Ready-mix concrete C30"), UnitOfMeasure: utils.Ptr("m3"), UnitCost: utils.Ptr(110.0)},
	}

	completed := &models.Project{
		ID:               uuid.New(),
		Name:             "Skyline Bridge",
		ClientID:         &client.ID,
		StartDate:        date("2024-02-01"),
		EstimatedEndDate: date("2025-03-01"),
		ActualEndDate:    date("2025-04-15"),
		EstimatedCost:    utils.Ptr(1000000.00),
		ActualCost:       utils.Ptr(950000.00),
		Status:           "Completed",
	}
	inProgress := &models.Project{
		ID:            uuid.New(),
		Name:          "Riverside Depot",
		ClientID:      &client.ID,
		StartDate:     date("2025-06-01"),
		EstimatedCost: utils.Ptr(400000.00),
		Status:        "In Progress",
	}

	procurements := []*models.ProcurementRecord{
		{ID: uuid.New(), ProjectID: completed.ID, SupplierID: suppliers[0].ID, MaterialID: materials[0].ID, QuantityPurchased: 40, PurchaseCost: 5000.00, PurchaseDate: date("2024-03-10")},
		{ID: uuid.New(), ProjectID: completed.ID, SupplierID: suppliers[1].ID, MaterialID: materials[1].ID, QuantityPurchased: 120, PurchaseCost: 13200.00, PurchaseDate: date("2024-05-02")},
		{ID: uuid.New(), ProjectID: inProgress.ID, SupplierID: suppliers[1].ID, MaterialID: materials[0].ID, QuantityPurchased: 12, PurchaseCost: 9840.00, PurchaseDate: date("2025-07-20")},
	}

	assignments := []*models.Assignment{
		{ID: uuid.New(), ProjectID: completed.ID, EmployeeID: employees[0].ID, Role: "Lead Engineer", TaskStartDate: date("2024-02-01"), TaskEndDate: date("2025-04-15")},
		{ID: uuid.New(), ProjectID: completed.ID, EmployeeID: employees[1].ID, Role: "Delivery Manager", TaskStartDate: date("2024-02-01")},
		{ID: uuid.New(), ProjectID: inProgress.ID, EmployeeID: employees[0].ID, Role: "Site Engineer", TaskStartDate: date("2025-06-01")},
	}

	return r.WithTransaction(ctx, func(repo *Repository) error {
		if err := repo.CreateClient(ctx, client); err != nil {
			return err
		}
		for _, employee := range employees {
			if err := repo.CreateEmployee(ctx, employee); err != nil {
				return err
			}
		}
		for _, supplier := range suppliers {
			if err := repo.CreateSupplier(ctx, supplier); err != nil {
				return err
			}
		}
		for _, material := range materials {
			if err := repo.CreateMaterial(ctx, material); err != nil {
				return err
			}
		}
		for _, project := range []*models.Project{completed, inProgress} {
			if err := repo.CreateProject(ctx, project); err != nil {
				return err
			}
		}
		for _, record := range procurements {
			if err := repo.CreateProcurement(ctx, record); err != nil {
				return err
			}
		}
		for _, assignment := range assignments {
			if err := repo.CreateAssignment(ctx, assignment); err != nil {
				return err
			}
		}
		return nil
	})
}
