package db

import (
	"context"
	"time"

	"github.com/parsel/projectops/internal/delivery/models"
)

// ProjectsByStatusWithCosts returns the projects carrying the given
// status label (matched case-sensitively) whose estimated and actual
// costs are both on record. Rows where either cost is null are excluded,
// not treated as zero.
func (r *Repository) ProjectsByStatusWithCosts(ctx context.Context, status string) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.WithContext(ctx).
		Where("status = ?", status).
		Where("estimated_cost IS NOT NULL").
		Where("actual_cost IS NOT NULL").
		Order("name, id").
		Find(&projects)
	return projects, result.Error
}

// ProjectsWithActualEnd returns the projects whose actual end date is on
// record, whatever their status label.
func (r *Repository) ProjectsWithActualEnd(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.WithContext(ctx).
		Where("actual_end_date IS NOT NULL").
		Order("name, id").
		Find(&projects)
	return projects, result.Error
}

// SupplierOrderStats groups procurement records by supplier, counting
// orders and summing purchase cost. The default inner join excludes
// suppliers without any procurement; includeInactive switches to a left
// join that keeps them with zero totals. The optional date bounds filter
// on purchase_date. Rows come back ordered by total_orders descending
// with supplier id ascending as the deterministic tie-break.
func (r *Repository) SupplierOrderStats(ctx context.Context, includeInactive bool, from, to *time.Time) ([]models.SupplierRankingRow, error) {
	join := "JOIN procurement_records ON procurement_records.supplier_id = suppliers.id"
	var args []interface{}
	if from != nil {
		join += " AND procurement_records.purchase_date >= ?"
		args = append(args, *from)
	}
	if to != nil {
		join += " AND procurement_records.purchase_date <= ?"
		args = append(args, *to)
	}
	if includeInactive {
		join = "LEFT " + join
	}

	var rows []models.SupplierRankingRow
	result := r.db.WithContext(ctx).Table("suppliers").
		Select("suppliers.id AS supplier_id, suppliers.name AS supplier_name, "+
			"COUNT(procurement_records.id) AS total_orders, "+
			"COALESCE(SUM(procurement_records.purchase_cost), 0) AS total_value").
		Joins(join, args...).
		Group("suppliers.id, suppliers.name").
		Order("total_orders DESC, supplier_id ASC").
		Scan(&rows)
	return rows, result.Error
}

// EmployeeAssignmentStats groups assignment rows by employee. Every
// assignment row counts on its own, so an employee assigned twice to the
// same project counts twice. includeIdle keeps employees without any
// assignment via a left join; the optional date bounds filter on
// task_start_date. Ordering mirrors SupplierOrderStats.
func (r *Repository) EmployeeAssignmentStats(ctx context.Context, includeIdle bool, from, to *time.Time) ([]models.EmployeeWorkloadRow, error) {
	join := "JOIN assignments ON assignments.employee_id = employees.id"
	var args []interface{}
	if from != nil {
		join += " AND assignments.task_start_date >= ?"
		args = append(args, *from)
	}
	if to != nil {
		join += " AND assignments.task_start_date <= ?"
		args = append(args, *to)
	}
	if includeIdle {
		join = "LEFT " + join
	}

	var rows []models.EmployeeWorkloadRow
	result := r.db.WithContext(ctx).Table("employees").
		Select("employees.id AS employee_id, employees.full_name AS full_name, "+
			"COUNT(assignments.id) AS projects_assigned").
		Joins(join, args...).
		Group("employees.id, employees.full_name").
		Order("projects_assigned DESC, employee_id ASC").
		Scan(&rows)
	return rows, result.Error
}
