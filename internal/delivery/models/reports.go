package models

import "github.com/google/uuid"

// CostVarianceRow compares estimated against actual cost for a completed
// project. Positive variance is an overrun, negative an underrun.
type CostVarianceRow struct {
	ProjectID     uuid.UUID `json:"project_id"`
	ProjectName   string    `json:"project_name"`
	EstimatedCost float64   `json:"estimated_cost"`
	ActualCost    float64   `json:"actual_cost"`
	Variance      float64   `json:"variance"`
}

// DurationPerformanceRow compares planned against actual schedule for a
// finished project. A day count is nil when the dates needed to compute
// it are not on record.
type DurationPerformanceRow struct {
	ProjectID     uuid.UUID `json:"project_id"`
	ProjectName   string    `json:"project_name"`
	EstimatedDays *int      `json:"estimated_days,omitempty"`
	ActualDays    *int      `json:"actual_days,omitempty"`
}

// SupplierRankingRow summarizes a supplier's procurement activity.
type SupplierRankingRow struct {
	SupplierID   uuid.UUID `gorm:"column:supplier_id" json:"supplier_id"`
	SupplierName string    `gorm:"column:supplier_name" json:"supplier_name"`
	TotalOrders  int64     `gorm:"column:total_orders" json:"total_orders"`
	TotalValue   float64   `gorm:"column:total_value" json:"total_value"`
}

// EmployeeWorkloadRow counts the assignment rows held by an employee.
// Repeated assignment to the same project counts once per row.
type EmployeeWorkloadRow struct {
	EmployeeID       uuid.UUID `gorm:"column:employee_id" json:"employee_id"`
	FullName         string    `gorm:"column:full_name" json:"full_name"`
	ProjectsAssigned int64     `gorm:"column:projects_assigned" json:"projects_assigned"`
}
