// Package analytics derives the four management reports from the entity
// collections. Every report is a stateless, read-only projection over
// current data: safe to re-run and free of side effects.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/parsel/projectops/internal/delivery/models"
	"go.uber.org/zap"
)

// completedStatus is the stored lifecycle label, matched
// case-sensitively, that qualifies a project for the cost variance
// report.
const completedStatus = "Completed"

// Repository defines the storage reads the reports are built from.
// Grouping, counting and summing run store-side; per-row arithmetic
// happens here.
type Repository interface {
	ProjectsByStatusWithCosts(ctx context.Context, status string) ([]models.Project, error)
	ProjectsWithActualEnd(ctx context.Context) ([]models.Project, error)
	SupplierOrderStats(ctx context.Context, includeInactive bool, from, to *time.Time) ([]models.SupplierRankingRow, error)
	EmployeeAssignmentStats(ctx context.Context, includeIdle bool, from, to *time.Time) ([]models.EmployeeWorkloadRow, error)
}

// RankingOptions configures the supplier ranking report.
type RankingOptions struct {
	// IncludeInactive keeps suppliers with zero procurement records in
	// the output (left-join semantics) instead of the default inner
	// join.
	IncludeInactive bool
	// From/To bound purchase_date when set.
	From *time.Time
	To   *time.Time
}

// WorkloadOptions configures the employee workload report.
type WorkloadOptions struct {
	// IncludeIdle keeps employees with no assignments in the output.
	IncludeIdle bool
	// From/To bound task_start_date when set.
	From *time.Time
	To   *time.Time
}

// Service computes the reports.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("analytics"),
	}
}

// CostVariance returns one row per project with status "Completed" and
// both costs on record. Variance is actual minus estimated: positive is
// an overrun, negative an underrun. Projects missing either cost are
// excluded, never treated as zero.
func (s *Service) CostVariance(ctx context.Context) ([]models.CostVarianceRow, error) {
	projects, err := s.repo.ProjectsByStatusWithCosts(ctx, completedStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed projects: %w", err)
	}

	rows := make([]models.CostVarianceRow, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, models.CostVarianceRow{
			ProjectID:     project.ID,
			ProjectName:   project.Name,
			EstimatedCost: *project.EstimatedCost,
			ActualCost:    *project.ActualCost,
			Variance:      *project.ActualCost - *project.EstimatedCost,
		})
	}
	return rows, nil
}

// DurationPerformance returns one row per project whose actual end date
// is on record. Day counts are measured from the project start date and
// stay nil when either operand is missing, rather than being computed
// into a garbage value.
func (s *Service) DurationPerformance(ctx context.Context) ([]models.DurationPerformanceRow, error) {
	projects, err := s.repo.ProjectsWithActualEnd(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load finished projects: %w", err)
	}

	rows := make([]models.DurationPerformanceRow, 0, len(projects))
	for _, project := range projects {
		row := models.DurationPerformanceRow{
			ProjectID:   project.ID,
			ProjectName: project.Name,
		}
		if project.StartDate != nil {
			if project.EstimatedEndDate != nil {
				row.EstimatedDays = daysBetween(*project.StartDate, *project.EstimatedEndDate)
			}
			row.ActualDays = daysBetween(*project.StartDate, *project.ActualEndDate)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// SupplierRanking returns one row per supplier with its order count and
// total purchase value, ordered by total_orders descending with supplier
// id ascending as the tie-break.
func (s *Service) SupplierRanking(ctx context.Context, opts RankingOptions) ([]models.SupplierRankingRow, error) {
	rows, err := s.repo.SupplierOrderStats(ctx, opts.IncludeInactive, opts.From, opts.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load supplier order stats: %w", err)
	}
	return rows, nil
}

// EmployeeWorkload returns one row per employee with the count of its
// assignment rows, ordered like SupplierRanking.
func (s *Service) EmployeeWorkload(ctx context.Context, opts WorkloadOptions) ([]models.EmployeeWorkloadRow, error) {
	rows, err := s.repo.EmployeeAssignmentStats(ctx, opts.IncludeIdle, opts.From, opts.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee assignment stats: %w", err)
	}
	return rows, nil
}

// daysBetween counts whole days from from to to. Dates are stored
// date-only, so this equals the calendar-day difference.
func daysBetween(from, to time.Time) *int {
	days := int(to.Sub(from) / (24 * time.Hour))
	return &days
}
