package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment places an employee on a project for a task. An employee may
// hold several assignments on the same project; each row counts on its
// own in the workload report.
type Assignment struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"project_id"`
	EmployeeID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"employee_id"`
	Role          string     `gorm:"size:100" json:"role"`
	TaskStartDate *time.Time `gorm:"type:date;index" json:"task_start_date,omitempty"`
	TaskEndDate   *time.Time `gorm:"type:date" json:"task_end_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName specifies the table name for Assignment.
func (Assignment) TableName() string { return "assignments" }

// AssignmentUpdate represents the fields that can be updated for an
// Assignment.
type AssignmentUpdate struct {
	ID            uuid.UUID  `json:"id,omitempty"`
	ProjectID     *uuid.UUID `json:"project_id,omitempty"`
	EmployeeID    *uuid.UUID `json:"employee_id,omitempty"`
	Role          *string    `json:"role,omitempty"`
	TaskStartDate *time.Time `json:"task_start_date,omitempty"`
	TaskEndDate   *time.Time `json:"task_end_date,omitempty"`
}

// Changes returns the column assignments carried by the update.
func (u *AssignmentUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.ProjectID != nil {
		changes["project_id"] = *u.ProjectID
	}
	if u.EmployeeID != nil {
		changes["employee_id"] = *u.EmployeeID
	}
	if u.Role != nil {
		changes["role"] = *u.Role
	}
	if u.TaskStartDate != nil {
		changes["task_start_date"] = *u.TaskStartDate
	}
	if u.TaskEndDate != nil {
		changes["task_end_date"] = *u.TaskEndDate
	}
	return changes
}
