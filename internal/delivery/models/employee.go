// Package models defines the domain records for project-delivery
// operations: the seven entity collections and the row types produced by
// the reporting queries.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a staff member who can be assigned to projects.
type Employee struct {
	// ID is the unique identifier for the employee.
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	// FullName is the employee's full legal name.
	FullName string `gorm:"size:100;not null" json:"full_name"`
	// JobRole is the employee's position within the firm.
	JobRole string `gorm:"size:100;not null" json:"job_role"`
	// Email must be unique across all employees.
	Email string `gorm:"size:100;not null;uniqueIndex" json:"email"`
	// Status is a free-text employment status label.
	Status string `gorm:"size:50;not null" json:"status"`
	// Address is optional contact information.
	Address *string `gorm:"type:text" json:"address,omitempty"`
	// Phone must be unique across all employees.
	Phone     string    `gorm:"size:30;not null;uniqueIndex" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Employee.
func (Employee) TableName() string { return "employees" }

// EmployeeUpdate represents the fields that can be updated for an Employee.
// Pointer types are used to allow partial updates; the ID itself is the
// update target and is never written.
type EmployeeUpdate struct {
	ID       uuid.UUID `json:"id,omitempty"`
	FullName *string   `json:"full_name,omitempty"`
	JobRole  *string   `json:"job_role,omitempty"`
	Email    *string   `json:"email,omitempty"`
	Status   *string   `json:"status,omitempty"`
	Address  *string   `json:"address,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
}

// Changes returns the column assignments carried by the update.
func (u *EmployeeUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.FullName != nil {
		changes["full_name"] = *u.FullName
	}
	if u.JobRole != nil {
		changes["job_role"] = *u.JobRole
	}
	if u.Email != nil {
		changes["email"] = *u.Email
	}
	if u.Status != nil {
		changes["status"] = *u.Status
	}
	if u.Address != nil {
		changes["address"] = *u.Address
	}
	if u.Phone != nil {
		changes["phone"] = *u.Phone
	}
	return changes
}
