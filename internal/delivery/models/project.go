package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a delivery engagement, optionally attached to a client.
// Date and cost columns are nullable: absent means "not yet known",
// never zero. ActualEndDate and ActualCost are only populated once the
// project reaches a terminal status.
type Project struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:200;not null" json:"name"`
	// ClientID references the client on record; a project may exist
	// without one.
	ClientID         *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`
	StartDate        *time.Time `gorm:"type:date;index" json:"start_date,omitempty"`
	EstimatedEndDate *time.Time `gorm:"type:date" json:"estimated_end_date,omitempty"`
	ActualEndDate    *time.Time `gorm:"type:date;index" json:"actual_end_date,omitempty"`
	EstimatedCost    *float64   `gorm:"type:decimal(14,2)" json:"estimated_cost,omitempty"`
	ActualCost       *float64   `gorm:"type:decimal(14,2)" json:"actual_cost,omitempty"`
	// Status is a free-text lifecycle label, e.g. "Completed",
	// "In Progress".
	Status    string    `gorm:"size:50;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Project.
func (Project) TableName() string { return "projects" }

// ProjectUpdate represents the fields that can be updated for a Project.
type ProjectUpdate struct {
	ID               uuid.UUID  `json:"id,omitempty"`
	Name             *string    `json:"name,omitempty"`
	ClientID         *uuid.UUID `json:"client_id,omitempty"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EstimatedEndDate *time.Time `json:"estimated_end_date,omitempty"`
	ActualEndDate    *time.Time `json:"actual_end_date,omitempty"`
	EstimatedCost    *float64   `json:"estimated_cost,omitempty"`
	ActualCost       *float64   `json:"actual_cost,omitempty"`
	Status           *string    `json:"status,omitempty"`
}

// Changes returns the column assignments carried by the update.
func (u *ProjectUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.ClientID != nil {
		changes["client_id"] = *u.ClientID
	}
	if u.StartDate != nil {
		changes["start_date"] = *u.StartDate
	}
	if u.EstimatedEndDate != nil {
		changes["estimated_end_date"] = *u.EstimatedEndDate
	}
	if u.ActualEndDate != nil {
		changes["actual_end_date"] = *u.ActualEndDate
	}
	if u.EstimatedCost != nil {
		changes["estimated_cost"] = *u.EstimatedCost
	}
	if u.ActualCost != nil {
		changes["actual_cost"] = *u.ActualCost
	}
	if u.Status != nil {
		changes["status"] = *u.Status
	}
	return changes
}
