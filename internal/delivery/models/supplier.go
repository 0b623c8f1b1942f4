package models

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is a vendor the firm procures materials from.
type Supplier struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:200;not null" json:"name"`
	// Email must be unique across all suppliers when present.
	Email *string `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	// Phone must be unique across all suppliers when present.
	Phone *string `gorm:"size:30;uniqueIndex" json:"phone,omitempty"`
	// Rating is an optional numeric vendor score.
	Rating    *float64  `gorm:"type:decimal(4,2)" json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Supplier.
func (Supplier) TableName() string { return "suppliers" }

// SupplierUpdate represents the fields that can be updated for a Supplier.
type SupplierUpdate struct {
	ID     uuid.UUID `json:"id,omitempty"`
	Name   *string   `json:"name,omitempty"`
	Email  *string   `json:"email,omitempty"`
	Phone  *string   `json:"phone,omitempty"`
	Rating *float64  `json:"rating,omitempty"`
}

// Changes returns the column assignments carried by the update.
func (u *SupplierUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Email != nil {
		changes["email"] = *u.Email
	}
	if u.Phone != nil {
		changes["phone"] = *u.Phone
	}
	if u.Rating != nil {
		changes["rating"] = *u.Rating
	}
	return changes
}
