package models

import (
	"time"

	"github.com/google/uuid"
)

// ProcurementRecord is a purchase of a material from a supplier for a
// project. All three references are required.
type ProcurementRecord struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"project_id"`
	SupplierID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"supplier_id"`
	MaterialID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"material_id"`
	QuantityPurchased float64    `gorm:"type:decimal(14,2)" json:"quantity_purchased"`
	PurchaseCost      float64    `gorm:"type:decimal(14,2)" json:"purchase_cost"`
	PurchaseDate      *time.Time `gorm:"type:date;index" json:"purchase_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TableName specifies the table name for ProcurementRecord.
func (ProcurementRecord) TableName() string { return "procurement_records" }

// ProcurementRecordUpdate represents the fields that can be updated for a
// ProcurementRecord.
type ProcurementRecordUpdate struct {
	ID                uuid.UUID  `json:"id,omitempty"`
	ProjectID         *uuid.UUID `json:"project_id,omitempty"`
	SupplierID        *uuid.UUID `json:"supplier_id,omitempty"`
	MaterialID        *uuid.UUID `json:"material_id,omitempty"`
	QuantityPurchased *float64   `json:"quantity_purchased,omitempty"`
	PurchaseCost      *float64   `json:"purchase_cost,omitempty"`
	PurchaseDate      *time.Time `json:"purchase_date,omitempty"`
}

// Changes returns the column assignments carried by the update.
func (u *ProcurementRecordUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.ProjectID != nil {
		changes["project_id"] = *u.ProjectID
	}
	if u.SupplierID != nil {
		changes["supplier_id"] = *u.SupplierID
	}
	if u.MaterialID != nil {
		changes["material_id"] = *u.MaterialID
	}
	if u.QuantityPurchased != nil {
		changes["quantity_purchased"] = *u.QuantityPurchased
	}
	if u.PurchaseCost != nil {
		changes["purchase_cost"] = *u.PurchaseCost
	}
	if u.PurchaseDate != nil {
		changes["purchase_date"] = *u.PurchaseDate
	}
	return changes
}
