package models

import (
	"time"

	"github.com/google/uuid"
)

// Material is a construction material tracked for procurement. Every
// attribute except the identifier is optional.
type Material struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          *string   `gorm:"size:200;index" json:"name,omitempty"`
	UnitOfMeasure *string   `gorm:"size:50" json:"unit_of_measure,omitempty"`
	UnitCost      *float64  `gorm:"type:decimal(14,2)" json:"unit_cost,omitempty"`
	// TotalMaterialCost is the running spend recorded against the
	// material.
	TotalMaterialCost *float64  `gorm:"type:decimal(14,2)" json:"total_material_cost,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName specifies the table name for Material.
func (Material) TableName() string { return "materials" }

// MaterialUpdate represents the fields that can be updated for a Material.
type MaterialUpdate struct {
	ID                uuid.UUID `json:"id,omitempty"`
	Name              *string   `json:"name,omitempty"`
	UnitOfMeasure     *string   `json:"unit_of_measure,omitempty"`
	UnitCost          *float64  `json:"unit_cost,omitempty"`
	TotalMaterialCost *float64  `json:"total_material_cost,omitempty"`
}

// Changes returns the column assignments carried by the update.
func (u *MaterialUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.UnitOfMeasure != nil {
		changes["unit_of_measure"] = *u.UnitOfMeasure
	}
	if u.UnitCost != nil {
		changes["unit_cost"] = *u.UnitCost
	}
	if u.TotalMaterialCost != nil {
		changes["total_material_cost"] = *u.TotalMaterialCost
	}
	return changes
}
