package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is a customer the firm delivers projects for.
type Client struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	// Name is the client's display name.
	Name string `gorm:"size:200;not null;index" json:"name"`
	// Email must be unique across all clients when present.
	Email *string `gorm:"size:100;uniqueIndex" json:"email,omitempty"`
	// Phone must be unique across all clients when present.
	Phone     *string   `gorm:"size:30;uniqueIndex" json:"phone,omitempty"`
	Address   *string   `gorm:"type:text" json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Client.
func (Client) TableName() string { return "clients" }

// ClientUpdate represents the fields that can be updated for a Client.
type ClientUpdate struct {
	ID      uuid.UUID `json:"id,omitempty"`
	Name    *string   `json:"name,omitempty"`
	Email   *string   `json:"email,omitempty"`
	Phone   *string   `json:"phone,omitempty"`
	Address *string   `json:"address,omitempty"`
}

// Changes returns the column assignments carried by the update.
func (u *ClientUpdate) Changes() map[string]interface{} {
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
	if u.Address != nil {
		changes["address"] = *u.Address
	}
	return changes
}
