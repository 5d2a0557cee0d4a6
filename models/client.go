package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a law-firm client
type Client struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name    string `gorm:"not null" json:"name"`
	Phone   string `gorm:"not null" json:"phone"`
	Email   string `gorm:"not null" json:"email"`
	Address string `gorm:"type:text;not null" json:"address"`
}

// BeforeCreate hook to generate UUID
func (cl *Client) BeforeCreate(tx *gorm.DB) error {
	if cl.ID == "" {
		cl.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Client model
func (Client) TableName() string {
	return "clients"
}

// Normalize trims whitespace from all text fields
func (cl *Client) Normalize() {
	cl.Name = strings.TrimSpace(cl.Name)
	cl.Phone = strings.TrimSpace(cl.Phone)
	cl.Email = strings.TrimSpace(cl.Email)
	cl.Address = strings.TrimSpace(cl.Address)
}

// Validate checks that all required fields are present
func (cl *Client) Validate() error {
	cl.Normalize()

	missing := []string{}
	if cl.Name == "" {
		missing = append(missing, "name")
	}
	if cl.Phone == "" {
		missing = append(missing, "phone")
	}
	if cl.Email == "" {
		missing = append(missing, "email")
	}
	if cl.Address == "" {
		missing = append(missing, "address")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}
