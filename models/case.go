package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Case status constants
const (
	CaseStatusOpen      = "open"
	CaseStatusClosed    = "closed"
	CaseStatusAdjourned = "adjourned"
)

// Case represents a legal case owned by exactly one client
type Case struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Case identification
	CaseNumber string `gorm:"not null;uniqueIndex" json:"caseNumber"`
	Title      string `gorm:"not null" json:"title"`
	Court      string `gorm:"not null" json:"court"`
	Type       string `gorm:"not null" json:"type"`

	// Status and lifecycle
	Status    string    `gorm:"not null;default:open" json:"status"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	Notes     string    `gorm:"type:text" json:"notes"`

	// Client relationship (verified at write time, not a database constraint)
	ClientID string `gorm:"type:uuid;not null;index" json:"clientId"`
	Client   Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// BeforeCreate hook to generate UUID and default the status
func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = CaseStatusOpen
	}
	return nil
}

// TableName specifies the table name for Case model
func (Case) TableName() string {
	return "cases"
}

// Normalize trims whitespace from all text fields
func (c *Case) Normalize() {
	c.CaseNumber = strings.TrimSpace(c.CaseNumber)
	c.Title = strings.TrimSpace(c.Title)
	c.Court = strings.TrimSpace(c.Court)
	c.Type = strings.TrimSpace(c.Type)
	c.Notes = strings.TrimSpace(c.Notes)
	c.Status = strings.TrimSpace(c.Status)
}

// Validate checks required fields and the status enum
func (c *Case) Validate() error {
	c.Normalize()

	missing := []string{}
	if c.CaseNumber == "" {
		missing = append(missing, "caseNumber")
	}
	if c.Title == "" {
		missing = append(missing, "title")
	}
	if c.Court == "" {
		missing = append(missing, "court")
	}
	if c.Type == "" {
		missing = append(missing, "type")
	}
	if c.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}
	if c.ClientID == "" {
		missing = append(missing, "clientId")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	if c.Status != "" && !IsValidCaseStatus(c.Status) {
		return fmt.Errorf("invalid status: %s. Must be one of: open, closed, adjourned", c.Status)
	}
	return nil
}

// IsOpen checks if the case is open
func (c *Case) IsOpen() bool {
	return c.Status == CaseStatusOpen
}

// IsClosed checks if the case is closed
func (c *Case) IsClosed() bool {
	return c.Status == CaseStatusClosed
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	switch status {
	case CaseStatusOpen, CaseStatusClosed, CaseStatusAdjourned:
		return true
	}
	return false
}
