package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CaseDocument represents a file attached to a case
type CaseDocument struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CaseID string `gorm:"type:uuid;not null;index" json:"caseId"`
	Case   Case   `gorm:"foreignKey:CaseID" json:"-"`

	FileName         string `gorm:"not null" json:"fileName"`
	FileOriginalName string `gorm:"not null" json:"fileOriginalName"`
	FileSize         int64  `json:"fileSize"`
	MimeType         string `json:"mimeType"`
	StorageKey       string `gorm:"not null" json:"-"` // Key within the storage provider, never exposed
}

// BeforeCreate hook to generate UUID
func (d *CaseDocument) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (CaseDocument) TableName() string {
	return "case_documents"
}
