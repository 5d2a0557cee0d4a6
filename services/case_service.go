package services

import (
	"fmt"

	"law_office_app_go/models"

	"gorm.io/gorm"
)

// ClientExists reports whether a client with the given ID exists.
// Case writes call this before persisting so a case never references a
// client that was missing at the moment of the write.
func ClientExists(db *gorm.DB, clientID string) (bool, error) {
	var count int64
	if err := db.Model(&models.Client{}).Where("id = ?", clientID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check client existence: %w", err)
	}
	return count > 0, nil
}

// CaseNumberTaken reports whether a case number is already in use.
// excludeID skips a case (the one being updated); pass "" for creates.
func CaseNumberTaken(db *gorm.DB, caseNumber string, excludeID string) (bool, error) {
	query := db.Model(&models.Case{}).Where("case_number = ?", caseNumber)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check case number uniqueness: %w", err)
	}
	return count > 0, nil
}

// LoadCaseWithClient fetches a case by ID with its client preloaded.
// Returns gorm.ErrRecordNotFound when the ID does not exist.
func LoadCaseWithClient(db *gorm.DB, id string) (*models.Case, error) {
	var caseRecord models.Case
	if err := db.Preload("Client").First(&caseRecord, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &caseRecord, nil
}
