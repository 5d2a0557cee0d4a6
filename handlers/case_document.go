package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"law_office_app_go/db"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UploadCaseDocument attaches a file to a case via the configured storage
func UploadCaseDocument(c echo.Context) error {
	caseID := c.Param("id")

	var caseRecord models.Case
	if err := db.DB.First(&caseRecord, "id = ?", caseID).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "Case not found",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "File is required",
		})
	}

	// Random storage key; the original filename lives in the record only
	key := fmt.Sprintf("cases/%s/%s%s", caseRecord.ID, uuid.New().String(), filepath.Ext(file.Filename))

	result, err := services.Storage.Upload(c.Request().Context(), file, key)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to store file",
		})
	}

	document := &models.CaseDocument{
		CaseID:           caseRecord.ID,
		FileName:         result.FileName,
		FileOriginalName: file.Filename,
		FileSize:         result.FileSize,
		MimeType:         result.MimeType,
		StorageKey:       result.Key,
	}

	if err := db.DB.Create(document).Error; err != nil {
		// Don't leave the blob orphaned if the record write fails
		if delErr := services.Storage.Delete(c.Request().Context(), result.Key); delErr != nil {
			log.Printf("[WARNING] Failed to clean up stored file %s: %v", result.Key, delErr)
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to save document",
		})
	}

	return c.JSON(http.StatusCreated, document)
}

// ListCaseDocuments returns the documents attached to a case, newest first
func ListCaseDocuments(c echo.Context) error {
	caseID := c.Param("id")

	var caseRecord models.Case
	if err := db.DB.First(&caseRecord, "id = ?", caseID).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "Case not found",
		})
	}

	var documents []models.CaseDocument
	if err := db.DB.Where("case_id = ?", caseRecord.ID).Order("created_at DESC").Find(&documents).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to fetch documents",
		})
	}

	return c.JSON(http.StatusOK, documents)
}

// DownloadCaseDocument streams a stored document back to the browser
func DownloadCaseDocument(c echo.Context) error {
	id := c.Param("id")

	var document models.CaseDocument
	if err := db.DB.First(&document, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "Document not found",
		})
	}

	reader, contentType, err := services.Storage.Get(c.Request().Context(), document.StorageKey)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to read document",
		})
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", document.FileOriginalName))
	return c.Stream(http.StatusOK, contentType, reader)
}

// DeleteCaseDocument removes a document record and its stored file
func DeleteCaseDocument(c echo.Context) error {
	id := c.Param("id")

	var document models.CaseDocument
	if err := db.DB.First(&document, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "Document not found",
		})
	}

	if err := services.Storage.Delete(c.Request().Context(), document.StorageKey); err != nil {
		// Keep going: a dangling blob is preferable to an undeletable record
		log.Printf("[WARNING] Failed to delete stored file %s: %v", document.StorageKey, err)
	}

	if err := db.DB.Delete(&document).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to delete document",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Document deleted successfully",
	})
}
