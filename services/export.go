package services

import (
	"fmt"

	"law_office_app_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// BuildCasesWorkbook builds an Excel workbook listing every case with the
// referenced client's contact details, newest first.
func BuildCasesWorkbook(db *gorm.DB) (*excelize.File, error) {
	var cases []models.Case
	if err := db.Preload("Client").Order("created_at DESC").Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cases for export: %w", err)
	}

	f := excelize.NewFile()

	sheet := "Cases"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Case Number", // A
		"Title",       // B
		"Court",       // C
		"Type",        // D
		"Status",      // E
		"Start Date",  // F
		"Client",      // G
		"Phone",       // H
		"Email",       // I
		"Notes",       // J
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "J1", headerStyle)
	f.SetColWidth(sheet, "A", "J", 20)
	f.SetColWidth(sheet, "J", "J", 40)

	for i, caseRecord := range cases {
		row := i + 2
		values := []interface{}{
			caseRecord.CaseNumber,
			caseRecord.Title,
			caseRecord.Court,
			caseRecord.Type,
			caseRecord.Status,
			caseRecord.StartDate.Format("2006-01-02"),
			caseRecord.Client.Name,
			caseRecord.Client.Phone,
			caseRecord.Client.Email,
			caseRecord.Notes,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, value)
		}
	}

	return f, nil
}
