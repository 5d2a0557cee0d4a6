package handlers

import (
	"fmt"
	"net/http"

	"law_office_app_go/db"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// CaseReport renders a one-page PDF summary of a case.
// Requires a Chrome/Chromium binary (CHROME_PATH overrides discovery).
func CaseReport(c echo.Context) error {
	id := c.Param("id")

	caseRecord, err := services.LoadCaseWithClient(db.DB, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "Case not found",
		})
	}

	html, err := services.BuildCaseReportHTML(caseRecord)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to build report",
		})
	}

	pdf, err := services.GeneratePDF(html, services.DefaultPDFOptions())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to generate report",
		})
	}

	fileName := fmt.Sprintf("case-%s.pdf", caseRecord.CaseNumber)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
