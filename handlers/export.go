package handlers

import (
	"fmt"
	"net/http"
	"time"

	"law_office_app_go/db"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportCases streams an Excel workbook of all cases with client details
func ExportCases(c echo.Context) error {
	workbook, err := services.BuildCasesWorkbook(db.DB)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to export cases",
		})
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to export cases",
		})
	}

	fileName := fmt.Sprintf("cases-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
