package handlers

import (
	"net/http"
	"time"

	"law_office_app_go/db"
	"law_office_app_go/models"

	"github.com/labstack/echo/v4"
)

// recentCaseEntry is the reduced case shape used in the dashboard stats
type recentCaseEntry struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	CaseNumber string    `json:"caseNumber"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	ClientID   struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"clientId"`
}

// statsResponse aggregates record counts and the most recent cases
type statsResponse struct {
	TotalClients   int64             `json:"totalClients"`
	TotalCases     int64             `json:"totalCases"`
	OpenCases      int64             `json:"openCases"`
	ClosedCases    int64             `json:"closedCases"`
	AdjournedCases int64             `json:"adjournedCases"`
	RecentCases    []recentCaseEntry `json:"recentCases"`
}

// GetStats computes dashboard statistics: client/case totals, counts per
// status, and the five most recently created cases.
func GetStats(c echo.Context) error {
	var stats statsResponse

	if err := db.DB.Model(&models.Client{}).Count(&stats.TotalClients).Error; err != nil {
		return statsError(c)
	}
	if err := db.DB.Model(&models.Case{}).Count(&stats.TotalCases).Error; err != nil {
		return statsError(c)
	}

	statusCounts := []struct {
		status string
		target *int64
	}{
		{models.CaseStatusOpen, &stats.OpenCases},
		{models.CaseStatusClosed, &stats.ClosedCases},
		{models.CaseStatusAdjourned, &stats.AdjournedCases},
	}
	for _, sc := range statusCounts {
		if err := db.DB.Model(&models.Case{}).Where("status = ?", sc.status).Count(sc.target).Error; err != nil {
			return statsError(c)
		}
	}

	var recent []models.Case
	if err := db.DB.Preload("Client").Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		return statsError(c)
	}

	stats.RecentCases = make([]recentCaseEntry, 0, len(recent))
	for _, caseRecord := range recent {
		entry := recentCaseEntry{
			ID:         caseRecord.ID,
			Title:      caseRecord.Title,
			CaseNumber: caseRecord.CaseNumber,
			Status:     caseRecord.Status,
			CreatedAt:  caseRecord.CreatedAt,
		}
		entry.ClientID.ID = caseRecord.Client.ID
		entry.ClientID.Name = caseRecord.Client.Name
		stats.RecentCases = append(stats.RecentCases, entry)
	}

	return c.JSON(http.StatusOK, stats)
}

// statsError hides store failure detail behind a generic aggregation error
func statsError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"message": "Error fetching statistics",
	})
}
