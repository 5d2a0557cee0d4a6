package handlers

import (
	"net/http"
	"time"

	"law_office_app_go/config"
	"law_office_app_go/db"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/labstack/echo/v4"
)

// caseRequest is the typed contract for case create requests
type caseRequest struct {
	CaseNumber string `json:"caseNumber"`
	Title      string `json:"title"`
	Court      string `json:"court"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	StartDate  string `json:"startDate"`
	Notes      string `json:"notes"`
	ClientID   string `json:"clientId"`
}

// caseUpdateRequest carries only the fields present in the request body
type caseUpdateRequest struct {
	CaseNumber *string `json:"caseNumber"`
	Title      *string `json:"title"`
	Court      *string `json:"court"`
	Type       *string `json:"type"`
	Status     *string `json:"status"`
	StartDate  *string `json:"startDate"`
	Notes      *string `json:"notes"`
	ClientID   *string `json:"clientId"`
}

// expandedClient is the subset of client fields embedded in case responses
type expandedClient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// caseResponse is a case with its client reference expanded at read time
type caseResponse struct {
	ID         string         `json:"id"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	CaseNumber string         `json:"caseNumber"`
	Title      string         `json:"title"`
	Court      string         `json:"court"`
	Type       string         `json:"type"`
	Status     string         `json:"status"`
	StartDate  time.Time      `json:"startDate"`
	Notes      string         `json:"notes"`
	ClientID   expandedClient `json:"clientId"`
}

// toCaseResponse projects a case (with client preloaded) into the wire shape
func toCaseResponse(caseRecord *models.Case) caseResponse {
	return caseResponse{
		ID:         caseRecord.ID,
		CreatedAt:  caseRecord.CreatedAt,
		UpdatedAt:  caseRecord.UpdatedAt,
		CaseNumber: caseRecord.CaseNumber,
		Title:      caseRecord.Title,
		Court:      caseRecord.Court,
		Type:       caseRecord.Type,
		Status:     caseRecord.Status,
		StartDate:  caseRecord.StartDate,
		Notes:      caseRecord.Notes,
		ClientID: expandedClient{
			ID:    caseRecord.Client.ID,
			Name:  caseRecord.Client.Name,
			Phone: caseRecord.Client.Phone,
			Email: caseRecord.Client.Email,
		},
	}
}

// parseDate accepts both plain dates and RFC3339 timestamps, since the
// browser form posts "2024-01-15" while API clients tend to send full
// timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// GetCases returns all cases, newest first, with client data expanded
func GetCases(c echo.Context) error {
	var cases []models.Case
	if err := db.DB.Preload("Client").Order("created_at DESC").Find(&cases).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to fetch cases",
		})
	}

	responses := make([]caseResponse, 0, len(cases))
	for i := range cases {
		responses = append(responses, toCaseResponse(&cases[i]))
	}
	return c.JSON(http.StatusOK, responses)
}

// CreateCase creates a new case after verifying the referenced client exists
func CreateCase(c echo.Context) error {
	req := new(caseRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Invalid request body",
		})
	}

	// Verify client exists before any case write
	exists, err := services.ClientExists(db.DB, req.ClientID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to verify client",
		})
	}
	if !exists {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Client not found",
		})
	}

	caseRecord := &models.Case{
		CaseNumber: services.SanitizeText(req.CaseNumber),
		Title:      services.SanitizeText(req.Title),
		Court:      services.SanitizeText(req.Court),
		Type:       services.SanitizeText(req.Type),
		Status:     req.Status,
		Notes:      services.SanitizeText(req.Notes),
		ClientID:   req.ClientID,
	}
	if caseRecord.Status == "" {
		caseRecord.Status = models.CaseStatusOpen
	}

	if req.StartDate != "" {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"message": "Invalid startDate: expected YYYY-MM-DD",
			})
		}
		caseRecord.StartDate = startDate
	}

	if err := caseRecord.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": err.Error(),
		})
	}

	taken, err := services.CaseNumberTaken(db.DB, caseRecord.CaseNumber, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to verify case number",
		})
	}
	if taken {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Case number already exists",
		})
	}

	if err := db.DB.Create(caseRecord).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to create case",
		})
	}

	created, err := services.LoadCaseWithClient(db.DB, caseRecord.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to load created case",
		})
	}

	// Notify the client asynchronously; never blocks the response
	if cfg, ok := c.Get("config").(*config.Config); ok {
		if email, err := services.BuildCaseOpenedEmail(&created.Client, created); err == nil {
			services.SendEmailAsync(cfg, email)
		}
	}

	return c.JSON(http.StatusCreated, toCaseResponse(created))
}

// UpdateCase updates an existing case by ID.
// When the request supplies a clientId it is re-validated before anything
// is changed.
func UpdateCase(c echo.Context) error {
	id := c.Param("id")

	caseRecord, err := services.LoadCaseWithClient(db.DB, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "Case not found",
		})
	}

	req := new(caseUpdateRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Invalid request body",
		})
	}

	// If clientId is being updated, verify the new client exists first
	if req.ClientID != nil {
		exists, err := services.ClientExists(db.DB, *req.ClientID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"message": "Failed to verify client",
			})
		}
		if !exists {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"message": "Client not found",
			})
		}
		caseRecord.ClientID = *req.ClientID
	}

	if req.CaseNumber != nil {
		caseRecord.CaseNumber = services.SanitizeText(*req.CaseNumber)
	}
	if req.Title != nil {
		caseRecord.Title = services.SanitizeText(*req.Title)
	}
	if req.Court != nil {
		caseRecord.Court = services.SanitizeText(*req.Court)
	}
	if req.Type != nil {
		caseRecord.Type = services.SanitizeText(*req.Type)
	}
	if req.Status != nil {
		caseRecord.Status = *req.Status
	}
	if req.Notes != nil {
		caseRecord.Notes = services.SanitizeText(*req.Notes)
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"message": "Invalid startDate: expected YYYY-MM-DD",
			})
		}
		caseRecord.StartDate = startDate
	}

	if err := caseRecord.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": err.Error(),
		})
	}

	if req.CaseNumber != nil {
		taken, err := services.CaseNumberTaken(db.DB, caseRecord.CaseNumber, caseRecord.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"message": "Failed to verify case number",
			})
		}
		if taken {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"message": "Case number already exists",
			})
		}
	}

	// Omit the preloaded association: gorm's save-before-associations would
	// otherwise write the stale Client's ID back over a reassigned ClientID.
	if err := db.DB.Omit("Client").Save(caseRecord).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to update case",
		})
	}

	// Reload so the response carries the (possibly new) client expanded
	updated, err := services.LoadCaseWithClient(db.DB, caseRecord.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to load updated case",
		})
	}

	return c.JSON(http.StatusOK, toCaseResponse(updated))
}

// DeleteCase deletes a case by ID
func DeleteCase(c echo.Context) error {
	id := c.Param("id")

	var caseRecord models.Case
	if err := db.DB.First(&caseRecord, "id = ?", id).Error; err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "Case not found",
		})
	}

	if err := db.DB.Delete(&caseRecord).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to delete case",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Case deleted successfully",
	})
}
