package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"law_office_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestGetCases(t *testing.T) {
	database := setupTestDB(t)
	client := createTestClient(t, database, "Alice", "0501111111", "alice@test.com")

	older := &models.Case{
		CaseNumber: "CASE-OLD",
		Title:      "Older",
		Court:      "Court A",
		Type:       "Civil",
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ClientID:   client.ID,
		CreatedAt:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, database.Create(older).Error)

	newer := &models.Case{
		CaseNumber: "CASE-NEW",
		Title:      "Newer",
		Court:      "Court B",
		Type:       "Civil",
		StartDate:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		ClientID:   client.ID,
		CreatedAt:  time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, database.Create(newer).Error)

	_, c, rec := setupEcho(http.MethodGet, "/api/cases", nil)

	err := GetCases(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var cases []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cases))
	assert.Len(t, cases, 2)

	// Newest first
	assert.Equal(t, "CASE-NEW", cases[0]["caseNumber"])
	assert.Equal(t, "CASE-OLD", cases[1]["caseNumber"])

	// clientId is expanded into an object with the client's contact details
	expanded, ok := cases[0]["clientId"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, client.ID, expanded["id"])
	assert.Equal(t, "Alice", expanded["name"])
	assert.Equal(t, "0501111111", expanded["phone"])
	assert.Equal(t, "alice@test.com", expanded["email"])
}

func TestCreateCase(t *testing.T) {
	t.Run("Success with defaulted status", func(t *testing.T) {
		database := setupTestDB(t)
		client := createTestClient(t, database, "A", "123", "a@a.com")

		body := `{"caseNumber":"C1","title":"T","court":"Co","type":"Ty","startDate":"2024-01-01","clientId":"` + client.ID + `"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/cases", strings.NewReader(body))

		err := CreateCase(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var created map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, "open", created["status"])
		assert.NotEmpty(t, created["id"])

		expanded := created["clientId"].(map[string]interface{})
		assert.Equal(t, "A", expanded["name"])
		assert.Equal(t, "123", expanded["phone"])
		assert.Equal(t, "a@a.com", expanded["email"])
	})

	t.Run("Unknown client rejected before any write", func(t *testing.T) {
		database := setupTestDB(t)

		body := `{"caseNumber":"C1","title":"T","court":"Co","type":"Ty","startDate":"2024-01-01","clientId":"no-such-client"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/cases", strings.NewReader(body))

		err := CreateCase(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Client not found")

		var count int64
		database.Model(&models.Case{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Duplicate case number rejected", func(t *testing.T) {
		database := setupTestDB(t)
		client := createTestClient(t, database, "A", "123", "a@a.com")
		createTestCase(t, database, "C1", client.ID, models.CaseStatusOpen)

		body := `{"caseNumber":"C1","title":"T2","court":"Co","type":"Ty","startDate":"2024-01-02","clientId":"` + client.ID + `"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/cases", strings.NewReader(body))

		err := CreateCase(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Case number already exists")

		var count int64
		database.Model(&models.Case{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Invalid status rejected", func(t *testing.T) {
		database := setupTestDB(t)
		client := createTestClient(t, database, "A", "123", "a@a.com")

		body := `{"caseNumber":"C1","title":"T","court":"Co","type":"Ty","status":"pending","startDate":"2024-01-01","clientId":"` + client.ID + `"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/cases", strings.NewReader(body))

		assert.NoError(t, CreateCase(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid status")
	})

	t.Run("Missing required fields rejected", func(t *testing.T) {
		database := setupTestDB(t)
		client := createTestClient(t, database, "A", "123", "a@a.com")

		body := `{"caseNumber":"C1","clientId":"` + client.ID + `"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/cases", strings.NewReader(body))

		assert.NoError(t, CreateCase(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "title")
		assert.Contains(t, rec.Body.String(), "startDate")
	})

	t.Run("RFC3339 start date accepted", func(t *testing.T) {
		database := setupTestDB(t)
		client := createTestClient(t, database, "A", "123", "a@a.com")

		body := `{"caseNumber":"C2","title":"T","court":"Co","type":"Ty","startDate":"2024-03-05T00:00:00Z","clientId":"` + client.ID + `"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/cases", strings.NewReader(body))

		assert.NoError(t, CreateCase(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestUpdateCase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		database := setupTestDB(t)
		client := createTestClient(t, database, "A", "123", "a@a.com")
		caseRecord := createTestCase(t, database, "C1", client.ID, models.CaseStatusOpen)

		body := `{"status":"closed","notes":"Settled out of court"}`
		_, c, rec := setupEcho(http.MethodPut, "/api/cases/"+caseRecord.ID, strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(caseRecord.ID)

		err := UpdateCase(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var updated map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "closed", updated["status"])
		assert.Equal(t, "Settled out of court", updated["notes"])

		// Client still expanded in the response
		expanded := updated["clientId"].(map[string]interface{})
		assert.Equal(t, "A", expanded["name"])
	})

	t.Run("Not found", func(t *testing.T) {
		setupTestDB(t)

		body := `{"status":"closed"}`
		_, c, rec := setupEcho(http.MethodPut, "/api/cases/missing", strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := UpdateCase(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Case not found")
	})

	t.Run("Supplied clientId re-validated, nothing changed on failure", func(t *testing.T) {
		database := setupTestDB(t)
		client := createTestClient(t, database, "A", "123", "a@a.com")
		caseRecord := createTestCase(t, database, "C1", client.ID, models.CaseStatusOpen)

		body := `{"clientId":"no-such-client","status":"closed"}`
		_, c, rec := setupEcho(http.MethodPut, "/api/cases/"+caseRecord.ID, strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(caseRecord.ID)

		assert.NoError(t, UpdateCase(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Client not found")

		var stored models.Case
		database.First(&stored, "id = ?", caseRecord.ID)
		assert.Equal(t, client.ID, stored.ClientID)
		assert.Equal(t, models.CaseStatusOpen, stored.Status)
	})

	t.Run("Reassign to another client", func(t *testing.T) {
		database := setupTestDB(t)
		first := createTestClient(t, database, "A", "123", "a@a.com")
		second := createTestClient(t, database, "B", "456", "b@b.com")
		caseRecord := createTestCase(t, database, "C1", first.ID, models.CaseStatusOpen)

		body := `{"clientId":"` + second.ID + `"}`
		_, c, rec := setupEcho(http.MethodPut, "/api/cases/"+caseRecord.ID, strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(caseRecord.ID)

		assert.NoError(t, UpdateCase(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var updated map[string]interface{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		expanded := updated["clientId"].(map[string]interface{})
		assert.Equal(t, second.ID, expanded["id"])
		assert.Equal(t, "B", expanded["name"])

		// The reassignment must survive the write, not just the response
		var persisted models.Case
		assert.NoError(t, database.First(&persisted, "id = ?", caseRecord.ID).Error)
		assert.Equal(t, second.ID, persisted.ClientID)
	})

	t.Run("Duplicate case number rejected", func(t *testing.T) {
		database := setupTestDB(t)
		client := createTestClient(t, database, "A", "123", "a@a.com")
		createTestCase(t, database, "C1", client.ID, models.CaseStatusOpen)
		target := createTestCase(t, database, "C2", client.ID, models.CaseStatusOpen)

		body := `{"caseNumber":"C1"}`
		_, c, rec := setupEcho(http.MethodPut, "/api/cases/"+target.ID, strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(target.ID)

		assert.NoError(t, UpdateCase(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Case number already exists")
	})

	t.Run("Keeping own case number is not a conflict", func(t *testing.T) {
		database := setupTestDB(t)
		client := createTestClient(t, database, "A", "123", "a@a.com")
		target := createTestCase(t, database, "C1", client.ID, models.CaseStatusOpen)

		body := `{"caseNumber":"C1","title":"Renamed"}`
		_, c, rec := setupEcho(http.MethodPut, "/api/cases/"+target.ID, strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(target.ID)

		assert.NoError(t, UpdateCase(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDeleteCase(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		database := setupTestDB(t)
		client := createTestClient(t, database, "A", "123", "a@a.com")
		caseRecord := createTestCase(t, database, "C1", client.ID, models.CaseStatusOpen)

		_, c, rec := setupEcho(http.MethodDelete, "/api/cases/"+caseRecord.ID, nil)
		c.SetParamNames("id")
		c.SetParamValues(caseRecord.ID)

		err := DeleteCase(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Case deleted successfully")

		var count int64
		database.Model(&models.Case{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Not found", func(t *testing.T) {
		setupTestDB(t)

		_, c, rec := setupEcho(http.MethodDelete, "/api/cases/missing", nil)
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := DeleteCase(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
