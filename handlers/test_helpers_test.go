package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"law_office_app_go/config"
	"law_office_app_go/db"
	"law_office_app_go/models"
	"law_office_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.Client{},
		&models.Case{},
		&models.CaseDocument{},
	)
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	// Local storage under a per-test temp dir
	services.Storage = services.NewLocalStorage(t.TempDir())

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment:   "test",
		EmailTestMode: true,
	})

	return e, c, rec
}

func createTestClient(t *testing.T, database *gorm.DB, name, phone, email string) *models.Client {
	client := &models.Client{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: "1 Test Street",
	}
	assert.NoError(t, database.Create(client).Error)
	return client
}

func createTestCase(t *testing.T, database *gorm.DB, caseNumber, clientID string, status string) *models.Case {
	caseRecord := &models.Case{
		CaseNumber: caseNumber,
		Title:      "Test Case " + caseNumber,
		Court:      "Test Court",
		Type:       "Civil",
		Status:     status,
		StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ClientID:   clientID,
	}
	assert.NoError(t, database.Create(caseRecord).Error)
	return caseRecord
}
