package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTestCase() Case {
	return Case{
		CaseNumber: "CASE-2024-001",
		Title:      "Contract Dispute",
		Court:      "Commercial Court",
		Type:       "Commercial Law",
		Status:     CaseStatusOpen,
		StartDate:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		ClientID:   "client-1",
	}
}

func TestCaseValidate(t *testing.T) {
	t.Run("Valid case", func(t *testing.T) {
		caseRecord := validTestCase()
		assert.NoError(t, caseRecord.Validate())
	})

	t.Run("Empty status is allowed before defaulting", func(t *testing.T) {
		caseRecord := validTestCase()
		caseRecord.Status = ""
		assert.NoError(t, caseRecord.Validate())
	})

	t.Run("Invalid status rejected", func(t *testing.T) {
		caseRecord := validTestCase()
		caseRecord.Status = "pending"
		err := caseRecord.Validate()
		assert.Error(t, err)
		assert.Equal(t, "invalid status: pending. Must be one of: open, closed, adjourned", err.Error())
	})

	t.Run("Missing fields are listed", func(t *testing.T) {
		caseRecord := Case{Title: "Contract Dispute"}
		err := caseRecord.Validate()
		assert.Error(t, err)
		assert.Equal(t, "missing required fields: caseNumber, court, type, startDate, clientId", err.Error())
	})
}

func TestIsValidCaseStatus(t *testing.T) {
	assert.True(t, IsValidCaseStatus(CaseStatusOpen))
	assert.True(t, IsValidCaseStatus(CaseStatusClosed))
	assert.True(t, IsValidCaseStatus(CaseStatusAdjourned))
	assert.False(t, IsValidCaseStatus(""))
	assert.False(t, IsValidCaseStatus("pending"))
	assert.False(t, IsValidCaseStatus("Open"))
}

func TestCaseStatusHelpers(t *testing.T) {
	caseRecord := validTestCase()
	assert.True(t, caseRecord.IsOpen())
	assert.False(t, caseRecord.IsClosed())

	caseRecord.Status = CaseStatusClosed
	assert.False(t, caseRecord.IsOpen())
	assert.True(t, caseRecord.IsClosed())
}
