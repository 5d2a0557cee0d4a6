package services

import (
	"fmt"
	"log"
	"time"

	"law_office_app_go/models"

	"gorm.io/gorm"
)

// SeedSampleData inserts a small demo dataset of clients and cases.
// It is idempotent: if any client already exists, nothing is inserted.
func SeedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Client{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing clients: %w", err)
	}

	if count > 0 {
		log.Println("[SEED] Clients already exist, skipping sample data")
		return nil
	}

	clients := []models.Client{
		{
			Name:    "Ahmed Mohamed Ali",
			Phone:   "0501234567",
			Email:   "ahmed.mohamed@email.com",
			Address: "King Fahd Road, Riyadh",
		},
		{
			Name:    "Fatima Abdullah Al-Saad",
			Phone:   "0509876543",
			Email:   "fatima.abdullah@email.com",
			Address: "Al Nakheel District, Jeddah",
		},
		{
			Name:    "Mohamed Salem Al-Qahtani",
			Phone:   "0504567890",
			Email:   "mohamed.salem@email.com",
			Address: "Al Olaya Street, Dammam",
		},
		{
			Name:    "Nora Abdulrahman Al-Shammari",
			Phone:   "0503210987",
			Email:   "nora.abdulrahman@email.com",
			Address: "Al Rawdah District, Mecca",
		},
	}

	for i := range clients {
		if err := db.Create(&clients[i]).Error; err != nil {
			return fmt.Errorf("failed to seed client %q: %w", clients[i].Name, err)
		}
	}

	cases := []models.Case{
		{
			CaseNumber: "CASE-2024-001",
			Title:      "Personal Injury Claim",
			Court:      "Riyadh General Court",
			Type:       "Personal Injury",
			Status:     models.CaseStatusOpen,
			StartDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Notes:      "Client injured in a traffic accident. Collecting medical reports.",
			ClientID:   clients[0].ID,
		},
		{
			CaseNumber: "CASE-2024-002",
			Title:      "Contract Dispute",
			Court:      "Jeddah Commercial Court",
			Type:       "Commercial Law",
			Status:     models.CaseStatusAdjourned,
			StartDate:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Notes:      "Breach of contract case. Awaiting the discovery phase.",
			ClientID:   clients[1].ID,
		},
		{
			CaseNumber: "CASE-2024-003",
			Title:      "Employment Discrimination",
			Court:      "Dammam Labor Court",
			Type:       "Labor Law",
			Status:     models.CaseStatusOpen,
			StartDate:  time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Notes:      "Client alleges wrongful termination. Preparing documentation.",
			ClientID:   clients[2].ID,
		},
		{
			CaseNumber: "CASE-2024-004",
			Title:      "Real Estate Transaction",
			Court:      "Mecca Enforcement Court",
			Type:       "Real Estate",
			Status:     models.CaseStatusClosed,
			StartDate:  time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC),
			Notes:      "Property purchase dispute. Resolved successfully.",
			ClientID:   clients[3].ID,
		},
	}

	for i := range cases {
		if err := db.Create(&cases[i]).Error; err != nil {
			return fmt.Errorf("failed to seed case %q: %w", cases[i].CaseNumber, err)
		}
	}

	log.Printf("[SEED] Inserted %d clients and %d cases", len(clients), len(cases))
	return nil
}
