package main

import (
	"log"

	"law_office_app_go/config"
	"law_office_app_go/db"
	"law_office_app_go/models"
	"law_office_app_go/services"
)

func main() {
	cfg := config.Load()

	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Client{}, &models.Case{}, &models.CaseDocument{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := services.SeedSampleData(db.DB); err != nil {
		log.Fatalf("Failed to seed sample data: %v", err)
	}

	log.Println("Seeding complete")
}
