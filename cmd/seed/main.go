package main

import (
	"log"
	"os"
	"time"

	"visa-casework-be/internal/model"
	"visa-casework-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Demo Application Seeder...")

	appId := seedApplication(db)
	seedDocuments(db, appId)
	seedAnswers(db, appId)

	log.Printf("✅ Success: Demo application seeded (id=%s).", appId)
}

func seedApplication(db *gorm.DB) uuid.UUID {
	log.Println("Seeding Application...")

	app := model.Application{
		Id:            uuid.New(),
		ApplicantName: "Amira Haddad",
		ClientEmail:   "amira.haddad@example.com",
		VisaType:      "skilled-worker",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := db.Create(&app).Error; err != nil {
		log.Fatalf("Error: Failed to seed application: %v", err)
	}

	return app.Id
}

func seedDocuments(db *gorm.DB, appId uuid.UUID) {
	log.Println("Seeding Document Groups...")

	groups := []model.DocumentGroup{
		{
			Id:            uuid.New(),
			ApplicationId: appId,
			Title:         "Passport",
			Status:        "reviewed",
			Files: []model.DocumentFile{
				{Id: uuid.New(), FileName: "passport.pdf", PageCount: 4},
			},
		},
		{
			Id:            uuid.New(),
			ApplicationId: appId,
			Title:         "Payslips",
			Status:        "reviewed",
			Files: []model.DocumentFile{
				{Id: uuid.New(), FileName: "payslip-june.pdf", PageCount: 1},
				{Id: uuid.New(), FileName: "payslip-july.pdf", PageCount: 1},
				{Id: uuid.New(), FileName: "payslip-august.pdf", PageCount: 1},
			},
		},
		{
			Id:            uuid.New(),
			ApplicationId: appId,
			Title:         "Bank Statements",
			Status:        "pending",
			Files: []model.DocumentFile{
				{Id: uuid.New(), FileName: "statements-q2.pdf", PageCount: 12},
			},
		},
		{
			Id:            uuid.New(),
			ApplicationId: appId,
			Title:         "Caseworker Notes",
			Status:        "reviewed",
			IsSpecial:     true,
			Files: []model.DocumentFile{
				{Id: uuid.New(), FileName: "intake-notes.pdf", PageCount: 2},
			},
		},
	}

	for i := range groups {
		for j := range groups[i].Files {
			groups[i].Files[j].GroupId = groups[i].Id
		}
		if err := db.Create(&groups[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed document group %q: %v", groups[i].Title, err)
		}
	}
}

func seedAnswers(db *gorm.DB, appId uuid.UUID) {
	log.Println("Seeding Questionnaire Answers...")

	answers := []model.QuestionnaireAnswer{
		{Id: uuid.New(), ApplicationId: appId, QuestionId: "q_full_name", Value: "Amira Haddad"},
		{Id: uuid.New(), ApplicationId: appId, QuestionId: "q_date_of_birth", Value: "1992-03-14"},
		{Id: uuid.New(), ApplicationId: appId, QuestionId: "q_nationality", Value: "Tunisian"},
		{Id: uuid.New(), ApplicationId: appId, QuestionId: "q_job_title", Value: "Software Engineer"},
		{Id: uuid.New(), ApplicationId: appId, QuestionId: "q_maintenance_funds", Value: "yes"},
	}

	for i := range answers {
		if err := db.Create(&answers[i]).Error; err != nil {
			log.Fatalf("Error: Failed to seed answer %q: %v", answers[i].QuestionId, err)
		}
	}
}
