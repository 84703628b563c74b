package main

import (
	"log"
	"os"

	"visa-casework-be/internal/model"
	"visa-casework-be/pkg/database"

	"github.com/joho/godotenv"
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

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate for 8 Tables...")

	models := []interface{}{
		&model.Application{},
		&model.DocumentGroup{},
		&model.DocumentFile{},
		&model.QuestionnaireAnswer{},
		&model.FieldOverride{},
		&model.SectionReference{},
		&model.AnalysisSnapshot{},
		&model.QualityIssue{},
	}

	// Migrate strictly
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Views & Functions
	log.Println("Step 3: Creating Views and Functions...")

	postMigrationSQL := []string{
		// Function: set_current_timestamp_updated_at
		`CREATE OR REPLACE FUNCTION set_current_timestamp_updated_at() RETURNS trigger LANGUAGE plpgsql AS $$
		DECLARE _new_value TIMESTAMP WITH TIME ZONE;
		BEGIN
		  _new_value := now();
		  IF NEW.updated_at IS DISTINCT FROM _new_value THEN NEW.updated_at = _new_value; END IF;
		  RETURN NEW;
		END; $$;`,

		// View: linkable_document_groups (reviewed groups that still hold active files)
		`CREATE OR REPLACE VIEW linkable_document_groups AS
		 SELECT g.id AS group_id, g.application_id, g.title, g.is_special, COUNT(f.id) AS active_files
		 FROM document_groups g JOIN document_files f ON f.group_id = g.id AND f.removed = false
		 WHERE g.status = 'reviewed'
		 GROUP BY g.id, g.application_id, g.title, g.is_special;`,

		// View: open_issue_counts
		`CREATE OR REPLACE VIEW open_issue_counts AS
		 SELECT qi.application_id, qi.severity, COUNT(*) AS total
		 FROM quality_issues qi
		 WHERE qi.status = 'open'
		 GROUP BY qi.application_id, qi.severity;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
