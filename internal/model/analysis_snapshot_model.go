package model

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisSnapshot struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApplicationId uuid.UUID `gorm:"type:uuid;not null;index:idx_snapshot_app_section,unique"`
	SectionKey    string    `gorm:"type:varchar(30);not null;index:idx_snapshot_app_section,unique"`
	Fingerprint   string    `gorm:"type:text;not null"`
	AnalyzedAt    time.Time `gorm:"not null"`
}

func (AnalysisSnapshot) TableName() string {
	return "analysis_snapshots"
}
