package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QualityIssue struct {
	Id                    uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApplicationId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	Severity              string         `gorm:"type:varchar(20);not null"`
	Title                 string         `gorm:"type:varchar(255);not null"`
	Description           string         `gorm:"type:text"`
	LinkedChecklistItemId string         `gorm:"type:varchar(150);not null;index"`
	Status                string         `gorm:"type:varchar(20);not null;default:'open'"`
	SuggestedAction       string         `gorm:"type:text"`
	Forwarded             bool           `gorm:"not null;default:false"`
	ForwardedAt           *time.Time     `gorm:""`
	ResolvedAt            *time.Time     `gorm:""`
	Metadata              datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt             time.Time      `gorm:"autoCreateTime"`
}

func (QualityIssue) TableName() string {
	return "quality_issues"
}
