package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Application struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApplicantName string         `gorm:"type:varchar(255);not null"`
	ClientEmail   string         `gorm:"type:varchar(255);not null"`
	VisaType      string         `gorm:"type:varchar(50);not null;index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Application) TableName() string {
	return "applications"
}
