package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentGroup struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApplicationId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title         string         `gorm:"type:varchar(255);not null"`
	Status        string         `gorm:"type:varchar(20);not null;default:'pending'"`
	IsSpecial     bool           `gorm:"not null;default:false"`
	Files         []DocumentFile `gorm:"foreignKey:GroupId"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (DocumentGroup) TableName() string {
	return "document_groups"
}
