package model

import (
	"time"

	"github.com/google/uuid"
)

// Removed is a domain flag, not a gorm soft delete: removed files stay in the
// group and keep their row, they just stop counting as active evidence.
type DocumentFile struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GroupId   uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName  string    `gorm:"type:varchar(255);not null"`
	PageCount int       `gorm:"not null;default:1"`
	Removed   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (DocumentFile) TableName() string {
	return "document_files"
}
