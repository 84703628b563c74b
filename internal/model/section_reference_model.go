package model

import (
	"time"

	"github.com/google/uuid"
)

type SectionReference struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApplicationId uuid.UUID `gorm:"type:uuid;not null;index:idx_ref_app_section_group,unique"`
	SectionKey    string    `gorm:"type:varchar(30);not null;index:idx_ref_app_section_group,unique"`
	GroupId       uuid.UUID `gorm:"type:uuid;not null;index:idx_ref_app_section_group,unique"`
	Position      int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (SectionReference) TableName() string {
	return "section_references"
}
