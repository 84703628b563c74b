package model

import (
	"time"

	"github.com/google/uuid"
)

type FieldOverride struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApplicationId uuid.UUID `gorm:"type:uuid;not null;index:idx_override_app_field,unique"`
	FieldId       string    `gorm:"type:varchar(150);not null;index:idx_override_app_field,unique"`
	Value         string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (FieldOverride) TableName() string {
	return "field_overrides"
}
