package entity

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	Id            uuid.UUID
	ApplicantName string
	ClientEmail   string
	VisaType      string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
