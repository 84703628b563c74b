package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateApplicationRequest struct {
	ApplicantName string `json:"applicant_name" validate:"required"`
	ClientEmail   string `json:"client_email" validate:"required,email"`
	VisaType      string `json:"visa_type" validate:"required"`
}

type CreateApplicationResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowApplicationResponse struct {
	Id            uuid.UUID  `json:"id"`
	ApplicantName string     `json:"applicant_name"`
	ClientEmail   string     `json:"client_email"`
	VisaType      string     `json:"visa_type"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type UpdateApplicationRequest struct {
	Id            uuid.UUID
	ApplicantName string `json:"applicant_name" validate:"required"`
	ClientEmail   string `json:"client_email" validate:"required,email"`
}

type UpdateApplicationResponse struct {
	Id uuid.UUID `json:"id"`
}
