package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDocumentGroupRequest struct {
	ApplicationId uuid.UUID
	Title         string `json:"title" validate:"required"`
	IsSpecial     bool   `json:"is_special"`
}

type CreateDocumentGroupResponse struct {
	Id uuid.UUID `json:"id"`
}

type AddDocumentFileRequest struct {
	ApplicationId uuid.UUID
	GroupId       uuid.UUID
	FileName      string `json:"file_name" validate:"required"`
	PageCount     int    `json:"page_count" validate:"gte=0"`
}

type AddDocumentFileResponse struct {
	Id uuid.UUID `json:"id"`
}

type ReviewDocumentGroupRequest struct {
	ApplicationId uuid.UUID
	GroupId       uuid.UUID
}

type DocumentFileResponse struct {
	Id        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	PageCount int       `json:"page_count"`
	Removed   bool      `json:"removed"`
	CreatedAt time.Time `json:"created_at"`
}

type DocumentGroupResponse struct {
	Id         uuid.UUID              `json:"id"`
	Title      string                 `json:"title"`
	Status     string                 `json:"status"`
	IsSpecial  bool                   `json:"is_special"`
	IsLinkable bool                   `json:"is_linkable"`
	Files      []DocumentFileResponse `json:"files"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  *time.Time             `json:"updated_at"`
}
