package dto

import (
	"time"

	"github.com/google/uuid"
)

type LinkReferenceRequest struct {
	ApplicationId uuid.UUID
	SectionKey    string
	GroupId       uuid.UUID `json:"group_id" validate:"required"`
}

type LinkReferenceResponse struct {
	Id uuid.UUID `json:"id"`
}

type ReferenceResponse struct {
	Id         uuid.UUID `json:"id"`
	SectionKey string    `json:"section_key"`
	GroupId    uuid.UUID `json:"group_id"`
	GroupTitle string    `json:"group_title"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}
