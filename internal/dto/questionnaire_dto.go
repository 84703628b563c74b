package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveAnswerRequest struct {
	ApplicationId uuid.UUID
	QuestionId    string `json:"question_id" validate:"required"`
	Value         string `json:"value"`
}

type SaveAnswerResponse struct {
	Id uuid.UUID `json:"id"`
}

type QuestionResponse struct {
	Id      string   `json:"id"`
	Text    string   `json:"text"`
	Kind    string   `json:"kind"`
	Options []string `json:"options,omitempty"`
}

type AnswerResponse struct {
	QuestionId string     `json:"question_id"`
	Value      string     `json:"value"`
	UpdatedAt  *time.Time `json:"updated_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

type QuestionnaireResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Answers   []AnswerResponse   `json:"answers"`
}
