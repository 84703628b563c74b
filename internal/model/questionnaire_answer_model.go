package model

import (
	"time"

	"github.com/google/uuid"
)

type QuestionnaireAnswer struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ApplicationId uuid.UUID `gorm:"type:uuid;not null;index:idx_answer_app_question,unique"`
	QuestionId    string    `gorm:"type:varchar(100);not null;index:idx_answer_app_question,unique"`
	Value         string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (QuestionnaireAnswer) TableName() string {
	return "questionnaire_answers"
}
