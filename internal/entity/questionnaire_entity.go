package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuestionnaireAnswer is one free-form answer keyed by the catalog question
// id. Answers are upserted per (application, question).
type QuestionnaireAnswer struct {
	Id            uuid.UUID
	ApplicationId uuid.UUID
	QuestionId    string
	Value         string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// AnswersToMap flattens stored answers into the map the engine consumes.
func AnswersToMap(answers []*QuestionnaireAnswer) map[string]string {
	m := make(map[string]string, len(answers))
	for _, a := range answers {
		m[a.QuestionId] = a.Value
	}
	return m
}
