package dto

import "github.com/google/uuid"

// ChecklistInvalidateMessage is published whenever stored inputs of an
// application's checklist change; consumers drop cached responses.
type ChecklistInvalidateMessage struct {
	ApplicationId uuid.UUID `json:"application_id"`
}
