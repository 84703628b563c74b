package dto

import (
	"time"

	"github.com/google/uuid"
)

type SectionStatusResponse struct {
	SectionKey string     `json:"section_key"`
	State      string     `json:"state"`
	Progress   int        `json:"progress"`
	AnalyzedAt *time.Time `json:"analyzed_at,omitempty"`
}

type ReanalyzeRequest struct {
	ApplicationId uuid.UUID
	SectionKey    string
}

type ReanalyzeResponse struct {
	SectionKey string `json:"section_key"`
	State      string `json:"state"`
}

type AnalysisProgressEvent struct {
	ApplicationId uuid.UUID `json:"application_id"`
	SectionKey    string    `json:"section_key"`
	State         string    `json:"state"`
	Progress      int       `json:"progress"`
}
