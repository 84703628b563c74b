package contract

import (
	"context"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/repository/specification"
)

type AnalysisSnapshotRepository interface {
	// Upsert replaces the snapshot for (application, section key). Snapshots
	// are only rewritten when a re-analysis run completes.
	Upsert(ctx context.Context, snapshot *entity.AnalysisSnapshot) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AnalysisSnapshot, error)
}
