package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"visa-casework-be/internal/entity"
	"visa-casework-be/internal/pkg/serverutils"
	"visa-casework-be/internal/repository/memory"
	"visa-casework-be/pkg/cache"
	"visa-casework-be/pkg/visacatalog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func newChecklistFixture() (*fakeStore, *memory.AnalysisRunRepository, IChecklistService) {
	store := newFakeStore()
	runRepo := memory.NewAnalysisRunRepository()
	svc := NewChecklistService(store, visacatalog.New(), runRepo, cache.NewChecklistCache(nil), nil)
	return store, runRepo, svc
}

func TestResetFieldEditRemovesOverride(t *testing.T) {
	store, _, svc := newChecklistFixture()
	store.overrides = append(store.overrides, &entity.FieldOverride{
		Id:            uuid.New(),
		ApplicationId: store.app.Id,
		FieldId:       "skilled-worker:employer_name",
		Value:         "Atlas Freight GmbH",
		CreatedAt:     time.Now(),
	})

	err := svc.ResetFieldEdit(context.Background(), store.app.Id, "employment", "skilled-worker:employer_name")
	if err != nil {
		t.Fatalf("ResetFieldEdit: %v", err)
	}

	store.mu.Lock()
	remaining := len(store.overrides)
	store.mu.Unlock()
	if remaining != 0 {
		t.Errorf("%d overrides remain after reset, want 0", remaining)
	}
}

func TestResetFieldEditWithoutOverrideIsNotFound(t *testing.T) {
	store, _, svc := newChecklistFixture()

	err := svc.ResetFieldEdit(context.Background(), store.app.Id, "employment", "skilled-worker:employer_name")
	var appErr *serverutils.AppError
	if !errors.As(err, &appErr) || appErr.Code != fiber.StatusNotFound {
		t.Errorf("reset without an edit returned %v, want 404", err)
	}
}

func TestResetFieldEditLockedDuringReanalysis(t *testing.T) {
	store, runRepo, svc := newChecklistFixture()
	store.overrides = append(store.overrides, &entity.FieldOverride{
		Id:            uuid.New(),
		ApplicationId: store.app.Id,
		FieldId:       "skilled-worker:employer_name",
		Value:         "Atlas Freight GmbH",
		CreatedAt:     time.Now(),
	})
	runRepo.Claim(&entity.AnalysisRun{
		ApplicationId: store.app.Id,
		SectionKey:    "employment",
		StartedAt:     time.Now(),
	})

	err := svc.ResetFieldEdit(context.Background(), store.app.Id, "employment", "skilled-worker:employer_name")
	var appErr *serverutils.AppError
	if !errors.As(err, &appErr) || appErr.Code != fiber.StatusLocked {
		t.Errorf("reset during re-analysis returned %v, want 423", err)
	}
}
