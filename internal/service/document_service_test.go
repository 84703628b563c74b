package service

import (
	"context"
	"testing"
	"time"

	"visa-casework-be/internal/entity"
	"visa-casework-be/pkg/checklist"

	"github.com/google/uuid"
)

func seedGroup(store *fakeStore, title string, status checklist.GroupStatus) {
	store.groups = append(store.groups, &entity.DocumentGroup{
		Id:            uuid.New(),
		ApplicationId: store.app.Id,
		Title:         title,
		Status:        status,
		CreatedAt:     time.Now(),
	})
}

func TestGetAllGroupsFiltersByStatus(t *testing.T) {
	store := newFakeStore()
	svc := NewDocumentService(store, nil)
	seedGroup(store, "Payslips", checklist.GroupStatusReviewed)
	seedGroup(store, "Bank Statements", checklist.GroupStatusPending)
	seedGroup(store, "Passport", checklist.GroupStatusReviewed)

	all, err := svc.GetAll(context.Background(), store.app.Id, "")
	if err != nil {
		t.Fatalf("GetAll without filter: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("unfiltered list has %d groups, want 3", len(all))
	}

	pending, err := svc.GetAll(context.Background(), store.app.Id, "pending")
	if err != nil {
		t.Fatalf("GetAll pending: %v", err)
	}
	if len(pending) != 1 || pending[0].Title != "Bank Statements" {
		t.Errorf("pending filter returned %d groups, want only Bank Statements", len(pending))
	}

	reviewed, err := svc.GetAll(context.Background(), store.app.Id, "reviewed")
	if err != nil {
		t.Fatalf("GetAll reviewed: %v", err)
	}
	if len(reviewed) != 2 {
		t.Errorf("reviewed filter returned %d groups, want 2", len(reviewed))
	}
}

func TestGetAllGroupsRejectsUnknownStatusFilter(t *testing.T) {
	store := newFakeStore()
	svc := NewDocumentService(store, nil)

	if _, err := svc.GetAll(context.Background(), store.app.Id, "archived"); err == nil {
		t.Error("unknown status filter was accepted")
	}
}
