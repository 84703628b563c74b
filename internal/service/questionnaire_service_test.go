package service

import (
	"context"
	"testing"

	"visa-casework-be/internal/dto"
	"visa-casework-be/pkg/visacatalog"
)

func TestSaveAnswerKeepsStoredIdOnReanswer(t *testing.T) {
	store := newFakeStore()
	svc := NewQuestionnaireService(store, visacatalog.New(), nil)

	first, err := svc.SaveAnswer(context.Background(), &dto.SaveAnswerRequest{
		ApplicationId: store.app.Id,
		QuestionId:    "q_job_title",
		Value:         "Logistics Coordinator",
	})
	if err != nil {
		t.Fatalf("first SaveAnswer: %v", err)
	}

	second, err := svc.SaveAnswer(context.Background(), &dto.SaveAnswerRequest{
		ApplicationId: store.app.Id,
		QuestionId:    "q_job_title",
		Value:         "Senior Logistics Coordinator",
	})
	if err != nil {
		t.Fatalf("second SaveAnswer: %v", err)
	}

	if second.Id != first.Id {
		t.Errorf("re-answering returned id %s, want the stored row's id %s", second.Id, first.Id)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.answers) != 1 {
		t.Fatalf("%d answer rows stored, want 1", len(store.answers))
	}
	if store.answers[0].Value != "Senior Logistics Coordinator" {
		t.Errorf("stored value = %q, want the re-answered value", store.answers[0].Value)
	}
}

func TestSaveAnswerRejectsUnknownQuestion(t *testing.T) {
	store := newFakeStore()
	svc := NewQuestionnaireService(store, visacatalog.New(), nil)

	if _, err := svc.SaveAnswer(context.Background(), &dto.SaveAnswerRequest{
		ApplicationId: store.app.Id,
		QuestionId:    "q_shoe_size",
		Value:         "42",
	}); err == nil {
		t.Error("unknown question was accepted")
	}
}
