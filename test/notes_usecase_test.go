package test

import (
	"context"
	"errors"
	"testing"

	"main/model"
	"main/repository"
	"main/usecase"
)

func newNotesService() (*usecase.NotesService, *mockNotesRepo, *mockActivityLogRepo) {
	notesRepo := newMockNotesRepo()
	activityRepo := newMockActivityLogRepo()
	service := &usecase.NotesService{
		NotesRepo:       notesRepo,
		ProfileInfoRepo: newMockProfileInfoRepo(),
		ActivityRepo:    activityRepo,
	}
	return service, notesRepo, activityRepo
}

func TestCreateNoteStampsAuthor(t *testing.T) {
	service, notesRepo, _ := newNotesService()

	noteID, err := service.CreateNote(context.Background(), &model.Note{
		Profile: "Acme",
		Email:   "jay.deodap1@gmail.com",
		Content: "Called client",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored := notesRepo.notes[noteID]
	if stored.LastEditedBy != "jay.deodap1@gmail.com" {
		t.Errorf("lastEditedBy = %q, want the author email", stored.LastEditedBy)
	}
}

func TestCreateNoteAuditFollowsSave(t *testing.T) {
	service, _, activityRepo := newNotesService()

	_, err := service.CreateNote(context.Background(), &model.Note{
		Profile: "Acme",
		Email:   "jay.deodap1@gmail.com",
		Content: "Called client",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(activityRepo.entriesFor(model.ActionAddNote)) != 1 {
		t.Error("expected exactly one add_note entry after a successful save")
	}
}

func TestCreateNoteFailedSaveWritesNoAudit(t *testing.T) {
	service, notesRepo, activityRepo := newNotesService()
	notesRepo.insertErr = errInjected

	if _, err := service.CreateNote(context.Background(), &model.Note{
		Profile: "Acme",
		Email:   "jay.deodap1@gmail.com",
		Content: "Called client",
	}); err == nil {
		t.Fatal("expected the storage error to propagate")
	}
	if activityRepo.count() != 0 {
		t.Error("audit entry written despite failed save")
	}
}

func TestDeleteNoteNotFound(t *testing.T) {
	service, _, activityRepo := newNotesService()

	err := service.DeleteNote(context.Background(), "missing", "jay.deodap1@gmail.com")
	if !errors.Is(err, repository.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
	if activityRepo.count() != 0 {
		t.Error("not-found delete wrote an audit entry")
	}
}
