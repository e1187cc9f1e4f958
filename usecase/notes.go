package usecase

import (
	"context"
	"errors"

	"main/model"
	"main/repository"
)

type NotesService struct {
	NotesRepo       NotesRepository
	ProfileInfoRepo ProfileInfoRepository
	ActivityRepo    ActivityLogRepository
}

// CreateNote stores a new note and appends the matching audit entry. The
// audit write happens only after the note save succeeds; if the audit write
// itself fails the note still exists and the error is surfaced to the
// caller uncompensated.
func (s *NotesService) CreateNote(ctx context.Context, note *model.Note) (string, error) {
	note.LastEditedBy = note.Email

	noteID, err := s.NotesRepo.InsertNote(ctx, note)
	if err != nil {
		return "", err
	}

	err = s.ActivityRepo.AppendEntry(ctx, &model.ActivityLog{
		Email:   note.Email,
		Action:  model.ActionAddNote,
		Profile: note.Profile,
	})
	if err != nil {
		return noteID, err
	}

	return noteID, nil
}

// ListProfileNotes returns a profile's notes newest-first together with its
// contact record, or a zero-valued placeholder when no record exists.
// Read-only; no audit entry.
func (s *NotesService) ListProfileNotes(ctx context.Context, profile string) ([]*model.Note, *model.ProfileInfo, error) {
	notes, err := s.NotesRepo.GetProfileNotes(ctx, profile)
	if err != nil {
		return nil, nil, err
	}

	info, err := s.ProfileInfoRepo.GetProfileInfo(ctx, profile)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileInfoNotFound) {
			return nil, nil, err
		}
		info = &model.ProfileInfo{}
	}

	return notes, info, nil
}

// DeleteNote removes a note by identifier and appends a delete_note entry
// carrying the profile read from the deleted record. A missing note returns
// repository.ErrNoteNotFound and writes no audit entry.
func (s *NotesService) DeleteNote(ctx context.Context, noteID, actorEmail string) error {
	note, err := s.NotesRepo.DeleteNote(ctx, noteID)
	if err != nil {
		return err
	}

	return s.ActivityRepo.AppendEntry(ctx, &model.ActivityLog{
		Email:   actorEmail,
		Action:  model.ActionDeleteNote,
		Profile: note.Profile,
	})
}
