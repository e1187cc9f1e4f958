package usecase

import (
	"context"

	"main/model"
)

// Repository surfaces the services depend on. The Mongo-backed
// implementations live in the repository package; tests substitute
// in-memory fakes.

type NotesRepository interface {
	InsertNote(ctx context.Context, note *model.Note) (string, error)
	GetProfileNotes(ctx context.Context, profile string) ([]*model.Note, error)
	DeleteNote(ctx context.Context, noteID string) (*model.Note, error)
}

type ProfileInfoRepository interface {
	UpsertProfileInfo(ctx context.Context, info *model.ProfileInfo) error
	GetProfileInfo(ctx context.Context, profile string) (*model.ProfileInfo, error)
}

type ActivityLogRepository interface {
	AppendEntry(ctx context.Context, entry *model.ActivityLog) error
}
