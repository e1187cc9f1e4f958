package repository

import (
	"context"
	"errors"
	"time"

	"main/config"
	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNoteNotFound = errors.New("note not found")

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	cfg := config.LoadDatabaseConfig()
	return &NotesRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(cfg.NotesCollection),
	}
}

// InsertNote stores a new note and returns its generated identifier.
func (r *NotesRepo) InsertNote(ctx context.Context, note *model.Note) (string, error) {
	if note.ID == "" {
		note.ID = utils.GenerateNoteID()
	}
	if note.Timestamp.IsZero() {
		note.Timestamp = time.Now()
	}
	if note.Labels == nil {
		note.Labels = []string{}
	}

	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		return "", err
	}
	return note.ID, nil
}

// GetProfileNotes retrieves all notes for a profile, most recent first.
func (r *NotesRepo) GetProfileNotes(ctx context.Context, profile string) ([]*model.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"profile": profile}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// DeleteNote removes a note by identifier and returns the deleted record,
// or ErrNoteNotFound if no note has that identifier.
func (r *NotesRepo) DeleteNote(ctx context.Context, noteID string) (*model.Note, error) {
	var note model.Note
	err := r.MongoCollection.FindOneAndDelete(ctx, bson.M{"_id": noteID}).Decode(&note)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}
