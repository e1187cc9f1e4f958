package repository

import (
	"context"
	"time"

	"main/config"
	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ActivityLogRepo struct {
	MongoCollection *mongo.Collection
}

func GetActivityLogRepo(client *mongo.Client) *ActivityLogRepo {
	cfg := config.LoadDatabaseConfig()
	return &ActivityLogRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(cfg.ActivityLogCollection),
	}
}

// AppendEntry writes one audit entry. Entries are never updated or deleted.
func (r *ActivityLogRepo) AppendEntry(ctx context.Context, entry *model.ActivityLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.MongoCollection.InsertOne(ctx, entry)
	return err
}

// GetRecentEntries retrieves the latest audit entries, most recent first.
func (r *ActivityLogRepo) GetRecentEntries(ctx context.Context, limit int64) ([]*model.ActivityLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []*model.ActivityLog{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
