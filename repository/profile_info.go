package repository

import (
	"context"
	"errors"

	"main/config"
	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrProfileInfoNotFound = errors.New("profile info not found")

type ProfileInfoRepo struct {
	MongoCollection *mongo.Collection
}

func GetProfileInfoRepo(client *mongo.Client) *ProfileInfoRepo {
	cfg := config.LoadDatabaseConfig()
	return &ProfileInfoRepo{
		MongoCollection: client.Database(cfg.DatabaseName).Collection(cfg.ProfileInfoCollection),
	}
}

// EnsureIndexes creates the uniqueness constraint on the profile key.
func (r *ProfileInfoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.MongoCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "profile", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// UpsertProfileInfo replaces the record for info.Profile with exactly the
// supplied field values, creating it if absent.
func (r *ProfileInfoRepo) UpsertProfileInfo(ctx context.Context, info *model.ProfileInfo) error {
	filter := bson.M{"profile": info.Profile}
	update := bson.M{
		"$set": bson.M{
			"email":     info.Email,
			"phone":     info.Phone,
			"languages": info.Languages,
		},
	}

	_, err := r.MongoCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// GetProfileInfo looks up the record for a profile, or
// ErrProfileInfoNotFound when none exists.
func (r *ProfileInfoRepo) GetProfileInfo(ctx context.Context, profile string) (*model.ProfileInfo, error) {
	var info model.ProfileInfo
	err := r.MongoCollection.FindOne(ctx, bson.M{"profile": profile}).Decode(&info)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileInfoNotFound
		}
		return nil, err
	}
	return &info, nil
}
