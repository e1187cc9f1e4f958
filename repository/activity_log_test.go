package repository

import (
	"context"
	"testing"
	"time"

	"main/model"
	"main/test/testutils"
)

func TestActivityLogRepoMongoOperations(t *testing.T) {
	client, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	activityRepo := GetActivityLogRepo(client)
	ctx := context.Background()

	t.Run("AppendEntryStampsTime", func(t *testing.T) {
		entry := &model.ActivityLog{
			Email:  "jay.deodap1@gmail.com",
			Action: model.ActionLogin,
		}
		if err := activityRepo.AppendEntry(ctx, entry); err != nil {
			t.Fatal("append failed", err)
		}
		if entry.Timestamp.IsZero() {
			t.Error("timestamp not stamped at insert")
		}
	})

	t.Run("GetRecentEntriesNewestFirst", func(t *testing.T) {
		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		actions := []string{"add_note", "delete_note", "update_profile"}
		for i, action := range actions {
			err := activityRepo.AppendEntry(ctx, &model.ActivityLog{
				Email:     "jay.deodap1@gmail.com",
				Action:    action,
				Profile:   "Acme",
				Timestamp: base.Add(time.Duration(i) * time.Minute),
			})
			if err != nil {
				t.Fatal("append failed", err)
			}
		}

		entries, err := activityRepo.GetRecentEntries(ctx, 2)
		if err != nil {
			t.Fatal("get recent failed", err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].Timestamp.Before(entries[1].Timestamp) {
			t.Error("entries not sorted newest first")
		}
	})
}
