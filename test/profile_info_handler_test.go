package test

import (
	"net/http"
	"testing"

	"main/model"
)

func TestUpdateProfileInfoHandler(t *testing.T) {
	t.Run("Create Then Full Replace", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.doJSON(t, http.MethodPost, "/api/profile-info", map[string]interface{}{
			"profile":   "Acme",
			"email":     actorEmail,
			"phone":     "+1 555 0100",
			"languages": "English",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if parseBody(t, w)["message"] != "Profile information updated successfully" {
			t.Error("unexpected success message")
		}

		// Second upsert omits phone and languages: full replace, not merge.
		w = env.doJSON(t, http.MethodPost, "/api/profile-info", map[string]interface{}{
			"profile": "Acme",
			"email":   actorEmail,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 on repeat upsert, got %d", w.Code)
		}

		if len(env.profileRepo.infos) != 1 {
			t.Fatalf("expected a single record per profile, got %d", len(env.profileRepo.infos))
		}
		stored := env.profileRepo.infos["Acme"]
		if stored.Phone != "" || stored.Languages != "" {
			t.Errorf("omitted fields must be emptied, got %+v", stored)
		}

		updates := env.activityRepo.entriesFor(model.ActionUpdateProfile)
		if len(updates) != 2 {
			t.Fatalf("expected 2 update_profile entries, got %d", len(updates))
		}
		if updates[0].Profile != "Acme" {
			t.Errorf("update_profile entry profile = %q, want Acme", updates[0].Profile)
		}
	})

	t.Run("Missing Profile", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.doJSON(t, http.MethodPost, "/api/profile-info", map[string]interface{}{
			"email": actorEmail,
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if env.activityRepo.count() != 0 {
			t.Error("invalid request must not write a log entry")
		}
	})

	t.Run("Storage Failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.profileRepo.upsertErr = errInjected

		w := env.doJSON(t, http.MethodPost, "/api/profile-info", map[string]interface{}{
			"profile": "Acme",
			"email":   actorEmail,
		})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if env.activityRepo.count() != 0 {
			t.Error("failed upsert must not write a log entry")
		}
	})
}
