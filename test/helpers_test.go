package test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/services"
	"main/test/testutils"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	testutils.SetupTestEnvironment()
}

const testTeamPassword = "teamaccess123"

var errInjected = errors.New("injected storage failure")

type testEnv struct {
	router       *gin.Engine
	notesRepo    *mockNotesRepo
	profileRepo  *mockProfileInfoRepo
	activityRepo *mockActivityLogRepo
	authConfig   *config.AuthConfig
}

// newTestEnv wires the full route table the way main.setupRouter does, but
// against in-memory repositories.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hash, err := services.HashPassword(testTeamPassword)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}

	authConfig := &config.AuthConfig{
		Members: map[string]string{
			"savan.deodap@gmail.com": "Admin",
			"jay.deodap1@gmail.com":  "Editor",
		},
		PasswordHash: hash,
	}

	notesRepo := newMockNotesRepo()
	profileRepo := newMockProfileInfoRepo()
	activityRepo := newMockActivityLogRepo()

	notesService := &usecase.NotesService{
		NotesRepo:       notesRepo,
		ProfileInfoRepo: profileRepo,
		ActivityRepo:    activityRepo,
	}
	profileInfoService := &usecase.ProfileInfoService{
		ProfileInfoRepo: profileRepo,
		ActivityRepo:    activityRepo,
	}
	activityService := &usecase.ActivityLogService{
		ActivityRepo: activityRepo,
	}

	router := gin.New()

	public := router.Group("/api")
	{
		public.POST("/authenticate", func(c *gin.Context) {
			handler.AuthenticateHandler(c, authConfig, activityService)
		})
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthGateMiddleware(authConfig))
	{
		protected.GET("/notes/:profile", func(c *gin.Context) {
			handler.GetProfileNotesHandler(c, notesService)
		})
		protected.POST("/notes", func(c *gin.Context) {
			handler.CreateNoteHandler(c, notesService)
		})
		protected.DELETE("/notes/:noteId", func(c *gin.Context) {
			handler.DeleteNoteHandler(c, notesService)
		})
		protected.POST("/profile-info", func(c *gin.Context) {
			handler.UpdateProfileInfoHandler(c, profileInfoService)
		})
		protected.POST("/log-activity", func(c *gin.Context) {
			handler.LogActivityHandler(c, activityService)
		})
	}

	return &testEnv{
		router:       router,
		notesRepo:    notesRepo,
		profileRepo:  profileRepo,
		activityRepo: activityRepo,
		authConfig:   authConfig,
	}
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response body %q: %v", w.Body.String(), err)
	}
	return body
}
