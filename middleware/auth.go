package middleware

import (
	"bytes"
	"encoding/json"
	"io"

	"main/config"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// ActorEmailKey is the gin context key under which the gate stores the
// authorized actor's email for handlers.
const ActorEmailKey = "actor_email"

// AuthGateMiddleware rejects any request whose claimed identity (the email
// field of the JSON body) is missing or not on the allow-list. The check
// runs on every request; there is no session or token caching. The body is
// consumed to read the claim and restored so handlers can bind it again.
func AuthGateMiddleware(authConfig *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var claimed struct {
			Email string `json:"email"`
		}

		if body, err := io.ReadAll(c.Request.Body); err == nil {
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			// Malformed bodies leave the claim empty and fail the gate.
			json.Unmarshal(body, &claimed)
		}

		if claimed.Email == "" || !authConfig.IsAuthorized(claimed.Email) {
			TrackAuthAttempt("failure", "gate")
			utils.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(ActorEmailKey, claimed.Email)
		c.Next()
	}
}
