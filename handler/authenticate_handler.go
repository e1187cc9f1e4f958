package handler

import (
	"net/http"

	"main/config"
	"main/dto"
	"main/middleware"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// AuthenticateHandler validates the shared team secret and the identity's
// membership in the role map. It is the only ungated endpoint: it
// establishes identity rather than assuming it. The login audit entry is
// awaited before the response is sent.
func AuthenticateHandler(c *gin.Context, authConfig *config.AuthConfig, activityService *usecase.ActivityLogService) {
	var req dto.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.TrackAuthAttempt("failure", "login")
		invalidCredentials(c)
		return
	}

	role, known := authConfig.RoleFor(req.Email)
	if !known || !authConfig.VerifyPassword(req.Password) {
		middleware.TrackAuthAttempt("failure", "login")
		invalidCredentials(c)
		return
	}

	dbTimer := middleware.TrackDBOperation("insert", "activity_logs")
	err := activityService.RecordLogin(c, req.Email)
	dbTimer.ObserveDuration()
	if err != nil {
		middleware.TrackError("db")
		utils.InternalError(c, err.Error())
		return
	}
	middleware.TrackActivityEntry(model.ActionLogin)
	middleware.TrackAuthAttempt("success", "login")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"email":   req.Email,
		"role":    role,
	})
}

func invalidCredentials(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Invalid credentials",
	})
}
