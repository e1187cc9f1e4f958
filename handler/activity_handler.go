package handler

import (
	"main/dto"
	"main/middleware"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// LogActivityHandler appends an audit entry for client-observed actions
// (viewing, exporting) that have no persistence write of their own.
func LogActivityHandler(c *gin.Context, activityService *usecase.ActivityLogService) {
	var req dto.LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	dbTimer := middleware.TrackDBOperation("insert", "activity_logs")
	err := activityService.LogActivity(c, req.Email, req.Action, req.Profile)
	dbTimer.ObserveDuration()
	if err != nil {
		middleware.TrackError("db")
		utils.InternalError(c, err.Error())
		return
	}

	middleware.TrackActivityEntry(req.Action)
	utils.Success(c, gin.H{"message": "Activity logged successfully"})
}
