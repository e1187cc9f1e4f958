package handler

import (
	"main/dto"
	"main/middleware"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func UpdateProfileInfoHandler(c *gin.Context, profileService *usecase.ProfileInfoService) {
	var req dto.UpdateProfileInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	info := model.ProfileInfo{
		Profile:   req.Profile,
		Email:     req.Email,
		Phone:     req.Phone,
		Languages: req.Languages,
	}

	dbTimer := middleware.TrackDBOperation("upsert", "profile_info")
	err := profileService.UpdateProfileInfo(c, &info, req.Email)
	dbTimer.ObserveDuration()
	if err != nil {
		middleware.TrackError("db")
		utils.InternalError(c, err.Error())
		return
	}

	middleware.TrackActivityEntry(model.ActionUpdateProfile)
	utils.Success(c, gin.H{"message": "Profile information updated successfully"})
}
