package handler

import (
	"errors"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetProfileNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	profile := c.Param("profile")

	dbTimer := middleware.TrackDBOperation("find", "notes")
	notes, profileInfo, err := notesService.ListProfileNotes(c, profile)
	dbTimer.ObserveDuration()
	if err != nil {
		middleware.TrackError("db")
		utils.InternalError(c, err.Error())
		return
	}

	middleware.TrackNoteOperation("list")
	utils.Success(c, gin.H{
		"notes":       notes,
		"profileInfo": profileInfo,
	})
}

func CreateNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	note := model.Note{
		Profile:    req.Profile,
		TeamMember: req.TeamMember,
		Email:      req.Email,
		Content:    req.Content,
		Labels:     req.Labels,
	}

	dbTimer := middleware.TrackDBOperation("insert", "notes")
	noteID, err := notesService.CreateNote(c, &note)
	dbTimer.ObserveDuration()
	if err != nil {
		middleware.TrackError("db")
		utils.InternalError(c, err.Error())
		return
	}

	middleware.TrackNoteOperation("create")
	middleware.TrackActivityEntry(model.ActionAddNote)
	utils.Success(c, gin.H{
		"noteId":  noteID,
		"message": "Note added successfully",
	})
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	noteID := c.Param("noteId")
	actorEmail := c.GetString(middleware.ActorEmailKey)

	dbTimer := middleware.TrackDBOperation("delete", "notes")
	err := notesService.DeleteNote(c, noteID, actorEmail)
	dbTimer.ObserveDuration()
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			utils.NotFound(c, "Note not found")
			return
		}
		middleware.TrackError("db")
		utils.InternalError(c, err.Error())
		return
	}

	middleware.TrackNoteOperation("delete")
	middleware.TrackActivityEntry(model.ActionDeleteNote)
	utils.Success(c, gin.H{"message": "Note deleted successfully"})
}
