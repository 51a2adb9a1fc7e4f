package controllers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/services"
	"scoutinghike/pkg/notify"
	"scoutinghike/pkg/utils"
)

type CheckpointController struct {
	checkpointService services.CheckpointServiceInterface
}

func NewCheckpointController(checkpointService services.CheckpointServiceInterface) *CheckpointController {
	return &CheckpointController{checkpointService: checkpointService}
}

// ListCheckpoints godoc
// @Summary List every checkpoint of an event, newest first
// @Tags Checkpoints
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId}/checkpoints [get]
func (cp *CheckpointController) ListCheckpoints(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	checkpoints, err := cp.checkpointService.ListByEvent(c.Request.Context(), org, eventID)
	if err != nil {
		utils.HandleServiceError(c, "Registraties ophalen mislukt", err)
		return
	}
	utils.RespondSuccess(c, checkpoints, "")
}

// RegisterCheckpoint godoc
// @Summary Register a walking group at a post
// @Tags Checkpoints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param request body request_models.CheckpointRequest true "Checkpoint"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /events/{eventId}/checkpoints [post]
func (cp *CheckpointController) RegisterCheckpoint(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	var req request_models.CheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	checkpoint, err := cp.checkpointService.RegisterForEvent(c.Request.Context(), org, eventID, req)
	if err != nil {
		utils.HandleServiceError(c, checkpointErrorTitle(err), err)
		return
	}
	respondCheckpoint(c, checkpoint.WalkingGroupName, checkpoint.PostName, checkpoint)
}

// DeleteCheckpoint godoc
// @Summary Remove a mistaken checkpoint registration
// @Tags Checkpoints
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param checkpointId path string true "Checkpoint ID"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId}/checkpoints/{checkpointId} [delete]
func (cp *CheckpointController) DeleteCheckpoint(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}
	checkpointID, ok := uuidParam(c, "checkpointId")
	if !ok {
		return
	}

	if err := cp.checkpointService.Delete(c.Request.Context(), org, eventID, checkpointID); err != nil {
		utils.HandleServiceError(c, "Registratie verwijderen mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusOK, nil,
		notify.Normal("Registratie verwijderd", "De registratie is verwijderd"))
}

func respondCheckpoint(c *gin.Context, group, post string, data interface{}) {
	utils.RespondNotify(c, http.StatusCreated, data,
		notify.Normal("Groep geregistreerd", group+" is geregistreerd bij "+post))
}

func checkpointErrorTitle(err error) string {
	if errors.Is(err, utils.ErrDuplicateCheckpoint) {
		return "Groep al geregistreerd"
	}
	return "Registratie mislukt"
}
