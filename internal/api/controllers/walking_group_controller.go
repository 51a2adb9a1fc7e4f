package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/services"
	"scoutinghike/pkg/notify"
	"scoutinghike/pkg/utils"
)

type WalkingGroupController struct {
	groupService services.WalkingGroupServiceInterface
}

func NewWalkingGroupController(groupService services.WalkingGroupServiceInterface) *WalkingGroupController {
	return &WalkingGroupController{groupService: groupService}
}

// ListGroups godoc
// @Summary List the walking groups of an event
// @Tags WalkingGroups
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId}/groups [get]
func (w *WalkingGroupController) ListGroups(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	groups, err := w.groupService.List(c.Request.Context(), org, eventID)
	if err != nil {
		utils.HandleServiceError(c, "Groepen ophalen mislukt", err)
		return
	}
	utils.RespondSuccess(c, groups, "")
}

// CreateGroup godoc
// @Summary Add a walking group
// @Tags WalkingGroups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param request body request_models.WalkingGroupRequest true "Walking group payload"
// @Success 201 {object} utils.APIResponse
// @Router /events/{eventId}/groups [post]
func (w *WalkingGroupController) CreateGroup(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	var req request_models.WalkingGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	group, err := w.groupService.Create(c.Request.Context(), org, eventID, req)
	if err != nil {
		utils.HandleServiceError(c, "Groep toevoegen mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusCreated, group,
		notify.Normal("Groep toegevoegd", group.Name+" is toegevoegd"))
}

// UpdateGroup godoc
// @Summary Update a walking group
// @Tags WalkingGroups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param groupId path string true "Walking group ID"
// @Param request body request_models.WalkingGroupRequest true "Walking group payload"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId}/groups/{groupId} [put]
func (w *WalkingGroupController) UpdateGroup(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}
	groupID, ok := uuidParam(c, "groupId")
	if !ok {
		return
	}

	var req request_models.WalkingGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	group, err := w.groupService.Update(c.Request.Context(), org, eventID, groupID, req)
	if err != nil {
		utils.HandleServiceError(c, "Groep bijwerken mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusOK, group,
		notify.Normal("Groep bijgewerkt", "De wijzigingen zijn opgeslagen"))
}

// DeleteGroup godoc
// @Summary Delete a walking group and its checkpoints
// @Tags WalkingGroups
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param groupId path string true "Walking group ID"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId}/groups/{groupId} [delete]
func (w *WalkingGroupController) DeleteGroup(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}
	groupID, ok := uuidParam(c, "groupId")
	if !ok {
		return
	}

	if err := w.groupService.Delete(c.Request.Context(), org, eventID, groupID); err != nil {
		utils.HandleServiceError(c, "Groep verwijderen mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusOK, nil,
		notify.Normal("Groep verwijderd", "De groep is verwijderd"))
}
