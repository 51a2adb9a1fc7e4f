package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/services"
	"scoutinghike/pkg/notify"
	"scoutinghike/pkg/utils"
)

type AssignmentController struct {
	assignmentService services.AssignmentServiceInterface
}

func NewAssignmentController(assignmentService services.AssignmentServiceInterface) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// ListVolunteers godoc
// @Summary List the volunteers of an event with their post
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId}/volunteers [get]
func (a *AssignmentController) ListVolunteers(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	volunteers, err := a.assignmentService.ListVolunteers(c.Request.Context(), org, eventID)
	if err != nil {
		utils.HandleServiceError(c, "Vrijwilligers ophalen mislukt", err)
		return
	}
	utils.RespondSuccess(c, volunteers, "")
}

// AssignVolunteer godoc
// @Summary Assign a volunteer to a post
// @Tags Assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param postId path string true "Post ID"
// @Param request body request_models.AssignVolunteerRequest true "Volunteer"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /events/{eventId}/posts/{postId}/volunteers [post]
func (a *AssignmentController) AssignVolunteer(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}
	postID, ok := uuidParam(c, "postId")
	if !ok {
		return
	}

	var req request_models.AssignVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	volunteer, err := a.assignmentService.Assign(c.Request.Context(), org, eventID, postID, req.VolunteerID)
	if err != nil {
		utils.HandleServiceError(c, "Toewijzen mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusCreated, volunteer,
		notify.Normal("Vrijwilliger toegewezen", volunteer.Name+" is toegewezen aan "+*volunteer.PostName))
}

// UnassignVolunteer godoc
// @Summary Remove a volunteer from a post
// @Tags Assignments
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param postId path string true "Post ID"
// @Param volunteerId path string true "Volunteer ID"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId}/posts/{postId}/volunteers/{volunteerId} [delete]
func (a *AssignmentController) UnassignVolunteer(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}
	postID, ok := uuidParam(c, "postId")
	if !ok {
		return
	}
	volunteerID, ok := uuidParam(c, "volunteerId")
	if !ok {
		return
	}

	if err := a.assignmentService.Unassign(c.Request.Context(), org, eventID, postID, volunteerID); err != nil {
		utils.HandleServiceError(c, "Verwijderen van post mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusOK, nil,
		notify.Normal("Vrijwilliger verwijderd", "De vrijwilliger is van de post gehaald"))
}
