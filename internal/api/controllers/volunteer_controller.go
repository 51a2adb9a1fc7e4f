package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/models/response_models"
	"scoutinghike/internal/services"
	"scoutinghike/pkg/middleware"
	"scoutinghike/pkg/notify"
	"scoutinghike/pkg/utils"
)

type VolunteerController struct {
	sessionService services.VolunteerSessionServiceInterface
}

func NewVolunteerController(sessionService services.VolunteerSessionServiceInterface) *VolunteerController {
	return &VolunteerController{sessionService: sessionService}
}

// Redeem godoc
// @Summary Log in as a volunteer with an access code
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param request body request_models.RedeemCodeRequest true "Access code"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 410 {object} utils.APIResponse
// @Router /volunteers/redeem [post]
func (v *VolunteerController) Redeem(c *gin.Context) {
	var req request_models.RedeemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	redeemed, err := v.sessionService.Redeem(c.Request.Context(), req.AccessCode)
	if err != nil {
		utils.HandleServiceError(c, "Inloggen mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusOK, redeemed,
		notify.Normal("Inloggen gelukt!", "Welkom "+redeemed.Volunteer.Name+" bij "+redeemed.Event.Name))
}

// Me godoc
// @Summary Current volunteer session
// @Tags Volunteers
// @Produce json
// @Param X-Volunteer-Session header string true "Session token"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /volunteers/me [get]
func (v *VolunteerController) Me(c *gin.Context) {
	session, ok := middleware.CurrentVolunteer(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Volunteer session missing")
		return
	}
	utils.RespondSuccess(c, response_models.NewVolunteerSessionResponse(session), "")
}

// Logout godoc
// @Summary End the volunteer session
// @Tags Volunteers
// @Produce json
// @Param X-Volunteer-Session header string true "Session token"
// @Success 200 {object} utils.APIResponse
// @Router /volunteers/logout [post]
func (v *VolunteerController) Logout(c *gin.Context) {
	session, ok := middleware.CurrentVolunteer(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Volunteer session missing")
		return
	}
	v.sessionService.Logout(c.Request.Context(), session.VolunteerID)
	utils.RespondNotify(c, http.StatusOK, nil, notify.Normal("Uitgelogd", "Tot de volgende keer!"))
}

// PostDashboard godoc
// @Summary The volunteer's post with groups and registrations
// @Tags Volunteers
// @Produce json
// @Param X-Volunteer-Session header string true "Session token"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /volunteers/post [get]
func (v *VolunteerController) PostDashboard(c *gin.Context) {
	session, ok := middleware.CurrentVolunteer(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Volunteer session missing")
		return
	}

	dashboard, err := v.sessionService.PostDashboard(c.Request.Context(), session)
	if err != nil {
		utils.HandleServiceError(c, "Post ophalen mislukt", err)
		return
	}
	utils.RespondSuccess(c, dashboard, "")
}

// RegisterCheckpoint godoc
// @Summary Register a walking group at the volunteer's post
// @Tags Volunteers
// @Accept json
// @Produce json
// @Param X-Volunteer-Session header string true "Session token"
// @Param request body request_models.VolunteerCheckpointRequest true "Walking group"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /volunteers/checkpoints [post]
func (v *VolunteerController) RegisterCheckpoint(c *gin.Context) {
	session, ok := middleware.CurrentVolunteer(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Volunteer session missing")
		return
	}

	var req request_models.VolunteerCheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	checkpoint, err := v.sessionService.RegisterCheckpoint(c.Request.Context(), session, req)
	if err != nil {
		utils.HandleServiceError(c, checkpointErrorTitle(err), err)
		return
	}
	respondCheckpoint(c, checkpoint.WalkingGroupName, checkpoint.PostName, checkpoint)
}
