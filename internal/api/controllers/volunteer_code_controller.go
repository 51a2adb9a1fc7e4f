package controllers

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"net/http"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/services"
	"scoutinghike/pkg/notify"
	"scoutinghike/pkg/utils"
)

type VolunteerCodeController struct {
	codeService services.VolunteerCodeServiceInterface
}

func NewVolunteerCodeController(codeService services.VolunteerCodeServiceInterface) *VolunteerCodeController {
	return &VolunteerCodeController{codeService: codeService}
}

// ListCodes godoc
// @Summary List access codes of an event
// @Description Expired unused codes are removed before listing.
// @Tags VolunteerCodes
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId}/codes [get]
func (v *VolunteerCodeController) ListCodes(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	codes, err := v.codeService.List(c.Request.Context(), org, eventID)
	if err != nil {
		utils.HandleServiceError(c, "Codes ophalen mislukt", err)
		return
	}
	utils.RespondSuccess(c, codes, "")
}

// GenerateCode godoc
// @Summary Issue an access code for a volunteer
// @Tags VolunteerCodes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param request body request_models.GenerateCodeRequest true "Volunteer name"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /events/{eventId}/codes [post]
func (v *VolunteerCodeController) GenerateCode(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	var req request_models.GenerateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	code, err := v.codeService.Generate(c.Request.Context(), org, eventID, req.VolunteerName)
	if err != nil {
		utils.HandleServiceError(c, "Fout bij genereren code", err)
		return
	}
	utils.RespondNotify(c, http.StatusCreated, code,
		notify.Normal("Toegangscode gegenereerd",
			fmt.Sprintf("Code voor %s: %s", code.VolunteerName, code.AccessCode)))
}

// RevokeCode godoc
// @Summary Delete an access code
// @Description Revoking a redeemed code also removes the volunteer it created.
// @Tags VolunteerCodes
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param code path string true "Access code"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /events/{eventId}/codes/{code} [delete]
func (v *VolunteerCodeController) RevokeCode(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	if err := v.codeService.Revoke(c.Request.Context(), org, eventID, c.Param("code")); err != nil {
		utils.HandleServiceError(c, "Fout bij verwijderen code", err)
		return
	}
	utils.RespondNotify(c, http.StatusOK, nil,
		notify.Normal("Code verwijderd", "De toegangscode is verwijderd"))
}
