package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/services"
	"scoutinghike/pkg/notify"
	"scoutinghike/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{eventService: eventService}
}

// ListEvents godoc
// @Summary List the organizer's events
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /events [get]
func (e *EventController) ListEvents(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}

	events, err := e.eventService.List(c.Request.Context(), org)
	if err != nil {
		utils.HandleServiceError(c, "Evenementen ophalen mislukt", err)
		return
	}
	utils.RespondSuccess(c, events, "")
}

// CreateEvent godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.EventRequest true "Event payload"
// @Success 201 {object} utils.APIResponse
// @Router /events [post]
func (e *EventController) CreateEvent(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}

	var req request_models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.Create(c.Request.Context(), org, req)
	if err != nil {
		utils.HandleServiceError(c, "Evenement aanmaken mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusCreated, event,
		notify.Normal("Evenement aangemaakt", event.Name+" is aangemaakt"))
}

// GetEvent godoc
// @Summary Event overview with posts, groups, volunteers and checkpoints
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /events/{eventId} [get]
func (e *EventController) GetEvent(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	overview, err := e.eventService.Overview(c.Request.Context(), org, eventID)
	if err != nil {
		utils.HandleServiceError(c, "Evenement ophalen mislukt", err)
		return
	}
	utils.RespondSuccess(c, overview, "")
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param request body request_models.EventRequest true "Event payload"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId} [put]
func (e *EventController) UpdateEvent(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	var req request_models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.Update(c.Request.Context(), org, eventID, req)
	if err != nil {
		utils.HandleServiceError(c, "Evenement bijwerken mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusOK, event,
		notify.Normal("Evenement bijgewerkt", "De wijzigingen zijn opgeslagen"))
}

// SetEventActive godoc
// @Summary Open or close an event for volunteer logins
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param request body request_models.SetEventActiveRequest true "Active flag"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId}/active [patch]
func (e *EventController) SetEventActive(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	var req request_models.SetEventActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.SetActive(c.Request.Context(), org, eventID, *req.IsActive)
	if err != nil {
		utils.HandleServiceError(c, "Evenement bijwerken mislukt", err)
		return
	}

	title := "Evenement gedeactiveerd"
	if event.IsActive {
		title = "Evenement geactiveerd"
	}
	utils.RespondNotify(c, http.StatusOK, event, notify.Normal(title, event.Name))
}

// DeleteEvent godoc
// @Summary Delete an event and everything in it
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Router /events/{eventId} [delete]
func (e *EventController) DeleteEvent(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}

	if err := e.eventService.Delete(c.Request.Context(), org, eventID); err != nil {
		utils.HandleServiceError(c, "Evenement verwijderen mislukt", err)
		return
	}
	utils.RespondNotify(c, http.StatusOK, nil,
		notify.Normal("Evenement verwijderd", "Het evenement en alle bijbehorende gegevens zijn verwijderd"))
}
