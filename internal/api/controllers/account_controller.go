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

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new organizer account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, "Registreren mislukt", err)
		return
	}

	utils.RespondNotify(c, http.StatusCreated, account,
		notify.Normal("Account aangemaakt", "Je kunt nu inloggen"))
}

// Login godoc
// @Summary Login to an organizer account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	login, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, "Inloggen mislukt", err)
		return
	}

	utils.RespondSuccess(c, login, "Login successful")
}

// Me godoc
// @Summary Current organizer account
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /accounts/me [get]
func (a *AccountController) Me(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}

	account, err := a.accountService.Me(c.Request.Context(), org.ID)
	if err != nil {
		utils.HandleServiceError(c, "Account ophalen mislukt", err)
		return
	}

	utils.RespondSuccess(c, account, "")
}

// UpdateMe godoc
// @Summary Change name and e-mail of the current organizer
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.UpdateAccountRequest true "Account fields"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/me [put]
func (a *AccountController) UpdateMe(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}

	var req request_models.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Update(c.Request.Context(), org.ID, req)
	if err != nil {
		utils.HandleServiceError(c, "Wijziging mislukt", err)
		return
	}

	utils.RespondNotify(c, http.StatusOK, account,
		notify.Normal("Account bijgewerkt", "Je gegevens zijn opgeslagen."))
}

// DeleteMe godoc
// @Summary Delete the current organizer and all of their events
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.DeleteAccountRequest true "E-mail confirmation"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/me [delete]
func (a *AccountController) DeleteMe(c *gin.Context) {
	org, ok := organizerFrom(c)
	if !ok {
		return
	}

	var req request_models.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.Delete(c.Request.Context(), org.ID, req.ConfirmEmail); err != nil {
		title := "Verwijderen mislukt"
		if errors.Is(err, utils.ErrEmailMismatch) {
			title = "Verificatie mislukt"
		}
		utils.HandleServiceError(c, title, err)
		return
	}

	utils.RespondNotify(c, http.StatusOK, nil,
		notify.Normal("Account verwijderd", "Je account is definitief verwijderd."))
}

// RequestPasswordReset godoc
// @Summary Mail a password reset link
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.PasswordResetRequest true "Account e-mail"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /accounts/password-reset [post]
func (a *AccountController) RequestPasswordReset(c *gin.Context) {
	var req request_models.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, "Aanvraag mislukt", err)
		return
	}

	utils.RespondNotify(c, http.StatusOK, nil,
		notify.Normal("E-mail verzonden", "Controleer je inbox voor een link om je wachtwoord opnieuw in te stellen."))
}

// ResetPassword godoc
// @Summary Set a new password with a reset token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/password-reset/confirm [post]
func (a *AccountController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ResetPassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, "Wachtwoord wijzigen mislukt", err)
		return
	}

	utils.RespondNotify(c, http.StatusOK, nil,
		notify.Normal("Wachtwoord gewijzigd", "Je kunt nu inloggen met je nieuwe wachtwoord."))
}
