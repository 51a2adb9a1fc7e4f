package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"scoutinghike/pkg/notify"
)

// NotificationKey is the gin context key under which the last
// notification sent to the client is stored.
const NotificationKey = "notification"

type APIResponse struct {
	Status       string               `json:"status"`
	Code         int                  `json:"code"`
	Message      string               `json:"message,omitempty"`
	TraceID      string               `json:"trace_id,omitempty"`
	Data         interface{}          `json:"data,omitempty"`
	Notification *notify.Notification `json:"notification,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

// RespondNotify answers a mutation with data and the notification the
// client should show.
func RespondNotify(c *gin.Context, code int, data interface{}, n notify.Notification) {
	c.Set(NotificationKey, n)
	c.JSON(code, APIResponse{
		Status:       "success",
		Code:         code,
		Message:      n.Description,
		TraceID:      traceID(c),
		Data:         data,
		Notification: &n,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func respondDestructive(c *gin.Context, code int, title, description string) {
	n := notify.Destructive(title, description)
	c.Set(NotificationKey, n)
	c.AbortWithStatusJSON(code, APIResponse{
		Status:       "error",
		Code:         code,
		Message:      description,
		TraceID:      traceID(c),
		Notification: &n,
	})
}

type errorMapping struct {
	err         error
	code        int
	description string
}

var serviceErrors = []errorMapping{
	{ErrInvalidCode, http.StatusNotFound, "Ongeldige toegangscode"},
	{ErrCodeAlreadyUsed, http.StatusConflict, "Deze toegangscode is al gebruikt"},
	{ErrCodeExpired, http.StatusGone, "Deze toegangscode is verlopen"},
	{ErrCodeNotFound, http.StatusNotFound, "Toegangscode niet gevonden"},
	{ErrEventNotFoundOrInactive, http.StatusNotFound, "Evenement niet gevonden of niet meer actief"},
	{ErrDuplicateName, http.StatusConflict, "Er bestaat al een actieve code voor deze naam"},
	{ErrDuplicateCheckpoint, http.StatusConflict, "Deze groep is al eerder geregistreerd bij deze post."},
	{ErrEventNotFound, http.StatusNotFound, "Evenement niet gevonden"},
	{ErrPostNotFound, http.StatusNotFound, "Post niet gevonden"},
	{ErrWalkingGroupNotFound, http.StatusNotFound, "Loopgroep niet gevonden"},
	{ErrVolunteerNotFound, http.StatusNotFound, "Vrijwilliger niet gevonden"},
	{ErrCheckpointNotFound, http.StatusNotFound, "Registratie niet gevonden"},
	{ErrAlreadyAssigned, http.StatusConflict, "Deze vrijwilliger is al aan een post toegewezen"},
	{ErrNotAssigned, http.StatusNotFound, "Je bent nog niet aan een post toegewezen"},
	{ErrAccountNotFound, http.StatusNotFound, "Account niet gevonden"},
	{ErrEmailAlreadyExists, http.StatusConflict, "Dit e-mailadres is al in gebruik"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Onjuist e-mailadres of wachtwoord"},
	{ErrEmailMismatch, http.StatusBadRequest, "Het ingevulde e-mailadres komt niet overeen met je account."},
	{ErrInvalidResetToken, http.StatusBadRequest, "Deze link is ongeldig of verlopen, vraag een nieuwe aan"},
	{ErrMailDelivery, http.StatusBadGateway, "De e-mail kon niet worden verzonden, probeer het later opnieuw"},
	{ErrSessionInvalid, http.StatusUnauthorized, "Je sessie is niet meer geldig, voer je toegangscode opnieuw in"},
	{ErrForbidden, http.StatusForbidden, "Je hebt geen toegang tot dit evenement"},
	{ErrInvalidInput, http.StatusBadRequest, "Ongeldige invoer"},
}

// HandleServiceError reports err once as a destructive notification
// titled after the failed action.
func HandleServiceError(c *gin.Context, title string, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			respondDestructive(c, m.code, title, m.description)
			return
		}
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		respondDestructive(c, http.StatusInternalServerError, title, storeErr.Error())
		return
	}

	respondDestructive(c, http.StatusInternalServerError, title, "Er ging iets mis, probeer het opnieuw")
}
