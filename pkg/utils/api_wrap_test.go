package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"scoutinghike/pkg/notify"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, APIResponse, *gin.Context) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("trace_id", "trace-1")

	HandleServiceError(c, "Inloggen mislukt", err)

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body, c
}

func TestHandleServiceErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{ErrInvalidCode, http.StatusNotFound},
		{ErrCodeAlreadyUsed, http.StatusConflict},
		{ErrCodeExpired, http.StatusGone},
		{ErrEventNotFoundOrInactive, http.StatusNotFound},
		{ErrDuplicateName, http.StatusConflict},
		{ErrDuplicateCheckpoint, http.StatusConflict},
		{ErrSessionInvalid, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("redeem: %w", ErrCodeExpired), http.StatusGone},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		w, body, c := respond(t, tt.err)
		assert.Equal(t, tt.code, w.Code, tt.err.Error())
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "trace-1", body.TraceID)
		require.NotNil(t, body.Notification)
		assert.Equal(t, "Inloggen mislukt", body.Notification.Title)
		assert.Equal(t, notify.KindDestructive, body.Notification.Kind)
		assert.True(t, c.IsAborted())

		stored, ok := c.Get(NotificationKey)
		require.True(t, ok)
		assert.Equal(t, *body.Notification, stored)
	}
}

func TestHandleServiceErrorStoreMessage(t *testing.T) {
	err := NewStoreError("insert checkpoint", errors.New("connection refused"))
	assert.ErrorIs(t, err, ErrDatabaseError)

	w, body, _ := respond(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "connection refused", body.Notification.Description)
}

func TestNewStoreErrorNil(t *testing.T) {
	assert.NoError(t, NewStoreError("noop", nil))
}

func TestRespondNotify(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	RespondNotify(c, http.StatusCreated, map[string]string{"id": "1"}, notify.Normal("Groep geregistreerd", "Alpha"))

	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "Alpha", body.Message)
	assert.Equal(t, notify.KindNormal, body.Notification.Kind)
}
