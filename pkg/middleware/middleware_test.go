package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	mem "scoutinghike/pkg/memcache"
	"scoutinghike/pkg/notify"
	"scoutinghike/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTraceIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("trace_id")) })

	w := serve(r, http.MethodGet, "/", nil)
	_, err := uuid.Parse(w.Body.String())
	assert.NoError(t, err)
	assert.Equal(t, w.Body.String(), w.Header().Get(TraceIDHeader))

	given := uuid.NewString()
	w = serve(r, http.MethodGet, "/", map[string]string{TraceIDHeader: given})
	assert.Equal(t, given, w.Body.String())

	w = serve(r, http.MethodGet, "/", map[string]string{TraceIDHeader: "not-a-uuid"})
	assert.NotEqual(t, "not-a-uuid", w.Body.String())
}

func TestNotificationMiddleware(t *testing.T) {
	var got []notify.Notification
	sink := notify.SinkFunc(func(_ context.Context, n notify.Notification) { got = append(got, n) })

	r := gin.New()
	r.Use(NotificationMiddleware(sink))
	r.POST("/ok", func(c *gin.Context) {
		utils.RespondNotify(c, http.StatusCreated, nil, notify.Normal("Groep geregistreerd", "Alpha"))
	})
	r.POST("/fail", func(c *gin.Context) {
		utils.HandleServiceError(c, "Groep al geregistreerd", utils.ErrDuplicateCheckpoint)
	})
	r.GET("/quiet", func(c *gin.Context) { utils.RespondSuccess(c, nil, "") })

	serve(r, http.MethodPost, "/ok", nil)
	serve(r, http.MethodPost, "/fail", nil)
	serve(r, http.MethodGet, "/quiet", nil)

	require.Len(t, got, 2)
	assert.Equal(t, notify.Normal("Groep geregistreerd", "Alpha"), got[0])
	assert.Equal(t, "Groep al geregistreerd", got[1].Title)
	assert.Equal(t, notify.KindDestructive, got[1].Kind)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/events/:eventId", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	serve(r, http.MethodGet, "/events/123", nil)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/events/:eventId", fields["path"])
	assert.EqualValues(t, http.StatusNoContent, fields["status"])
}

func TestJWTAuthMiddleware(t *testing.T) {
	clock := &utils.FixedClock{T: time.Date(2025, 5, 24, 9, 0, 0, 0, time.UTC)}
	issuer := utils.NewTokenIssuer("organizer-secret-for-tests", time.Hour, clock)
	userID := uuid.New()
	token, err := issuer.CreateToken(userID, utils.RoleAdmin)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/", JWTAuthMiddleware(issuer), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UserIDKey)+"|"+c.GetString(RoleKey))
	})
	r.GET("/admin", JWTAuthMiddleware(issuer), RoleMiddleware(utils.RoleOrganizer), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String()+"|admin", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		serve(r, http.MethodGet, "/", map[string]string{"Authorization": token}).Code)
	assert.Equal(t, http.StatusForbidden,
		serve(r, http.MethodGet, "/admin", map[string]string{"Authorization": "Bearer " + token}).Code)

	clock.Advance(2 * time.Hour)
	assert.Equal(t, http.StatusUnauthorized,
		serve(r, http.MethodGet, "/", map[string]string{"Authorization": "Bearer " + token}).Code)
}

func TestJWTAuthMiddlewareRejectsVolunteerToken(t *testing.T) {
	clock := &utils.FixedClock{T: time.Date(2025, 5, 24, 9, 0, 0, 0, time.UTC)}
	organizers := utils.NewTokenIssuer("one-secret-for-both", time.Hour, clock)
	volunteers := utils.NewTokenIssuer("one-secret-for-both", 12*time.Hour, clock)

	token, err := volunteers.CreateVolunteerToken(uuid.New(), uuid.New(), "Bob", "Duinentocht", clock.Now())
	require.NoError(t, err)

	r := gin.New()
	r.GET("/", JWTAuthMiddleware(organizers), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := serve(r, http.MethodGet, "/", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type resolverFunc func(ctx context.Context, token string) (mem.VolunteerSession, error)

func (f resolverFunc) Resolve(ctx context.Context, token string) (mem.VolunteerSession, error) {
	return f(ctx, token)
}

func TestVolunteerSessionMiddleware(t *testing.T) {
	bob := mem.VolunteerSession{VolunteerID: uuid.New(), Name: "Bob", EventID: uuid.New(), EventName: "Duinentocht"}
	resolver := resolverFunc(func(_ context.Context, token string) (mem.VolunteerSession, error) {
		if token == "good" {
			return bob, nil
		}
		return mem.VolunteerSession{}, utils.ErrSessionInvalid
	})

	r := gin.New()
	r.GET("/", VolunteerSessionMiddleware(resolver), func(c *gin.Context) {
		session, ok := CurrentVolunteer(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, session.Name)
	})

	w := serve(r, http.MethodGet, "/", map[string]string{VolunteerSessionHeader: "good"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bob", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusUnauthorized,
		serve(r, http.MethodGet, "/", map[string]string{VolunteerSessionHeader: "bad"}).Code)
}

func TestCurrentVolunteerMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CurrentVolunteer(c)
	assert.False(t, ok)

	c.Set(VolunteerSessionKey, "not a session")
	_, ok = CurrentVolunteer(c)
	assert.False(t, ok)
}
