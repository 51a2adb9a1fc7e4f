package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	clock := &FixedClock{T: time.Date(2025, 5, 24, 9, 0, 0, 0, time.UTC)}
	issuer := NewTokenIssuer("a-secret-of-sufficient-length", time.Hour, clock)
	id := uuid.New()

	token, err := issuer.CreateToken(id, RoleAdmin)
	require.NoError(t, err)

	claims, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, clock.T.Add(time.Hour), claims.ExpiresAt.Time.UTC())
}

func TestTokenExpiry(t *testing.T) {
	clock := &FixedClock{T: time.Date(2025, 5, 24, 9, 0, 0, 0, time.UTC)}
	issuer := NewTokenIssuer("a-secret-of-sufficient-length", time.Hour, clock)

	token, err := issuer.CreateToken(uuid.New(), RoleOrganizer)
	require.NoError(t, err)

	clock.Advance(2 * time.Hour)
	_, err = issuer.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	clock := &FixedClock{T: time.Date(2025, 5, 24, 9, 0, 0, 0, time.UTC)}
	token, err := NewTokenIssuer("first-secret-of-sufficient-length", time.Hour, clock).
		CreateToken(uuid.New(), RoleOrganizer)
	require.NoError(t, err)

	_, err = NewTokenIssuer("other-secret-of-sufficient-length", time.Hour, clock).ValidateToken(token)
	assert.Error(t, err)
}

func TestVolunteerToken(t *testing.T) {
	clock := &FixedClock{T: time.Date(2025, 5, 24, 9, 0, 0, 0, time.UTC)}
	issuer := NewTokenIssuer("session-secret-of-sufficient-length", 12*time.Hour, clock)
	volunteerID, eventID := uuid.New(), uuid.New()

	token, err := issuer.CreateVolunteerToken(volunteerID, eventID, "Bob", "Duinentocht", clock.Now())
	require.NoError(t, err)

	claims, err := issuer.ValidateVolunteerToken(token)
	require.NoError(t, err)
	assert.Equal(t, volunteerID.String(), claims.VolunteerID)
	assert.Equal(t, eventID.String(), claims.EventID)
	assert.Equal(t, "Bob", claims.Name)
	assert.Equal(t, "Duinentocht", claims.EventName)

	assert.Equal(t, jwt.ClaimStrings{AudienceVolunteer}, claims.Audience)
}

func TestTokenAudienceSeparatesKinds(t *testing.T) {
	clock := &FixedClock{T: time.Date(2025, 5, 24, 9, 0, 0, 0, time.UTC)}
	// same secret on both sides, as when SESSION_SECRET is left unset
	organizers := NewTokenIssuer("shared-secret-of-sufficient-length", time.Hour, clock)
	volunteers := NewTokenIssuer("shared-secret-of-sufficient-length", 12*time.Hour, clock)

	volunteerToken, err := volunteers.CreateVolunteerToken(uuid.New(), uuid.New(), "Bob", "Duinentocht", clock.Now())
	require.NoError(t, err)
	_, err = organizers.ValidateToken(volunteerToken)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)

	organizerToken, err := organizers.CreateToken(uuid.New(), RoleOrganizer)
	require.NoError(t, err)
	_, err = volunteers.ValidateVolunteerToken(organizerToken)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidAudience)
}
