package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// Each token type carries its own audience, so a token of one kind never
// validates as the other even when both issuers share a secret.
const (
	AudienceOrganizer = "scoutinghike-organizer"
	AudienceVolunteer = "scoutinghike-volunteer"
)

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// VolunteerClaims carry the volunteer session the client holds after
// redeeming an access code.
type VolunteerClaims struct {
	VolunteerID string `json:"id"`
	Name        string `json:"name"`
	EventID     string `json:"event_id"`
	EventName   string `json:"event_name"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  Clock
}

func NewTokenIssuer(secret string, ttl time.Duration, clock Clock) *TokenIssuer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, clock: clock}
}

func (t *TokenIssuer) CreateToken(userId uuid.UUID, role string) (string, error) {
	now := t.clock.Now()
	claims := &Claims{
		UserID: userId.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userId.String(),
			Audience:  jwt.ClaimStrings{AudienceOrganizer},
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if err := t.parse(tokenString, claims, AudienceOrganizer); err != nil {
		return nil, err
	}
	return claims, nil
}

func (t *TokenIssuer) CreateVolunteerToken(volunteerID, eventID uuid.UUID, name, eventName string, issuedAt time.Time) (string, error) {
	claims := &VolunteerClaims{
		VolunteerID: volunteerID.String(),
		Name:        name,
		EventID:     eventID.String(),
		EventName:   eventName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   volunteerID.String(),
			Audience:  jwt.ClaimStrings{AudienceVolunteer},
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) ValidateVolunteerToken(tokenString string) (*VolunteerClaims, error) {
	claims := &VolunteerClaims{}
	if err := t.parse(tokenString, claims, AudienceVolunteer); err != nil {
		return nil, err
	}
	return claims, nil
}

func (t *TokenIssuer) parse(tokenString string, claims jwt.Claims, audience string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.clock.Now), jwt.WithAudience(audience))
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	return nil
}
