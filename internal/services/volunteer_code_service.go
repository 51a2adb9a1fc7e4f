package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"scoutinghike/internal/models/db_models"
	"scoutinghike/internal/models/response_models"
	"scoutinghike/internal/repositories"
	mem "scoutinghike/pkg/memcache"
	"scoutinghike/pkg/utils"
)

// maxCodeAttempts bounds the retries after an access code collision.
const maxCodeAttempts = 5

var errCodeSpaceExhausted = errors.New("could not generate a unique access code")

type VolunteerCodeServiceInterface interface {
	Generate(ctx context.Context, org Organizer, eventID uuid.UUID, volunteerName string) (response_models.VolunteerCodeResponse, error)
	List(ctx context.Context, org Organizer, eventID uuid.UUID) ([]response_models.VolunteerCodeResponse, error)
	Revoke(ctx context.Context, org Organizer, eventID uuid.UUID, code string) error
}

type VolunteerCodeService struct {
	eventGuard
	codes     repositories.VolunteerCodeRepository
	sessions  mem.SessionStore
	generator utils.CodeGenerator
	clock     utils.Clock
	ttl       time.Duration
	logger    *zap.Logger
}

func NewVolunteerCodeService(
	events repositories.EventRepository,
	codes repositories.VolunteerCodeRepository,
	sessions mem.SessionStore,
	generator utils.CodeGenerator,
	clock utils.Clock,
	ttl time.Duration,
	logger *zap.Logger,
) VolunteerCodeServiceInterface {
	return &VolunteerCodeService{
		eventGuard: eventGuard{events: events},
		codes:      codes,
		sessions:   sessions,
		generator:  generator,
		clock:      clock,
		ttl:        ttl,
		logger:     logger.Named("volunteer_code"),
	}
}

// Generate issues a single-use access code for the named volunteer. Only
// one live code per name may exist in an event; expired unused codes for
// the name are swept when the new one is stored.
func (s *VolunteerCodeService) Generate(ctx context.Context, org Organizer, eventID uuid.UUID, volunteerName string) (response_models.VolunteerCodeResponse, error) {
	name := strings.TrimSpace(volunteerName)
	if name == "" {
		return response_models.VolunteerCodeResponse{}, utils.ErrInvalidInput
	}

	if _, err := s.owned(ctx, org, eventID); err != nil {
		return response_models.VolunteerCodeResponse{}, err
	}

	now := s.clock.Now()
	if err := s.ensureNameFree(ctx, eventID, name, now); err != nil {
		return response_models.VolunteerCodeResponse{}, err
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		accessCode, err := s.generator.Generate()
		if err != nil {
			return response_models.VolunteerCodeResponse{}, err
		}

		code := &db_models.VolunteerCode{
			EventID:       eventID,
			AccessCode:    accessCode,
			VolunteerName: name,
			CreatedAt:     now,
			ExpiresAt:     now.Add(s.ttl),
		}

		err = s.codes.CreateWithSweep(ctx, code, now)
		if err == nil {
			s.logger.Info("access code issued",
				zap.String("event_id", eventID.String()),
				zap.String("volunteer_name", name),
				zap.Time("expires_at", code.ExpiresAt))
			return response_models.NewVolunteerCodeResponse(code, now), nil
		}
		if !repositories.IsUniqueViolation(err) {
			s.logger.Error("failed to store access code", zap.Error(err))
			return response_models.VolunteerCodeResponse{}, utils.NewStoreError("insert volunteer code", err)
		}

		// Either the name was taken concurrently or the code collided.
		if err := s.ensureNameFree(ctx, eventID, name, now); err != nil {
			return response_models.VolunteerCodeResponse{}, err
		}
		s.logger.Warn("access code collision", zap.Int("attempt", attempt))
	}

	return response_models.VolunteerCodeResponse{}, utils.NewStoreError("insert volunteer code", errCodeSpaceExhausted)
}

func (s *VolunteerCodeService) ensureNameFree(ctx context.Context, eventID uuid.UUID, name string, now time.Time) error {
	live, err := s.codes.FindLiveByName(ctx, eventID, name, now)
	if err != nil {
		return utils.NewStoreError("find volunteer code", err)
	}
	if live != nil {
		return utils.ErrDuplicateName
	}
	return nil
}

// List sweeps the expired unused codes of the event and returns the rest,
// newest first.
func (s *VolunteerCodeService) List(ctx context.Context, org Organizer, eventID uuid.UUID) ([]response_models.VolunteerCodeResponse, error) {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	swept, err := s.codes.DeleteExpiredUnused(ctx, eventID, now)
	if err != nil {
		return nil, utils.NewStoreError("delete expired codes", err)
	}
	if swept > 0 {
		s.logger.Debug("expired access codes removed",
			zap.String("event_id", eventID.String()),
			zap.Int64("count", swept))
	}

	codes, err := s.codes.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, utils.NewStoreError("list volunteer codes", err)
	}

	out := make([]response_models.VolunteerCodeResponse, 0, len(codes))
	for i := range codes {
		out = append(out, response_models.NewVolunteerCodeResponse(&codes[i], now))
	}
	return out, nil
}

// Revoke deletes the code. A redeemed code takes its volunteer with it.
func (s *VolunteerCodeService) Revoke(ctx context.Context, org Organizer, eventID uuid.UUID, rawCode string) error {
	if _, err := s.owned(ctx, org, eventID); err != nil {
		return err
	}

	accessCode := utils.NormalizeAccessCode(rawCode)
	if accessCode == "" {
		return utils.ErrCodeNotFound
	}

	code, err := s.codes.FindByAccessCode(ctx, accessCode)
	if err != nil {
		return utils.NewStoreError("find volunteer code", err)
	}
	if code == nil || code.EventID != eventID {
		return utils.ErrCodeNotFound
	}

	if err := s.codes.Revoke(ctx, code); err != nil {
		s.logger.Error("failed to revoke access code", zap.String("code_id", code.ID.String()), zap.Error(err))
		return utils.NewStoreError("revoke volunteer code", err)
	}

	if code.Used && code.VolunteerID != nil {
		s.sessions.Delete(*code.VolunteerID)
	}

	s.logger.Info("access code revoked",
		zap.String("event_id", eventID.String()),
		zap.Bool("was_used", code.Used))
	return nil
}
