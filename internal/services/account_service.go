package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"scoutinghike/internal/models/db_models"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/internal/models/response_models"
	"scoutinghike/internal/repositories"
	mem "scoutinghike/pkg/memcache"
	"scoutinghike/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (response_models.AccountResponse, error)
	Update(ctx context.Context, userID uuid.UUID, request request_models.UpdateAccountRequest) (response_models.AccountResponse, error)

	// Delete removes the account and every event it created. confirmEmail
	// must repeat the account e-mail.
	Delete(ctx context.Context, userID uuid.UUID, confirmEmail string) error

	// RequestPasswordReset mails a single-use reset link. Unknown
	// addresses succeed silently so accounts cannot be probed.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	userRepo  repositories.UserRepository
	eventRepo repositories.EventRepository
	sessions  mem.SessionStore
	resets    mem.ResetTokenStore
	mailer    MailServiceInterface
	tokens    *utils.TokenIssuer
	resetTTL  time.Duration
	logger    *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	eventRepo repositories.EventRepository,
	sessions mem.SessionStore,
	resets mem.ResetTokenStore,
	mailer MailServiceInterface,
	tokens *utils.TokenIssuer,
	resetTTL time.Duration,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		sessions:  sessions,
		resets:    resets,
		mailer:    mailer,
		tokens:    tokens,
		resetTTL:  resetTTL,
		logger:    logger.Named("account"),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (response_models.AccountResponse, error) {
	email := normalizeEmail(request.Email)
	if email == "" || request.Password == "" {
		return response_models.AccountResponse{}, utils.ErrInvalidInput
	}

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return response_models.AccountResponse{}, utils.NewStoreError("find user", err)
	}
	if existing != nil {
		return response_models.AccountResponse{}, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.AccountResponse{}, err
	}

	user := &db_models.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if name := strings.TrimSpace(request.Name); name != "" {
		user.Name = &name
	}

	if err := a.userRepo.Insert(ctx, user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return response_models.AccountResponse{}, utils.ErrEmailAlreadyExists
		}
		a.logger.Error("failed to create account", zap.Error(err))
		return response_models.AccountResponse{}, utils.NewStoreError("insert user", err)
	}

	a.logger.Info("account registered", zap.String("user_id", user.ID.String()))
	return response_models.NewAccountResponse(user), nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.AccountLoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return response_models.AccountLoginResponse{}, utils.NewStoreError("find user", err)
	}
	if user == nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return response_models.AccountLoginResponse{}, utils.ErrInvalidCredentials
	}

	role := utils.RoleOrganizer
	if user.IsAdmin {
		role = utils.RoleAdmin
	}

	token, err := a.tokens.CreateToken(user.ID, role)
	if err != nil {
		return response_models.AccountLoginResponse{}, err
	}

	return response_models.AccountLoginResponse{
		Token:   token,
		Account: response_models.NewAccountResponse(user),
	}, nil
}

func (a *AccountService) Me(ctx context.Context, userID uuid.UUID) (response_models.AccountResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return response_models.AccountResponse{}, utils.NewStoreError("find user", err)
	}
	if user == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}
	return response_models.NewAccountResponse(user), nil
}

func (a *AccountService) Update(ctx context.Context, userID uuid.UUID, request request_models.UpdateAccountRequest) (response_models.AccountResponse, error) {
	email := normalizeEmail(request.Email)
	if email == "" {
		return response_models.AccountResponse{}, utils.ErrInvalidInput
	}

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return response_models.AccountResponse{}, utils.NewStoreError("find user", err)
	}
	if user == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}

	if email != user.Email {
		taken, err := a.userRepo.FindByEmail(ctx, email)
		if err != nil {
			return response_models.AccountResponse{}, utils.NewStoreError("find user", err)
		}
		if taken != nil {
			return response_models.AccountResponse{}, utils.ErrEmailAlreadyExists
		}
	}

	user.Email = email
	user.Name = nil
	if name := strings.TrimSpace(request.Name); name != "" {
		user.Name = &name
	}

	if err := a.userRepo.Update(ctx, user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return response_models.AccountResponse{}, utils.ErrEmailAlreadyExists
		}
		return response_models.AccountResponse{}, utils.NewStoreError("update user", err)
	}

	a.logger.Info("account updated", zap.String("user_id", user.ID.String()))
	return response_models.NewAccountResponse(user), nil
}

func (a *AccountService) Delete(ctx context.Context, userID uuid.UUID, confirmEmail string) error {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.NewStoreError("find user", err)
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}
	if normalizeEmail(confirmEmail) != user.Email {
		return utils.ErrEmailMismatch
	}

	events, err := a.eventRepo.ListByCreator(ctx, userID)
	if err != nil {
		return utils.NewStoreError("list events", err)
	}
	if err := a.userRepo.DeleteCascade(ctx, userID); err != nil {
		a.logger.Error("failed to delete account", zap.String("user_id", userID.String()), zap.Error(err))
		return utils.NewStoreError("delete user", err)
	}
	for _, event := range events {
		a.sessions.DeleteEvent(event.ID)
	}

	a.logger.Info("account deleted",
		zap.String("user_id", userID.String()),
		zap.Int("events", len(events)))
	return nil
}

func (a *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := a.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return utils.NewStoreError("find user", err)
	}
	if user == nil {
		a.logger.Debug("password reset for unknown address")
		return nil
	}

	token, err := utils.NewResetToken()
	if err != nil {
		return err
	}
	a.resets.Set(token, user.ID, a.resetTTL)

	if err := a.mailer.SendMailToResetPassword(user.Email, token); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrMailDelivery, err)
	}

	a.logger.Info("password reset requested", zap.String("user_id", user.ID.String()))
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	userID, ok := a.resets.Consume(strings.TrimSpace(request.Token))
	if !ok {
		return utils.ErrInvalidResetToken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return err
	}

	if err := a.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		if errors.Is(err, repositories.ErrStaleRow) {
			return utils.ErrInvalidResetToken
		}
		return utils.NewStoreError("update password", err)
	}

	a.logger.Info("password reset completed", zap.String("user_id", userID.String()))
	return nil
}
