package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"scoutinghike/internal/models/db_models"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/pkg/utils"
)

func TestAccountService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	registered, err := f.accounts.Register(ctx, request_models.SignUpRequest{
		Name:     "Hopman Jan",
		Email:    " Jan@Scouting.nl ",
		Password: "kampvuur",
	})
	require.NoError(t, err)
	assert.Equal(t, "jan@scouting.nl", registered.Email)
	assert.Equal(t, "Hopman Jan", registered.Name)
	assert.False(t, registered.IsAdmin)

	_, err = f.accounts.Register(ctx, request_models.SignUpRequest{Email: "jan@scouting.nl", Password: "anders123"})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	login, err := f.accounts.Login(ctx, request_models.LoginRequest{Email: "JAN@scouting.nl", Password: "kampvuur"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, registered.ID, login.Account.ID)

	_, err = f.accounts.Login(ctx, request_models.LoginRequest{Email: "jan@scouting.nl", Password: "verkeerd"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = f.accounts.Login(ctx, request_models.LoginRequest{Email: "niemand@scouting.nl", Password: "kampvuur"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	me, err := f.accounts.Me(ctx, mustUUID(t, registered.ID))
	require.NoError(t, err)
	assert.Equal(t, registered, me)

	_, err = f.accounts.Me(ctx, uuid.New())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestAccountUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	other := f.newOrganizer(t, "piet@scouting.nl")

	updated, err := f.accounts.Update(ctx, f.org.ID, request_models.UpdateAccountRequest{
		Name:  " Akela ",
		Email: "Akela@Scouting.nl",
	})
	require.NoError(t, err)
	assert.Equal(t, "akela@scouting.nl", updated.Email)
	assert.Equal(t, "Akela", updated.Name)

	_, err = f.accounts.Update(ctx, f.org.ID, request_models.UpdateAccountRequest{Email: "  "})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	t.Run("same e-mail keeps working", func(t *testing.T) {
		again, err := f.accounts.Update(ctx, f.org.ID, request_models.UpdateAccountRequest{Email: "akela@scouting.nl"})
		require.NoError(t, err)
		assert.Empty(t, again.Name)
	})

	t.Run("e-mail of another account", func(t *testing.T) {
		_, err := f.accounts.Update(ctx, other.ID, request_models.UpdateAccountRequest{Email: "AKELA@scouting.nl"})
		assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

		me, err := f.accounts.Me(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, "piet@scouting.nl", me.Email)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := f.accounts.Update(ctx, uuid.New(), request_models.UpdateAccountRequest{Email: "nieuw@scouting.nl"})
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})
}

func TestAccountDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	event := f.newEvent(t, "Dropping")
	f.newPost(t, mustUUID(t, event.ID), "Post 1")
	f.newGroup(t, mustUUID(t, event.ID), "Bevers")
	redeemed := f.redeemAs(t, mustUUID(t, event.ID), "Kim")
	f.session(t, redeemed)

	other := f.newOrganizer(t, "piet@scouting.nl")
	kept, err := f.events.Create(ctx, other, request_models.EventRequest{Name: "Kamp", Date: t0.Add(48 * time.Hour)})
	require.NoError(t, err)

	err = f.accounts.Delete(ctx, f.org.ID, "iemand@scouting.nl")
	assert.ErrorIs(t, err, utils.ErrEmailMismatch)
	_, err = f.accounts.Me(ctx, f.org.ID)
	require.NoError(t, err)

	require.NoError(t, f.accounts.Delete(ctx, f.org.ID, " Organizer@Scouting.nl "))

	_, err = f.accounts.Me(ctx, f.org.ID)
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)

	gone, err := f.eventRepo.FindByID(ctx, mustUUID(t, event.ID))
	require.NoError(t, err)
	assert.Nil(t, gone)

	var posts, groups, volunteers int64
	require.NoError(t, f.db.Model(&db_models.Post{}).Count(&posts).Error)
	require.NoError(t, f.db.Model(&db_models.WalkingGroup{}).Count(&groups).Error)
	require.NoError(t, f.db.Model(&db_models.Volunteer{}).Count(&volunteers).Error)
	assert.Zero(t, posts)
	assert.Zero(t, groups)
	assert.Zero(t, volunteers)

	_, err = f.volunteers.Resolve(ctx, redeemed.Token)
	assert.ErrorIs(t, err, utils.ErrSessionInvalid)

	still, err := f.eventRepo.FindByID(ctx, mustUUID(t, kept.ID))
	require.NoError(t, err)
	assert.NotNil(t, still)
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.accounts.Register(ctx, request_models.SignUpRequest{Email: "jan@scouting.nl", Password: "kampvuur"})
	require.NoError(t, err)

	require.NoError(t, f.accounts.RequestPasswordReset(ctx, "niemand@scouting.nl"))
	assert.Empty(t, f.mailer.sent)

	require.NoError(t, f.accounts.RequestPasswordReset(ctx, " JAN@scouting.nl"))
	token := f.mailer.last(t, "jan@scouting.nl")

	require.NoError(t, f.accounts.ResetPassword(ctx, request_models.ResetPasswordRequest{Token: token, Password: "zaklamp"}))

	_, err = f.accounts.Login(ctx, request_models.LoginRequest{Email: "jan@scouting.nl", Password: "kampvuur"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	_, err = f.accounts.Login(ctx, request_models.LoginRequest{Email: "jan@scouting.nl", Password: "zaklamp"})
	require.NoError(t, err)

	t.Run("token works once", func(t *testing.T) {
		err := f.accounts.ResetPassword(ctx, request_models.ResetPasswordRequest{Token: token, Password: "nogmaals"})
		assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
	})

	t.Run("expired token", func(t *testing.T) {
		require.NoError(t, f.accounts.RequestPasswordReset(ctx, "jan@scouting.nl"))
		late := f.mailer.last(t, "jan@scouting.nl")
		f.clock.Advance(31 * time.Minute)

		err := f.accounts.ResetPassword(ctx, request_models.ResetPasswordRequest{Token: late, Password: "nogmaals"})
		assert.ErrorIs(t, err, utils.ErrInvalidResetToken)
	})

	t.Run("mail failure", func(t *testing.T) {
		f.mailer.err = errors.New("connection refused")
		defer func() { f.mailer.err = nil }()

		err := f.accounts.RequestPasswordReset(ctx, "jan@scouting.nl")
		assert.ErrorIs(t, err, utils.ErrMailDelivery)
	})
}
