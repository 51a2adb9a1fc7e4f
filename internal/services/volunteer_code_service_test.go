package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"scoutinghike/pkg/utils"
)

var accessCodePattern = regexp.MustCompile(`^[0-9A-Z]{5}$`)

func TestVolunteerCodeService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("issues an uppercase code valid for an hour", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike 2025").ID)

		code, err := f.codes.Generate(ctx, f.org, eventID, "  Bob  ")
		require.NoError(t, err)

		assert.Regexp(t, accessCodePattern, code.AccessCode)
		assert.Equal(t, "Bob", code.VolunteerName)
		assert.False(t, code.Used)
		assert.False(t, code.Expired)
		assert.True(t, code.CreatedAt.Equal(t0))
		assert.True(t, code.ExpiresAt.Equal(t0.Add(time.Hour)))
		assert.Equal(t, int64(3600), code.ExpiresInSeconds)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)

		_, err := f.codes.Generate(ctx, f.org, eventID, "   ")
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("rejects a second live code for the same name", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)

		_, err := f.codes.Generate(ctx, f.org, eventID, "Bob")
		require.NoError(t, err)

		f.clock.Advance(30 * time.Minute)
		_, err = f.codes.Generate(ctx, f.org, eventID, "Bob")
		assert.ErrorIs(t, err, utils.ErrDuplicateName)
	})

	t.Run("same name in another event is fine", func(t *testing.T) {
		f := newFixture(t)
		first := mustUUID(t, f.newEvent(t, "Hike A").ID)
		second := mustUUID(t, f.newEvent(t, "Hike B").ID)

		_, err := f.codes.Generate(ctx, f.org, first, "Bob")
		require.NoError(t, err)
		_, err = f.codes.Generate(ctx, f.org, second, "Bob")
		assert.NoError(t, err)
	})

	t.Run("replaces an expired unused code for the name", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)

		old, err := f.codes.Generate(ctx, f.org, eventID, "Bob")
		require.NoError(t, err)

		f.clock.Advance(61 * time.Minute)
		fresh, err := f.codes.Generate(ctx, f.org, eventID, "Bob")
		require.NoError(t, err)
		assert.NotEqual(t, old.AccessCode, fresh.AccessCode)

		stored, err := f.codeRepo.FindByAccessCode(ctx, old.AccessCode)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("a redeemed code does not block the name", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)

		f.redeemAs(t, eventID, "Bob")
		_, err := f.codes.Generate(ctx, f.org, eventID, "Bob")
		assert.NoError(t, err)
	})

	t.Run("retries on a code collision", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)
		f.codeGen.script = []string{"AAAAA", "AAAAA", "BBBBB"}

		bob, err := f.codes.Generate(ctx, f.org, eventID, "Bob")
		require.NoError(t, err)
		assert.Equal(t, "AAAAA", bob.AccessCode)

		carol, err := f.codes.Generate(ctx, f.org, eventID, "Carol")
		require.NoError(t, err)
		assert.Equal(t, "BBBBB", carol.AccessCode)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)
		f.codeGen.script = []string{"AAAAA", "AAAAA", "AAAAA", "AAAAA", "AAAAA", "AAAAA"}

		_, err := f.codes.Generate(ctx, f.org, eventID, "Bob")
		require.NoError(t, err)

		_, err = f.codes.Generate(ctx, f.org, eventID, "Carol")
		assert.ErrorIs(t, err, utils.ErrDatabaseError)
	})

	t.Run("checks event ownership", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)
		other := f.newOrganizer(t, "other@scouting.nl")

		_, err := f.codes.Generate(ctx, other, eventID, "Bob")
		assert.ErrorIs(t, err, utils.ErrForbidden)

		other.IsAdmin = true
		_, err = f.codes.Generate(ctx, other, eventID, "Bob")
		assert.NoError(t, err)

		_, err = f.codes.Generate(ctx, f.org, uuid.New(), "Bob")
		assert.ErrorIs(t, err, utils.ErrEventNotFound)
	})
}

func TestVolunteerCodeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first with expiry annotations", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)

		_, err := f.codes.Generate(ctx, f.org, eventID, "Bob")
		require.NoError(t, err)
		f.clock.Advance(10 * time.Minute)
		_, err = f.codes.Generate(ctx, f.org, eventID, "Carol")
		require.NoError(t, err)

		f.clock.Advance(5 * time.Minute)
		codes, err := f.codes.List(ctx, f.org, eventID)
		require.NoError(t, err)
		require.Len(t, codes, 2)

		assert.Equal(t, "Carol", codes[0].VolunteerName)
		assert.Equal(t, int64(55*60), codes[0].ExpiresInSeconds)
		assert.Equal(t, "Bob", codes[1].VolunteerName)
		assert.Equal(t, int64(45*60), codes[1].ExpiresInSeconds)
	})

	t.Run("sweeps expired unused codes and keeps used ones", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)

		f.redeemAs(t, eventID, "Alice")
		bob, err := f.codes.Generate(ctx, f.org, eventID, "Bob")
		require.NoError(t, err)

		f.clock.Advance(61 * time.Minute)
		codes, err := f.codes.List(ctx, f.org, eventID)
		require.NoError(t, err)
		require.Len(t, codes, 1)
		assert.Equal(t, "Alice", codes[0].VolunteerName)
		assert.True(t, codes[0].Used)
		assert.Zero(t, codes[0].ExpiresInSeconds)

		stored, err := f.codeRepo.FindByAccessCode(ctx, bob.AccessCode)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("is idempotent", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)

		_, err := f.codes.Generate(ctx, f.org, eventID, "Bob")
		require.NoError(t, err)
		f.clock.Advance(20 * time.Minute)
		_, err = f.codes.Generate(ctx, f.org, eventID, "Carol")
		require.NoError(t, err)

		f.clock.Advance(45 * time.Minute)
		first, err := f.codes.List(ctx, f.org, eventID)
		require.NoError(t, err)
		second, err := f.codes.List(ctx, f.org, eventID)
		require.NoError(t, err)

		require.Len(t, first, 1)
		assert.Equal(t, first, second)
	})

	t.Run("only lists the event's codes", func(t *testing.T) {
		f := newFixture(t)
		first := mustUUID(t, f.newEvent(t, "Hike A").ID)
		second := mustUUID(t, f.newEvent(t, "Hike B").ID)

		_, err := f.codes.Generate(ctx, f.org, first, "Bob")
		require.NoError(t, err)

		codes, err := f.codes.List(ctx, f.org, second)
		require.NoError(t, err)
		assert.Empty(t, codes)
	})
}

func TestVolunteerCodeService_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("unused code is deleted", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)

		code, err := f.codes.Generate(ctx, f.org, eventID, "Bob")
		require.NoError(t, err)

		require.NoError(t, f.codes.Revoke(ctx, f.org, eventID, code.AccessCode))

		_, err = f.volunteers.Redeem(ctx, code.AccessCode)
		assert.ErrorIs(t, err, utils.ErrInvalidCode)

		volunteers, err := f.volRepo.ListByEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Empty(t, volunteers)
	})

	t.Run("used code takes its volunteer and session along", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)
		postID := mustUUID(t, f.newPost(t, eventID, "Post 1").ID)

		redeemed := f.redeemAs(t, eventID, "Bob")
		volunteerID := mustUUID(t, redeemed.Volunteer.ID)
		_, err := f.assignments.Assign(ctx, f.org, eventID, postID, volunteerID)
		require.NoError(t, err)

		codes, err := f.codes.List(ctx, f.org, eventID)
		require.NoError(t, err)
		require.Len(t, codes, 1)

		require.NoError(t, f.codes.Revoke(ctx, f.org, eventID, codes[0].AccessCode))

		volunteer, err := f.volRepo.FindByID(ctx, volunteerID)
		require.NoError(t, err)
		assert.Nil(t, volunteer)

		assignment, err := f.postVolRepo.FindByVolunteer(ctx, eventID, volunteerID)
		require.NoError(t, err)
		assert.Nil(t, assignment)

		_, ok := f.sessions.Load(volunteerID)
		assert.False(t, ok)

		_, err = f.volunteers.Resolve(ctx, redeemed.Token)
		assert.ErrorIs(t, err, utils.ErrSessionInvalid)
	})

	t.Run("accepts lowercase input", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)
		f.codeGen.script = []string{"K9Q2Z"}

		_, err := f.codes.Generate(ctx, f.org, eventID, "Bob")
		require.NoError(t, err)
		assert.NoError(t, f.codes.Revoke(ctx, f.org, eventID, " k9q2z "))
	})

	t.Run("unknown code", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)

		err := f.codes.Revoke(ctx, f.org, eventID, "ZZZZZ")
		assert.ErrorIs(t, err, utils.ErrCodeNotFound)
	})

	t.Run("code of another event", func(t *testing.T) {
		f := newFixture(t)
		first := mustUUID(t, f.newEvent(t, "Hike A").ID)
		second := mustUUID(t, f.newEvent(t, "Hike B").ID)

		code, err := f.codes.Generate(ctx, f.org, first, "Bob")
		require.NoError(t, err)

		err = f.codes.Revoke(ctx, f.org, second, code.AccessCode)
		assert.ErrorIs(t, err, utils.ErrCodeNotFound)
	})
}
