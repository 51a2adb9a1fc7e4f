package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"scoutinghike/internal/models/request_models"
	"scoutinghike/pkg/utils"
)

func TestCheckpointService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("a group is registered once per post", func(t *testing.T) {
		f := newFixture(t)
		eventID := mustUUID(t, f.newEvent(t, "Hike").ID)
		post1 := mustUUID(t, f.newPost(t, eventID, "Post 1").ID)
		post2 := mustUUID(t, f.newPost(t, eventID, "Post 2").ID)
		alpha := mustUUID(t, f.newGroup(t, eventID, "Alpha").ID)
		checker := uuid.New()

		first, err := f.checkpoints.Register(ctx, alpha, post1, checker, nil)
		require.NoError(t, err)
		assert.Equal(t, "Alpha", first.WalkingGroupName)
		assert.Equal(t, "Post 1", first.PostName)
		assert.True(t, first.CheckedAt.Equal(t0))

		f.clock.Advance(time.Minute)
		_, err = f.checkpoints.Register(ctx, alpha, post1, checker, nil)
		assert.ErrorIs(t, err, utils.ErrDuplicateCheckpoint)

		notes := "vrolijk"
		second, err := f.checkpoints.Register(ctx, alpha, post2, checker, &notes)
		require.NoError(t, err)
		require.NotNil(t, second.Notes)
		assert.Equal(t, "vrolijk", *second.Notes)

		atPost1, err := f.checkpoints.ListByPost(ctx, post1)
		require.NoError(t, err)
		assert.Len(t, atPost1, 1)

		all, err := f.checkpoints.ListByEvent(ctx, f.org, eventID)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Post 2", all[0].PostName)
		assert.Equal(t, "Post 1", all[1].PostName)
	})

	t.Run("group and post must exist in the same event", func(t *testing.T) {
		f := newFixture(t)
		first := mustUUID(t, f.newEvent(t, "Hike A").ID)
		second := mustUUID(t, f.newEvent(t, "Hike B").ID)
		post := mustUUID(t, f.newPost(t, first, "Post 1").ID)
		group := mustUUID(t, f.newGroup(t, second, "Alpha").ID)

		_, err := f.checkpoints.Register(ctx, group, post, uuid.New(), nil)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)

		_, err = f.checkpoints.Register(ctx, uuid.New(), post, uuid.New(), nil)
		assert.ErrorIs(t, err, utils.ErrWalkingGroupNotFound)

		_, err = f.checkpoints.Register(ctx, group, uuid.New(), uuid.New(), nil)
		assert.ErrorIs(t, err, utils.ErrPostNotFound)
	})

	t.Run("organizer registers within their event", func(t *testing.T) {
		f := newFixture(t)
		first := mustUUID(t, f.newEvent(t, "Hike A").ID)
		second := mustUUID(t, f.newEvent(t, "Hike B").ID)
		post := mustUUID(t, f.newPost(t, first, "Post 1").ID)
		group := mustUUID(t, f.newGroup(t, first, "Alpha").ID)

		checkpoint, err := f.checkpoints.RegisterForEvent(ctx, f.org, first, request_models.CheckpointRequest{
			WalkingGroupID: group,
			PostID:         post,
		})
		require.NoError(t, err)
		assert.Equal(t, f.org.ID.String(), checkpoint.CheckedBy)

		_, err = f.checkpoints.RegisterForEvent(ctx, f.org, second, request_models.CheckpointRequest{
			WalkingGroupID: group,
			PostID:         post,
		})
		assert.ErrorIs(t, err, utils.ErrPostNotFound)
	})
}

func TestCheckpointService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	eventID := mustUUID(t, f.newEvent(t, "Hike").ID)
	post := mustUUID(t, f.newPost(t, eventID, "Post 1").ID)
	group := mustUUID(t, f.newGroup(t, eventID, "Alpha").ID)

	checkpoint, err := f.checkpoints.Register(ctx, group, post, uuid.New(), nil)
	require.NoError(t, err)
	checkpointID := mustUUID(t, checkpoint.ID)

	other := mustUUID(t, f.newEvent(t, "Other").ID)
	err = f.checkpoints.Delete(ctx, f.org, other, checkpointID)
	assert.ErrorIs(t, err, utils.ErrCheckpointNotFound)

	require.NoError(t, f.checkpoints.Delete(ctx, f.org, eventID, checkpointID))

	err = f.checkpoints.Delete(ctx, f.org, eventID, checkpointID)
	assert.ErrorIs(t, err, utils.ErrCheckpointNotFound)

	// The pair can be registered again once the mistake is removed.
	_, err = f.checkpoints.Register(ctx, group, post, uuid.New(), nil)
	assert.NoError(t, err)
}
