package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

func TestCallLifecycle(t *testing.T) {
	ctx := context.Background()
	r := NewCallRepository(newTestStore(t), zerolog.Nop())
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	r.now = fixedClock(start)

	call, err := r.Start(ctx, "a@x.edu", "b@x.edu", models.CallVideo, "")
	require.NoError(t, err)
	assert.Equal(t, models.CallActive, call.Status)
	assert.Nil(t, call.EndTime)

	r.now = fixedClock(start.Add(5 * time.Minute))
	ok, err := r.UpdateStatus(ctx, call.ID, models.CallEnded)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := r.GetByID(ctx, call.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CallEnded, got.Status)
	require.NotNil(t, got.EndTime)
	assert.Equal(t, 5*time.Minute, got.Duration())

	ok, err = r.UpdateStatus(ctx, "nope", models.CallMissed)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrCallNotFound)
}

func TestCallsListFor(t *testing.T) {
	ctx := context.Background()
	r := NewCallRepository(newTestStore(t), zerolog.Nop())

	_, err := r.Start(ctx, "a@x.edu", "b@x.edu", models.CallVoice, "")
	require.NoError(t, err)
	_, err = r.Start(ctx, "c@x.edu", "a@x.edu", models.CallVoice, "")
	require.NoError(t, err)
	_, err = r.Start(ctx, "b@x.edu", "c@x.edu", models.CallVideo, "")
	require.NoError(t, err)

	calls, err := r.ListFor(ctx, "a@x.edu")
	require.NoError(t, err)
	require.Len(t, calls, 2)
	assert.Equal(t, "a@x.edu", calls[0].Initiator)
	assert.Equal(t, "c@x.edu", calls[1].Initiator)
}

func TestReopenedCallDropsEndTime(t *testing.T) {
	ctx := context.Background()
	r := NewCallRepository(newTestStore(t), zerolog.Nop())
	call, err := r.Start(ctx, "a@x.edu", "b@x.edu", models.CallVoice, "")
	require.NoError(t, err)

	_, err = r.UpdateStatus(ctx, call.ID, models.CallEnded)
	require.NoError(t, err)
	ok, err := r.UpdateStatus(ctx, call.ID, models.CallActive)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := r.GetByID(ctx, call.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CallActive, got.Status)
	assert.Nil(t, got.EndTime)
	assert.Zero(t, got.Duration())
}
