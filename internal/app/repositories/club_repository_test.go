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
	"github.com/yigit/campusconnect/internal/store"
)

func TestClubRequestThenApprove(t *testing.T) {
	ctx := context.Background()
	r := NewClubRepository(newTestStore(t), zerolog.Nop())
	seedClubs(t, r, "club_cs")

	requestedAt := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	r.now = fixedClock(requestedAt)

	ok, err := r.RequestJoin(ctx, "a@x.edu", "club_cs")
	require.NoError(t, err)
	require.True(t, ok)

	club, err := r.GetByID(ctx, "club_cs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.edu"}, club.PendingRequests)
	assert.Empty(t, club.Members)

	pending, err := r.Requests(ctx, RequestFilter{Status: models.ClubRequestPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "a@x.edu", pending[0].StudentEmail)
	assert.Equal(t, "club_cs", pending[0].ClubID)
	assert.True(t, pending[0].RequestDate.Equal(requestedAt))
	assert.Nil(t, pending[0].ProcessedDate)

	approvedAt := requestedAt.Add(time.Hour)
	r.now = fixedClock(approvedAt)

	ok, err = r.ApproveRequest(ctx, pending[0].ID, "club_cs", "a@x.edu")
	require.NoError(t, err)
	require.True(t, ok)

	club, err = r.GetByID(ctx, "club_cs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.edu"}, club.Members)
	assert.Equal(t, []string{}, club.PendingRequests)

	req, err := r.GetRequest(ctx, pending[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ClubRequestApproved, req.Status)
	require.NotNil(t, req.ProcessedDate)
	assert.True(t, req.ProcessedDate.Equal(approvedAt))
}

func TestRequestJoinTwiceIsNoOp(t *testing.T) {
	ctx := context.Background()
	r := NewClubRepository(newTestStore(t), zerolog.Nop())
	seedClubs(t, r, "club_debate")

	ok, err := r.RequestJoin(ctx, "b@x.edu", "club_debate")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.RequestJoin(ctx, "b@x.edu", "club_debate")
	require.NoError(t, err)
	assert.False(t, ok)

	club, err := r.GetByID(ctx, "club_debate")
	require.NoError(t, err)
	assert.Equal(t, []string{"b@x.edu"}, club.PendingRequests)

	all, err := r.Requests(ctx, RequestFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRequestJoinWhenAlreadyMember(t *testing.T) {
	ctx := context.Background()
	r := NewClubRepository(newTestStore(t), zerolog.Nop())
	seedClubs(t, r, "club_music")

	ok, err := r.RequestJoin(ctx, "c@x.edu", "club_music")
	require.NoError(t, err)
	require.True(t, ok)
	reqs, err := r.Requests(ctx, RequestFilter{})
	require.NoError(t, err)
	ok, err = r.ApproveRequest(ctx, reqs[0].ID, "club_music", "c@x.edu")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.RequestJoin(ctx, "c@x.edu", "club_music")
	require.NoError(t, err)
	assert.False(t, ok)

	club, err := r.GetByID(ctx, "club_music")
	require.NoError(t, err)
	assert.Empty(t, club.PendingRequests)
	assert.Equal(t, models.MembershipMember, club.StatusFor("c@x.edu"))
}

func TestRequestJoinUnknownClub(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	r := NewClubRepository(s, zerolog.Nop())
	seedClubs(t, r, "club_cs")

	ok, err := r.RequestJoin(ctx, "a@x.edu", "club_nope")
	require.NoError(t, err)
	assert.False(t, ok)

	reqs, err := r.Requests(ctx, RequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestApproveUnknownClub(t *testing.T) {
	r := NewClubRepository(newTestStore(t), zerolog.Nop())
	seedClubs(t, r, "club_cs")

	ok, err := r.ApproveRequest(context.Background(), "req-1", "club_nope", "a@x.edu")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestApproveWithoutLoggedRequestStillAdmits(t *testing.T) {
	ctx := context.Background()
	r := NewClubRepository(newTestStore(t), zerolog.Nop())
	seedClubs(t, r, "club_cs")

	ok, err := r.ApproveRequest(ctx, "missing-id", "club_cs", "d@x.edu")
	require.NoError(t, err)
	assert.True(t, ok)

	club, err := r.GetByID(ctx, "club_cs")
	require.NoError(t, err)
	assert.Equal(t, []string{"d@x.edu"}, club.Members)

	_, err = r.GetRequest(ctx, "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrClubRequestNotFound)
}

func TestApproveTwiceKeepsSingleMembership(t *testing.T) {
	ctx := context.Background()
	r := NewClubRepository(newTestStore(t), zerolog.Nop())
	seedClubs(t, r, "club_cs")

	_, err := r.RequestJoin(ctx, "a@x.edu", "club_cs")
	require.NoError(t, err)
	reqs, err := r.Requests(ctx, RequestFilter{})
	require.NoError(t, err)

	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = fixedClock(first)
	_, err = r.ApproveRequest(ctx, reqs[0].ID, "club_cs", "a@x.edu")
	require.NoError(t, err)

	r.now = fixedClock(first.Add(24 * time.Hour))
	ok, err := r.ApproveRequest(ctx, reqs[0].ID, "club_cs", "a@x.edu")
	require.NoError(t, err)
	assert.True(t, ok)

	club, err := r.GetByID(ctx, "club_cs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.edu"}, club.Members)

	req, err := r.GetRequest(ctx, reqs[0].ID)
	require.NoError(t, err)
	require.NotNil(t, req.ProcessedDate)
	assert.True(t, req.ProcessedDate.Equal(first), "re-approval keeps the original processed date")
}

func TestRequestsFilterByClub(t *testing.T) {
	ctx := context.Background()
	r := NewClubRepository(newTestStore(t), zerolog.Nop())
	seedClubs(t, r, "club_cs", "club_debate")

	for _, c := range []string{"club_cs", "club_debate", "club_cs"} {
		_, err := r.RequestJoin(ctx, "s-"+c+"@x.edu", c)
		require.NoError(t, err)
	}
	_, err := r.RequestJoin(ctx, "other@x.edu", "club_cs")
	require.NoError(t, err)

	cs, err := r.Requests(ctx, RequestFilter{ClubID: "club_cs"})
	require.NoError(t, err)
	assert.Len(t, cs, 2)
	for _, req := range cs {
		assert.Equal(t, "club_cs", req.ClubID)
	}
}

func TestClubsForAndList(t *testing.T) {
	ctx := context.Background()
	r := NewClubRepository(newTestStore(t), zerolog.Nop())
	seedClubs(t, r, "club_music", "club_cs", "club_debate")

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "club_cs", all[0].ID)
	assert.Equal(t, "club_debate", all[1].ID)
	assert.Equal(t, "club_music", all[2].ID)

	_, err = r.ApproveRequest(ctx, "x", "club_music", "m@x.edu")
	require.NoError(t, err)

	mine, err := r.ClubsFor(ctx, "m@x.edu")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "club_music", mine[0].ID)
}

func TestGetByIDUnknownClub(t *testing.T) {
	r := NewClubRepository(newTestStore(t), zerolog.Nop())
	_, err := r.GetByID(context.Background(), "club_cs")
	assert.ErrorIs(t, err, apperrors.ErrClubNotFound)
}

func TestRequestJoinOnCorruptClubsIsRefused(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	r := NewClubRepository(s, zerolog.Nop())
	corrupt(t, s, store.Clubs)

	ok, err := r.RequestJoin(ctx, "a@x.edu", "club_cs")
	assert.ErrorIs(t, err, store.ErrCorruptCollection)
	assert.False(t, ok)

	// reads degrade to empty
	clubs, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, clubs)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := NewClubRepository(newTestStore(t), zerolog.Nop())

	clubsWritten, requestsWritten, err := r.Seed(ctx, []models.Club{{ID: "club_cs", Members: []string{}, PendingRequests: []string{}}})
	require.NoError(t, err)
	assert.True(t, clubsWritten)
	assert.True(t, requestsWritten)

	_, err = r.RequestJoin(ctx, "a@x.edu", "club_cs")
	require.NoError(t, err)

	clubsWritten, requestsWritten, err = r.Seed(ctx, []models.Club{{ID: "club_other"}})
	require.NoError(t, err)
	assert.False(t, clubsWritten)
	assert.False(t, requestsWritten)

	club, err := r.GetByID(ctx, "club_cs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.edu"}, club.PendingRequests)
}

// cancelAfter reports no error for the first n Err calls and
// context.Canceled from then on. The store checks Err before every read
// and write, so n picks which write fails.
type cancelAfter struct {
	context.Context
	n int
}

func (c *cancelAfter) Err() error {
	if c.n > 0 {
		c.n--
		return nil
	}
	return context.Canceled
}

func TestRequestJoinRollsBackLogWhenClubsWriteFails(t *testing.T) {
	ctx := context.Background()
	r := NewClubRepository(newTestStore(t), zerolog.Nop())
	seedClubs(t, r, "club_cs")

	// clubs load, requests load, requests save, then the clubs save fails
	ok, err := r.RequestJoin(&cancelAfter{Context: ctx, n: 3}, "a@x.edu", "club_cs")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)

	club, err := r.GetByID(ctx, "club_cs")
	require.NoError(t, err)
	assert.Empty(t, club.PendingRequests)
	requests, err := r.Requests(ctx, RequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, requests)

	ok, err = r.RequestJoin(ctx, "a@x.edu", "club_cs")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestApproveRollsBackLogWhenClubsWriteFails(t *testing.T) {
	ctx := context.Background()
	r := NewClubRepository(newTestStore(t), zerolog.Nop())
	seedClubs(t, r, "club_cs")
	_, err := r.RequestJoin(ctx, "a@x.edu", "club_cs")
	require.NoError(t, err)
	pending, err := r.Requests(ctx, RequestFilter{Status: models.ClubRequestPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)

	ok, err := r.ApproveRequest(&cancelAfter{Context: ctx, n: 3}, pending[0].ID, "club_cs", "a@x.edu")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)

	req, err := r.GetRequest(ctx, pending[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.ClubRequestPending, req.Status)
	assert.Nil(t, req.ProcessedDate)
	club, err := r.GetByID(ctx, "club_cs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.edu"}, club.PendingRequests)
	assert.Empty(t, club.Members)

	ok, err = r.ApproveRequest(ctx, pending[0].ID, "club_cs", "a@x.edu")
	require.NoError(t, err)
	assert.True(t, ok)
}
