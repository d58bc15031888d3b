package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/app/models/dto"
	"github.com/yigit/campusconnect/internal/app/repositories"
	"github.com/yigit/campusconnect/internal/pkg/apperrors"
)

func TestJoinAndApprove(t *testing.T) {
	ctx := context.Background()
	svc := newFixture(t, repositories.Options{}).services.ClubService

	join, err := svc.RequestJoin(ctx, student, "club_cs")
	require.NoError(t, err)
	assert.True(t, join.Requested)
	assert.Equal(t, string(models.MembershipPending), join.Status)

	again, err := svc.RequestJoin(ctx, student, "club_cs")
	require.NoError(t, err)
	assert.False(t, again.Requested)
	assert.Equal(t, string(models.MembershipPending), again.Status)

	pending, err := svc.ListRequests(ctx, &dto.ClubRequestFilter{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Ada", pending[0].StudentName)
	assert.Equal(t, "Computer Science Club", pending[0].ClubName)

	approved, err := svc.ApproveRequest(ctx, pending[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	assert.NotNil(t, approved.ProcessedDate)

	club, err := svc.GetClub(ctx, student, "club_cs")
	require.NoError(t, err)
	assert.Equal(t, string(models.MembershipMember), club.MembershipStatus)
	assert.Equal(t, 1, club.MemberCount)
	assert.Equal(t, 0, club.PendingCount)

	mine, err := svc.MyClubs(ctx, student)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "club_cs", mine[0].ID)

	member, err := svc.RequestJoin(ctx, student, "club_cs")
	require.NoError(t, err)
	assert.False(t, member.Requested)
	assert.Equal(t, string(models.MembershipMember), member.Status)
}

func TestJoinRejections(t *testing.T) {
	ctx := context.Background()
	svc := newFixture(t, repositories.Options{}).services.ClubService

	_, err := svc.RequestJoin(ctx, student, "club_missing")
	assert.ErrorIs(t, err, apperrors.ErrClubNotFound)

	_, err = svc.RequestJoin(ctx, admin, "club_cs")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.ApproveRequest(ctx, "no-such-request")
	assert.ErrorIs(t, err, apperrors.ErrClubRequestNotFound)
}

func TestListClubsShowsCallerStatus(t *testing.T) {
	ctx := context.Background()
	svc := newFixture(t, repositories.Options{}).services.ClubService

	_, err := svc.RequestJoin(ctx, student, "club_music")
	require.NoError(t, err)

	clubs, err := svc.ListClubs(ctx, student)
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, string(models.MembershipNone), clubs[0].MembershipStatus)
	assert.Equal(t, string(models.MembershipPending), clubs[1].MembershipStatus)

	clubs, err = svc.ListClubs(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, string(models.MembershipNone), clubs[1].MembershipStatus)
	assert.Equal(t, 1, clubs[1].PendingCount)
}
