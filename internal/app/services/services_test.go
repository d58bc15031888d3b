package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/app/repositories"
	"github.com/yigit/campusconnect/internal/pkg/auth"
	"github.com/yigit/campusconnect/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	auth.BcryptCost = bcrypt.MinCost
}

var (
	student = models.Actor{Email: "ada@campus.edu", Name: "Ada", Role: models.RoleStudent}
	other   = models.Actor{Email: "bob@campus.edu", Name: "Bob", Role: models.RoleStudent}
	admin   = models.Actor{Email: "mes.edu", Name: "Campus Administrator", Role: models.RoleAdmin}
)

type fixture struct {
	repos    *repositories.Repositories
	services *Services
}

func newFixture(t *testing.T, opts repositories.Options) *fixture {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	repos := repositories.NewRepositories(st, opts, zerolog.Nop())
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test", AccessTokenExp: time.Hour, TokenIssuer: "test"})

	adminHash, err := auth.HashPassword("education")
	require.NoError(t, err)
	_, err = repos.UserRepository.SeedAdmins(ctx, models.User{
		Email: admin.Email, Name: admin.Name, Role: models.RoleAdmin, PasswordHash: adminHash,
	})
	require.NoError(t, err)
	for _, a := range []models.Actor{student, other} {
		require.NoError(t, repos.UserRepository.CreateStudent(ctx, &models.User{
			Email: a.Email, Name: a.Name, Role: models.RoleStudent,
		}))
	}

	_, _, err = repos.ClubRepository.Seed(ctx, []models.Club{
		{ID: "club_cs", Name: "Computer Science Club", Members: []string{}, PendingRequests: []string{}},
		{ID: "club_music", Name: "Music Club", Members: []string{}, PendingRequests: []string{}},
	})
	require.NoError(t, err)

	return &fixture{repos: repos, services: NewServices(repos, jwtService, zerolog.Nop())}
}
