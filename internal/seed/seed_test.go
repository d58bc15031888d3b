package seed

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appRepos "github.com/yigit/campusconnect/internal/app/repositories"
	"github.com/yigit/campusconnect/internal/config"
	"github.com/yigit/campusconnect/internal/pkg/auth"
	"github.com/yigit/campusconnect/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(dir string) *config.Config {
	cfg := &config.Config{}
	cfg.Storage.DataDir = dir
	cfg.Admin.Email = "MES.edu"
	cfg.Admin.Password = "education"
	cfg.Admin.Name = "Campus Administrator"
	return cfg
}

func TestCreateDefaultDataWritesEveryCollection(t *testing.T) {
	auth.BcryptCost = bcrypt.MinCost
	ctx := context.Background()
	dir := t.TempDir()
	st, err := store.Open(dir, zerolog.Nop())
	require.NoError(t, err)
	repos := appRepos.NewRepositories(st, appRepos.Options{}, zerolog.Nop())

	require.NoError(t, CreateDefaultData(ctx, repos, testConfig(dir), zerolog.Nop()))

	for _, name := range store.AllNames {
		_, err := os.Stat(st.Path(name))
		assert.NoError(t, err, name)
	}

	admin, err := repos.UserRepository.GetByEmail(ctx, "MES.edu")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.NotEqual(t, "education", admin.PasswordHash)
	assert.True(t, auth.CheckPassword(admin.PasswordHash, "education"))

	clubs, err := repos.ClubRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, clubs, 3)
	assert.Equal(t, []string{"club_cs", "club_debate", "club_music"}, []string{clubs[0].ID, clubs[1].ID, clubs[2].ID})
	assert.Equal(t, []string{"mes.edu"}, clubs[0].Admins)

	announcements, err := repos.AnnouncementRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, announcements, 2)
	assert.Equal(t, "Admin User", announcements[0].Author)
}

func TestCreateDefaultDataKeepsExistingFiles(t *testing.T) {
	auth.BcryptCost = bcrypt.MinCost
	ctx := context.Background()
	dir := t.TempDir()
	st, err := store.Open(dir, zerolog.Nop())
	require.NoError(t, err)
	repos := appRepos.NewRepositories(st, appRepos.Options{}, zerolog.Nop())
	cfg := testConfig(dir)

	require.NoError(t, CreateDefaultData(ctx, repos, cfg, zerolog.Nop()))
	_, err = repos.ClubRepository.RequestJoin(ctx, "a@x.edu", "club_cs")
	require.NoError(t, err)

	before, err := os.ReadFile(st.Path(store.Clubs))
	require.NoError(t, err)

	require.NoError(t, CreateDefaultData(ctx, repos, cfg, zerolog.Nop()))

	after, err := os.ReadFile(st.Path(store.Clubs))
	require.NoError(t, err)
	assert.Equal(t, before, after)

	reqs, err := repos.ClubRepository.Requests(ctx, appRepos.RequestFilter{})
	require.NoError(t, err)
	assert.Len(t, reqs, 1)
}

func TestDefaultClubsAreEmpty(t *testing.T) {
	for _, c := range DefaultClubs("MES.edu", time.Now()) {
		assert.Empty(t, c.Members, c.ID)
		assert.Empty(t, c.PendingRequests, c.ID)
		assert.NotEmpty(t, c.Description, c.ID)
	}
}
