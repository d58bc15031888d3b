package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campusconnect/internal/app/models"
	"github.com/yigit/campusconnect/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	return s
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func seedClubs(t *testing.T, r *ClubRepository, ids ...string) {
	t.Helper()
	clubs := make([]models.Club, 0, len(ids))
	for _, id := range ids {
		clubs = append(clubs, models.Club{
			ID:              id,
			Name:            id,
			Members:         []string{},
			PendingRequests: []string{},
			Admins:          []string{"MES.edu"},
		})
	}
	_, _, err := r.Seed(context.Background(), clubs)
	require.NoError(t, err)
}

func corrupt(t *testing.T, s *store.Store, name store.Name) {
	t.Helper()
	require.NoError(t, os.WriteFile(s.Path(name), []byte("{broken"), 0o644))
}
