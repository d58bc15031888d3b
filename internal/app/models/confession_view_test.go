package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleConfessions() []Confession {
	at := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	return []Confession{
		{
			ID:          "c1",
			Text:        "I love the library at 2am",
			Category:    "general",
			UserEmail:   "author@x.edu",
			AnonymousID: "anon_11111111",
			CreatedDate: at,
			IsApproved:  true,
			Likes:       []Like{{AnonymousID: "anon_22222222", UserEmail: "fan@x.edu"}},
			Comments: []Comment{{
				ID:          "cm1",
				Text:        "same",
				CreatedDate: at,
				AnonymousID: "anon_33333333",
				UserEmail:   "commenter@x.edu",
			}},
		},
		{
			ID:          "c2",
			Text:        "still waiting",
			Category:    "regrets",
			UserEmail:   "other@x.edu",
			AnonymousID: "anon_44444444",
			CreatedDate: at,
		},
	}
}

// containsKey walks a decoded JSON value looking for key at any depth.
func containsKey(v any, key string) bool {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if k == key || containsKey(child, key) {
				return true
			}
		}
	case []any:
		for _, child := range t {
			if containsKey(child, key) {
				return true
			}
		}
	}
	return false
}

func TestProjectForStudentsHasNoEmails(t *testing.T) {
	projected := ProjectForStudents(sampleConfessions())
	require.Len(t, projected, 2)

	raw, err := json.Marshal(projected)
	require.NoError(t, err)
	var decoded any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.False(t, containsKey(decoded, "user_email"))
	assert.NotContains(t, string(raw), "@x.edu")

	assert.Equal(t, "anon_11111111", projected[0].AnonymousID)
	assert.Equal(t, []StudentLike{{AnonymousID: "anon_22222222"}}, projected[0].Likes)
	require.Len(t, projected[0].Comments, 1)
	assert.Equal(t, "anon_33333333", projected[0].Comments[0].AnonymousID)

	// nil likes and comments still encode as arrays
	assert.Equal(t, []StudentLike{}, projected[1].Likes)
	assert.Equal(t, []StudentComment{}, projected[1].Comments)
	assert.False(t, projected[1].IsApproved)
}

func TestProjectForAdminIsIdentity(t *testing.T) {
	in := sampleConfessions()
	out := ProjectForAdmin(in)
	assert.Equal(t, in, out)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"user_email":"author@x.edu"`)
	assert.Contains(t, string(raw), `"user_email":"commenter@x.edu"`)
}

func TestNewAnonymousID(t *testing.T) {
	a, b := NewAnonymousID(), NewAnonymousID()
	assert.Regexp(t, `^anon_[0-9a-f]{8}$`, a)
	assert.NotEqual(t, a, b)
}
