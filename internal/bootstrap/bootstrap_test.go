package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campusconnect/internal/config"
	"github.com/yigit/campusconnect/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth.BcryptCost = bcrypt.MinCost

	t.Setenv("STORAGE_DATA_DIR", t.TempDir())
	cfg, err := config.LoadConfig(t.TempDir() + "/absent.yaml")
	require.NoError(t, err)

	lgr := zerolog.Nop()
	st, repos, err := SetupStorage(context.Background(), cfg, lgr)
	require.NoError(t, err)
	deps, err := BuildDependencies(cfg, st, repos, lgr)
	require.NoError(t, err)

	return &testServer{t: t, router: SetupRouter(cfg, deps, lgr)}
}

func (s *testServer) do(method, path, token string, body any) (int, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec.Code, env
}

func (s *testServer) token(path, email, password string) string {
	s.t.Helper()
	code, env := s.do(http.MethodPost, path, "", map[string]string{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, code)
	var data struct {
		Token struct {
			AccessToken string `json:"accessToken"`
		} `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	return data.Token.AccessToken
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pong")
}

func TestClubJoinWorkflowOverHTTP(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name": "Ada", "email": "ada@campus.edu", "year": "Junior", "major": "Math",
		"password": "secret1", "confirmPassword": "secret1",
		"securityQuestion": "What is your favorite color?", "securityAnswer": "blue",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)

	code, env = s.do(http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name": "Eve", "email": "eve@gmail.com", "year": "Junior", "major": "Math",
		"password": "secret1", "confirmPassword": "secret1",
		"securityQuestion": "What is your favorite color?", "securityAnswer": "blue",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)

	studentToken := s.token("/api/v1/auth/login", "ada@campus.edu", "secret1")
	adminToken := s.token("/api/v1/auth/admin/login", "MES.edu", "education")

	code, _ = s.do(http.MethodGet, "/api/v1/clubs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = s.do(http.MethodPost, "/api/v1/clubs/club_cs/join", studentToken, nil)
	assert.Equal(t, http.StatusCreated, code)
	code, _ = s.do(http.MethodPost, "/api/v1/clubs/club_cs/join", studentToken, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(http.MethodPost, "/api/v1/clubs/club_nope/join", studentToken, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodGet, "/api/v1/club-requests", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = s.do(http.MethodGet, "/api/v1/club-requests?status=pending", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	var reqs []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reqs))
	require.Len(t, reqs, 1)

	code, _ = s.do(http.MethodPost, "/api/v1/club-requests/"+reqs[0].ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, env = s.do(http.MethodGet, "/api/v1/clubs/club_cs", studentToken, nil)
	require.Equal(t, http.StatusOK, code)
	var club struct {
		MembershipStatus string   `json:"membershipStatus"`
		Members          []string `json:"members"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &club))
	assert.Equal(t, "member", club.MembershipStatus)
	assert.Equal(t, []string{"ada@campus.edu"}, club.Members)
}

func TestConfessionAnonymityOverHTTP(t *testing.T) {
	s := newTestServer(t)

	code, _ := s.do(http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"name": "Ada", "email": "ada@campus.edu", "year": "Senior", "major": "Math",
		"password": "secret1", "confirmPassword": "secret1",
		"securityQuestion": "What is your favorite place?", "securityAnswer": "home",
	})
	require.Equal(t, http.StatusCreated, code)
	studentToken := s.token("/api/v1/auth/login", "ada@campus.edu", "secret1")
	adminToken := s.token("/api/v1/auth/admin/login", "MES.edu", "education")

	code, env := s.do(http.MethodPost, "/api/v1/confessions", studentToken, map[string]string{
		"text": "I secretly love 8am lectures", "category": "academics",
	})
	require.Equal(t, http.StatusCreated, code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotContains(t, string(env.Data), "ada@campus.edu")

	code, _ = s.do(http.MethodPost, "/api/v1/admin/confessions/"+created.ID+"/approve", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = s.do(http.MethodPost, "/api/v1/admin/confessions/"+created.ID+"/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodPost, "/api/v1/confessions/"+created.ID+"/likes", studentToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, env = s.do(http.MethodGet, "/api/v1/confessions", studentToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, string(env.Data), "user_email")
	assert.NotContains(t, string(env.Data), "ada@campus.edu")

	code, env = s.do(http.MethodGet, "/api/v1/admin/confessions", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "ada@campus.edu")
}

func TestAnnouncementDeleteIsNotImplemented(t *testing.T) {
	s := newTestServer(t)
	adminToken := s.token("/api/v1/auth/admin/login", "MES.edu", "education")

	code, env := s.do(http.MethodGet, "/api/v1/announcements", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	var items []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)

	code, env = s.do(http.MethodDelete, "/api/v1/announcements/"+items[0].ID, adminToken, nil)
	assert.Equal(t, http.StatusNotImplemented, code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SRV_004", env.Error.Code)
}

func TestHomeAndContactsOverHTTP(t *testing.T) {
	s := newTestServer(t)
	signup := func(name, email string) int {
		code, _ := s.do(http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
			"name": name, "email": email, "year": "Senior", "major": "Physics",
			"password": "secret1", "confirmPassword": "secret1",
			"securityQuestion": "What is your favorite color?", "securityAnswer": "blue",
		})
		return code
	}
	require.Equal(t, http.StatusCreated, signup("Ada", "ada@campus.edu"))
	require.Equal(t, http.StatusCreated, signup("Bob", "bob@campus.edu"))
	assert.Equal(t, http.StatusConflict, signup("Ada Again", "ADA@Campus.edu"))

	adaToken := s.token("/api/v1/auth/login", "Ada@campus.edu", "secret1")

	code, env := s.do(http.MethodGet, "/api/v1/students", adaToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, string(env.Data), "_hash")
	var contacts []struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &contacts))
	require.Len(t, contacts, 2)
	assert.Equal(t, "mes.edu", contacts[0].Email)
	assert.Equal(t, "admin", contacts[0].Role)
	assert.Equal(t, "bob@campus.edu", contacts[1].Email)

	code, env = s.do(http.MethodGet, "/api/v1/home", adaToken, nil)
	require.Equal(t, http.StatusOK, code)
	var home struct {
		CampusMembers     int               `json:"campusMembers"`
		RecentConfessions []json.RawMessage `json:"recentConfessions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &home))
	assert.Equal(t, 2, home.CampusMembers)
	assert.NotNil(t, home.RecentConfessions)

	adminToken := s.token("/api/v1/auth/admin/login", "MES.edu", "education")
	code, _ = s.do(http.MethodGet, "/api/v1/home", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
}
