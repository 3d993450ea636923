package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/krit/mlbb-counter-website/internal/api"
	"github.com/krit/mlbb-counter-website/internal/config"
	"github.com/krit/mlbb-counter-website/internal/repository"
	"github.com/krit/mlbb-counter-website/internal/repository/memstore"
	"github.com/krit/mlbb-counter-website/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		AdminPasswordHash:  string(hash),
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
	}

	stores := repository.NewStores(memstore.New())
	services := service.NewServices(stores, cfg)

	srv := httptest.NewServer(api.NewRouter(services))
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, password string) (string, int) {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"password": password})
	resp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode
	}
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Token, resp.StatusCode
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	srv := newTestServer(t)

	_, status := login(t, srv, "nope")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestHeroSearch(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/heroes?q=fanny")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Heroes []struct {
			ID string `json:"id"`
		} `json:"heroes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Heroes, 1)
	assert.Equal(t, "fanny", out.Heroes[0].ID)
}

func TestCounterEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/heroes/fanny/counters")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Enemy struct {
			ID string `json:"id"`
		} `json:"enemy"`
		Counters []struct {
			Hero struct {
				ID string `json:"id"`
			} `json:"hero"`
			WinRate float64 `json:"winRate"`
		} `json:"counters"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "fanny", out.Enemy.ID)
	require.NotEmpty(t, out.Counters)
	assert.Equal(t, "khufra", out.Counters[0].Hero.ID)
}

func TestCounterEndpointUnknownHero(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/heroes/nobody/counters")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTierListCacheHeader(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/tier-list")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "public, max-age=86400", resp.Header.Get("Cache-Control"))
}

func TestAdminRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/admin/rules/reset", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminCreateHeroFlow(t *testing.T) {
	srv := newTestServer(t)

	token, status := login(t, srv, "admin-pass")
	require.Equal(t, http.StatusOK, status)

	body, _ := json.Marshal(map[string]any{
		"name": "Router Hero",
		"role": "Mage",
		"tags": []string{"burst"},
	})
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/admin/heroes", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "router-hero", created.ID)

	// The new hero is visible on the public surface.
	get, err := http.Get(srv.URL + "/api/v1/heroes/router-hero")
	require.NoError(t, err)
	defer get.Body.Close()
	assert.Equal(t, http.StatusOK, get.StatusCode)
}

func TestAdminCreateHeroConflict(t *testing.T) {
	srv := newTestServer(t)

	token, _ := login(t, srv, "admin-pass")

	body, _ := json.Marshal(map[string]any{"name": "Fanny", "role": "Assassin"})
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/admin/heroes", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
