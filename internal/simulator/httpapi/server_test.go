package httpapi

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/live-match-feed-poc/internal/simulator/registry"
	"github.com/radieske/live-match-feed-poc/internal/simulator/ws"
	"github.com/radieske/live-match-feed-poc/pkg/contracts/events"
)

func newTestAPI(t *testing.T) (*registry.Registry, *httptest.Server) {
	t.Helper()
	reg := registry.New(rand.New(rand.NewSource(7)))
	api := &API{Registry: reg, Hub: ws.NewHub(reg, zap.NewNop())}
	srv := httptest.NewServer(api.Router())
	t.Cleanup(srv.Close)
	return reg, srv
}

func TestListMatches(t *testing.T) {
	reg, srv := newTestAPI(t)
	a := reg.CreateGame(0)
	b := reg.CreateGame(0)

	resp, err := http.Get(srv.URL + "/v1/matches")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got []events.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, a.GameID, got[0].GameID)
	assert.Equal(t, b.GameID, got[1].GameID)
}

func TestGetMatch(t *testing.T) {
	reg, srv := newTestAPI(t)
	g := reg.CreateGame(0)

	resp, err := http.Get(srv.URL + "/v1/matches/" + g.GameID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got events.Game
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, g.GameID, got.GameID)
	assert.Equal(t, events.StatusScheduled, got.Status)
}

func TestGetMatch_NotFound(t *testing.T) {
	_, srv := newTestAPI(t)

	resp, err := http.Get(srv.URL + "/v1/matches/MATCH-NOPE")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
