package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/radieske/live-match-feed-poc/internal/simulator/registry"
	"github.com/radieske/live-match-feed-poc/internal/simulator/ws"
)

// API expõe o endpoint público do simulador: o feed WebSocket e uma
// consulta REST do estado volátil do registry
type API struct {
	Registry *registry.Registry
	Hub      *ws.Hub
}

// Router monta as rotas públicas
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/ws", a.Hub.HandleWS)          // feed push
	r.Get("/v1/matches", a.listMatches)   // snapshot de todas as partidas
	r.Get("/v1/matches/{id}", a.getMatch) // uma partida pelo id
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// listMatches devolve todas as partidas em ordem de criação
func (a *API) listMatches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Registry.Snapshot())
}

// getMatch devolve uma partida pelo game_id
func (a *API) getMatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, ok := a.Registry.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, g)
}
