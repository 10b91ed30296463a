/* handlers.go
 * Contains the HTTP endpoints serving the pick'em display layer and the
 * admin operations that mutate state. Every mutating route funnels through
 * the API facade so settlement stays on one path.
 */

package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cfb-pickem/api/shared"

	"github.com/rs/zerolog/log"
)

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/state", s.StateHandler)
	mux.HandleFunc("/api/sync", s.SyncHandler)
	mux.HandleFunc("/api/settings", s.SettingsHandler)
	mux.HandleFunc("/api/picks", s.PicksHandler)
	mux.HandleFunc("/api/bracket", s.BracketHandler)
	mux.HandleFunc("/api/brackets", s.AllBracketsHandler)
	mux.HandleFunc("/api/playoff/config", s.PlayoffConfigHandler)
	mux.HandleFunc("/api/playoff/sync", s.PlayoffSyncHandler)
	mux.HandleFunc("/api/override/spread", s.SpreadOverrideHandler)
	mux.HandleFunc("/api/leaderboard", s.LeaderboardHandler)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Warn().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// StateHandler returns the snapshot the display layer renders. An optional
// week query parameter narrows the game list.
func (s *Server) StateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	week := 0
	if raw := r.URL.Query().Get("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "week must be a positive number"})
			return
		}
		week = parsed
	}
	state, err := s.api.State(week)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// SyncHandler fetches the scoreboard for a week, stores it and runs a
// settlement pass. With no week in the body the clock's current week is used.
func (s *Server) SyncHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Week == 0 {
		req.Week = s.api.Clock.CurrentWeek()
	}

	games, err := s.feed.FetchWeek(r.Context(), req.Week)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	summary, err := s.api.SyncWeek(req.Week, games)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// SettingsHandler stores the display week and featured slate
func (s *Server) SettingsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.api.UpdateSettings(req.Week, req.FeaturedGameIDs); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PicksHandler accepts a user's picks. Picks for games past kickoff are
// rejected here; this is the lock point.
func (s *Server) PicksHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req submitPicksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	for gameID := range req.Picks {
		game, err := s.api.Store.GetGameByID(gameID)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if s.api.GameLocked(game) {
			writeJSON(w, http.StatusConflict, errorResponse{Error: "picks are locked for game " + gameID})
			return
		}
	}

	if err := s.api.SubmitPicks(req.User, req.Picks); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BracketHandler stores or returns one user's bracket predictions
func (s *Server) BracketHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		user := r.URL.Query().Get("user")
		if user == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "user query parameter is required"})
			return
		}
		bracket, err := s.api.Bracket(user)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, bracket)
	case http.MethodPost:
		defer r.Body.Close()
		var req submitBracketRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if err := s.api.SubmitBracket(req.User, req.Predictions); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// AllBracketsHandler returns every user's bracket predictions
func (s *Server) AllBracketsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	brackets, err := s.api.AllBrackets()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, brackets)
}

// PlayoffConfigHandler returns or seeds the playoff field
func (s *Server) PlayoffConfigHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cfg, err := s.api.PlayoffConfig()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	case http.MethodPost:
		defer r.Body.Close()
		var req seedPlayoffRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		teams := make([]shared.BracketTeam, len(req.Teams))
		for i, t := range req.Teams {
			teams[i] = shared.BracketTeam{
				Seed:         t.Seed,
				ID:           t.ID,
				Name:         t.Name,
				Abbreviation: t.Abbreviation,
				Logo:         t.Logo,
			}
		}
		if err := s.api.SeedPlayoffField(teams); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// PlayoffSyncHandler resolves bracket advancement and rescores every bracket
func (s *Server) PlayoffSyncHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	summary, err := s.api.SyncPlayoff()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// SpreadOverrideHandler corrects a posted line and re-runs settlement
func (s *Server) SpreadOverrideHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req spreadOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.GameID == "" || req.Spread == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "gameId and spread are required"})
		return
	}
	summary, err := s.api.ApplyManualSpreadOverride(req.GameID, req.Spread)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// LeaderboardHandler returns users ordered by wins then playoff points
func (s *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	leaderboard, err := s.api.Leaderboard()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, leaderboard)
}
