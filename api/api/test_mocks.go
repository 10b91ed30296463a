/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 */

package api

import (
	"context"
	"fmt"

	"cfb-pickem/api/shared"
	"cfb-pickem/api/store"
)

// MockStore implements store.Interface for testing
type MockStore struct {
	// Storage for mock data
	Games        map[string]shared.Game
	Picks        map[string]store.Pick // keyed user|gameId
	Users        map[string]*shared.User
	System       store.SystemConfig
	Playoff      store.PlayoffConfig
	BracketPicks map[string]store.BracketPick

	// Error injection for testing error paths
	UpsertGamesError         error
	GetGamesError            error
	GetGameByIDError         error
	SetGameSpreadError       error
	UpsertPickError          error
	GetAllPicksError         error
	SavePickResultsError     error
	EnsureUserError          error
	GetUsersError            error
	SetSeasonWinsError       error
	SetPlayoffPointsError    error
	GetSystemConfigError     error
	SaveSystemConfigError    error
	GetPlayoffConfigError    error
	StorePlayoffTeamsError   error
	StorePlayoffResultsError error
	StoreBracketPickError    error
	GetBracketPickError      error
	GetAllBracketPicksError  error
	LeaderboardError         error
}

var _ store.Interface = (*MockStore)(nil)

// NewMockStore creates a new MockStore with empty collections
func NewMockStore() *MockStore {
	return &MockStore{
		Games:        make(map[string]shared.Game),
		Picks:        make(map[string]store.Pick),
		Users:        make(map[string]*shared.User),
		System:       store.SystemConfig{ID: "config", Week: 1},
		Playoff:      store.PlayoffConfig{ID: "playoff_config"},
		BracketPicks: make(map[string]store.BracketPick),
	}
}

func pickKey(user, gameID string) string {
	return user + "|" + gameID
}

// UpsertGames mock implementation
func (m *MockStore) UpsertGames(games []shared.Game) error {
	if m.UpsertGamesError != nil {
		return m.UpsertGamesError
	}
	for _, g := range games {
		m.Games[g.ID] = g
	}
	return nil
}

// GetGames mock implementation
func (m *MockStore) GetGames() ([]shared.Game, error) {
	if m.GetGamesError != nil {
		return nil, m.GetGamesError
	}
	games := make([]shared.Game, 0, len(m.Games))
	for _, g := range m.Games {
		games = append(games, g)
	}
	return games, nil
}

// GetGamesByWeek mock implementation
func (m *MockStore) GetGamesByWeek(week int) ([]shared.Game, error) {
	if m.GetGamesError != nil {
		return nil, m.GetGamesError
	}
	var games []shared.Game
	for _, g := range m.Games {
		if g.Week == week {
			games = append(games, g)
		}
	}
	return games, nil
}

// GetGameByID mock implementation
func (m *MockStore) GetGameByID(id string) (shared.Game, error) {
	if m.GetGameByIDError != nil {
		return shared.Game{}, m.GetGameByIDError
	}
	g, ok := m.Games[id]
	if !ok {
		return shared.Game{}, fmt.Errorf("game %s not found", id)
	}
	return g, nil
}

// SetGameSpread mock implementation
func (m *MockStore) SetGameSpread(id string, spread string) error {
	if m.SetGameSpreadError != nil {
		return m.SetGameSpreadError
	}
	g, ok := m.Games[id]
	if !ok {
		return fmt.Errorf("game %s not found", id)
	}
	g.Spread = spread
	m.Games[id] = g
	return nil
}

// UpsertPick mock implementation
func (m *MockStore) UpsertPick(user string, gameID string, teamID string, week int) error {
	if m.UpsertPickError != nil {
		return m.UpsertPickError
	}
	m.Picks[pickKey(user, gameID)] = store.Pick{
		User:   user,
		GameID: gameID,
		TeamID: teamID,
		Week:   week,
		Result: store.ResultPending,
	}
	return nil
}

// GetAllPicks mock implementation
func (m *MockStore) GetAllPicks() ([]store.Pick, error) {
	if m.GetAllPicksError != nil {
		return nil, m.GetAllPicksError
	}
	picks := make([]store.Pick, 0, len(m.Picks))
	for _, p := range m.Picks {
		picks = append(picks, p)
	}
	return picks, nil
}

// GetPicksByGameIDs mock implementation
func (m *MockStore) GetPicksByGameIDs(gameIDs []string) ([]store.Pick, error) {
	if m.GetAllPicksError != nil {
		return nil, m.GetAllPicksError
	}
	wanted := make(map[string]bool, len(gameIDs))
	for _, id := range gameIDs {
		wanted[id] = true
	}
	var picks []store.Pick
	for _, p := range m.Picks {
		if wanted[p.GameID] {
			picks = append(picks, p)
		}
	}
	return picks, nil
}

// SavePickResults mock implementation
func (m *MockStore) SavePickResults(picks []store.Pick) error {
	if m.SavePickResultsError != nil {
		return m.SavePickResultsError
	}
	for _, p := range picks {
		key := pickKey(p.User, p.GameID)
		stored, ok := m.Picks[key]
		if !ok {
			continue
		}
		stored.Result = p.Result
		m.Picks[key] = stored
	}
	return nil
}

// EnsureUser mock implementation
func (m *MockStore) EnsureUser(name string) error {
	if m.EnsureUserError != nil {
		return m.EnsureUserError
	}
	if _, ok := m.Users[name]; !ok {
		m.Users[name] = &shared.User{Name: name}
	}
	return nil
}

// GetUsers mock implementation
func (m *MockStore) GetUsers() ([]shared.User, error) {
	if m.GetUsersError != nil {
		return nil, m.GetUsersError
	}
	users := make([]shared.User, 0, len(m.Users))
	for _, u := range m.Users {
		users = append(users, *u)
	}
	return users, nil
}

// SetSeasonWins mock implementation
func (m *MockStore) SetSeasonWins(wins map[string]int) error {
	if m.SetSeasonWinsError != nil {
		return m.SetSeasonWinsError
	}
	for name, u := range m.Users {
		u.SeasonWins = wins[name]
	}
	return nil
}

// SetPlayoffPoints mock implementation
func (m *MockStore) SetPlayoffPoints(points map[string]int) error {
	if m.SetPlayoffPointsError != nil {
		return m.SetPlayoffPointsError
	}
	for name, u := range m.Users {
		u.PlayoffPoints = points[name]
	}
	return nil
}

// GetSystemConfig mock implementation
func (m *MockStore) GetSystemConfig() (store.SystemConfig, error) {
	if m.GetSystemConfigError != nil {
		return store.SystemConfig{}, m.GetSystemConfigError
	}
	return m.System, nil
}

// SaveSystemConfig mock implementation
func (m *MockStore) SaveSystemConfig(cfg store.SystemConfig) error {
	if m.SaveSystemConfigError != nil {
		return m.SaveSystemConfigError
	}
	m.System = cfg
	return nil
}

// GetPlayoffConfig mock implementation
func (m *MockStore) GetPlayoffConfig() (store.PlayoffConfig, error) {
	if m.GetPlayoffConfigError != nil {
		return store.PlayoffConfig{}, m.GetPlayoffConfigError
	}
	return m.Playoff, nil
}

// StorePlayoffTeams mock implementation
func (m *MockStore) StorePlayoffTeams(teams []shared.BracketTeam) error {
	if m.StorePlayoffTeamsError != nil {
		return m.StorePlayoffTeamsError
	}
	m.Playoff.Teams = teams
	return nil
}

// StorePlayoffResults mock implementation
func (m *MockStore) StorePlayoffResults(results map[string]string, details map[string]store.MatchDetail) error {
	if m.StorePlayoffResultsError != nil {
		return m.StorePlayoffResultsError
	}
	m.Playoff.Results = results
	m.Playoff.MatchDetails = details
	return nil
}

// StoreBracketPick mock implementation
func (m *MockStore) StoreBracketPick(user string, predictions map[string]string) error {
	if m.StoreBracketPickError != nil {
		return m.StoreBracketPickError
	}
	m.BracketPicks[user] = store.BracketPick{User: user, Predictions: predictions}
	return nil
}

// GetBracketPick mock implementation
func (m *MockStore) GetBracketPick(user string) (store.BracketPick, error) {
	if m.GetBracketPickError != nil {
		return store.BracketPick{}, m.GetBracketPickError
	}
	bp, ok := m.BracketPicks[user]
	if !ok {
		return store.BracketPick{}, fmt.Errorf("no bracket for user %s", user)
	}
	return bp, nil
}

// GetAllBracketPicks mock implementation
func (m *MockStore) GetAllBracketPicks() ([]store.BracketPick, error) {
	if m.GetAllBracketPicksError != nil {
		return nil, m.GetAllBracketPicksError
	}
	picks := make([]store.BracketPick, 0, len(m.BracketPicks))
	for _, bp := range m.BracketPicks {
		picks = append(picks, bp)
	}
	return picks, nil
}

// Leaderboard mock implementation
func (m *MockStore) Leaderboard() ([]store.LeaderboardEntry, error) {
	if m.LeaderboardError != nil {
		return nil, m.LeaderboardError
	}
	entries := make([]store.LeaderboardEntry, 0, len(m.Users))
	for _, u := range m.Users {
		entries = append(entries, store.LeaderboardEntry{
			Name:          u.Name,
			SeasonWins:    u.SeasonWins,
			PlayoffPoints: u.PlayoffPoints,
		})
	}
	store.SortLeaderboard(entries)
	return entries, nil
}

// GetClient mock implementation
func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return mockClient{}
}

type mockClient struct{}

func (mockClient) Disconnect(context.Context) error { return nil }
