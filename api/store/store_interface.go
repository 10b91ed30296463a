/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import (
	"context"

	"cfb-pickem/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	UpsertGames(games []shared.Game) error
	GetGames() ([]shared.Game, error)
	GetGamesByWeek(week int) ([]shared.Game, error)
	GetGameByID(id string) (shared.Game, error)
	SetGameSpread(id string, spread string) error

	UpsertPick(user string, gameID string, teamID string, week int) error
	GetAllPicks() ([]Pick, error)
	GetPicksByGameIDs(gameIDs []string) ([]Pick, error)
	SavePickResults(picks []Pick) error

	EnsureUser(name string) error
	GetUsers() ([]shared.User, error)
	SetSeasonWins(wins map[string]int) error
	SetPlayoffPoints(points map[string]int) error

	GetSystemConfig() (SystemConfig, error)
	SaveSystemConfig(cfg SystemConfig) error

	GetPlayoffConfig() (PlayoffConfig, error)
	StorePlayoffTeams(teams []shared.BracketTeam) error
	StorePlayoffResults(results map[string]string, details map[string]MatchDetail) error
	StoreBracketPick(user string, predictions map[string]string) error
	GetBracketPick(user string) (BracketPick, error)
	GetAllBracketPicks() ([]BracketPick, error)

	Leaderboard() ([]LeaderboardEntry, error)

	// GetClient exposes the client for lifecycle management
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
