/* test_helpers.go
 * Contains test helper functions and sample fixtures for store package tests
 */

package store

import (
	"context"

	"cfb-pickem/api/shared"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	s, err := NewStore("test_cfb_pickem", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if s.Client != nil {
			// Drop test database
			s.Database.Drop(context.TODO())
			// Disconnect client
			s.Client.Disconnect(context.TODO())
		}
	}

	return s, cleanup, nil
}

// SampleGame builds a finished game fixture with the given final score and
// spread line.
func SampleGame(id string, week int, homeScore, awayScore string, spread string) shared.Game {
	return shared.Game{
		ID:     id,
		Week:   week,
		Name:   "Rutgers Scarlet Knights at Ohio State Buckeyes",
		Status: shared.StatusFinal,
		Spread: spread,
		Home: shared.TeamSide{
			ID:           "194",
			Name:         "Ohio State Buckeyes",
			Abbreviation: "OSU",
			Score:        homeScore,
		},
		Away: shared.TeamSide{
			ID:           "164",
			Name:         "Rutgers Scarlet Knights",
			Abbreviation: "RUTG",
			Score:        awayScore,
		},
	}
}

// SampleBracketTeams builds a full 12-team playoff field fixture.
func SampleBracketTeams() []shared.BracketTeam {
	names := []string{
		"Indiana", "Ohio State", "Georgia", "Texas Tech", "Oregon", "Ole Miss",
		"Texas A&M", "Oklahoma", "Alabama", "Miami", "Tulane", "James Madison",
	}
	abbrs := []string{
		"IND", "OSU", "UGA", "TTU", "ORE", "MISS",
		"TAMU", "OU", "ALA", "MIA", "TULN", "JMU",
	}
	teams := make([]shared.BracketTeam, 12)
	for i := range teams {
		teams[i] = shared.BracketTeam{
			Seed:         i + 1,
			ID:           abbrs[i],
			Name:         names[i],
			Abbreviation: abbrs[i],
		}
	}
	return teams
}
