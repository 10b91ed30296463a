/* models.go
 * This file contains the structs and helper functions that relate to DB objects
 */

package store

import (
	"fmt"

	"cfb-pickem/api/bracket"
	"cfb-pickem/api/shared"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pick results. A pick starts pending and is only ever moved by a settlement
// pass; "no line" games stay pending indefinitely.
const (
	ResultPending = "pending"
	ResultWin     = "win"
	ResultLoss    = "loss"
	ResultPush    = "push"
)

// Pick is one user's call on one game. The picks collection carries a unique
// (user, gameId) index, so resubmission overwrites and can never duplicate.
type Pick struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	User   string             `bson:"user" json:"user"`
	GameID string             `bson:"gameId" json:"gameId"`
	TeamID string             `bson:"teamId" json:"teamId"`
	Week   int                `bson:"week,omitempty" json:"week"`
	Result string             `bson:"result" json:"result"`
}

// BracketPick is a user's full set of bracket predictions, keyed by the match
// id string form at this boundary. Resubmission replaces the document
// wholesale. Predictions for matches whose feeders are unresolved are stored
// as-is; they simply score zero until the feeder resolves.
type BracketPick struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	User        string             `bson:"user" json:"user"`
	Predictions map[string]string  `bson:"picks" json:"picks"`
}

// DecodePredictions converts the stored string-keyed predictions into typed
// match ids, dropping malformed keys. Bad keys are data noise (old clients,
// manual edits), not worth failing a scoring pass over.
func (b BracketPick) DecodePredictions() map[bracket.MatchID]string {
	out := make(map[bracket.MatchID]string, len(b.Predictions))
	for key, teamID := range b.Predictions {
		id, err := bracket.ParseMatchID(key)
		if err != nil {
			continue
		}
		out[id] = teamID
	}
	return out
}

// MatchDetail is the score line kept alongside a resolved bracket match for
// the display layer.
type MatchDetail struct {
	HomeScore string `bson:"home_score,omitempty" json:"homeScore,omitempty"`
	AwayScore string `bson:"away_score,omitempty" json:"awayScore,omitempty"`
	Status    string `bson:"status,omitempty" json:"status,omitempty"`
	WinnerID  string `bson:"winner_id,omitempty" json:"winnerId,omitempty"`
}

// PlayoffConfig is the single playoff document: the 12 seeded teams, actual
// winners per match id, and score lines per match id.
type PlayoffConfig struct {
	ID           string                 `bson:"_id" json:"-"`
	Teams        []shared.BracketTeam   `bson:"teams" json:"teams"`
	Results      map[string]string      `bson:"results,omitempty" json:"results"`
	MatchDetails map[string]MatchDetail `bson:"match_details,omitempty" json:"matchDetails"`
}

// DecodeResults converts stored results into typed match ids, dropping
// malformed keys.
func (c PlayoffConfig) DecodeResults() map[bracket.MatchID]string {
	out := make(map[bracket.MatchID]string, len(c.Results))
	for key, teamID := range c.Results {
		id, err := bracket.ParseMatchID(key)
		if err != nil {
			continue
		}
		out[id] = teamID
	}
	return out
}

// EncodeResults serializes typed winners back to the string-keyed form the
// document stores.
func EncodeResults(results map[bracket.MatchID]string) map[string]string {
	out := make(map[string]string, len(results))
	for id, teamID := range results {
		out[id.String()] = teamID
	}
	return out
}

// SystemConfig is the single system document: the display week and the
// featured game ids the group is picking this week.
type SystemConfig struct {
	ID              string   `bson:"_id" json:"-"`
	Week            int      `bson:"week" json:"week"`
	FeaturedGameIDs []string `bson:"featured_game_ids" json:"featuredGameIds"`
}

// LeaderboardEntry is one row of the read model handed to the display layer.
type LeaderboardEntry struct {
	Name          string `bson:"name" json:"name"`
	SeasonWins    int    `bson:"wins" json:"wins"`
	PlayoffPoints int    `bson:"playoff_points" json:"playoffPoints"`
}

func (e LeaderboardEntry) String() string {
	return fmt.Sprintf("%s: %d wins, %d playoff pts", e.Name, e.SeasonWins, e.PlayoffPoints)
}
