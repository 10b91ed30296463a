/* models.go
 * Contains the request/response structs returned by the API facade
 */

package api

import (
	"cfb-pickem/api/shared"
	"cfb-pickem/api/store"
)

// State is the full snapshot handed to the display layer.
type State struct {
	Week            int           `json:"week"`
	FeaturedGameIDs []string      `json:"featuredGameIds"`
	Games           []shared.Game `json:"games"`
	Users           []shared.User `json:"users"`
	Picks           []store.Pick  `json:"picks"`
}

// SettlementSummary reports what one settlement pass did.
type SettlementSummary struct {
	PassID      string `json:"passId"`
	FinalGames  int    `json:"finalGames"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Pushes      int    `json:"pushes"`
	Pending     int    `json:"pending"`
	UsersScored int    `json:"usersScored"`
}

// PlayoffSummary reports what one bracket resolution pass did.
type PlayoffSummary struct {
	PassID          string `json:"passId"`
	ResolvedMatches int    `json:"resolvedMatches"`
	NewlyResolved   int    `json:"newlyResolved"`
	UsersScored     int    `json:"usersScored"`
}

// Notifier announces a completed settlement pass to the group. Implemented by
// the Discord notifier; nil means no announcements.
type Notifier interface {
	AnnounceSettlement(summary SettlementSummary, leaderboard []store.LeaderboardEntry) error
}
