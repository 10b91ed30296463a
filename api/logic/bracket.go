/* bracket.go
 * Contains the bracket settlement engine: deriving actual advancement through
 * the 12-team playoff from finished games, and scoring user brackets against
 * actual results with round-weighted points. Like the spread engine, this is
 * pure computation over a snapshot, recomputed in full on every pass so late
 * corrections to match winners converge instead of drifting.
 */

package logic

import (
	"strconv"

	"cfb-pickem/api/bracket"
	"cfb-pickem/api/shared"
)

// BracketResolution is the outcome of one resolution pass.
type BracketResolution struct {
	// Winners holds the actual winner team id per resolved match, including
	// previously known results carried forward.
	Winners map[bracket.MatchID]string
	// Games maps each newly resolved match to the game that decided it, so
	// callers can persist score lines alongside the winner.
	Games map[bracket.MatchID]shared.Game
	// NameMatched lists matches whose deciding game was paired by name
	// containment rather than team id. Heuristic pairings are worth a review,
	// so callers should log these.
	NameMatched []bracket.MatchID
}

// ResolveBracket walks the topology round by round and determines the actual
// winner of every match whose participants are known and whose deciding game
// is finished. Rounds are processed in dependency order: a quarterfinal never
// resolves before both of its first-round feeders, even if a game record for
// it is present. Games that match no topology slot are ignored; the feed may
// hand over a full day's slate, not just playoff games.
func ResolveBracket(teams []shared.BracketTeam, known map[bracket.MatchID]string, games []shared.Game) BracketResolution {
	bySeed := make(map[int]shared.BracketTeam, len(teams))
	byID := make(map[string]shared.BracketTeam, len(teams))
	for _, t := range teams {
		bySeed[t.Seed] = t
		byID[t.ID] = t
	}

	res := BracketResolution{
		Winners: make(map[bracket.MatchID]string, len(known)),
		Games:   make(map[bracket.MatchID]shared.Game),
	}
	for id, w := range known {
		res.Winners[id] = w
	}

	for _, matchID := range bracket.AllMatches() {
		if _, done := res.Winners[matchID]; done {
			continue
		}

		home, ok := resolveParticipant(matchID, bracket.SideHome, bySeed, byID, res.Winners)
		if !ok {
			continue
		}
		away, ok := resolveParticipant(matchID, bracket.SideAway, bySeed, byID, res.Winners)
		if !ok {
			continue
		}

		game, nameMatched, found := findDecidingGame(games, home, away)
		if !found {
			continue
		}

		winnerID, ok := straightUpWinner(game, home, away)
		if !ok {
			continue
		}
		res.Winners[matchID] = winnerID
		res.Games[matchID] = game
		if nameMatched {
			res.NameMatched = append(res.NameMatched, matchID)
		}
	}
	return res
}

// ScoreBracket scores one user's predictions against actual winners. Each
// correct call earns the round's weight (1/2/4/8). A prediction for a match
// with no actual winner yet scores zero silently; it is not an error, it is
// just not decided.
func ScoreBracket(predictions map[bracket.MatchID]string, actual map[bracket.MatchID]string) int {
	points := 0
	for matchID, predicted := range predictions {
		winner, decided := actual[matchID]
		if decided && predicted == winner {
			points += matchID.Round.Points()
		}
	}
	return points
}

// resolveParticipant turns a match slot into a concrete team, if known: a
// seeded entry directly, or the already-resolved winner of the feeder match.
func resolveParticipant(id bracket.MatchID, side bracket.Side, bySeed map[int]shared.BracketTeam, byID map[string]shared.BracketTeam, winners map[bracket.MatchID]string) (shared.BracketTeam, bool) {
	slot, err := bracket.ResolveSlot(id, side)
	if err != nil {
		return shared.BracketTeam{}, false
	}
	if slot.IsSeed() {
		team, ok := bySeed[slot.Seed]
		return team, ok
	}
	winnerID, ok := winners[slot.WinnerOf]
	if !ok {
		return shared.BracketTeam{}, false
	}
	team, ok := byID[winnerID]
	return team, ok
}

// findDecidingGame searches the snapshot for a finished game between the two
// teams. Team ids are authoritative; name containment is the tolerant
// fallback for feeds whose playoff records carry different ids than the
// seeded field. The second return reports that the heuristic was used.
func findDecidingGame(games []shared.Game, home, away shared.BracketTeam) (shared.Game, bool, bool) {
	for _, g := range games {
		if !g.Final() {
			continue
		}
		if matchesByID(g, home, away) {
			return g, false, true
		}
	}
	for _, g := range games {
		if !g.Final() {
			continue
		}
		if matchesByName(g, home, away) {
			return g, true, true
		}
	}
	return shared.Game{}, false, false
}

func matchesByID(g shared.Game, a, b shared.BracketTeam) bool {
	return (g.Home.ID == a.ID && g.Away.ID == b.ID) ||
		(g.Home.ID == b.ID && g.Away.ID == a.ID)
}

func matchesByName(g shared.Game, a, b shared.BracketTeam) bool {
	return (sideNameContains(g.Home, a) && sideNameContains(g.Away, b)) ||
		(sideNameContains(g.Home, b) && sideNameContains(g.Away, a))
}

func sideNameContains(side shared.TeamSide, team shared.BracketTeam) bool {
	return team.Name != "" && containsFold(side.Name, team.Name)
}

// straightUpWinner compares final scores with no spread involved; bracket
// games are never settled against a line. The winner id reported is the
// bracket team's id, which may differ from the feed's id for the same side.
func straightUpWinner(g shared.Game, home, away shared.BracketTeam) (string, bool) {
	homeScore, err := strconv.Atoi(g.Home.Score)
	if err != nil {
		return "", false
	}
	awayScore, err := strconv.Atoi(g.Away.Score)
	if err != nil {
		return "", false
	}
	if homeScore == awayScore {
		// No ties in the playoff; treat as undecided rather than guessing.
		return "", false
	}

	// Orient the bracket teams to the game's sides before reading the score.
	homeTeam, awayTeam := home, away
	if g.Home.ID == away.ID || (g.Home.ID != home.ID && sideNameContains(g.Home, away)) {
		homeTeam, awayTeam = away, home
	}
	if homeScore > awayScore {
		return homeTeam.ID, true
	}
	return awayTeam.ID, true
}
