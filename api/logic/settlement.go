/* settlement.go
 * Contains the pick settlement pass: applying spread verdicts from finished
 * games to every pick recorded against them, and the full recount of per-user
 * season wins. Both are pure functions over an in-memory snapshot, so a pass
 * can be re-run (or run twice concurrently) and converge to the same state.
 */

package logic

import (
	"cfb-pickem/api/shared"
	"cfb-pickem/api/store"
)

// SettlePicks computes the settlement verdict for each finished game in the
// snapshot and applies it to every pick on that game. Games with no verdict
// (not final, no usable line, ambiguous favorite, junk scores) leave their
// picks exactly as they are: pending picks stay pending and previously
// settled picks are never downgraded. The input slice is not mutated.
func SettlePicks(games []shared.Game, picks []store.Pick) []store.Pick {
	verdicts := make(map[string]*Settlement, len(games))
	for _, g := range games {
		verdicts[g.ID] = SettleSpread(g, ParseSpread(g.Spread))
	}

	settled := make([]store.Pick, len(picks))
	copy(settled, picks)
	for i, p := range settled {
		v, ok := verdicts[p.GameID]
		if !ok || v == nil {
			continue
		}
		switch {
		case v.Push:
			settled[i].Result = store.ResultPush
		case p.TeamID == v.WinnerID:
			settled[i].Result = store.ResultWin
		default:
			settled[i].Result = store.ResultLoss
		}
	}
	return settled
}

// RecountWins recomputes every user's season win total from their picks. It
// is always a full recount, never an increment: manual corrections to spreads
// or scores can flip past results, and a recount converges to a consistent
// total no matter how many times (or how concurrently) it runs. Users present
// in the pick set with zero wins are included with an explicit zero so a
// correction that removes a user's last win still resets their total.
func RecountWins(picks []store.Pick) map[string]int {
	wins := make(map[string]int)
	for _, p := range picks {
		if _, ok := wins[p.User]; !ok {
			wins[p.User] = 0
		}
		if p.Result == store.ResultWin {
			wins[p.User]++
		}
	}
	return wins
}
