/* clock.go
 * Contains SeasonClock, the explicit season calendar handed into submission
 * and settlement paths. The week in play and the per-game lock point are
 * derived from a clockwork.Clock rather than read from a mutable global, so
 * date-driven rollover is testable with a fake clock.
 */

package logic

import (
	"time"

	"cfb-pickem/api/shared"

	"github.com/jonboulle/clockwork"
)

// Feed kickoff timestamps come in RFC3339 with or without seconds.
var kickoffLayouts = []string{
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
}

// SeasonClock derives the current week and pick lock state from real time.
type SeasonClock struct {
	start     time.Time // kickoff of week 1
	finalWeek int
	clock     clockwork.Clock
}

// NewSeasonClock builds a SeasonClock. Pass clockwork.NewRealClock in
// production and a fake clock in tests.
func NewSeasonClock(start time.Time, finalWeek int, clock clockwork.Clock) SeasonClock {
	return SeasonClock{start: start, finalWeek: finalWeek, clock: clock}
}

// CurrentWeek is the week in play: weeks advance every seven days from the
// season start, clamped to [1, finalWeek].
func (c SeasonClock) CurrentWeek() int {
	elapsed := c.clock.Now().Sub(c.start)
	week := 1 + int(elapsed/(7*24*time.Hour))
	if week < 1 {
		return 1
	}
	if week > c.finalWeek {
		return c.finalWeek
	}
	return week
}

// GameLocked reports whether picks for a game are closed. A game locks at
// kickoff; when the kickoff timestamp cannot be read, the feed status is the
// fallback (anything past scheduled is locked).
func (c SeasonClock) GameLocked(g shared.Game) bool {
	if g.Status != shared.StatusScheduled {
		return true
	}
	for _, layout := range kickoffLayouts {
		if kickoff, err := time.Parse(layout, g.Date); err == nil {
			return !c.clock.Now().Before(kickoff)
		}
	}
	return false
}
