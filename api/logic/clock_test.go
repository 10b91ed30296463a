/* clock_test.go
 * Contains unit tests for clock.go week derivation and pick locking
 */

package logic

import (
	"testing"
	"time"

	"cfb-pickem/api/shared"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

var seasonStart = time.Date(2025, time.August, 23, 0, 0, 0, 0, time.UTC)

// TestCurrentWeek_RollsOverEverySevenDays tests date-driven week advancement
func TestCurrentWeek_RollsOverEverySevenDays(t *testing.T) {
	fake := clockwork.NewFakeClockAt(seasonStart)
	clock := NewSeasonClock(seasonStart, 16, fake)

	assert.Equal(t, 1, clock.CurrentWeek())

	fake.Advance(6*24*time.Hour + 23*time.Hour)
	assert.Equal(t, 1, clock.CurrentWeek())

	fake.Advance(time.Hour)
	assert.Equal(t, 2, clock.CurrentWeek())

	fake.Advance(5 * 7 * 24 * time.Hour)
	assert.Equal(t, 7, clock.CurrentWeek())
}

// TestCurrentWeek_Clamped tests clamping to the season bounds
func TestCurrentWeek_Clamped(t *testing.T) {
	// Before the season starts, it is week 1.
	fake := clockwork.NewFakeClockAt(seasonStart.Add(-30 * 24 * time.Hour))
	clock := NewSeasonClock(seasonStart, 16, fake)
	assert.Equal(t, 1, clock.CurrentWeek())

	// Long after the last week, it stays the final week.
	fake = clockwork.NewFakeClockAt(seasonStart.Add(300 * 24 * time.Hour))
	clock = NewSeasonClock(seasonStart, 16, fake)
	assert.Equal(t, 16, clock.CurrentWeek())
}

// TestGameLocked_AtKickoff tests the lock point against the kickoff timestamp
func TestGameLocked_AtKickoff(t *testing.T) {
	kickoff := seasonStart.Add(7 * 24 * time.Hour)
	game := shared.Game{
		Status: shared.StatusScheduled,
		Date:   kickoff.Format("2006-01-02T15:04Z07:00"),
	}

	fake := clockwork.NewFakeClockAt(kickoff.Add(-time.Minute))
	clock := NewSeasonClock(seasonStart, 16, fake)
	assert.False(t, clock.GameLocked(game))

	// Locks exactly at kickoff, not after.
	fake.Advance(time.Minute)
	assert.True(t, clock.GameLocked(game))
}

// TestGameLocked_StatusFallback tests that any started game is locked
func TestGameLocked_StatusFallback(t *testing.T) {
	fake := clockwork.NewFakeClockAt(seasonStart)
	clock := NewSeasonClock(seasonStart, 16, fake)

	assert.True(t, clock.GameLocked(shared.Game{Status: shared.StatusInProgress}))
	assert.True(t, clock.GameLocked(shared.Game{Status: shared.StatusFinal}))
}

// TestGameLocked_UnparseableDate tests that a junk timestamp leaves the game open
func TestGameLocked_UnparseableDate(t *testing.T) {
	fake := clockwork.NewFakeClockAt(seasonStart)
	clock := NewSeasonClock(seasonStart, 16, fake)

	game := shared.Game{Status: shared.StatusScheduled, Date: "TBD"}
	assert.False(t, clock.GameLocked(game))
}

// TestGameLocked_RFC3339WithSeconds tests the second accepted timestamp layout
func TestGameLocked_RFC3339WithSeconds(t *testing.T) {
	kickoff := seasonStart.Add(24 * time.Hour)
	game := shared.Game{
		Status: shared.StatusScheduled,
		Date:   kickoff.Format(time.RFC3339),
	}

	fake := clockwork.NewFakeClockAt(kickoff.Add(time.Second))
	clock := NewSeasonClock(seasonStart, 16, fake)
	assert.True(t, clock.GameLocked(game))
}
