/* notifier_test.go
 * Contains unit tests for announcement formatting
 */

package bot

import (
	"fmt"
	"strings"
	"testing"

	"cfb-pickem/api/api"
	"cfb-pickem/api/store"

	"github.com/stretchr/testify/assert"
)

func TestFormatAnnouncement_Basic(t *testing.T) {
	summary := api.SettlementSummary{FinalGames: 5, Wins: 12, Losses: 10, Pushes: 2}
	leaderboard := []store.LeaderboardEntry{
		{Name: "emma", SeasonWins: 7, PlayoffPoints: 3},
		{Name: "zach", SeasonWins: 5},
	}

	msg := formatAnnouncement(summary, leaderboard)

	assert.Contains(t, msg, "5 final games: 12 wins, 10 losses, 2 pushes")
	assert.Contains(t, msg, "1. emma: 7 wins, 3 playoff pts")
	assert.Contains(t, msg, "2. zach: 5 wins, 0 playoff pts")
	assert.NotContains(t, msg, "pending")
}

func TestFormatAnnouncement_PendingNoted(t *testing.T) {
	summary := api.SettlementSummary{FinalGames: 3, Wins: 4, Losses: 4, Pending: 6}
	msg := formatAnnouncement(summary, nil)
	assert.Contains(t, msg, "(6 picks still pending)")
}

func TestFormatAnnouncement_TruncatesLongLeaderboard(t *testing.T) {
	leaderboard := make([]store.LeaderboardEntry, 14)
	for i := range leaderboard {
		leaderboard[i] = store.LeaderboardEntry{Name: fmt.Sprintf("user%d", i)}
	}

	msg := formatAnnouncement(api.SettlementSummary{}, leaderboard)

	assert.Contains(t, msg, "...and 4 more")
	assert.Contains(t, msg, "10. user9")
	assert.NotContains(t, msg, "user10")
	assert.Equal(t, 1, strings.Count(msg, "...and"))
}

func TestNewNotifier_MissingConfig(t *testing.T) {
	_, err := NewNotifier("", "channel")
	assert.Error(t, err)

	_, err = NewNotifier("token", "")
	assert.Error(t, err)
}
