/* spread_test.go
 * Contains unit tests for spread.go parsing and settlement functions
 */

package logic

import (
	"testing"

	"cfb-pickem/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finishedGame(homeScore, awayScore string) shared.Game {
	return shared.Game{
		ID:     "g1",
		Status: shared.StatusFinal,
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

// TestParseSpread_Basic tests parsing of common single-token labels
func TestParseSpread_Basic(t *testing.T) {
	sp := ParseSpread("OSU -7.5")
	require.NotNil(t, sp)
	assert.Equal(t, "OSU", sp.FavoredLabel)
	assert.Equal(t, 7.5, sp.Handicap)
}

// TestParseSpread_MultiWordLabel tests that every token but the last joins the label
func TestParseSpread_MultiWordLabel(t *testing.T) {
	sp := ParseSpread("Ohio State -32.5")
	require.NotNil(t, sp)
	assert.Equal(t, "Ohio State", sp.FavoredLabel)
	assert.Equal(t, 32.5, sp.Handicap)
}

// TestParseSpread_SignDiscarded tests that a positive value still means favorite
func TestParseSpread_SignDiscarded(t *testing.T) {
	sp := ParseSpread("OSU 7.5")
	require.NotNil(t, sp)
	assert.Equal(t, 7.5, sp.Handicap)

	sp = ParseSpread("OSU +7.5")
	require.NotNil(t, sp)
	assert.Equal(t, 7.5, sp.Handicap)
}

// TestParseSpread_Unusable tests the inputs that resolve to no line
func TestParseSpread_Unusable(t *testing.T) {
	unusable := []string{
		"",
		"   ",
		"N/A",
		"n/a",
		"Even",
		"EVEN",
		"OSU",
		"OSU -seven",
		"-7.5",
	}
	for _, raw := range unusable {
		assert.Nil(t, ParseSpread(raw), "expected nil for %q", raw)
	}
}

// TestParseSpread_ExtraWhitespace tests that repeated spaces are tolerated
func TestParseSpread_ExtraWhitespace(t *testing.T) {
	sp := ParseSpread("  Ohio  State   -3 ")
	require.NotNil(t, sp)
	assert.Equal(t, "Ohio State", sp.FavoredLabel)
	assert.Equal(t, 3.0, sp.Handicap)
}

// TestSettleSpread_FavoriteCovers tests a favorite winning by more than the line
func TestSettleSpread_FavoriteCovers(t *testing.T) {
	game := finishedGame("42", "9")
	verdict := SettleSpread(game, ParseSpread("OSU -32.5"))
	require.NotNil(t, verdict)
	assert.False(t, verdict.Push)
	assert.Equal(t, "194", verdict.WinnerID)
}

// TestSettleSpread_FavoriteFailsToCover tests the underdog covering
func TestSettleSpread_FavoriteFailsToCover(t *testing.T) {
	game := finishedGame("42", "11")
	verdict := SettleSpread(game, ParseSpread("OSU -32.5"))
	require.NotNil(t, verdict)
	assert.False(t, verdict.Push)
	assert.Equal(t, "164", verdict.WinnerID)
}

// TestSettleSpread_Push tests a margin landing exactly on the line
func TestSettleSpread_Push(t *testing.T) {
	game := finishedGame("20", "17")
	verdict := SettleSpread(game, ParseSpread("OSU -3"))
	require.NotNil(t, verdict)
	assert.True(t, verdict.Push)
	assert.Empty(t, verdict.WinnerID)
}

// TestSettleSpread_AwayFavorite tests settlement when the away side is favored
func TestSettleSpread_AwayFavorite(t *testing.T) {
	// Rutgers favored by 3, wins by 10 on the road: covers.
	game := finishedGame("14", "24")
	verdict := SettleSpread(game, ParseSpread("RUTG -3"))
	require.NotNil(t, verdict)
	assert.Equal(t, "164", verdict.WinnerID)

	// Rutgers favored by 3, wins by exactly 3: push.
	game = finishedGame("21", "24")
	verdict = SettleSpread(game, ParseSpread("RUTG -3"))
	require.NotNil(t, verdict)
	assert.True(t, verdict.Push)

	// Rutgers favored by 3, wins by 2: home side covers.
	game = finishedGame("22", "24")
	verdict = SettleSpread(game, ParseSpread("RUTG -3"))
	require.NotNil(t, verdict)
	assert.Equal(t, "194", verdict.WinnerID)
}

// TestSettleSpread_FavoredUpset tests a favorite losing outright
func TestSettleSpread_FavoredUpset(t *testing.T) {
	game := finishedGame("10", "17")
	verdict := SettleSpread(game, ParseSpread("OSU -7.5"))
	require.NotNil(t, verdict)
	assert.Equal(t, "164", verdict.WinnerID)
}

// TestSettleSpread_NotFinal tests that in-progress games settle nothing
func TestSettleSpread_NotFinal(t *testing.T) {
	game := finishedGame("42", "9")
	game.Status = shared.StatusInProgress
	assert.Nil(t, SettleSpread(game, ParseSpread("OSU -32.5")))

	game.Status = shared.StatusScheduled
	assert.Nil(t, SettleSpread(game, ParseSpread("OSU -32.5")))
}

// TestSettleSpread_NilSpread tests that a missing line settles nothing
func TestSettleSpread_NilSpread(t *testing.T) {
	assert.Nil(t, SettleSpread(finishedGame("42", "9"), nil))
}

// TestSettleSpread_JunkScores tests that non-numeric scores settle nothing
func TestSettleSpread_JunkScores(t *testing.T) {
	game := finishedGame("", "9")
	assert.Nil(t, SettleSpread(game, ParseSpread("OSU -7.5")))

	game = finishedGame("42", "forfeit")
	assert.Nil(t, SettleSpread(game, ParseSpread("OSU -7.5")))
}

// TestSettleSpread_LabelMatchesNeitherSide tests that an unmatched label settles nothing
func TestSettleSpread_LabelMatchesNeitherSide(t *testing.T) {
	game := finishedGame("42", "9")
	assert.Nil(t, SettleSpread(game, ParseSpread("MICH -7.5")))
}

// TestSettleSpread_AmbiguousLabel tests that a label matching both sides settles nothing
func TestSettleSpread_AmbiguousLabel(t *testing.T) {
	game := finishedGame("42", "9")
	game.Home.Name = "Miami Hurricanes"
	game.Home.Abbreviation = "MIA"
	game.Away.Name = "Miami RedHawks"
	game.Away.Abbreviation = "M-OH"
	assert.Nil(t, SettleSpread(game, ParseSpread("Miami -7.5")))
}

// TestSideMatchesLabel_PrefixBothDirections tests abbreviation prefix tolerance
func TestSideMatchesLabel_PrefixBothDirections(t *testing.T) {
	airForce := shared.TeamSide{Name: "Air Force Falcons", Abbreviation: "AFA"}

	// Feed abbreviates shorter than we store: "AF" vs "AFA".
	assert.True(t, sideMatchesLabel(airForce, "AF"))
	// Feed abbreviates longer than we store.
	shortSide := shared.TeamSide{Name: "Air Force Falcons", Abbreviation: "AF"}
	assert.True(t, sideMatchesLabel(shortSide, "AFA"))
	// Exact, case-insensitive.
	assert.True(t, sideMatchesLabel(airForce, "afa"))
}

// TestSideMatchesLabel_NameContainment tests the display name fallback
func TestSideMatchesLabel_NameContainment(t *testing.T) {
	side := shared.TeamSide{Name: "Ohio State Buckeyes", Abbreviation: "OSU"}
	assert.True(t, sideMatchesLabel(side, "Ohio State"))
	assert.False(t, sideMatchesLabel(side, "Oklahoma"))
	assert.False(t, sideMatchesLabel(side, ""))
}

// TestSettleSpread_FullLabelSettlement tests settlement with a multi-word label
func TestSettleSpread_FullLabelSettlement(t *testing.T) {
	game := finishedGame("42", "9")
	verdict := SettleSpread(game, ParseSpread("Ohio State -32.5"))
	require.NotNil(t, verdict)
	assert.Equal(t, "194", verdict.WinnerID)
}
