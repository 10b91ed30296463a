/* spread.go
 * Contains the spread parser and the against-the-spread settlement engine.
 * Everything here is pure computation over a game snapshot: no I/O, no clock,
 * and feed noise (missing lines, junk numbers, mismatched labels) resolves to
 * "no settlement" rather than an error.
 */

package logic

import (
	"math"
	"strconv"
	"strings"

	"cfb-pickem/api/shared"

	"github.com/go-andiamo/splitter"
)

// Spread is a parsed betting line. FavoredLabel is the label the feed used for
// the favorite (usually an abbreviation, sometimes multi-word); Handicap is the
// magnitude the favorite must beat. The sign on the wire is discarded: by
// spread convention the named side is always the favorite.
type Spread struct {
	FavoredLabel string
	Handicap     float64
}

// Settlement is the verdict for one finished game. Push true means neither
// side covered; otherwise WinnerID is the covering side's team id.
type Settlement struct {
	WinnerID string
	Push     bool
}

// ParseSpread parses a raw line like "OSU -7.5" or "Ohio State -32.5" into a
// Spread. It returns nil for anything unusable: the no-line sentinel, pick'em
// lines, empty strings, or a last token that is not a number. Multi-word
// labels are supported; every token except the last belongs to the label.
func ParseSpread(raw string) *Spread {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, shared.NoLine) || strings.EqualFold(raw, "Even") {
		return nil
	}

	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes)
	tokens, err := spaceSplitter.Split(raw)
	if err != nil {
		return nil
	}
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) < 2 {
		return nil
	}

	value, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil {
		return nil
	}

	return &Spread{
		FavoredLabel: strings.Join(parts[:len(parts)-1], " "),
		Handicap:     math.Abs(value),
	}
}

// SettleSpread determines which side of a finished game covered the spread.
// It returns nil when no settlement is possible: game not final, no usable
// spread, non-numeric scores, or a favored label that matches neither side.
// Equality with the handicap is always a push, whichever side was favored.
func SettleSpread(game shared.Game, sp *Spread) *Settlement {
	if !game.Final() || sp == nil {
		return nil
	}

	homeScore, err := strconv.Atoi(game.Home.Score)
	if err != nil {
		return nil
	}
	awayScore, err := strconv.Atoi(game.Away.Score)
	if err != nil {
		return nil
	}
	margin := float64(homeScore - awayScore)

	homeFavored := sideMatchesLabel(game.Home, sp.FavoredLabel)
	awayFavored := sideMatchesLabel(game.Away, sp.FavoredLabel)
	if homeFavored == awayFavored {
		// Matches neither side, or ambiguously matches both. Don't guess.
		return nil
	}

	// The favorite covers only by beating the handicap strictly.
	required := sp.Handicap
	if awayFavored {
		required = -required
	}
	switch {
	case margin == required:
		return &Settlement{Push: true}
	case margin > required:
		return &Settlement{WinnerID: game.Home.ID}
	default:
		return &Settlement{WinnerID: game.Away.ID}
	}
}

// sideMatchesLabel reports whether a favored label refers to this side.
// Feeds abbreviate inconsistently ("AF" for a side stored as "AFA"), so after
// an exact comparison it accepts a prefix in either direction, then falls back
// to containment in the display name ("AF"/"Air Force" in "Air Force Falcons").
func sideMatchesLabel(side shared.TeamSide, label string) bool {
	if label == "" {
		return false
	}
	abbr := side.Abbreviation
	if abbr != "" {
		if strings.EqualFold(abbr, label) {
			return true
		}
		if hasFoldPrefix(abbr, label) || hasFoldPrefix(label, abbr) {
			return true
		}
	}
	return containsFold(side.Name, label)
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
