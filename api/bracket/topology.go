/* topology.go
 * Fixed 12-team single-elimination playoff structure: seeds 1-4 receive first
 * round byes, seeds 5-12 play in. Match identity is a (round, index) value;
 * the string form ("R1-G1", "QF-G2", ...) exists only for the storage and HTTP
 * boundaries so string parsing never leaks into the advancement logic.
 */

package bracket

import (
	"fmt"
	"strconv"
	"strings"
)

// Round is a stage of the playoff bracket.
type Round int

const (
	RoundFirst Round = iota + 1
	RoundQuarter
	RoundSemi
	RoundFinal
)

// roundCodes are the boundary labels, in play order.
var roundCodes = map[Round]string{
	RoundFirst:   "R1",
	RoundQuarter: "QF",
	RoundSemi:    "SF",
	RoundFinal:   "F",
}

// Rounds returns all rounds in dependency order. Bracket resolution must walk
// them in this order: a match cannot resolve before its feeders.
func Rounds() []Round {
	return []Round{RoundFirst, RoundQuarter, RoundSemi, RoundFinal}
}

func (r Round) String() string {
	if code, ok := roundCodes[r]; ok {
		return code
	}
	return fmt.Sprintf("Round(%d)", int(r))
}

// Points is the value of a correct prediction in this round. Values double
// each round so correctly calling deep runs outweighs first-round chalk.
func (r Round) Points() int {
	switch r {
	case RoundFirst:
		return 1
	case RoundQuarter:
		return 2
	case RoundSemi:
		return 4
	case RoundFinal:
		return 8
	}
	return 0
}

// matchCounts is the number of matches per round.
var matchCounts = map[Round]int{
	RoundFirst:   4,
	RoundQuarter: 4,
	RoundSemi:    2,
	RoundFinal:   1,
}

// MatchID identifies one match in the bracket.
type MatchID struct {
	Round Round
	Index int // 1-based within the round
}

func (m MatchID) String() string {
	return fmt.Sprintf("%s-G%d", m.Round, m.Index)
}

// ParseMatchID converts a boundary string like "QF-G2" back into a MatchID.
func ParseMatchID(s string) (MatchID, error) {
	code, game, ok := strings.Cut(s, "-G")
	if !ok {
		return MatchID{}, fmt.Errorf("malformed match id %q", s)
	}
	var round Round
	for r, c := range roundCodes {
		if c == code {
			round = r
			break
		}
	}
	if round == 0 {
		return MatchID{}, fmt.Errorf("unknown round in match id %q", s)
	}
	idx, err := strconv.Atoi(game)
	if err != nil {
		return MatchID{}, fmt.Errorf("malformed match index in %q: %w", s, err)
	}
	if idx < 1 || idx > matchCounts[round] {
		return MatchID{}, fmt.Errorf("match index out of range in %q", s)
	}
	return MatchID{Round: round, Index: idx}, nil
}

// Side selects one of a match's two slots.
type Side int

const (
	SideHome Side = iota
	SideAway
)

// Slot is one participant position in a match: either a concrete seed or a
// reference to the winner of an earlier match.
type Slot struct {
	Seed     int // > 0 when the slot is a seeded entry
	WinnerOf MatchID
}

// IsSeed reports whether the slot is a concrete seeded entry rather than a
// winner reference.
func (s Slot) IsSeed() bool {
	return s.Seed > 0
}

// First round pairings: 8v9, 5v12, 6v11, 7v10. The lower seed is home.
var firstRoundSeeds = [5][2]int{
	{}, // 1-based
	{8, 9},
	{5, 12},
	{6, 11},
	{7, 10},
}

// Quarterfinal home slots: each bye seed hosts the winner of the same-index
// first round game (1 hosts 8v9, 4 hosts 5v12, 3 hosts 6v11, 2 hosts 7v10).
var quarterfinalByes = [5]int{0, 1, 4, 3, 2}

// Semifinal pairings cross the quarterfinal bracket: QF-G1 winner meets the
// QF-G4 winner and QF-G2 meets QF-G3, preserving seeding integrity. This is
// deliberate and must not be "fixed" to pair QF-G1 with QF-G2.
var semifinalFeeders = [3][2]int{
	{},
	{1, 4},
	{2, 3},
}

// ByeSeeds are the seeds exempt from the first round.
func ByeSeeds() []int {
	return []int{1, 2, 3, 4}
}

// MatchesInRound returns the match ids of a round in index order.
func MatchesInRound(r Round) []MatchID {
	n := matchCounts[r]
	ids := make([]MatchID, 0, n)
	for i := 1; i <= n; i++ {
		ids = append(ids, MatchID{Round: r, Index: i})
	}
	return ids
}

// AllMatches returns every match id in dependency (round, then index) order.
func AllMatches() []MatchID {
	ids := make([]MatchID, 0, 11)
	for _, r := range Rounds() {
		ids = append(ids, MatchesInRound(r)...)
	}
	return ids
}

// FeederMatches returns the earlier matches whose winners fill this match's
// slots. First round matches have none; quarterfinals have one (the other slot
// is a bye seed).
func FeederMatches(id MatchID) []MatchID {
	switch id.Round {
	case RoundFirst:
		return nil
	case RoundQuarter:
		return []MatchID{{Round: RoundFirst, Index: id.Index}}
	case RoundSemi:
		f := semifinalFeeders[id.Index]
		return []MatchID{
			{Round: RoundQuarter, Index: f[0]},
			{Round: RoundQuarter, Index: f[1]},
		}
	case RoundFinal:
		return []MatchID{
			{Round: RoundSemi, Index: 1},
			{Round: RoundSemi, Index: 2},
		}
	}
	return nil
}

// ResolveSlot maps a match side to either a concrete seed or a winner
// reference. An unknown match id is a programmer error, not feed noise, so it
// is reported as an error rather than swallowed.
func ResolveSlot(id MatchID, side Side) (Slot, error) {
	if id.Index < 1 || id.Index > matchCounts[id.Round] {
		return Slot{}, fmt.Errorf("no such match %s in topology", id)
	}
	switch id.Round {
	case RoundFirst:
		pair := firstRoundSeeds[id.Index]
		if side == SideHome {
			return Slot{Seed: pair[0]}, nil
		}
		return Slot{Seed: pair[1]}, nil
	case RoundQuarter:
		if side == SideHome {
			return Slot{Seed: quarterfinalByes[id.Index]}, nil
		}
		return Slot{WinnerOf: MatchID{Round: RoundFirst, Index: id.Index}}, nil
	case RoundSemi:
		f := semifinalFeeders[id.Index]
		if side == SideHome {
			return Slot{WinnerOf: MatchID{Round: RoundQuarter, Index: f[0]}}, nil
		}
		return Slot{WinnerOf: MatchID{Round: RoundQuarter, Index: f[1]}}, nil
	case RoundFinal:
		if side == SideHome {
			return Slot{WinnerOf: MatchID{Round: RoundSemi, Index: 1}}, nil
		}
		return Slot{WinnerOf: MatchID{Round: RoundSemi, Index: 2}}, nil
	}
	return Slot{}, fmt.Errorf("no such round %d in topology", id.Round)
}
