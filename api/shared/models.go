/* models.go
 * This file contains the structs and constants that are shared between sub packages
 */

package shared

// Game statuses as delivered by the normalized score feed.
const (
	StatusScheduled  = "pre"
	StatusInProgress = "in"
	StatusFinal      = "post"
)

// NoLine is the sentinel the feed uses when no betting line was posted.
const NoLine = "N/A"

// TeamSide is one side of a game as delivered by the score feed. Score stays a
// string: the feed sends scores as text and they are only meaningful (and only
// parsed) once the game is final.
type TeamSide struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Abbreviation string `bson:"abbreviation" json:"abbreviation"`
	Score        string `bson:"score,omitempty" json:"score,omitempty"`
	Logo         string `bson:"logo,omitempty" json:"logo,omitempty"`
	Rank         int    `bson:"rank,omitempty" json:"rank,omitempty"`
	Record       string `bson:"record,omitempty" json:"record,omitempty"`
}

// Game is a normalized game record from the score feed. The core never fetches
// or shapes these itself; it consumes them as-is.
type Game struct {
	ID        string   `bson:"id" json:"id"`
	Week      int      `bson:"week,omitempty" json:"week,omitempty"`
	Name      string   `bson:"name,omitempty" json:"name,omitempty"`
	ShortName string   `bson:"short_name,omitempty" json:"shortName,omitempty"`
	Date      string   `bson:"date,omitempty" json:"date,omitempty"`
	Status    string   `bson:"status" json:"status"`
	Period    int      `bson:"period,omitempty" json:"period,omitempty"`
	Clock     string   `bson:"clock,omitempty" json:"clock,omitempty"`
	Spread    string   `bson:"spread,omitempty" json:"spread,omitempty"`
	Home      TeamSide `bson:"home" json:"home"`
	Away      TeamSide `bson:"away" json:"away"`
}

// Final reports whether the game has a final score.
func (g Game) Final() bool {
	return g.Status == StatusFinal
}

// User is a participant. Names are free text and case-sensitive; SeasonWins and
// PlayoffPoints are cached counts that every settlement pass recomputes in full
// from picks, never incremented.
type User struct {
	Name          string `bson:"name" json:"name"`
	SeasonWins    int    `bson:"wins" json:"wins"`
	PlayoffPoints int    `bson:"playoff_points,omitempty" json:"playoffPoints"`
}

// BracketTeam is one of the 12 seeded playoff entries.
type BracketTeam struct {
	Seed         int    `bson:"seed" json:"seed" yaml:"seed"`
	ID           string `bson:"id" json:"id" yaml:"id"`
	Name         string `bson:"name" json:"name" yaml:"name"`
	Abbreviation string `bson:"abbreviation,omitempty" json:"abbreviation,omitempty" yaml:"abbreviation"`
	Logo         string `bson:"logo,omitempty" json:"logo,omitempty" yaml:"logo"`
}
