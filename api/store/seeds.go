/* seeds.go
 * Contains loading of the playoff seed file and enrichment of seeded teams
 * with metadata from stored games. The seed file only has to name the twelve
 * teams; ids, abbreviations and logos are recovered from the feed's game
 * records by tolerant name matching.
 */

package store

import (
	"fmt"
	"os"
	"strings"

	"cfb-pickem/api/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Teams []shared.BracketTeam `yaml:"teams"`
}

// LoadSeedFile reads the playoff field from a YAML file. The file is operator
// configuration, so unlike feed noise, problems here are hard errors: exactly
// twelve teams with unique seeds 1-12.
func LoadSeedFile(path string) ([]shared.BracketTeam, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(f.Teams) != 12 {
		return nil, fmt.Errorf("seed file must list exactly 12 teams, got %d", len(f.Teams))
	}
	seen := make(map[int]bool, 12)
	for _, t := range f.Teams {
		if t.Seed < 1 || t.Seed > 12 {
			return nil, fmt.Errorf("seed %d for %q out of range", t.Seed, t.Name)
		}
		if seen[t.Seed] {
			return nil, fmt.Errorf("duplicate seed %d in seed file", t.Seed)
		}
		seen[t.Seed] = true
	}
	return f.Teams, nil
}

// EnrichSeedsFromGames fills in missing team metadata (id, abbreviation,
// logo, full display name) by matching each configured name against the team
// sides seen in stored games. Containment wins; a fuzzy match is the fallback
// for spelling drift. A team found nowhere keeps a synthetic seed-N id so the
// bracket still renders.
func EnrichSeedsFromGames(teams []shared.BracketTeam, games []shared.Game) []shared.BracketTeam {
	sides := make([]shared.TeamSide, 0, len(games)*2)
	lowerNames := make([]string, 0, len(games)*2)
	seenSide := make(map[string]bool)
	for _, g := range games {
		for _, side := range []shared.TeamSide{g.Home, g.Away} {
			if side.ID == "" || seenSide[side.ID] {
				continue
			}
			seenSide[side.ID] = true
			sides = append(sides, side)
			lowerNames = append(lowerNames, strings.ToLower(side.Name))
		}
	}

	out := make([]shared.BracketTeam, len(teams))
	copy(out, teams)
	for i, team := range out {
		if team.ID != "" && team.Abbreviation != "" {
			continue
		}
		if side, ok := findSideByName(team.Name, sides, lowerNames); ok {
			out[i].ID = side.ID
			out[i].Name = side.Name
			out[i].Abbreviation = side.Abbreviation
			if out[i].Logo == "" {
				out[i].Logo = side.Logo
			}
			continue
		}
		if out[i].ID == "" {
			out[i].ID = fmt.Sprintf("seed-%d", team.Seed)
		}
	}
	return out
}

func findSideByName(name string, sides []shared.TeamSide, lowerNames []string) (shared.TeamSide, bool) {
	lower := strings.ToLower(name)
	if lower == "" {
		return shared.TeamSide{}, false
	}
	for i, candidate := range lowerNames {
		if strings.Contains(candidate, lower) {
			return sides[i], true
		}
	}
	// Fall back to fuzzy matching, preferring an exact hit among the results.
	results := fuzzy.RankFind(lower, lowerNames)
	if len(results) == 0 {
		return shared.TeamSide{}, false
	}
	best := results[0]
	for _, r := range results {
		if r.Target == lower {
			best = r
			break
		}
		if r.Distance < best.Distance {
			best = r
		}
	}
	return sides[best.OriginalIndex], true
}
