/* api.go
 * This file contains the public methods for interacting with this package. For
 * consistent results, callers should go through this facade rather than the
 * store or logic sub packages directly: every path that can change results
 * funnels through the same settlement pass.
 */

package api

import (
	"fmt"
	"sort"
	"strings"

	"cfb-pickem/api/bracket"
	"cfb-pickem/api/logic"
	"cfb-pickem/api/shared"
	"cfb-pickem/api/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// API provides methods for interacting with the pick'em data layer.
type API struct {
	Store store.Interface
	Clock logic.SeasonClock

	// FavoriteTeams seeds the auto-featured game suggestion on first sync.
	FavoriteTeams []string

	// Notifier, when set, announces completed settlement passes.
	Notifier Notifier
}

// NewAPI creates a new API instance backed by a Mongo store.
func NewAPI(dbName string, mongoURI string, clock logic.SeasonClock) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}
	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	return &API{Store: s, Clock: clock}, nil
}

// SubmitPicks upserts a user's picks, keyed on (user, gameId). Picks for games
// the store has never seen are rejected; picks for locked games are accepted
// here (the HTTP layer enforces the lock point) and simply scored on the next
// settlement pass.
func (a *API) SubmitPicks(user string, picks map[string]string) error {
	if user == "" || len(picks) == 0 {
		return fmt.Errorf("user and picks are required")
	}
	if err := a.Store.EnsureUser(user); err != nil {
		return err
	}
	week := a.Clock.CurrentWeek()
	for gameID, teamID := range picks {
		game, err := a.Store.GetGameByID(gameID)
		if err != nil {
			return fmt.Errorf("unknown game %s: %w", gameID, err)
		}
		if teamID != game.Home.ID && teamID != game.Away.ID {
			return fmt.Errorf("team %s is not playing in game %s", teamID, gameID)
		}
		if err := a.Store.UpsertPick(user, gameID, teamID, week); err != nil {
			return err
		}
	}
	return nil
}

// GameLocked reports whether picks for a game are closed, for callers that
// enforce the lock point.
func (a *API) GameLocked(game shared.Game) bool {
	return a.Clock.GameLocked(game)
}

// SyncWeek ingests a batch of normalized feed games for one week, persists
// them and runs a full settlement pass. On the first sync it also suggests a
// featured slate (favorites plus top-ranked games, up to eight).
func (a *API) SyncWeek(week int, games []shared.Game) (SettlementSummary, error) {
	for i := range games {
		if games[i].Week == 0 {
			games[i].Week = week
		}
	}
	if err := a.Store.UpsertGames(games); err != nil {
		return SettlementSummary{}, err
	}

	cfg, err := a.Store.GetSystemConfig()
	if err != nil {
		return SettlementSummary{}, err
	}
	cfg.Week = week
	if len(cfg.FeaturedGameIDs) == 0 {
		cfg.FeaturedGameIDs = a.suggestFeatured(games)
	}
	if err := a.Store.SaveSystemConfig(cfg); err != nil {
		return SettlementSummary{}, err
	}

	return a.RunSettlement()
}

// RunSettlement re-scores every pick from the current game snapshot and
// recounts every user's win total. It is a full recompute, safe to trigger
// repeatedly, back-to-back or concurrently: nothing here accumulates.
func (a *API) RunSettlement() (SettlementSummary, error) {
	passID := uuid.NewString()

	games, err := a.Store.GetGames()
	if err != nil {
		return SettlementSummary{}, err
	}
	picks, err := a.Store.GetAllPicks()
	if err != nil {
		return SettlementSummary{}, err
	}

	settled := logic.SettlePicks(games, picks)
	if err := a.Store.SavePickResults(settled); err != nil {
		return SettlementSummary{}, err
	}

	wins := logic.RecountWins(settled)
	if err := a.Store.SetSeasonWins(wins); err != nil {
		return SettlementSummary{}, err
	}

	summary := SettlementSummary{PassID: passID, UsersScored: len(wins)}
	for _, g := range games {
		if g.Final() {
			summary.FinalGames++
		}
	}
	for _, p := range settled {
		switch p.Result {
		case store.ResultWin:
			summary.Wins++
		case store.ResultLoss:
			summary.Losses++
		case store.ResultPush:
			summary.Pushes++
		default:
			summary.Pending++
		}
	}

	log.Info().
		Str("pass_id", passID).
		Int("final_games", summary.FinalGames).
		Int("wins", summary.Wins).
		Int("losses", summary.Losses).
		Int("pushes", summary.Pushes).
		Int("pending", summary.Pending).
		Msg("settlement pass complete")

	a.announce(summary)
	return summary, nil
}

// ApplyManualSpreadOverride corrects the posted line on one game and re-runs
// settlement so the correction flows through the one scoring path. This
// replaces the old habit of one-off fixup scripts each reinventing matching.
func (a *API) ApplyManualSpreadOverride(gameID string, spread string) (SettlementSummary, error) {
	if err := a.Store.SetGameSpread(gameID, spread); err != nil {
		return SettlementSummary{}, err
	}
	log.Info().Str("game_id", gameID).Str("spread", spread).Msg("manual spread override applied")
	return a.RunSettlement()
}

// SubmitBracket replaces a user's bracket predictions wholesale. Keys must be
// well-formed match ids; predictions for matches whose feeders are unresolved
// are stored as provisional and score zero until the feeder resolves.
func (a *API) SubmitBracket(user string, predictions map[string]string) error {
	if user == "" {
		return fmt.Errorf("user is required")
	}
	for key := range predictions {
		if _, err := bracket.ParseMatchID(key); err != nil {
			return fmt.Errorf("invalid match id %q: %w", key, err)
		}
	}
	if err := a.Store.EnsureUser(user); err != nil {
		return err
	}
	return a.Store.StoreBracketPick(user, predictions)
}

// SyncPlayoff resolves actual bracket advancement from finished games and
// rescores every user's bracket. Both halves are full recomputes per pass.
func (a *API) SyncPlayoff() (PlayoffSummary, error) {
	passID := uuid.NewString()

	cfg, err := a.Store.GetPlayoffConfig()
	if err != nil {
		return PlayoffSummary{}, err
	}
	if len(cfg.Teams) < 12 {
		return PlayoffSummary{}, fmt.Errorf("playoff field is not seeded")
	}

	games, err := a.Store.GetGames()
	if err != nil {
		return PlayoffSummary{}, err
	}

	known := cfg.DecodeResults()
	res := logic.ResolveBracket(cfg.Teams, known, games)

	for _, matchID := range res.NameMatched {
		g := res.Games[matchID]
		log.Warn().
			Str("pass_id", passID).
			Str("match", matchID.String()).
			Str("home", g.Home.Name).
			Str("away", g.Away.Name).
			Msg("bracket game paired by name containment, review pairing")
	}

	details := cfg.MatchDetails
	if details == nil {
		details = make(map[string]store.MatchDetail)
	}
	for matchID, g := range res.Games {
		details[matchID.String()] = store.MatchDetail{
			HomeScore: g.Home.Score,
			AwayScore: g.Away.Score,
			Status:    g.Status,
			WinnerID:  res.Winners[matchID],
		}
	}
	if err := a.Store.StorePlayoffResults(store.EncodeResults(res.Winners), details); err != nil {
		return PlayoffSummary{}, err
	}

	bracketPicks, err := a.Store.GetAllBracketPicks()
	if err != nil {
		return PlayoffSummary{}, err
	}
	points := make(map[string]int, len(bracketPicks))
	for _, bp := range bracketPicks {
		points[bp.User] = logic.ScoreBracket(bp.DecodePredictions(), res.Winners)
	}
	if err := a.Store.SetPlayoffPoints(points); err != nil {
		return PlayoffSummary{}, err
	}

	summary := PlayoffSummary{
		PassID:          passID,
		ResolvedMatches: len(res.Winners),
		NewlyResolved:   len(res.Games),
		UsersScored:     len(points),
	}
	log.Info().
		Str("pass_id", passID).
		Int("resolved", summary.ResolvedMatches).
		Int("newly_resolved", summary.NewlyResolved).
		Int("users_scored", summary.UsersScored).
		Msg("playoff pass complete")
	return summary, nil
}

// SeedPlayoffField stores the 12-team field, enriching missing metadata from
// stored games by tolerant name matching.
func (a *API) SeedPlayoffField(teams []shared.BracketTeam) error {
	if len(teams) != 12 {
		return fmt.Errorf("playoff field requires exactly 12 teams, got %d", len(teams))
	}
	games, err := a.Store.GetGames()
	if err != nil {
		return err
	}
	enriched := store.EnrichSeedsFromGames(teams, games)
	return a.Store.StorePlayoffTeams(enriched)
}

// SeedPlayoffFromFile loads the field from a YAML seed file and stores it.
func (a *API) SeedPlayoffFromFile(path string) error {
	teams, err := store.LoadSeedFile(path)
	if err != nil {
		return err
	}
	return a.SeedPlayoffField(teams)
}

// State returns the snapshot the display layer renders. A week greater than
// zero narrows the game list to that week; zero means everything.
func (a *API) State(week int) (State, error) {
	cfg, err := a.Store.GetSystemConfig()
	if err != nil {
		return State{}, err
	}
	var games []shared.Game
	if week > 0 {
		games, err = a.Store.GetGamesByWeek(week)
	} else {
		games, err = a.Store.GetGames()
	}
	if err != nil {
		return State{}, err
	}
	users, err := a.Store.GetUsers()
	if err != nil {
		return State{}, err
	}
	picks, err := a.Store.GetAllPicks()
	if err != nil {
		return State{}, err
	}
	return State{
		Week:            cfg.Week,
		FeaturedGameIDs: cfg.FeaturedGameIDs,
		Games:           games,
		Users:           users,
		Picks:           picks,
	}, nil
}

// UpdateSettings stores the display week and featured slate.
func (a *API) UpdateSettings(week int, featuredGameIDs []string) error {
	cfg, err := a.Store.GetSystemConfig()
	if err != nil {
		return err
	}
	if week > 0 {
		cfg.Week = week
	}
	if featuredGameIDs != nil {
		cfg.FeaturedGameIDs = featuredGameIDs
	}
	return a.Store.SaveSystemConfig(cfg)
}

// Leaderboard returns users ordered by wins then playoff points.
func (a *API) Leaderboard() ([]store.LeaderboardEntry, error) {
	return a.Store.Leaderboard()
}

// PlayoffConfig returns the seeded field, actual winners and match details.
func (a *API) PlayoffConfig() (store.PlayoffConfig, error) {
	return a.Store.GetPlayoffConfig()
}

// Bracket returns one user's bracket predictions. A user with no stored
// bracket gets an empty prediction set, not an error.
func (a *API) Bracket(user string) (store.BracketPick, error) {
	pick, err := a.Store.GetBracketPick(user)
	if err != nil {
		return store.BracketPick{User: user, Predictions: map[string]string{}}, nil
	}
	return pick, nil
}

// AllBrackets returns every user's bracket predictions.
func (a *API) AllBrackets() ([]store.BracketPick, error) {
	return a.Store.GetAllBracketPicks()
}

// suggestFeatured proposes a featured slate: any game involving a favorite
// team, topped up with the best-ranked remaining games until eight.
func (a *API) suggestFeatured(games []shared.Game) []string {
	const slateSize = 8

	featured := make([]string, 0, slateSize)
	taken := make(map[string]bool)
	for _, g := range games {
		for _, fav := range a.FavoriteTeams {
			if containsTeam(g, fav) {
				featured = append(featured, g.ID)
				taken[g.ID] = true
				break
			}
		}
	}

	rest := make([]shared.Game, 0, len(games))
	for _, g := range games {
		if !taken[g.ID] {
			rest = append(rest, g)
		}
	}
	sort.Slice(rest, func(i, j int) bool {
		return bestRank(rest[i]) < bestRank(rest[j])
	})
	for _, g := range rest {
		if len(featured) >= slateSize {
			break
		}
		featured = append(featured, g.ID)
	}
	return featured
}

func containsTeam(g shared.Game, name string) bool {
	if name == "" {
		return false
	}
	return stringsContainsFold(g.Home.Name, name) || stringsContainsFold(g.Away.Name, name)
}

func stringsContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func bestRank(g shared.Game) int {
	home, away := g.Home.Rank, g.Away.Rank
	if home == 0 {
		home = 99
	}
	if away == 0 {
		away = 99
	}
	if home < away {
		return home
	}
	return away
}

func (a *API) announce(summary SettlementSummary) {
	if a.Notifier == nil {
		return
	}
	leaderboard, err := a.Store.Leaderboard()
	if err != nil {
		log.Warn().Err(err).Msg("skipping settlement announcement, leaderboard unavailable")
		return
	}
	if err := a.Notifier.AnnounceSettlement(summary, leaderboard); err != nil {
		log.Warn().Err(err).Msg("settlement announcement failed")
	}
}
