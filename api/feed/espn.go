/* espn.go
 * Contains the client used to fetch scoreboard data from the ESPN college
 * football API and normalize it into the shared game model consumed by the
 * store and settlement layers.
 */

package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cfb-pickem/api/shared"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports/football/college-football/scoreboard"

// groups=80 restricts the scoreboard to FBS.
const fbsGroup = "80"

// Client fetches and normalizes scoreboard data. Requests share a rate
// limiter so webhook-driven and scheduled syncs cannot stampede the API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string

	// ManualSpreads maps game id to a spread line, consulted when the feed
	// publishes no odds for a game. Lines the feed does publish win.
	ManualSpreads map[string]string
}

// NewClient creates a scoreboard client allowing one request per interval.
func NewClient(interval time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		baseURL:    defaultBaseURL,
	}
}

// SetBaseURL overrides the scoreboard endpoint, for tests and proxies.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// FetchWeek fetches every FBS game for the given week, normalized and ready
// to store.
func (c *Client) FetchWeek(ctx context.Context, week int) ([]shared.Game, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s?groups=%s&week=%d", c.baseURL, fbsGroup, week)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoreboard request: %w", err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("scoreboard request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoreboard request returned status %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read scoreboard response: %w", err)
	}

	var scoreboard scoreboardResponse
	if err := json.Unmarshal(body, &scoreboard); err != nil {
		return nil, fmt.Errorf("failed to parse scoreboard response: %w", err)
	}

	games := make([]shared.Game, 0, len(scoreboard.Events))
	for _, ev := range scoreboard.Events {
		game, ok := c.normalizeEvent(ev)
		if !ok {
			log.Warn().Str("event_id", ev.ID).Str("name", ev.Name).Msg("skipping malformed scoreboard event")
			continue
		}
		games = append(games, game)
	}

	log.Info().Int("week", week).Int("games", len(games)).Msg("scoreboard fetched")
	return games, nil
}

// normalizeEvent flattens one scoreboard event into a game. Events without a
// home and an away competitor are reported unusable.
func (c *Client) normalizeEvent(ev event) (shared.Game, bool) {
	if len(ev.Competitions) == 0 {
		return shared.Game{}, false
	}
	comp := ev.Competitions[0]

	var home, away *competitor
	for i := range comp.Competitors {
		switch comp.Competitors[i].HomeAway {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return shared.Game{}, false
	}

	return shared.Game{
		ID:        ev.ID,
		Week:      ev.Week.Number,
		Name:      ev.Name,
		ShortName: ev.ShortName,
		Date:      ev.Date,
		Status:    comp.Status.Type.State,
		Period:    comp.Status.Period,
		Clock:     comp.Status.Clock,
		Spread:    c.spreadFor(ev.ID, comp),
		Home:      normalizeSide(*home),
		Away:      normalizeSide(*away),
	}, true
}

// spreadFor picks the posted line for a game. The feed wins; the manual
// table only fills gaps where the feed published nothing.
func (c *Client) spreadFor(gameID string, comp competition) string {
	for _, o := range comp.Odds {
		if o.Details != "" {
			return o.Details
		}
	}
	if line, ok := c.ManualSpreads[gameID]; ok {
		return line
	}
	return shared.NoLine
}

func normalizeSide(comp competitor) shared.TeamSide {
	side := shared.TeamSide{
		ID:           comp.Team.ID,
		Name:         comp.Team.DisplayName,
		Abbreviation: comp.Team.Abbreviation,
		Score:        comp.Score,
		Logo:         comp.Team.Logo,
		Record:       overallRecord(comp.Records),
	}
	// The feed reports unranked teams as 99.
	if comp.Rank.Current > 0 && comp.Rank.Current < 99 {
		side.Rank = comp.Rank.Current
	}
	return side
}

func overallRecord(records []record) string {
	for _, r := range records {
		if r.Type == "total" {
			return r.Summary
		}
	}
	if len(records) > 0 {
		return records[0].Summary
	}
	return ""
}
