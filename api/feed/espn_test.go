/* espn_test.go
 * Contains unit tests for espn.go scoreboard fetching and normalization
 */

package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cfb-pickem/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScoreboard = `{
  "events": [
    {
      "id": "401628455",
      "name": "Rutgers Scarlet Knights at Ohio State Buckeyes",
      "shortName": "RUTG @ OSU",
      "date": "2025-11-01T19:30Z",
      "week": {"number": 10},
      "competitions": [
        {
          "competitors": [
            {
              "homeAway": "home",
              "score": "42",
              "team": {"id": "194", "displayName": "Ohio State Buckeyes", "abbreviation": "OSU", "logo": "https://a.espncdn.com/i/teamlogos/ncaa/500/194.png"},
              "curatedRank": {"current": 1},
              "records": [{"type": "total", "summary": "8-0"}]
            },
            {
              "homeAway": "away",
              "score": "9",
              "team": {"id": "164", "displayName": "Rutgers Scarlet Knights", "abbreviation": "RUTG"},
              "curatedRank": {"current": 99},
              "records": [{"type": "total", "summary": "4-4"}]
            }
          ],
          "odds": [{"details": "OSU -32.5"}],
          "status": {"period": 4, "displayClock": "0:00", "type": {"state": "post"}}
        }
      ]
    },
    {
      "id": "401628456",
      "name": "Air Force Falcons at Army Black Knights",
      "shortName": "AFA @ ARMY",
      "date": "2025-11-01T16:00Z",
      "week": {"number": 10},
      "competitions": [
        {
          "competitors": [
            {
              "homeAway": "home",
              "score": "",
              "team": {"id": "349", "displayName": "Army Black Knights", "abbreviation": "ARMY"},
              "curatedRank": {"current": 99}
            },
            {
              "homeAway": "away",
              "score": "",
              "team": {"id": "2005", "displayName": "Air Force Falcons", "abbreviation": "AFA"},
              "curatedRank": {"current": 99}
            }
          ],
          "odds": [],
          "status": {"period": 0, "displayClock": "0:00", "type": {"state": "pre"}}
        }
      ]
    },
    {
      "id": "broken",
      "name": "Malformed Event",
      "competitions": [{"competitors": [{"homeAway": "home", "team": {"id": "1"}}]}]
    }
  ]
}`

func testClient(serverURL string) *Client {
	c := NewClient(time.Millisecond)
	c.baseURL = serverURL
	return c
}

func TestFetchWeek_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "80", r.URL.Query().Get("groups"))
		assert.Equal(t, "10", r.URL.Query().Get("week"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(sampleScoreboard))
	}))
	defer server.Close()

	games, err := testClient(server.URL).FetchWeek(context.Background(), 10)
	require.NoError(t, err)

	// The malformed event has one competitor and is skipped.
	require.Len(t, games, 2)

	g := games[0]
	assert.Equal(t, "401628455", g.ID)
	assert.Equal(t, 10, g.Week)
	assert.Equal(t, shared.StatusFinal, g.Status)
	assert.Equal(t, "OSU -32.5", g.Spread)
	assert.Equal(t, "194", g.Home.ID)
	assert.Equal(t, "42", g.Home.Score)
	assert.Equal(t, 1, g.Home.Rank)
	assert.Equal(t, "8-0", g.Home.Record)
	assert.Equal(t, "164", g.Away.ID)
	// Rank 99 means unranked and is dropped.
	assert.Equal(t, 0, g.Away.Rank)
}

func TestFetchWeek_NoOddsFallsBackToNoLine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleScoreboard))
	}))
	defer server.Close()

	games, err := testClient(server.URL).FetchWeek(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, shared.NoLine, games[1].Spread)
}

func TestFetchWeek_ManualSpreadFillsGap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleScoreboard))
	}))
	defer server.Close()

	client := testClient(server.URL)
	client.ManualSpreads = map[string]string{
		"401628456": "ARMY -3.5",
		// A manual line never shadows a feed line.
		"401628455": "OSU -99",
	}

	games, err := client.FetchWeek(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "OSU -32.5", games[0].Spread)
	assert.Equal(t, "ARMY -3.5", games[1].Spread)
}

func TestFetchWeek_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchWeek(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchWeek_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := testClient(server.URL).FetchWeek(context.Background(), 10)
	require.Error(t, err)
}

func TestFetchWeek_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleScoreboard))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(server.URL).FetchWeek(ctx, 10)
	require.Error(t, err)
}
