/* main.go
 * The "main" method for running the pick'em server. For details see `readme.md`
 * Usage: go run main.go -addr=":8080" -seasonStart="2025-08-23" -finalWeek=16
 */

package main

import (
	"context"
	"flag"
	"os"
	"time"

	apiPkg "cfb-pickem/api/api"
	"cfb-pickem/api/feed"
	"cfb-pickem/api/logic"
	"cfb-pickem/bot"
	"cfb-pickem/web"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	envErr := godotenv.Load()

	// Flags
	addrPtr := flag.String("addr", ":8080", "HTTP listen address")
	dbNamePtr := flag.String("db", "cfb_pickem", "MongoDB database name")
	seasonStartPtr := flag.String("seasonStart", "2025-08-23", "Kickoff date of week 1, YYYY-MM-DD")
	finalWeekPtr := flag.Int("finalWeek", 16, "Last week of the regular season")
	seedFilePtr := flag.String("seedFile", "", "Optional YAML file with the 12-team playoff field")
	feedIntervalPtr := flag.Duration("feedInterval", 5*time.Second, "Minimum interval between scoreboard requests")
	debugPtr := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debugPtr {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if envErr != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	seasonStart, err := time.Parse("2006-01-02", *seasonStartPtr)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid seasonStart flag")
	}
	if *finalWeekPtr < 1 {
		log.Fatal().Int("finalWeek", *finalWeekPtr).Msg("invalid finalWeek flag")
	}
	clock := logic.NewSeasonClock(seasonStart, *finalWeekPtr, clockwork.NewRealClock())

	api, err := apiPkg.NewAPI(*dbNamePtr, os.Getenv("MONGO_URI"), clock)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize API")
	}
	defer func() {
		if err := api.Store.GetClient().Disconnect(context.TODO()); err != nil {
			log.Error().Err(err).Msg("failed to disconnect store")
		}
	}()

	if favorites := os.Getenv("FAVORITE_TEAMS"); favorites != "" {
		api.FavoriteTeams = splitCSV(favorites)
	}

	if token := os.Getenv("DISCORD_BOT_TOKEN"); token != "" {
		notifier, err := bot.NewNotifier(token, os.Getenv("DISCORD_CHANNEL_ID"))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize discord notifier")
		}
		defer notifier.Close()
		api.Notifier = notifier
	}

	if *seedFilePtr != "" {
		if err := api.SeedPlayoffFromFile(*seedFilePtr); err != nil {
			log.Fatal().Err(err).Str("file", *seedFilePtr).Msg("failed to seed playoff field")
		}
		log.Info().Str("file", *seedFilePtr).Msg("playoff field seeded")
	}

	if err := web.Start(web.Config{
		Addr: *addrPtr,
		API:  api,
		Feed: feed.NewClient(*feedIntervalPtr),
	}); err != nil {
		log.Fatal().Err(err).Msg("HTTP server stopped")
	}
}
