package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/mavfares/pkg/api"
	"github.com/travigo/mavfares/pkg/prices"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func main() {
	// stdout is reserved for command output
	if os.Getenv("MAVFARES_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("MAVFARES_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "mavfares",
		Description: "Priced journey search against the MAV ticketing API",

		Commands: []*cli.Command{
			prices.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
