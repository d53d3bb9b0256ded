package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/roadcast/roadcast/pkg/api"
	"github.com/roadcast/roadcast/pkg/consumer"
	"github.com/roadcast/roadcast/pkg/dataimporter"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("ROADCAST_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("ROADCAST_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "roadcast",
		Description: "Single binary of truth for Roadcast - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			consumer.RegisterCLI(),
			dataimporter.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
