package api

import (
	"github.com/urfave/cli/v2"

	"github.com/roadcast/roadcast/pkg/database"
	"github.com/roadcast/roadcast/pkg/encoder"
	"github.com/roadcast/roadcast/pkg/spatial"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the traveler information feeds",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					messageEncoder := encoder.NewEncoder(encoder.NewSequencer())
					messageEncoder.CVResolver = encoder.NewCVExtensionResolver(spatial.MongoFinder{})

					return SetupServer(c.String("listen"), messageEncoder)
				},
			},
		},
	}
}
