package consumer

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/roadcast/roadcast/pkg/database"
	"github.com/roadcast/roadcast/pkg/elastic_client"
	"github.com/roadcast/roadcast/pkg/redis_client"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "consumer",
		Usage: "Encodes normalised roadway events from the queue",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the queue consumers",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}
					if err := redis_client.Connect(); err != nil {
						return err
					}
					if err := elastic_client.Connect(false); err != nil {
						return err
					}

					StartConsumers()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					<-signals

					return nil
				},
			},
		},
	}
}
