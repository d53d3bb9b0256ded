package dataimporter

import (
	"github.com/urfave/cli/v2"

	"github.com/roadcast/roadcast/pkg/database"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Imports spatial reference data into the store",
		Subcommands: []*cli.Command{
			{
				Name:  "restrictions",
				Usage: "import commercial vehicle restriction records",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "path to the restrictions CSV export",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					return ImportRestrictions(c.String("file"))
				},
			},
			{
				Name:  "truck-parking",
				Usage: "import truck parking facility records",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "path to the truck parking CSV export",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					return ImportTruckParking(c.String("file"))
				},
			},
		},
	}
}
