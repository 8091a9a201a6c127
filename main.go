package main

import (
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/anicoll/blf-reorder/cmd"
)

func main() {
	app := &cli.App{
		Name:   "blf-reorder",
		Usage:  "sort the busy lamp fields of a CUCM phone by label",
		Action: cmd.ReorderCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				EnvVars: []string{"BLF_REORDER_CONFIG"},
				Usage:   "optional YAML config file",
			},
			&cli.StringFlag{
				Name:  "axl-host",
				Usage: "CUCM publisher host name, prompted for when empty",
			},
			&cli.IntFlag{
				Name:  "axl-port",
				Value: 8443,
			},
			&cli.StringFlag{
				Name:  "axl-username",
				Usage: "administrator username, prompted for when empty",
			},
			&cli.StringFlag{
				Name:  "axl-password",
				Usage: "administrator password, prompted for when empty",
			},
			&cli.StringFlag{
				Name:  "axl-version",
				Value: "12.5",
			},
			&cli.BoolFlag{
				Name:  "insecure-skip-verify",
				Value: true,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 20 * time.Second,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "INFO",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
