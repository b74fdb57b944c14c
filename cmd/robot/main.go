// Package main is the robot command: offline frame rendering, the
// interactive viewer and draw-list dumps of the articulated robot rig.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"robot-rig/internal/config"
	"robot-rig/internal/log"
)

const (
	// Flags.
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagPartTable   = "parts"
	flagOutput      = "output"
	flagWidth       = "width"
	flagHeight      = "height"
	flagSupersample = "supersample"
	flagFormat      = "format"
	flagWorkers     = "workers"
	flagFrameEvery  = "frame-every"
	flagAnnotate    = "annotate"
	flagAnimate     = "animate"
	flagScript      = "script"
	flagMute        = "mute"
	flagYAML        = "yaml"
	flagExport      = "export-table"
)

// env is what Before hands to every command.
type env struct {
	logger log.Logger
	cfg    config.Config
}

func main() {
	e := &env{}

	app := &cli.App{
		Name:  "robot",
		Usage: "animate and render the articulated robot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "load settings from `FILE` (.json or .yaml)",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Value: "info",
				Usage: "log level: debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  flagPartTable,
				Usage: "part table `FILE` replacing the built-in robot",
			},
		},
		Before: func(c *cli.Context) error {
			e.logger = log.New(os.Stderr, c.String(flagLogLevel))
			if path := c.String(flagConfig); path != "" {
				cfg, err := config.Load(path)
				if err != nil {
					return err
				}
				e.cfg = cfg
			}
			return nil
		},
		Commands: []*cli.Command{
			renderCommand(e),
			viewCommand(e),
			dumpCommand(e),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
