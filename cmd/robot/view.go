package main

import (
	"github.com/urfave/cli/v2"

	"robot-rig/internal/glview"
	"robot-rig/internal/rig"
	"robot-rig/internal/sound"
)

func viewCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "view",
		Usage: "open an interactive window driven by the keyboard",
		Description: `keys: w walk/stop, W reset legs, c/C spin/stop cannon, r/R or arrows turn,
s/S shoulder, e/E elbow, n/N neck, g/G or Up/Down gun, 0 reset, Esc quit`,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: flagWidth, Usage: "window width (default: 640)"},
			&cli.IntFlag{Name: flagHeight, Usage: "window height (default: 480)"},
			&cli.BoolFlag{Name: flagMute, Usage: "no sound"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := e.resolve(c)
			if err != nil {
				return err
			}
			table, err := e.loadTable(cfg)
			if err != nil {
				return err
			}

			a := newAnimator(cfg)
			if !c.Bool(flagMute) {
				p, err := sound.NewPlayer(0.6, e.logger)
				if err != nil {
					e.logger.Warnf("audio init failed (continuing without sound): %v", err)
				} else {
					p.Attach(a.Events())
				}
			}

			return glview.Run(a, rig.NewBuilder(table), glview.Options{
				Width:      cfg.Width,
				Height:     cfg.Height,
				Title:      "robot",
				Camera:     cfg.ViewCamera(),
				Background: cfg.BackgroundColor(),
			}, e.logger)
		},
	}
}
