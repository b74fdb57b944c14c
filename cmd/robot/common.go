package main

import (
	"github.com/urfave/cli/v2"

	"robot-rig/internal/anim"
	"robot-rig/internal/config"
	"robot-rig/internal/pose"
	"robot-rig/internal/rig"
	"robot-rig/internal/sequence"
)

// resolve merges the command's flags into the loaded config.
func (e *env) resolve(c *cli.Context) (config.Config, error) {
	cfg := e.cfg
	cfg.Resolve(config.Flags{
		OutputDir:   c.String(flagOutput),
		PartTable:   c.String(flagPartTable),
		Width:       c.Int(flagWidth),
		Height:      c.Int(flagHeight),
		Supersample: c.Int(flagSupersample),
		Format:      c.String(flagFormat),
		Workers:     c.Int(flagWorkers),
		FrameEvery:  c.Int(flagFrameEvery),
		Annotate:    c.Bool(flagAnnotate),
		Animate:     c.Bool(flagAnimate),
	})
	if s := c.String(flagScript); s != "" {
		script, err := sequence.ParseScript(s)
		if err != nil {
			return cfg, err
		}
		cfg.Script = script
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadTable returns the configured part table or the built-in robot.
func (e *env) loadTable(cfg config.Config) (*rig.Table, error) {
	if cfg.PartTable == "" {
		return rig.DefaultTable(rig.DefaultDimensions()), nil
	}
	t, err := rig.LoadTable(cfg.PartTable)
	if err != nil {
		return nil, err
	}
	e.logger.Infof("part table %s: %d parts", cfg.PartTable, t.Len())
	return t, nil
}

func newAnimator(cfg config.Config) *anim.Animator {
	return anim.New(cfg.Animation, pose.DefaultLimits())
}

var scriptFlag = &cli.StringFlag{
	Name:  flagScript,
	Usage: `steps as "key:ticks,..." (e.g. "w:16,c:73"), replacing the configured script`,
}
