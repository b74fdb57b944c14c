package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"robot-rig/internal/sequence"
	"robot-rig/internal/texture"
)

func renderCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "play the script and render every captured frame to disk",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagOutput, Aliases: []string{"o"}, Usage: "output `DIR` (default: frames)"},
			&cli.IntFlag{Name: flagWidth, Usage: "frame width (default: 640)"},
			&cli.IntFlag{Name: flagHeight, Usage: "frame height (default: 480)"},
			&cli.IntFlag{Name: flagSupersample, Usage: "supersample factor (default: 2)"},
			&cli.StringFlag{Name: flagFormat, Usage: "webp or tga (default: webp)"},
			&cli.IntFlag{Name: flagWorkers, Usage: "worker goroutines (default: NumCPU)"},
			&cli.IntFlag{Name: flagFrameEvery, Usage: "capture a frame every N ticks (default: 1)"},
			&cli.BoolFlag{Name: flagAnnotate, Usage: "draw tick, states and joint angles on each frame"},
			&cli.BoolFlag{Name: flagAnimate, Usage: "also write animation.webp"},
			scriptFlag,
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
			format, _ := sequence.ParseFormat(cfg.Format)

			frames, err := sequence.Simulate(cfg.Script, newAnimator(cfg), cfg.FrameEvery)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
				return errors.Wrap(err, "render")
			}

			e.logger.Infof("frames: %d (%d ticks), workers: %d, output: %s",
				len(frames), cfg.Script.TotalTicks(), cfg.Workers, cfg.OutputDir)

			start := time.Now()
			results := sequence.Run(sequence.Config{
				OutputDir:   cfg.OutputDir,
				Table:       table,
				Textures:    texture.NewCache(e.logger),
				Width:       cfg.Width,
				Height:      cfg.Height,
				Supersample: cfg.Supersample,
				Camera:      cfg.ViewCamera(),
				Background:  cfg.BackgroundColor(),
				Format:      format,
				Extended:    cfg.WebPExtended,
				Annotate:    cfg.Annotate,
				Workers:     cfg.Workers,
				KeepImages:  cfg.Animate,
				Logger:      e.logger,
			}, frames)

			failed := 0
			for _, r := range results {
				if r.Success {
					continue
				}
				failed++
				if failed <= 20 {
					e.logger.Errorf("frame %d: %s", r.Index, r.Error)
				}
			}
			e.logger.Infof("rendered %d/%d in %.1fs", len(results)-failed, len(results), time.Since(start).Seconds())

			manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
			if err := sequence.WriteManifest(manifestPath, frames, results); err != nil {
				e.logger.Warnf("%v", err)
			} else {
				e.logger.Infof("manifest: %s", manifestPath)
			}

			if cfg.Animate {
				path := filepath.Join(cfg.OutputDir, "animation.webp")
				delay := cfg.Animation.Tick * time.Duration(cfg.FrameEvery)
				if err := sequence.WriteAnimation(path, results, delay); err != nil {
					return err
				}
				e.logger.Infof("animation: %s", path)
			}

			if failed > 0 {
				return errors.Errorf("render: %d frames failed", failed)
			}
			return nil
		},
	}
}
