package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"robot-rig/internal/rig"
	"robot-rig/internal/sequence"
)

// drawEntry is one row of a YAML dump.
type drawEntry struct {
	Part     string     `yaml:"part"`
	Shape    string     `yaml:"shape"`
	Material string     `yaml:"material"`
	Pivot    [3]float64 `yaml:"pivot,flow"`
	Center   [3]float64 `yaml:"center,flow"`
}

type dumpDoc struct {
	Tick   uint64             `yaml:"tick"`
	Gait   string             `yaml:"gait"`
	Cannon string             `yaml:"cannon"`
	Joints map[string]float64 `yaml:"joints"`
	Draw   []drawEntry        `yaml:"draw"`
}

func dumpCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "play the script and print the final draw list",
		Flags: []cli.Flag{
			scriptFlag,
			&cli.BoolFlag{Name: flagYAML, Usage: "print YAML instead of a table"},
			&cli.StringFlag{Name: flagExport, Usage: "write the part table to `FILE` (.json or .yaml) and exit"},
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

			if path := c.String(flagExport); path != "" {
				return exportTable(path, table)
			}

			a := newAnimator(cfg)
			if err := sequence.Play(cfg.Script, a); err != nil {
				return err
			}

			p := a.Pose()
			doc := dumpDoc{
				Tick:   a.Ticks(),
				Gait:   a.Gait().String(),
				Cannon: a.Cannon().String(),
				Joints: p.Map(),
			}
			for _, dc := range rig.NewBuilder(table).Build(p) {
				doc.Draw = append(doc.Draw, drawEntry{
					Part:     dc.Part,
					Shape:    dc.Shape.String(),
					Material: dc.Material,
					Pivot:    dc.Pivot.Translation(),
					Center:   dc.Model.Translation(),
				})
			}

			if c.Bool(flagYAML) {
				enc := yaml.NewEncoder(c.App.Writer)
				enc.SetIndent(2)
				defer enc.Close()
				return errors.Wrap(enc.Encode(doc), "dump")
			}
			return writeDrawTable(c.App.Writer, doc)
		},
	}
}

func writeDrawTable(w io.Writer, doc dumpDoc) error {
	fmt.Fprintf(w, "tick %d  gait %s  cannon %s\n\n", doc.Tick, doc.Gait, doc.Cannon)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PART\tSHAPE\tMATERIAL\tPIVOT\tCENTER")
	for _, d := range doc.Draw {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.Part, d.Shape, d.Material, fmtVec(d.Pivot), fmtVec(d.Center))
	}
	return tw.Flush()
}

func fmtVec(v [3]float64) string {
	return fmt.Sprintf("(%6.2f %6.2f %6.2f)", v[0], v[1], v[2])
}

func exportTable(path string, t *rig.Table) error {
	f := t.File()
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(f, "", "  ")
	} else {
		data, err = yaml.Marshal(f)
	}
	if err != nil {
		return errors.Wrap(err, "dump: encode table")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "dump")
}
