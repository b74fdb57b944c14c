package rig

import (
	"encoding/json"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"robot-rig/internal/mathutil"
	"robot-rig/internal/pose"
)

// File is the on-disk form of a part table, in YAML or JSON.
type File struct {
	Materials []MaterialFile `json:"materials" yaml:"materials"`
	Parts     []PartFile     `json:"parts" yaml:"parts"`
}

type MaterialFile struct {
	Name     string   `json:"name" yaml:"name"`
	Color    [4]uint8 `json:"color" yaml:"color,flow"`
	Specular float64  `json:"specular,omitempty" yaml:"specular,omitempty"`
	Texture  string   `json:"texture,omitempty" yaml:"texture,omitempty"`
}

type PartFile struct {
	Name     string     `json:"name" yaml:"name"`
	Parent   string     `json:"parent,omitempty" yaml:"parent,omitempty"`
	Pivot    [3]float64 `json:"pivot" yaml:"pivot,flow"`
	Axis     [3]float64 `json:"axis" yaml:"axis,flow"`
	Joint    string     `json:"joint,omitempty" yaml:"joint,omitempty"`
	Angle    float64    `json:"angle,omitempty" yaml:"angle,omitempty"`
	Shape    string     `json:"shape,omitempty" yaml:"shape,omitempty"`
	Size     [3]float64 `json:"size" yaml:"size,flow"`
	Center   [3]float64 `json:"center" yaml:"center,flow"`
	Material string     `json:"material,omitempty" yaml:"material,omitempty"`
}

// LoadTable reads a part table. Files ending in .json are parsed as JSON,
// anything else as YAML. Relative texture paths resolve against the file's
// directory.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "rig: read %s", path)
	}

	var f File
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "rig: parse %s", path)
	}

	dir := filepath.Dir(path)
	for i := range f.Materials {
		if tex := f.Materials[i].Texture; tex != "" && !filepath.IsAbs(tex) {
			f.Materials[i].Texture = filepath.Join(dir, tex)
		}
	}

	t, err := f.Table()
	if err != nil {
		return nil, errors.Wrapf(err, "rig: %s", path)
	}
	return t, nil
}

// Table converts and validates the file contents.
func (f *File) Table() (*Table, error) {
	materials := make([]Material, len(f.Materials))
	for i, m := range f.Materials {
		materials[i] = Material{
			Name:     m.Name,
			Color:    color.NRGBA{R: m.Color[0], G: m.Color[1], B: m.Color[2], A: m.Color[3]},
			Specular: m.Specular,
			Texture:  m.Texture,
		}
	}

	parts := make([]Part, len(f.Parts))
	for i, p := range f.Parts {
		joint, err := pose.ParseJoint(p.Joint)
		if err != nil {
			return nil, errors.Wrapf(err, "part %q", p.Name)
		}
		shape, err := ParseShape(p.Shape)
		if err != nil {
			return nil, errors.Wrapf(err, "part %q", p.Name)
		}
		parts[i] = Part{
			Name:     p.Name,
			Parent:   p.Parent,
			Pivot:    mathutil.Vec3(p.Pivot),
			Axis:     mathutil.Vec3(p.Axis),
			Joint:    joint,
			Angle:    p.Angle,
			Shape:    shape,
			Size:     mathutil.Vec3(p.Size),
			Center:   mathutil.Vec3(p.Center),
			Material: p.Material,
		}
	}
	return NewTable(parts, materials)
}

// File returns the table in its on-disk form, parts in table order and
// materials sorted by first use.
func (t *Table) File() File {
	var f File
	used := make(map[string]bool)
	for _, p := range t.parts {
		f.Parts = append(f.Parts, PartFile{
			Name:     p.Name,
			Parent:   p.Parent,
			Pivot:    p.Pivot,
			Axis:     p.Axis,
			Joint:    jointName(p.Joint),
			Angle:    p.Angle,
			Shape:    shapeName(p.Shape),
			Size:     p.Size,
			Center:   p.Center,
			Material: p.Material,
		})
		if p.Material == "" || used[p.Material] {
			continue
		}
		used[p.Material] = true
		m := t.materials[p.Material]
		f.Materials = append(f.Materials, MaterialFile{
			Name:     m.Name,
			Color:    [4]uint8{m.Color.R, m.Color.G, m.Color.B, m.Color.A},
			Specular: m.Specular,
			Texture:  m.Texture,
		})
	}
	return f
}

func jointName(j pose.JointID) string {
	if j == pose.NoJoint {
		return ""
	}
	return j.String()
}

func shapeName(s Shape) string {
	if s == ShapeNone {
		return ""
	}
	return s.String()
}
