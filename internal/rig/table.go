package rig

import (
	"github.com/pkg/errors"

	"robot-rig/internal/pose"
)

// RootName is the name of the part every table hangs from.
const RootName = "root"

// Table is a validated part tree plus its materials. It is immutable once
// built and safe to share between goroutines.
type Table struct {
	parts     []Part
	index     map[string]int
	children  [][]int
	root      int
	materials map[string]Material
	shapes    int
}

// NewTable validates parts and materials: exactly one root named RootName,
// unique names, known parents, no cycles, known joints and materials.
// Children are visited in the order they appear in parts.
func NewTable(parts []Part, materials []Material) (*Table, error) {
	t := &Table{
		parts:     append([]Part(nil), parts...),
		index:     make(map[string]int, len(parts)),
		children:  make([][]int, len(parts)),
		root:      -1,
		materials: make(map[string]Material, len(materials)),
	}

	for _, m := range materials {
		if m.Name == "" {
			return nil, errors.New("rig: material without a name")
		}
		if _, dup := t.materials[m.Name]; dup {
			return nil, errors.Errorf("rig: duplicate material %q", m.Name)
		}
		t.materials[m.Name] = m
	}

	for i, p := range t.parts {
		if p.Name == "" {
			return nil, errors.Errorf("rig: part %d has no name", i)
		}
		if _, dup := t.index[p.Name]; dup {
			return nil, errors.Errorf("rig: duplicate part %q", p.Name)
		}
		t.index[p.Name] = i
	}

	for i, p := range t.parts {
		if p.Parent == "" {
			if p.Name != RootName {
				return nil, errors.Errorf("rig: part %q has no parent", p.Name)
			}
			t.root = i
		} else {
			pi, ok := t.index[p.Parent]
			if !ok {
				return nil, errors.Errorf("rig: part %q has unknown parent %q", p.Name, p.Parent)
			}
			if pi == i {
				return nil, errors.Errorf("rig: part %q is its own parent", p.Name)
			}
			t.children[pi] = append(t.children[pi], i)
		}

		if p.Joint != pose.NoJoint && !p.Joint.Valid() {
			return nil, errors.Errorf("rig: part %q uses unknown joint %d", p.Name, int(p.Joint))
		}
		if p.Shape == ShapeNone {
			continue
		}
		t.shapes++
		if _, ok := t.materials[p.Material]; !ok {
			return nil, errors.Errorf("rig: part %q uses unknown material %q", p.Name, p.Material)
		}
		if p.Size[0] < 0 || p.Size[1] < 0 || p.Size[2] < 0 {
			return nil, errors.Errorf("rig: part %q has a negative size", p.Name)
		}
	}

	if t.root < 0 {
		return nil, errors.Errorf("rig: no %q part", RootName)
	}

	// Every part has exactly one parent, so anything the root cannot reach
	// sits on a cycle.
	seen := make([]bool, len(t.parts))
	var visit func(i int)
	visit = func(i int) {
		seen[i] = true
		for _, c := range t.children[i] {
			visit(c)
		}
	}
	visit(t.root)
	for i, ok := range seen {
		if !ok {
			return nil, errors.Errorf("rig: part %q is on a parent cycle", t.parts[i].Name)
		}
	}

	return t, nil
}

// Len returns the number of parts, shapeless nodes included.
func (t *Table) Len() int { return len(t.parts) }

// Part returns the named part.
func (t *Table) Part(name string) (Part, bool) {
	i, ok := t.index[name]
	if !ok {
		return Part{}, false
	}
	return t.parts[i], true
}

// Parts returns a copy of the parts in table order.
func (t *Table) Parts() []Part {
	return append([]Part(nil), t.parts...)
}

// Material returns the named material.
func (t *Table) Material(name string) (Material, bool) {
	m, ok := t.materials[name]
	return m, ok
}

// Materials returns every material keyed by name.
func (t *Table) Materials() map[string]Material {
	out := make(map[string]Material, len(t.materials))
	for k, v := range t.materials {
		out[k] = v
	}
	return out
}

// Subtree returns the names of part and all of its descendants in draw order.
func (t *Table) Subtree(name string) []string {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	var out []string
	var walk func(i int)
	walk = func(i int) {
		out = append(out, t.parts[i].Name)
		for _, c := range t.children[i] {
			walk(c)
		}
	}
	walk(i)
	return out
}
