// Package mesh tessellates the canonical primitives the rig draws: a unit
// cube and a unit cylinder, both centred on the origin.
package mesh

import (
	"math"
	"sync"

	"robot-rig/internal/rig"
)

// CylinderSegments is the number of sides used for cylinders.
const CylinderSegments = 20

var (
	unitOnce     sync.Once
	unitCube     *Mesh
	unitCylinder *Mesh
)

// Unit returns the shared canonical mesh for s, or nil for rig.ShapeNone.
// The returned mesh must not be modified.
func Unit(s rig.Shape) *Mesh {
	unitOnce.Do(func() {
		unitCube = Cube()
		unitCylinder = Cylinder(CylinderSegments)
	})
	switch s {
	case rig.ShapeCube:
		return unitCube
	case rig.ShapeCylinder:
		return unitCylinder
	}
	return nil
}

// Cube returns a 1×1×1 cube centred on the origin: 6 quads, 24 vertices so
// each face gets its own UVs.
func Cube() *Mesh {
	// Each face: outward normal axis and the two in-plane axes (u, v) chosen
	// so u × v = normal, giving counter-clockwise winding from outside.
	faces := []struct{ n, u, v [3]float32 }{
		{n: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{n: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
		{n: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
	}
	corners := [4][2]float32{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}

	m := &Mesh{}
	for _, f := range faces {
		base := int16(len(m.Verts))
		for _, c := range corners {
			var p [3]float32
			for k := 0; k < 3; k++ {
				p[k] = f.n[k]*0.5 + f.u[k]*c[0] + f.v[k]*c[1]
			}
			m.Verts = append(m.Verts, p)
			m.UVs = append(m.UVs, [2]float32{c[0] + 0.5, 0.5 - c[1]})
		}
		idx := [4]int16{base, base + 1, base + 2, base + 3}
		m.Tris = append(m.Tris, Triangle{Polygon: 4, VI: idx, TI: idx})
	}
	return m
}

// Cylinder returns a cylinder of diameter 1 and height 1 along Y, centred on
// the origin, with capped ends.
func Cylinder(segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{}

	// Side: ring pairs, seam duplicated so UVs wrap cleanly.
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		x, z := float32(0.5*math.Cos(a)), float32(0.5*math.Sin(a))
		u := float32(i) / float32(segments)
		m.Verts = append(m.Verts, [3]float32{x, -0.5, z}, [3]float32{x, 0.5, z})
		m.UVs = append(m.UVs, [2]float32{u, 1}, [2]float32{u, 0})
	}
	for i := 0; i < segments; i++ {
		b0, t0 := int16(2*i), int16(2*i+1)
		b1, t1 := int16(2*i+2), int16(2*i+3)
		// Angle grows from +X towards +Z, so b0 b1 t1 t0 would face inward.
		idx := [4]int16{b0, t0, t1, b1}
		m.Tris = append(m.Tris, Triangle{Polygon: 4, VI: idx, TI: idx})
	}

	// Caps: fan around a centre vertex.
	for _, y := range []float32{0.5, -0.5} {
		center := int16(len(m.Verts))
		m.Verts = append(m.Verts, [3]float32{0, y, 0})
		m.UVs = append(m.UVs, [2]float32{0.5, 0.5})
		ring := int16(len(m.Verts))
		for i := 0; i < segments; i++ {
			a := 2 * math.Pi * float64(i) / float64(segments)
			c, s := float32(math.Cos(a)), float32(math.Sin(a))
			m.Verts = append(m.Verts, [3]float32{0.5 * c, y, 0.5 * s})
			m.UVs = append(m.UVs, [2]float32{0.5 + 0.5*c, 0.5 + 0.5*s})
		}
		for i := 0; i < segments; i++ {
			a, b := ring+int16(i), ring+int16((i+1)%segments)
			if y > 0 {
				a, b = b, a
			}
			idx := [4]int16{center, a, b, 0}
			m.Tris = append(m.Tris, Triangle{Polygon: 3, VI: idx, TI: idx})
		}
	}
	return m
}
