package rig

import (
	"robot-rig/internal/mathutil"
	"robot-rig/internal/pose"
)

// DrawCall is one primitive to render. Pivot is the world transform at the
// part's pivot after its rotation; Model adds the visual offset and scale.
type DrawCall struct {
	Part     string
	Shape    Shape
	Material string
	Pivot    mathutil.Mat4
	Model    mathutil.Mat4
}

// Builder turns poses into draw lists for one table. It holds no per-frame
// state; the table it reads is immutable.
type Builder struct {
	table *Table
}

func NewBuilder(t *Table) *Builder {
	return &Builder{table: t}
}

// Table returns the part table the builder traverses.
func (b *Builder) Table() *Table { return b.table }

// Build returns the draw calls for p in depth-first table order.
func (b *Builder) Build(p pose.Pose) []DrawCall {
	return b.AppendBuild(make([]DrawCall, 0, b.table.shapes), p)
}

// AppendBuild appends the draw calls for p to dst, so a render loop can reuse
// one buffer across frames.
func (b *Builder) AppendBuild(dst []DrawCall, p pose.Pose) []DrawCall {
	b.walk(b.table.root, mathutil.Mat4Identity(), p, func(pt *Part, pivot mathutil.Mat4) {
		if pt.Shape == ShapeNone {
			return
		}
		dst = append(dst, DrawCall{
			Part:     pt.Name,
			Shape:    pt.Shape,
			Material: pt.Material,
			Pivot:    pivot,
			Model:    mathutil.Mat4Mul(pivot, pt.Visual()),
		})
	})
	return dst
}

// Pivots returns the world pivot transform of every part, shapeless nodes
// included.
func (b *Builder) Pivots(p pose.Pose) map[string]mathutil.Mat4 {
	out := make(map[string]mathutil.Mat4, len(b.table.parts))
	b.walk(b.table.root, mathutil.Mat4Identity(), p, func(pt *Part, pivot mathutil.Mat4) {
		out[pt.Name] = pivot
	})
	return out
}

// walk visits part i with the accumulated parent transform. Children receive
// the pivot transform, never the part's visual scale.
func (b *Builder) walk(i int, parent mathutil.Mat4, p pose.Pose, fn func(*Part, mathutil.Mat4)) {
	pt := &b.table.parts[i]
	pivot := mathutil.Mat4Mul(parent, pt.Local(p))
	fn(pt, pivot)
	for _, c := range b.table.children[i] {
		b.walk(c, pivot, p, fn)
	}
}
