package mesh

// Triangle holds polygon type and index quads into the vertex and texcoord arrays.
// Polygon == 4 means quad (two triangles: 0-1-2 and 0-2-3).
type Triangle struct {
	Polygon int
	VI      [4]int16
	TI      [4]int16
}

// Mesh holds the geometry of one canonical primitive.
type Mesh struct {
	Verts [][3]float32
	UVs   [][2]float32
	Tris  []Triangle
}

// Faces calls fn once per triangle, splitting quads, with vertex and texcoord
// index triples. Winding is counter-clockwise seen from outside.
func (m *Mesh) Faces(fn func(vi, ti [3]int)) {
	for _, t := range m.Tris {
		fn([3]int{int(t.VI[0]), int(t.VI[1]), int(t.VI[2])}, [3]int{int(t.TI[0]), int(t.TI[1]), int(t.TI[2])})
		if t.Polygon == 4 {
			fn([3]int{int(t.VI[0]), int(t.VI[2]), int(t.VI[3])}, [3]int{int(t.TI[0]), int(t.TI[2]), int(t.TI[3])})
		}
	}
}

// FaceCount returns the number of triangles after quad splitting.
func (m *Mesh) FaceCount() int {
	n := 0
	for _, t := range m.Tris {
		n++
		if t.Polygon == 4 {
			n++
		}
	}
	return n
}
