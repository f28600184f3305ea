// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/core/math32"

// NewBox returns a closed box mesh centered on the origin with the given
// size per dimension: 8 vertexes and 12 triangles, with shared corner
// vertexes so each corner normal points along the corner diagonal.
func NewBox(size math32.Vector3) *Mesh {
	h := size.MulScalar(0.5)
	pos := []math32.Vector3{
		{X: -h.X, Y: -h.Y, Z: -h.Z},
		{X: h.X, Y: -h.Y, Z: -h.Z},
		{X: h.X, Y: h.Y, Z: -h.Z},
		{X: -h.X, Y: h.Y, Z: -h.Z},
		{X: -h.X, Y: -h.Y, Z: h.Z},
		{X: h.X, Y: -h.Y, Z: h.Z},
		{X: h.X, Y: h.Y, Z: h.Z},
		{X: -h.X, Y: h.Y, Z: h.Z},
	}
	tris := []int32{
		0, 2, 1, 0, 3, 2, // back (-Z)
		4, 5, 6, 4, 6, 7, // front (+Z)
		0, 1, 5, 0, 5, 4, // bottom (-Y)
		3, 7, 6, 3, 6, 2, // top (+Y)
		0, 4, 7, 0, 7, 3, // left (-X)
		1, 2, 6, 1, 6, 5, // right (+X)
	}
	return New(pos, tris)
}

// NewGrid returns a flat grid mesh in the XY plane centered on the
// origin, with the given total size and number of segments per side.
// Grid edges are open mesh boundaries, making it the standard test
// surface for boundary-aware smoothing.
func NewGrid(size math32.Vector2, segs int) *Mesh {
	if segs < 1 {
		segs = 1
	}
	n := segs + 1
	pos := make([]math32.Vector3, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			px := (float32(x)/float32(segs) - 0.5) * size.X
			py := (float32(y)/float32(segs) - 0.5) * size.Y
			pos = append(pos, math32.Vec3(px, py, 0))
		}
	}
	tris := make([]int32, 0, segs*segs*6)
	for y := 0; y < segs; y++ {
		for x := 0; x < segs; x++ {
			v0 := int32(y*n + x)
			v1 := v0 + 1
			v2 := v0 + int32(n) + 1
			v3 := v0 + int32(n)
			tris = append(tris, v0, v1, v2, v0, v2, v3)
		}
	}
	return New(pos, tris)
}

// SplitFaceSets assigns face sets by splitting the mesh at the given X
// coordinate of each triangle centroid: faces left of x get set 1,
// the rest set 2.
func (m *Mesh) SplitFaceSets(x float32) {
	nt := m.NumTriangles()
	m.FaceSets = make([]int32, nt)
	for f := 0; f < nt; f++ {
		a, b, c := m.triVerts(f)
		cx := (m.Positions[a].X + m.Positions[b].X + m.Positions[c].X) / 3
		if cx < x {
			m.FaceSets[f] = 1
		} else {
			m.FaceSets[f] = 2
		}
	}
}
