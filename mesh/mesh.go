// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the triangle mesh representation used by the
// sculpt filter engine: vertex positions, normals, paint mask, face sets,
// topology queries, and the node partition used as the unit of parallel
// work. Topology is fixed for the lifetime of a mesh; only vertex
// positions (and derived normals and bounds) change during sculpting.
package mesh

import (
	"cogentcore.org/core/base/slicesx"
	"cogentcore.org/core/math32"
)

// FaceSetNone is the face set id of faces that have no assigned face set.
const FaceSetNone int32 = 0

// Mesh is an indexed triangle mesh with the per-vertex attributes that
// sculpt filters read and write. All per-vertex slices have the same
// length, equal to [Mesh.NumVertices].
type Mesh struct {
	// Positions are the vertex positions in object space.
	Positions []math32.Vector3

	// Normals are the per-vertex unit normals, accumulated from the
	// adjacent triangle normals. Call [Mesh.UpdateNormals] after
	// modifying positions.
	Normals []math32.Vector3

	// Mask is the per-vertex paint mask in [0,1]; 1 = fully masked.
	// A nil Mask means no vertex is masked.
	Mask []float32

	// FaceSets has one face set id per triangle; nil means all faces
	// are in [FaceSetNone].
	FaceSets []int32

	// Triangles are the triangle vertex indexes, 3 per face.
	Triangles []int32

	// Limit is an optional externally supplied limit-surface position
	// per vertex, for displacement removal on multiresolution data.
	// Nil when the mesh has no displacement layer.
	Limit []math32.Vector3

	// neighbors[v] lists the vertexes sharing an edge with v.
	neighbors [][]int

	// vertFaces[v] lists the triangles touching v.
	vertFaces [][]int

	// boundary[v] is whether v is on an open mesh boundary.
	boundary []bool

	// staleNormal[v] flags vertexes whose normal needs recomputation.
	staleNormal []bool
}

// New returns a mesh with the given positions and triangle indexes,
// with adjacency and boundary tables built and normals computed.
func New(positions []math32.Vector3, triangles []int32) *Mesh {
	m := &Mesh{Positions: positions, Triangles: triangles}
	m.Normals = make([]math32.Vector3, len(positions))
	m.staleNormal = make([]bool, len(positions))
	m.buildTopology()
	m.UpdateNormals()
	return m
}

// NumVertices returns the number of vertexes in the mesh.
func (m *Mesh) NumVertices() int {
	return len(m.Positions)
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Triangles) / 3
}

// Co returns the current position of vertex v.
func (m *Mesh) Co(v int) math32.Vector3 {
	return m.Positions[v]
}

// SetCo sets the position of vertex v and flags its normal as stale.
func (m *Mesh) SetCo(v int, co math32.Vector3) {
	m.Positions[v] = co
	m.staleNormal[v] = true
}

// Normal returns the current unit normal of vertex v.
func (m *Mesh) Normal(v int) math32.Vector3 {
	return m.Normals[v]
}

// MaskValue returns the paint mask of vertex v, 0 if the mesh has no mask.
func (m *Mesh) MaskValue(v int) float32 {
	if m.Mask == nil {
		return 0
	}
	return m.Mask[v]
}

// Neighbors returns the vertexes sharing an edge with v.
// The returned slice is owned by the mesh and must not be modified.
func (m *Mesh) Neighbors(v int) []int {
	return m.neighbors[v]
}

// IsBoundary returns whether vertex v is on an open mesh boundary.
func (m *Mesh) IsBoundary(v int) bool {
	return m.boundary[v]
}

// FaceSet returns the face set id of triangle f.
func (m *Mesh) FaceSet(f int) int32 {
	if m.FaceSets == nil {
		return FaceSetNone
	}
	return m.FaceSets[f]
}

// HasUniqueFaceSet returns whether every face touching vertex v belongs
// to the same face set, i.e., v is not on a face set boundary.
func (m *Mesh) HasUniqueFaceSet(v int) bool {
	fs := m.vertFaces[v]
	if len(fs) == 0 {
		return true
	}
	first := m.FaceSet(fs[0])
	for _, f := range fs[1:] {
		if m.FaceSet(f) != first {
			return false
		}
	}
	return true
}

// HasFaceSet returns whether any face touching vertex v belongs to the
// given face set.
func (m *Mesh) HasFaceSet(v int, set int32) bool {
	for _, f := range m.vertFaces[v] {
		if m.FaceSet(f) == set {
			return true
		}
	}
	return false
}

// LimitSurfaceCo returns the limit surface position for vertex v,
// falling back to the current position when the mesh has no
// displacement layer.
func (m *Mesh) LimitSurfaceCo(v int) math32.Vector3 {
	if m.Limit == nil {
		return m.Positions[v]
	}
	return m.Limit[v]
}

// SetMaskAll sets the paint mask of every vertex to the given value.
func (m *Mesh) SetMaskAll(mask float32) {
	m.Mask = slicesx.SetLength(m.Mask, len(m.Positions))
	for i := range m.Mask {
		m.Mask[i] = mask
	}
}

// UpdateNormals recomputes all vertex normals from triangle geometry
// and clears the stale flags.
func (m *Mesh) UpdateNormals() {
	for i := range m.Normals {
		m.Normals[i].SetZero()
	}
	nt := m.NumTriangles()
	for f := 0; f < nt; f++ {
		a, b, c := m.triVerts(f)
		fn := math32.Normal(m.Positions[a], m.Positions[b], m.Positions[c])
		m.Normals[a].SetAdd(fn)
		m.Normals[b].SetAdd(fn)
		m.Normals[c].SetAdd(fn)
	}
	for i := range m.Normals {
		m.Normals[i] = m.Normals[i].Normal()
		m.staleNormal[i] = false
	}
}

// Bounds returns the axis-aligned bounding box of the current positions.
func (m *Mesh) Bounds() math32.Box3 {
	b := math32.B3Empty()
	b.SetFromPoints(m.Positions)
	return b
}

func (m *Mesh) triVerts(f int) (int, int, int) {
	return int(m.Triangles[3*f]), int(m.Triangles[3*f+1]), int(m.Triangles[3*f+2])
}

// buildTopology fills the neighbor, vertex-face, and boundary tables.
// Boundary detection counts edge uses: an edge used by only one triangle
// is open, and both of its vertexes are boundary vertexes.
func (m *Mesh) buildTopology() {
	nv := len(m.Positions)
	m.neighbors = make([][]int, nv)
	m.vertFaces = make([][]int, nv)
	m.boundary = make([]bool, nv)

	type edge struct{ a, b int }
	edgeUses := map[edge]int{}
	addEdge := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		e := edge{a, b}
		if edgeUses[e] == 0 {
			m.neighbors[a] = append(m.neighbors[a], b)
			m.neighbors[b] = append(m.neighbors[b], a)
		}
		edgeUses[e]++
	}

	nt := m.NumTriangles()
	for f := 0; f < nt; f++ {
		a, b, c := m.triVerts(f)
		m.vertFaces[a] = append(m.vertFaces[a], f)
		m.vertFaces[b] = append(m.vertFaces[b], f)
		m.vertFaces[c] = append(m.vertFaces[c], f)
		addEdge(a, b)
		addEdge(b, c)
		addEdge(c, a)
	}
	for e, n := range edgeUses {
		if n == 1 {
			m.boundary[e.a] = true
			m.boundary[e.b] = true
		}
	}
}
