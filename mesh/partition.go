// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"sort"

	"cogentcore.org/core/math32"
)

// Partition groups a mesh's vertexes into disjoint spatial buckets
// (nodes), the unit of parallel work for sculpt filters. Every vertex
// belongs to exactly one node. Nodes are built once by recursive median
// split along the longest bounding axis and do not change while the
// mesh is being sculpted.
type Partition struct {
	// Mesh is the partitioned mesh.
	Mesh *Mesh

	nodes        [][]int
	needsUpdate  []bool
	needsNormals []bool
	bounds       math32.Box3
}

// NewPartition builds a partition of the given mesh with nodes of at
// most leafSize vertexes.
func NewPartition(m *Mesh, leafSize int) *Partition {
	if leafSize < 1 {
		leafSize = 1
	}
	pt := &Partition{Mesh: m}
	verts := make([]int, m.NumVertices())
	for i := range verts {
		verts[i] = i
	}
	pt.split(verts, leafSize)
	pt.needsUpdate = make([]bool, len(pt.nodes))
	pt.needsNormals = make([]bool, len(pt.nodes))
	pt.UpdateBounds()
	return pt
}

// split recursively median-splits the vertex set along the longest
// bounding axis until it fits in one node.
func (pt *Partition) split(verts []int, leafSize int) {
	if len(verts) <= leafSize {
		nd := make([]int, len(verts))
		copy(nd, verts)
		pt.nodes = append(pt.nodes, nd)
		return
	}
	b := math32.B3Empty()
	for _, v := range verts {
		b.ExpandByPoint(pt.Mesh.Positions[v])
	}
	sz := b.Size()
	axis := math32.X
	if sz.Y > sz.X && sz.Y >= sz.Z {
		axis = math32.Y
	} else if sz.Z > sz.X && sz.Z > sz.Y {
		axis = math32.Z
	}
	sort.Slice(verts, func(i, j int) bool {
		return pt.Mesh.Positions[verts[i]].Dim(axis) < pt.Mesh.Positions[verts[j]].Dim(axis)
	})
	mid := len(verts) / 2
	pt.split(verts[:mid], leafSize)
	pt.split(verts[mid:], leafSize)
}

// NumNodes returns the number of nodes in the partition.
func (pt *Partition) NumNodes() int {
	return len(pt.nodes)
}

// NodeVertices returns the vertexes of the given node. The returned
// slice is owned by the partition and must not be modified.
func (pt *Partition) NodeVertices(node int) []int {
	return pt.nodes[node]
}

// MarkUpdate flags the given node as having modified positions.
func (pt *Partition) MarkUpdate(node int) {
	pt.needsUpdate[node] = true
}

// MarkNormalsUpdate flags the given node as needing a normals refresh.
func (pt *Partition) MarkNormalsUpdate(node int) {
	pt.needsNormals[node] = true
}

// UpdateNormals recomputes mesh normals if any node is flagged for a
// normals refresh, and clears the flags.
func (pt *Partition) UpdateNormals() {
	todo := false
	for i, nu := range pt.needsNormals {
		if nu {
			todo = true
			pt.needsNormals[i] = false
		}
	}
	if todo {
		pt.Mesh.UpdateNormals()
	}
}

// UpdateBounds recomputes the partition bounding box from the current
// positions and clears the node update flags.
func (pt *Partition) UpdateBounds() {
	pt.bounds = pt.Mesh.Bounds()
	for i := range pt.needsUpdate {
		pt.needsUpdate[i] = false
	}
}

// Bounds returns the bounding box computed by the last [Partition.UpdateBounds].
func (pt *Partition) Bounds() math32.Box3 {
	return pt.bounds
}
