// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxTopology(t *testing.T) {
	m := NewBox(math32.Vec3(1, 1, 1))
	assert.Equal(t, 8, m.NumVertices())
	assert.Equal(t, 12, m.NumTriangles())

	// a closed surface has no open boundary
	for v := 0; v < m.NumVertices(); v++ {
		assert.False(t, m.IsBoundary(v), "vertex %d", v)
	}

	// corner 0 shares the three box edges plus triangulation diagonals
	nbs := m.Neighbors(0)
	assert.Contains(t, nbs, 1)
	assert.Contains(t, nbs, 3)
	assert.Contains(t, nbs, 4)
}

func TestBoxNormalsOutward(t *testing.T) {
	m := NewBox(math32.Vec3(2, 2, 2))
	for v := 0; v < m.NumVertices(); v++ {
		no := m.Normal(v)
		assert.InDelta(t, 1, float64(no.Length()), 1e-5)
		assert.Greater(t, no.Dot(m.Co(v)), float32(0), "vertex %d", v)
	}
}

func TestGridBoundary(t *testing.T) {
	m := NewGrid(math32.Vec2(2, 2), 4)
	require.Equal(t, 25, m.NumVertices())
	assert.Equal(t, 32, m.NumTriangles())

	assert.True(t, m.IsBoundary(0), "corner")
	assert.True(t, m.IsBoundary(2), "edge midpoint")
	assert.False(t, m.IsBoundary(12), "center")
}

func TestGridNormals(t *testing.T) {
	m := NewGrid(math32.Vec2(2, 2), 4)
	for v := 0; v < m.NumVertices(); v++ {
		no := m.Normal(v)
		assert.Equal(t, float32(0), no.X, "vertex %d", v)
		assert.Equal(t, float32(0), no.Y, "vertex %d", v)
		assert.InDelta(t, 1, float64(no.Z), 1e-6, "vertex %d", v)
	}
}

func TestSetCoUpdateNormals(t *testing.T) {
	m := NewGrid(math32.Vec2(2, 2), 4)
	co := m.Co(12)
	co.Z = 0.5
	m.SetCo(12, co)
	m.UpdateNormals()

	// neighbors of the raised vertex tilt away from straight up
	assert.Less(t, m.Normal(11).Z, float32(1))
	assert.NotZero(t, m.Normal(11).X)
}

func TestMask(t *testing.T) {
	m := NewBox(math32.Vec3(1, 1, 1))
	assert.Equal(t, float32(0), m.MaskValue(0), "nil mask reads as unmasked")

	m.SetMaskAll(0.5)
	assert.Equal(t, float32(0.5), m.MaskValue(3))
}

func TestFaceSets(t *testing.T) {
	m := NewGrid(math32.Vec2(2, 2), 4)
	assert.True(t, m.HasUniqueFaceSet(12), "no face sets assigned")
	assert.Equal(t, FaceSetNone, m.FaceSet(0))

	m.SplitFaceSets(0)
	assert.True(t, m.HasUniqueFaceSet(0), "corner is inside set 1")
	assert.False(t, m.HasUniqueFaceSet(12), "center straddles the split")
	assert.True(t, m.HasFaceSet(12, 1))
	assert.True(t, m.HasFaceSet(12, 2))
	assert.False(t, m.HasFaceSet(0, 2))
}

func TestLimitSurfaceCo(t *testing.T) {
	m := NewBox(math32.Vec3(1, 1, 1))
	assert.Equal(t, m.Co(0), m.LimitSurfaceCo(0), "falls back to position")

	m.Limit = make([]math32.Vector3, m.NumVertices())
	m.Limit[0] = math32.Vec3(9, 9, 9)
	assert.Equal(t, math32.Vec3(9, 9, 9), m.LimitSurfaceCo(0))
}

func TestBounds(t *testing.T) {
	m := NewBox(math32.Vec3(1, 2, 3))
	b := m.Bounds()
	assert.Equal(t, math32.Vec3(1, 2, 3), b.Size())
	assert.Equal(t, math32.Vec3(-0.5, -1, -1.5), b.Min)
}
