// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automask

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/sculpt/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledIsNeutral(t *testing.T) {
	m := mesh.NewBox(math32.Vec3(1, 1, 1))

	assert.Nil(t, New(m, nil))
	assert.Nil(t, New(m, &Config{}))
	assert.False(t, (&Config{PropagationSteps: 3}).Enabled())

	var ac *Cache
	assert.Equal(t, float32(1), ac.Factor(0), "nil cache is neutral")
	ac.Release()
}

func TestFaceSetRestriction(t *testing.T) {
	m := mesh.NewGrid(math32.Vec2(2, 2), 4)
	m.SplitFaceSets(0)

	ac := New(m, &Config{FaceSet: true, ActiveFaceSet: 1})
	require.NotNil(t, ac)

	for v := 0; v < m.NumVertices(); v++ {
		if m.HasFaceSet(v, 1) {
			assert.Equal(t, float32(1), ac.Factor(v), "vertex %d in set", v)
		} else {
			assert.Equal(t, float32(0), ac.Factor(v), "vertex %d out of set", v)
		}
	}
	ac.Release()
}

func TestBoundaryMask(t *testing.T) {
	m := mesh.NewGrid(math32.Vec2(2, 2), 4)
	ac := New(m, &Config{Boundary: true})
	require.NotNil(t, ac)

	assert.Equal(t, float32(0), ac.Factor(0), "corner")
	assert.Equal(t, float32(1), ac.Factor(12), "center untouched without propagation")
}

func TestBoundaryPropagation(t *testing.T) {
	m := mesh.NewGrid(math32.Vec2(2, 2), 8)
	ac := New(m, &Config{Boundary: true, PropagationSteps: 2})
	require.NotNil(t, ac)

	center := 40 // (4,4) in the 9x9 grid
	assert.Equal(t, float32(0), ac.Factor(0))
	assert.Equal(t, float32(1), ac.Factor(center), "outside the falloff rings")

	// one ring in from the boundary: linear falloff, strictly between
	ring1 := 9 + 1 // (1,1)
	f := ac.Factor(ring1)
	assert.Greater(t, f, float32(0))
	assert.Less(t, f, float32(1))
}

func TestFaceSetBoundaryMask(t *testing.T) {
	m := mesh.NewGrid(math32.Vec2(2, 2), 4)
	m.SplitFaceSets(0)
	ac := New(m, &Config{FaceSetBoundary: true})
	require.NotNil(t, ac)

	assert.Equal(t, float32(0), ac.Factor(12), "center is on the split line")
	assert.Equal(t, float32(1), ac.Factor(0), "corner has a unique face set")
}
