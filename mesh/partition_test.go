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

func TestPartitionCoversAllVertices(t *testing.T) {
	m := NewGrid(math32.Vec2(2, 2), 8)
	pt := NewPartition(m, 16)
	require.Greater(t, pt.NumNodes(), 1)

	seen := make(map[int]int)
	for nd := 0; nd < pt.NumNodes(); nd++ {
		vs := pt.NodeVertices(nd)
		assert.LessOrEqual(t, len(vs), 16)
		for _, v := range vs {
			seen[v]++
		}
	}
	require.Len(t, seen, m.NumVertices())
	for v, n := range seen {
		assert.Equal(t, 1, n, "vertex %d in %d nodes", v, n)
	}
}

func TestPartitionSingleNode(t *testing.T) {
	m := NewBox(math32.Vec3(1, 1, 1))
	pt := NewPartition(m, 100)
	assert.Equal(t, 1, pt.NumNodes())
	assert.Len(t, pt.NodeVertices(0), 8)
}

func TestPartitionBounds(t *testing.T) {
	m := NewBox(math32.Vec3(1, 2, 3))
	pt := NewPartition(m, 2)
	b := pt.Bounds()
	assert.Equal(t, math32.Vec3(1, 2, 3), b.Size())

	// bounds follow position changes after an update pass
	co := m.Co(0)
	co.Z -= 1
	m.SetCo(0, co)
	for nd := 0; nd < pt.NumNodes(); nd++ {
		pt.MarkUpdate(nd)
	}
	pt.UpdateBounds()
	assert.Equal(t, float32(-2.5), pt.Bounds().Min.Z)
}

func TestPartitionUpdateNormals(t *testing.T) {
	m := NewGrid(math32.Vec2(2, 2), 4)
	pt := NewPartition(m, 4)
	co := m.Co(12)
	co.Z = 0.5
	m.SetCo(12, co)

	for nd := 0; nd < pt.NumNodes(); nd++ {
		pt.MarkNormalsUpdate(nd)
	}
	pt.UpdateNormals()
	assert.Less(t, m.Normal(11).Z, float32(1))
}
