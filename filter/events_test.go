// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/sculpt/mesh"
	"cogentcore.org/sculpt/undo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(m *mesh.Mesh, set *Settings) *Controller {
	pt := mesh.NewPartition(m, 4)
	rec := undo.NewRecord(m, set.Kind.String())
	return NewController(m, pt, rec, nil, IdentityFrame(), set)
}

func TestControllerStateMachine(t *testing.T) {
	m := bumpGrid(4)
	ct := newTestController(m, NewSettings(Smooth))
	assert.Equal(t, StateIdle, ct.State)

	// samples before start are ignored
	ct.HandleSample(Sample{Kind: Move, Pos: math32.Vec2(10, 0), Pressure: 1})
	assert.Equal(t, StateIdle, ct.State)

	require.NoError(t, ct.Start(math32.Vec2(100, 100)))
	assert.Equal(t, StateStarted, ct.State)
	assert.NotNil(t, ct.Cache())

	require.Error(t, ct.Start(math32.Vec2(0, 0)), "already active")

	ct.HandleSample(Sample{Kind: Move, Pos: math32.Vec2(140, 100), Pressure: 1})
	assert.Equal(t, StateRunning, ct.State)

	ct.HandleSample(Sample{Kind: Release, Pressure: 1})
	assert.Equal(t, StateFinished, ct.State)
	assert.Nil(t, ct.Cache())
}

func TestControllerStrengthFromDelta(t *testing.T) {
	m := bumpGrid(4)
	ct := newTestController(m, NewSettings(Smooth))
	require.NoError(t, ct.Start(math32.Vec2(100, 100)))

	// dragging right by 40 dots at start strength 1
	ct.HandleSample(Sample{Kind: Move, Pos: math32.Vec2(140, 100), Pressure: 1})
	assert.InDelta(t, 0.04, float64(ct.Settings.Strength), 1e-7)

	// dragging left of the origin inverts the filter
	ct.HandleSample(Sample{Kind: Move, Pos: math32.Vec2(60, 100), Pressure: 1})
	assert.InDelta(t, -0.04, float64(ct.Settings.Strength), 1e-7)

	ct.Cancel()
}

func TestControllerStrengthResetOnRelease(t *testing.T) {
	m := bumpGrid(4)
	set := NewSettings(Smooth)
	ct := newTestController(m, set)
	require.NoError(t, ct.Start(math32.Vec2(100, 100)))
	ct.HandleSample(Sample{Kind: Move, Pos: math32.Vec2(150, 100), Pressure: 1})
	require.NotEqual(t, float32(1), set.Strength)
	ct.HandleSample(Sample{Kind: Release, Pressure: 1})
	assert.Equal(t, float32(1), set.Strength)
}

func TestControllerCancelRestores(t *testing.T) {
	m := bumpGrid(4)
	orig := coords(m)
	ct := newTestController(m, NewSettings(Inflate))
	require.NoError(t, ct.Start(math32.Vec2(100, 100)))
	ct.HandleSample(Sample{Kind: Move, Pos: math32.Vec2(200, 100), Pressure: 1})
	require.NotEqual(t, orig, coords(m))

	ct.Cancel()
	assert.Equal(t, StateCancelled, ct.State)
	assert.Equal(t, orig, coords(m))
}

func TestHistoryRecordedForContinuousKinds(t *testing.T) {
	m := bumpGrid(4)
	ct := newTestController(m, NewSettings(Smooth))
	require.NoError(t, ct.Start(math32.Vec2(100, 100)))
	ct.HandleSample(Sample{Kind: Move, Pos: math32.Vec2(120, 100), Pressure: 1})
	ct.HandleSample(Sample{Kind: Move, Pos: math32.Vec2(140, 100), Pressure: 1})
	ct.HandleSample(Sample{Kind: Release, Pressure: 1})

	// press origin first, then one entry per motion sample
	require.Len(t, ct.History, 3)
	assert.Equal(t, math32.Vec2(100, 100), ct.History[0].Pos)
	assert.Equal(t, math32.Vec2(140, 100), ct.History[2].Pos)
}

func TestHistoryNotRecordedForOneShotKinds(t *testing.T) {
	m := bumpGrid(4)
	ct := newTestController(m, NewSettings(Inflate))
	require.NoError(t, ct.Start(math32.Vec2(100, 100)))
	ct.HandleSample(Sample{Kind: Move, Pos: math32.Vec2(120, 100), Pressure: 1})
	ct.HandleSample(Sample{Kind: Release, Pressure: 1})
	assert.Empty(t, ct.History)
}

func TestExecReplaysHistoryExactly(t *testing.T) {
	samples := []math32.Vector2{{X: 125, Y: 100}, {X: 150, Y: 100}, {X: 165, Y: 100}}

	ma := bumpGrid(6)
	ct := newTestController(ma, NewSettings(Smooth))
	require.NoError(t, ct.Start(math32.Vec2(100, 100)))
	for _, p := range samples {
		ct.HandleSample(Sample{Kind: Move, Pos: p, Pressure: 1})
	}
	ct.HandleSample(Sample{Kind: Release, Pressure: 1})
	interactive := coords(ma)

	mb := bumpGrid(6)
	cb := newTestController(mb, ct.Settings)
	cb.History = ct.History
	require.NoError(t, cb.Exec())

	assert.Equal(t, interactive, coords(mb))
}

func TestExecIterationsCompound(t *testing.T) {
	m := mesh.NewBox(math32.Vec3(1, 1, 1))
	rec := undo.NewRecord(m, "inflate")
	expected := make([]math32.Vector3, m.NumVertices())
	for v := range expected {
		e := rec.Co(v)
		for i := 0; i < 3; i++ {
			e.SetAdd(rec.Normal(v).MulScalar(0.1))
		}
		expected[v] = e
	}

	set := NewSettings(Inflate)
	set.Strength = 0.1
	set.IterationCount = 3
	pt := mesh.NewPartition(m, 4)
	ct := NewController(m, pt, rec, nil, IdentityFrame(), set)
	require.NoError(t, ct.Exec())

	assert.Equal(t, expected, coords(m))
	assert.Equal(t, StateFinished, ct.State)
}
