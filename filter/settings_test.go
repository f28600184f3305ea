// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	set := NewSettings(Sharpen)
	assert.Equal(t, Sharpen, set.Kind)
	assert.Equal(t, float32(1), set.Strength)
	assert.Equal(t, 1, set.IterationCount)
	assert.Equal(t, Local, set.Orientation)
	assert.True(t, set.Axes.HasFlag(AxisX))
	assert.True(t, set.Axes.HasFlag(AxisY))
	assert.True(t, set.Axes.HasFlag(AxisZ))
	assert.Equal(t, float32(0.25), set.AreaNormalRadius)
	assert.Equal(t, float32(0.5), set.SurfaceSmoothShapePreservation)
	assert.Equal(t, float32(0.5), set.SurfaceSmoothCurrentVertex)
	assert.Equal(t, float32(0.35), set.SharpenSmoothRatio)
	assert.Equal(t, 0, set.SharpenCurvatureSmoothIterations)
}

func TestSettingsValidate(t *testing.T) {
	set := NewSettings(Smooth)
	assert.NoError(t, set.Validate())

	set.Strength = 11
	assert.Error(t, set.Validate())
	set.Strength = 1

	set.IterationCount = 0
	assert.Error(t, set.Validate())
	set.IterationCount = 1

	set.Kind = KindsN
	assert.Error(t, set.Validate())
}

func TestSettingsTOMLRoundTrip(t *testing.T) {
	set := NewSettings(Sphere)
	set.Strength = -2.5
	set.IterationCount = 4
	set.Orientation = View
	set.Axes = 0
	set.Axes.SetFlag(true, AxisX, AxisZ)
	set.RandomSeed = 99

	fn := filepath.Join(t.TempDir(), "filter.toml")
	require.NoError(t, set.Save(fn))

	got := &Settings{}
	require.NoError(t, got.Open(fn))
	assert.Equal(t, set, got)
}

func TestKindsStrings(t *testing.T) {
	assert.Equal(t, "smooth", Smooth.String())
	assert.Equal(t, "relax_face_sets", RelaxFaceSets.String())
	assert.Equal(t, "erase_displacement", EraseDisplacement.String())
	assert.Equal(t, "view", View.String())

	var k Kinds
	require.NoError(t, k.SetString("sharpen"))
	assert.Equal(t, Sharpen, k)
}

func TestKindsClassification(t *testing.T) {
	continuous := map[Kinds]bool{Smooth: true, Sharpen: true, Relax: true, RelaxFaceSets: true}
	for _, k := range KindsValues() {
		assert.Equal(t, continuous[k], k.IsContinuous(), k.String())
	}
	assert.True(t, SurfaceSmooth.TwoPass())
	assert.False(t, Smooth.TwoPass())
	assert.True(t, Relax.NeedsNormalsUpdate())
	assert.True(t, RelaxFaceSets.NeedsNormalsUpdate())
	assert.False(t, Inflate.NeedsNormalsUpdate())
}
