// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/reflectx"
)

// Settings are the user-facing parameters of a filter operation.
// They are configuration inputs, not operation state: [Start] copies
// what it needs into the [Cache]. Zero-valued settings can be filled
// from the `default:` tags with [NewSettings] or [Settings.Defaults],
// and saved or loaded as TOML.
type Settings struct {
	// Kind is the operation applied to the mesh.
	Kind Kinds

	// Strength is the filter strength.
	Strength float32 `default:"1" min:"-10" max:"10"`

	// IterationCount is how many times the non-interactive path
	// repeats the filter.
	IterationCount int `default:"1" min:"1" max:"10000"`

	// Orientation of the axes used to limit the displacement.
	Orientation Orientations

	// Axes the deformation is applied along.
	Axes Axes `default:"X|Y|Z"`

	// AreaNormalRadius is the radius, as a fraction of the brush
	// radius, used to calculate the area normal at the initial click.
	AreaNormalRadius float32 `default:"0.25" min:"0.001" max:"5"`

	// RandomSeed seeds the Random kind; 0 draws a fresh seed at start.
	RandomSeed uint32

	// ActiveFaceSet restricts automasking to one face set.
	ActiveFaceSet int32

	// SurfaceSmoothShapePreservation is how much of the original shape
	// is preserved when smoothing.
	SurfaceSmoothShapePreservation float32 `default:"0.5" min:"0" max:"1"`

	// SurfaceSmoothCurrentVertex is how much the position of each
	// individual vertex influences the final result.
	SurfaceSmoothCurrentVertex float32 `default:"0.5" min:"0" max:"1"`

	// SharpenSmoothRatio is how much smoothing is applied to polished
	// surfaces.
	SharpenSmoothRatio float32 `default:"0.35" min:"0" max:"1"`

	// SharpenIntensifyDetailStrength is how much creases and valleys
	// are intensified.
	SharpenIntensifyDetailStrength float32 `default:"0" min:"0" max:"10"`

	// SharpenCurvatureSmoothIterations is how much the resulting shape
	// is smoothed, ignoring high frequency details.
	SharpenCurvatureSmoothIterations int `default:"0" min:"0" max:"10"`
}

// NewSettings returns settings for the given kind with all parameters
// at their defaults.
func NewSettings(kind Kinds) *Settings {
	set := &Settings{}
	set.Defaults()
	set.Kind = kind
	return set
}

// Defaults sets all parameters to their `default:` tag values.
func (st *Settings) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(st))
	st.Axes = 0
	st.Axes.SetFlag(true, AxisX, AxisY, AxisZ)
}

// Validate returns an error for parameter values outside their
// documented ranges.
func (st *Settings) Validate() error {
	if st.Strength < -10 || st.Strength > 10 {
		return fmt.Errorf("filter.Settings: strength %g out of range [-10, 10]", st.Strength)
	}
	if st.IterationCount < 1 || st.IterationCount > 10000 {
		return fmt.Errorf("filter.Settings: iteration count %d out of range [1, 10000]", st.IterationCount)
	}
	if st.Kind < 0 || st.Kind >= KindsN {
		return fmt.Errorf("filter.Settings: invalid kind %d", int(st.Kind))
	}
	return nil
}

// Open loads settings from the given TOML file.
func (st *Settings) Open(filename string) error {
	return errors.Log(tomlx.Open(st, filename))
}

// Save writes settings to the given TOML file.
func (st *Settings) Save(filename string) error {
	return errors.Log(tomlx.Save(st, filename))
}
