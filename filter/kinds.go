// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

// Kinds are the mesh filter kinds: the deformation rule applied to
// every unmasked vertex on each iteration.
type Kinds int32 //enums:enum -transform snake

const (
	// Smooth moves each vertex toward the average of its neighbors.
	Smooth Kinds = iota

	// Scale scales the mesh around the object origin.
	Scale

	// Inflate moves each vertex along its original normal.
	Inflate

	// Sphere morphs the mesh toward a sphere around the object origin.
	Sphere

	// Random displaces each vertex along its normal by a deterministic
	// coordinate-hashed amount.
	Random

	// Relax evens out edge lengths without shrinking the surface,
	// keeping boundary vertexes on the boundary.
	Relax

	// RelaxFaceSets relaxes and smooths the edges between face sets.
	RelaxFaceSets

	// SurfaceSmooth smooths the surface while preserving volume,
	// using two-pass HC Laplacian smoothing.
	SurfaceSmooth

	// Sharpen accentuates the cavities and peaks of the mesh.
	Sharpen

	// EnhanceDetails exaggerates the high frequency surface detail.
	EnhanceDetails

	// EraseDisplacement removes displacement toward the limit surface.
	EraseDisplacement
)

// Orientations are the coordinate frames in which the deform axis mask
// is interpreted.
type Orientations int32 //enums:enum -transform kebab

const (
	// Local limits displacement along the object's local axes.
	// Sculpting already works in object space, so this is the identity
	// frame.
	Local Orientations = iota

	// World limits displacement along the global axes.
	World

	// View limits displacement along the view axes.
	View
)

// Axes is the set of axes along which displacement is allowed,
// in the configured orientation frame.
type Axes int64 //enums:bitflag

const (
	// AxisX allows displacement along X.
	AxisX Axes = iota

	// AxisY allows displacement along Y.
	AxisY

	// AxisZ allows displacement along Z.
	AxisZ
)

// IsContinuous returns whether the kind's result depends on the exact
// sequence of per-iteration strengths, requiring the event history to
// be recorded for faithful re-execution.
func (k Kinds) IsContinuous() bool {
	switch k {
	case Sharpen, Smooth, Relax, RelaxFaceSets:
		return true
	}
	return false
}

// NeedsNeighbors returns whether the kind reads neighbor topology.
func (k Kinds) NeedsNeighbors() bool {
	switch k {
	case Smooth, Relax, RelaxFaceSets, SurfaceSmooth, EnhanceDetails, Sharpen:
		return true
	}
	return false
}

// TwoPass returns whether the kind requires two barrier-separated
// parallel passes per iteration.
func (k Kinds) TwoPass() bool {
	return k == SurfaceSmooth
}

// NeedsNormalsUpdate returns whether the kind reads updated normals on
// subsequent iterations, requiring a normals refresh after each apply.
func (k Kinds) NeedsNormalsUpdate() bool {
	return k == Relax || k == RelaxFaceSets
}
