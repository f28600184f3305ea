// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter implements the sculpt mesh filters: whole-mesh
// deformations (smooth, inflate, sphere, relax, sharpen, etc.) applied
// iteratively to every unmasked vertex under interactive control.
//
// A filter operation is driven through a [Cache], created by [Start]
// and torn down by [Cache.Finish]. Each call to [Cache.Apply] runs one
// iteration in parallel across the node partition. The interactive and
// re-execution paths on top of that are provided by [Controller].
//
// The engine works against narrow contracts ([Surface], [Partition],
// [Automasker], [Snapshot]) rather than a concrete mesh type, so the
// spatial structure, masking, and undo subsystems stay external to it.
package filter

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/core/math32"
)

// Surface is the per-vertex view of the mesh being filtered. Position
// writes are partitioned by node during an iteration; all other methods
// must be safe for concurrent read-only use.
type Surface interface {

	// NumVertices returns the total vertex count, which must not change
	// for the lifetime of a filter operation.
	NumVertices() int

	// Co returns the current position of vertex v in object space.
	Co(v int) math32.Vector3

	// SetCo sets the position of vertex v and flags its normal stale.
	SetCo(v int, co math32.Vector3)

	// Normal returns the current unit normal of vertex v.
	Normal(v int) math32.Vector3

	// MaskValue returns the paint mask of vertex v in [0,1];
	// 1 is fully masked.
	MaskValue(v int) float32

	// Neighbors returns the vertexes sharing an edge with v.
	Neighbors(v int) []int

	// IsBoundary returns whether v is on an open mesh boundary.
	IsBoundary(v int) bool

	// HasUniqueFaceSet returns whether all faces touching v belong to
	// one face set.
	HasUniqueFaceSet(v int) bool

	// LimitSurfaceCo returns the limit surface position of v, used by
	// [EraseDisplacement]; implementations without a displacement
	// layer return the current position.
	LimitSurfaceCo(v int) math32.Vector3
}

// Partition is the node partition of the surface's vertexes: disjoint
// buckets used as the unit of parallel work. Nodes are addressed by
// index in [0, NumNodes).
type Partition interface {

	// NumNodes returns the number of nodes.
	NumNodes() int

	// NodeVertices returns the vertexes of the given node. Each vertex
	// belongs to exactly one node.
	NodeVertices(node int) []int

	// MarkUpdate flags the node as having modified positions.
	MarkUpdate(node int)

	// MarkNormalsUpdate flags the node as needing a normals refresh.
	MarkNormalsUpdate(node int)

	// UpdateNormals refreshes normals for flagged nodes.
	UpdateNormals()

	// UpdateBounds recomputes bounding volumes after positions change.
	UpdateBounds()
}

// Automasker supplies the external per-vertex automasking factor.
// Factor must be safe for concurrent use from worker goroutines.
type Automasker interface {

	// Factor returns the automasking factor of vertex v in [0,1].
	Factor(v int) float32

	// Release frees any per-operation masking state.
	Release()
}

// Snapshot serves the original (pre-filter) vertex state recorded by
// the undo subsystem when the operation started.
type Snapshot interface {

	// Co returns the recorded original position of vertex v.
	Co(v int) math32.Vector3

	// Normal returns the recorded original normal of vertex v.
	Normal(v int) math32.Vector3
}

// Frame supplies the orientation matrices snapshotted at filter start.
// They stay fixed for the whole operation even if the camera moves.
type Frame struct {
	// ObjectMatrix transforms object space to world space.
	ObjectMatrix math32.Matrix4

	// ViewMatrix transforms world space to view space.
	ViewMatrix math32.Matrix4

	// InitialNormal is the area normal under the pointer at filter
	// start, when the caller has one; zero means unknown, in which
	// case the view normal is used.
	InitialNormal math32.Vector3
}

// IdentityFrame returns a frame with identity matrices, for callers
// with no distinct world or view transform.
func IdentityFrame() *Frame {
	return &Frame{ObjectMatrix: *math32.Identity4(), ViewMatrix: *math32.Identity4()}
}

// Cache owns everything a running filter operation needs: the gathered
// node list, orientation matrices, axis masks, per-vertex auxiliary
// buffers for the active kind, and handles to the masking and undo
// collaborators. It is created by [Start], exclusively owned by the
// operation, and released by [Cache.Finish].
type Cache struct {
	// Kind is the active filter kind, fixed at start.
	Kind Kinds

	// Orientation selects the frame in which EnabledAxis applies.
	Orientation Orientations

	// EnabledAxis enables displacement per axis in the orientation frame.
	EnabledAxis [3]bool

	// EnabledForceAxis enables force application per axis, for filters
	// that drive an external simulation instead of direct displacement.
	EnabledForceAxis [3]bool

	// Nodes is the gathered node list: a full partition of the
	// affected vertexes, fixed at start.
	Nodes []int

	// IterationCount is the number of completed [Cache.Apply] calls.
	IterationCount int

	// StartStrength is the strength parameter at filter start.
	StartStrength float32

	// RandomSeed seeds the Random kind's coordinate hash.
	RandomSeed uint32

	// NoOrigCo makes displacement relative to current positions
	// instead of the recorded originals; set between exec iterations
	// so continuous kinds do not compound toward a stale origin.
	NoOrigCo bool

	// ActiveFaceSet is the face set under the pointer at start.
	ActiveFaceSet int32

	// ViewNormal is the unit view direction in object space.
	ViewNormal math32.Vector3

	// InitialNormal is the surface normal under the pointer at start.
	InitialNormal math32.Vector3

	// SharpenSmoothRatio is how much smoothing Sharpen applies to
	// polished surfaces.
	SharpenSmoothRatio float32

	// SharpenIntensifyDetailStrength is how much Sharpen intensifies
	// creases and valleys.
	SharpenIntensifyDetailStrength float32

	// SurfaceSmoothShapePreservation is how much of the original shape
	// SurfaceSmooth preserves.
	SurfaceSmoothShapePreservation float32

	// SurfaceSmoothCurrentVertex is how much each vertex's own
	// Laplacian weighs against its neighbors' in SurfaceSmooth.
	SurfaceSmoothCurrentVertex float32

	// per-kind auxiliary buffers, allocated once at start for the
	// active kind only and never resized.
	sharpenFactor    []float32
	detailDirections []math32.Vector3
	limitSurfaceCo   []math32.Vector3
	laplacianDisp    []math32.Vector3

	// passCo is the position snapshot neighbor queries are served from
	// during a pass; see [Cache.co].
	passCo []math32.Vector3

	objectMatrix    math32.Matrix4
	objectMatrixInv math32.Matrix4
	viewMatrix      math32.Matrix4
	viewMatrixInv   math32.Matrix4

	surface   Surface
	partition Partition
	snapshot  Snapshot
	automask  Automasker
}

// Start validates the settings and builds the [Cache] for one filter
// operation: it gathers all partition nodes, snapshots the orientation
// matrices, initializes the kind's auxiliary buffers, and attaches the
// automasker. The snapshot must already hold the pre-filter state (the
// caller owns undo push/finalize ordering). Start returns an error and
// mutates nothing when the resolved axis mask is empty or the surface
// has no vertexes.
func Start(sf Surface, pt Partition, snap Snapshot, am Automasker, fr *Frame, set *Settings) (*Cache, error) {
	axes := set.Axes
	if !axes.HasFlag(AxisX) && !axes.HasFlag(AxisY) && !axes.HasFlag(AxisZ) {
		return nil, errors.New("filter.Start: all deform axes are disabled, no deformation is possible")
	}
	if sf.NumVertices() == 0 {
		return nil, errors.New("filter.Start: surface has no vertexes")
	}
	if fr == nil {
		fr = IdentityFrame()
	}

	fc := &Cache{
		Kind:          set.Kind,
		Orientation:   set.Orientation,
		StartStrength: set.Strength,
		RandomSeed:    set.RandomSeed,
		ActiveFaceSet: set.ActiveFaceSet,
		surface:       sf,
		partition:     pt,
		snapshot:      snap,
		automask:      am,
	}
	fc.EnabledAxis[0] = axes.HasFlag(AxisX)
	fc.EnabledAxis[1] = axes.HasFlag(AxisY)
	fc.EnabledAxis[2] = axes.HasFlag(AxisZ)
	fc.EnabledForceAxis = fc.EnabledAxis

	if set.RandomSeed == 0 && set.Kind == Random {
		fc.RandomSeed = randx.NewGlobalRand().Uint32()
	}

	fc.Nodes = make([]int, pt.NumNodes())
	for i := range fc.Nodes {
		fc.Nodes[i] = i
	}
	for _, nd := range fc.Nodes {
		pt.MarkNormalsUpdate(nd)
	}
	pt.UpdateNormals()

	fc.objectMatrix = fr.ObjectMatrix
	fc.viewMatrix = fr.ViewMatrix
	obinv, err := fr.ObjectMatrix.Inverse()
	if err != nil {
		return nil, errors.Log(err)
	}
	vwinv, err := fr.ViewMatrix.Inverse()
	if err != nil {
		return nil, errors.Log(err)
	}
	fc.objectMatrixInv = *obinv
	fc.viewMatrixInv = *vwinv

	// view direction from view space back into object space
	fc.ViewNormal = math32.Vec3(0, 0, 1).
		MulMatrix4AsVector4(&fc.viewMatrixInv, 0).
		MulMatrix4AsVector4(&fc.objectMatrixInv, 0).Normal()
	fc.InitialNormal = fr.InitialNormal
	if fc.InitialNormal == (math32.Vector3{}) {
		fc.InitialNormal = fc.ViewNormal
	}

	fc.syncPassCo()

	switch set.Kind {
	case SurfaceSmooth:
		fc.SurfaceSmoothShapePreservation = set.SurfaceSmoothShapePreservation
		fc.SurfaceSmoothCurrentVertex = set.SurfaceSmoothCurrentVertex
		fc.laplacianDisp = make([]math32.Vector3, sf.NumVertices())
	case Sharpen:
		fc.SharpenSmoothRatio = set.SharpenSmoothRatio
		fc.SharpenIntensifyDetailStrength = set.SharpenIntensifyDetailStrength
		fc.initSharpen(set.SharpenCurvatureSmoothIterations)
	case EnhanceDetails:
		fc.initDetailDirections()
	case EraseDisplacement:
		fc.initLimitSurface()
	}
	return fc, nil
}

// Apply runs exactly one filter iteration at the given strength:
// a parallel pass over all nodes (two barrier-separated passes for
// two-pass kinds), then increments the iteration counter and refreshes
// normals for kinds that read them on the next iteration.
func (fc *Cache) Apply(strength float32) {
	fc.syncPassCo()
	fc.runPass(func(node int) {
		fc.applyNode(node, strength)
	})
	if fc.Kind.TwoPass() {
		fc.runPass(func(node int) {
			fc.surfaceSmoothDisplaceNode(node, strength)
		})
	}
	fc.IterationCount++

	if fc.Kind.NeedsNormalsUpdate() {
		for _, nd := range fc.Nodes {
			fc.partition.MarkNormalsUpdate(nd)
		}
		fc.partition.UpdateNormals()
	}
}

// Finish ends the operation. With commit true it releases the
// auxiliary buffers and masking handle, leaving the deformed positions
// in place. With commit false it first restores every vertex from the
// snapshot and recomputes bounds, guaranteeing the surface is exactly
// as Start found it. The cache must not be used after Finish.
func (fc *Cache) Finish(commit bool) {
	if !commit {
		nv := fc.surface.NumVertices()
		for v := 0; v < nv; v++ {
			fc.surface.SetCo(v, fc.snapshot.Co(v))
		}
		for _, nd := range fc.Nodes {
			fc.partition.MarkUpdate(nd)
			fc.partition.MarkNormalsUpdate(nd)
		}
		fc.partition.UpdateNormals()
	}
	fc.partition.UpdateBounds()
	if fc.automask != nil {
		fc.automask.Release()
	}
	fc.sharpenFactor = nil
	fc.detailDirections = nil
	fc.limitSurfaceCo = nil
	fc.laplacianDisp = nil
	fc.passCo = nil
	fc.Nodes = nil
}

// fade computes the per-vertex intensity for this iteration: the
// inverted paint mask times strength times the automasking factor.
func (fc *Cache) fade(v int, strength float32) float32 {
	fade := (1 - fc.surface.MaskValue(v)) * strength
	if fc.automask != nil {
		fade *= fc.automask.Factor(v)
	}
	return fade
}

// origCo returns the reference position displacement is computed from:
// the snapshot position normally, or the live position for relax kinds
// and after the first exec iteration.
func (fc *Cache) origCo(v int) math32.Vector3 {
	if fc.Kind == Relax || fc.Kind == RelaxFaceSets || fc.NoOrigCo {
		return fc.co(v)
	}
	return fc.snapshot.Co(v)
}
