// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import "cogentcore.org/core/math32"

// co returns the position of v as of the start of the current pass.
// Displacement math reads positions through this snapshot rather than
// live, so neighbor queries never observe another worker's writes:
// results are independent of the partition and of goroutine timing.
func (fc *Cache) co(v int) math32.Vector3 {
	return fc.passCo[v]
}

// syncPassCo refreshes the pass position snapshot from the surface.
func (fc *Cache) syncPassCo() {
	nv := fc.surface.NumVertices()
	if fc.passCo == nil {
		fc.passCo = make([]math32.Vector3, nv)
	}
	for v := 0; v < nv; v++ {
		fc.passCo[v] = fc.surface.Co(v)
	}
}

// neighborAverage returns the average of the neighbor positions of v,
// or v's own position if it has no usable neighbors. When v is on an
// open mesh boundary, only boundary neighbors contribute, so
// boundaries are smoothed along themselves instead of being pulled
// into the interior.
func (fc *Cache) neighborAverage(v int) math32.Vector3 {
	isBoundary := fc.surface.IsBoundary(v)
	avg := math32.Vector3{}
	n := 0
	for _, nv := range fc.surface.Neighbors(v) {
		if isBoundary && !fc.surface.IsBoundary(nv) {
			continue
		}
		avg.SetAdd(fc.co(nv))
		n++
	}
	if n == 0 {
		return fc.co(v)
	}
	return avg.DivScalar(float32(n))
}

// relaxVertex computes the relaxed position of v: the boundary-aware
// neighbor average, projected onto the vertex normal plane so the
// surface does not shrink, blended by fade in [0,1].
//
// With faceSetBoundary, only neighbors on a face set boundary
// contribute, which relaxes the face set edges themselves.
func (fc *Cache) relaxVertex(v int, fade float32, faceSetBoundary bool) math32.Vector3 {
	co := fc.co(v)
	isBoundary := fc.surface.IsBoundary(v)
	avg := math32.Vector3{}
	n := 0
	for _, nv := range fc.surface.Neighbors(v) {
		if faceSetBoundary && fc.surface.HasUniqueFaceSet(nv) {
			continue
		}
		// boundary vertexes only average with other boundary vertexes
		if isBoundary && !fc.surface.IsBoundary(nv) {
			continue
		}
		avg.SetAdd(fc.co(nv))
		n++
	}
	if n == 0 {
		return co
	}
	val := avg.DivScalar(float32(n)).Sub(co)

	no := fc.surface.Normal(v)
	val.SetSub(no.MulScalar(val.Dot(no)))

	return co.Add(val.MulScalar(fade))
}

// surfaceSmoothLaplacianStep computes the HC Laplacian step for v:
// the difference between the neighbor average and an alpha-weighted
// blend of the original and current position. The result is stored in
// the cache's laplacian buffer for the displace pass and returned as
// this pass's displacement.
func (fc *Cache) surfaceSmoothLaplacianStep(v int) math32.Vector3 {
	alpha := fc.SurfaceSmoothShapePreservation
	avg := fc.neighborAverage(v)
	d := fc.snapshot.Co(v).MulScalar(alpha).Add(fc.co(v).MulScalar(1 - alpha))
	disp := avg.Sub(d)
	fc.laplacianDisp[v] = disp
	return disp
}

// surfaceSmoothDisplaceStep applies the second HC pass to v: subtract
// the beta-weighted blend of the vertex's own Laplacian and its
// neighbors' average Laplacian, scaled by fade in [0,1]. The barrier
// between passes guarantees every neighbor Laplacian is final here.
func (fc *Cache) surfaceSmoothDisplaceStep(v int, fade float32) {
	beta := fc.SurfaceSmoothCurrentVertex
	avg := math32.Vector3{}
	n := 0
	for _, nv := range fc.surface.Neighbors(v) {
		avg.SetAdd(fc.laplacianDisp[nv])
		n++
	}
	if n == 0 {
		return
	}
	b := avg.MulScalar((1 - beta) / float32(n))
	b.SetAdd(fc.laplacianDisp[v].MulScalar(beta))
	b = b.MulScalar(math32.Clamp(fade, 0, 1))
	fc.surface.SetCo(v, fc.surface.Co(v).Sub(b))
}

// initDetailDirections fills the per-vertex high frequency detail
// directions: neighbor average minus current position.
func (fc *Cache) initDetailDirections() {
	nv := fc.surface.NumVertices()
	fc.detailDirections = make([]math32.Vector3, nv)
	for v := 0; v < nv; v++ {
		fc.detailDirections[v] = fc.neighborAverage(v).Sub(fc.co(v))
	}
}

// initLimitSurface fills the per-vertex limit surface positions from
// the surface's displacement layer.
func (fc *Cache) initLimitSurface() {
	nv := fc.surface.NumVertices()
	fc.limitSurfaceCo = make([]math32.Vector3, nv)
	for v := 0; v < nv; v++ {
		fc.limitSurfaceCo[v] = fc.surface.LimitSurfaceCo(v)
	}
}

// initSharpen precomputes the detail directions and the normalized
// curvature factor Sharpen weighs its terms with: detail magnitude,
// normalized so the global maximum is 1, remapped by 1-(1-x)^2 to bias
// toward 1, then both buffers smoothed for the configured number of
// neighbor-averaging passes to suppress high frequency noise.
func (fc *Cache) initSharpen(curvatureSmoothIterations int) {
	nv := fc.surface.NumVertices()
	fc.detailDirections = make([]math32.Vector3, nv)
	fc.sharpenFactor = make([]float32, nv)

	maxFactor := float32(0)
	for v := 0; v < nv; v++ {
		fc.detailDirections[v] = fc.neighborAverage(v).Sub(fc.co(v))
		fc.sharpenFactor[v] = fc.detailDirections[v].Length()
		if fc.sharpenFactor[v] > maxFactor {
			maxFactor = fc.sharpenFactor[v]
		}
	}
	if maxFactor > 0 {
		for v := 0; v < nv; v++ {
			sf := fc.sharpenFactor[v] / maxFactor
			fc.sharpenFactor[v] = 1 - pow2(1-sf)
		}
	}

	for it := 0; it < curvatureSmoothIterations; it++ {
		for v := 0; v < nv; v++ {
			dirAvg := math32.Vector3{}
			factorAvg := float32(0)
			n := 0
			for _, nb := range fc.surface.Neighbors(v) {
				dirAvg.SetAdd(fc.detailDirections[nb])
				factorAvg += fc.sharpenFactor[nb]
				n++
			}
			if n > 0 {
				fc.detailDirections[v] = dirAvg.DivScalar(float32(n))
				fc.sharpenFactor[v] = factorAvg / float32(n)
			}
		}
	}
}

func pow2(x float32) float32 {
	return x * x
}
