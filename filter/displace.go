// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"math"

	"cogentcore.org/core/math32"
)

// displacement computes the object-space displacement of vertex v for
// the cache's kind, before axis masking. origCo is the reference
// position per [Cache.origCo]; fade is the final per-vertex intensity.
// Kinds with restricted stable ranges clamp fade themselves.
func (fc *Cache) displacement(v int, origCo math32.Vector3, fade float32) math32.Vector3 {
	switch fc.Kind {
	case Smooth:
		fade = math32.Clamp(fade, -1, 1)
		avg := fc.neighborAverage(v)
		return avg.Sub(origCo).MulScalar(fade)

	case Inflate:
		return fc.snapshot.Normal(v).MulScalar(fade)

	case Scale:
		return origCo.MulScalar(1 + fade).Sub(origCo)

	case Sphere:
		disp := origCo.Normal()
		if fade > 0 {
			disp = disp.MulScalar(fade)
		} else {
			disp = disp.MulScalar(-fade)
		}
		var scale float32
		if fade > 0 {
			scale = 1 - fade
		} else {
			scale = 1 + fade
		}
		disp2 := origCo.MulScalar(scale).Sub(origCo)
		return disp.Add(disp2).MulScalar(0.5)

	case Random:
		// Vertex indexes are not stable across multiresolution levels,
		// so hash the coordinate bit patterns, like the hash-per-pixel
		// jitter in a renderer.
		cx := math.Float32bits(origCo.X)
		cy := math.Float32bits(origCo.Y)
		cz := math.Float32bits(origCo.Z)
		h := hashInt2D(cx, cy) ^ hashInt2D(cz, fc.RandomSeed)
		amt := float32(h)*(1.0/float32(0xFFFFFFFF)) - 0.5
		return fc.snapshot.Normal(v).MulScalar(amt * fade)

	case Relax:
		val := fc.relaxVertex(v, math32.Clamp(fade, 0, 1), false)
		return val.Sub(fc.co(v))

	case RelaxFaceSets:
		// relaxFaceSets alternation is checked by the caller; here it
		// only selects the boundary rule.
		val := fc.relaxVertex(v, math32.Clamp(fade, 0, 1), fc.relaxFaceSets())
		return val.Sub(fc.co(v))

	case SurfaceSmooth:
		return fc.surfaceSmoothLaplacianStep(v)

	case Sharpen:
		return fc.sharpenDisplacement(v)

	case EnhanceDetails:
		return fc.detailDirections[v].MulScalar(-math32.Abs(fade))

	case EraseDisplacement:
		fade = math32.Clamp(fade, -1, 1)
		return fc.limitSurfaceCo[v].Sub(origCo).MulScalar(fade)
	}
	return math32.Vector3{}
}

// sharpenDisplacement combines the neighbor-weighted sharpening term,
// the smooth-ratio average pull, and optional detail intensification.
// Fade does not scale this displacement; it enters only as the
// position blend factor, capped at 0.5 by the caller because the kind
// needs multiple iterations to reach a stable state.
func (fc *Cache) sharpenDisplacement(v int) math32.Vector3 {
	co := fc.co(v)
	dispSharpen := math32.Vector3{}
	for _, nv := range fc.surface.Neighbors(v) {
		dn := fc.co(nv).Sub(co).MulScalar(fc.sharpenFactor[nv])
		dispSharpen.SetAdd(dn)
	}
	dispSharpen = dispSharpen.MulScalar(1 - fc.sharpenFactor[v])

	avg := fc.neighborAverage(v)
	dispAvg := avg.Sub(co).MulScalar(fc.SharpenSmoothRatio * pow2(fc.sharpenFactor[v]))

	disp := dispAvg.Add(dispSharpen)

	if fc.SharpenIntensifyDetailStrength > 0 {
		detail := fc.detailDirections[v]
		disp.SetAdd(detail.MulScalar(-fc.SharpenIntensifyDetailStrength * fc.sharpenFactor[v]))
	}
	return disp
}

// relaxFaceSets reports the mode of the current RelaxFaceSets
// iteration: every 3rd iteration relaxes the whole surface so the
// result is not entirely focused on the face set boundaries; the other
// iterations relax the boundaries themselves.
func (fc *Cache) relaxFaceSets() bool {
	return fc.IterationCount%3 != 0
}

// hashInt2D is Bob Jenkins' lookup3 final mixer over two words,
// matching the hash the displacement results are specified against.
func hashInt2D(kx, ky uint32) uint32 {
	rot := func(x uint32, k uint32) uint32 {
		return x<<k | x>>(32-k)
	}
	a := uint32(0xdeadbeef) + (2 << 2) + 13
	b := a
	c := a
	a += kx
	b += ky

	c ^= b
	c -= rot(b, 14)
	a ^= c
	a -= rot(c, 11)
	b ^= a
	b -= rot(a, 25)
	c ^= b
	c -= rot(b, 16)
	a ^= c
	a -= rot(c, 4)
	b ^= a
	b -= rot(a, 14)
	c ^= b
	c -= rot(b, 24)
	return c
}
