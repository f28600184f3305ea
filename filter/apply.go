// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"runtime"
	"sync"

	"cogentcore.org/core/math32"
)

// runPass fans one pass out across the node partition on a worker
// pool and joins. Each worker owns the vertexes of the nodes it takes,
// and everything else it touches is read-only for the duration of the
// pass, so no locking is needed. runPass returns only after every node
// is done, which is the barrier between dependent passes.
func (fc *Cache) runPass(pass func(node int)) {
	nw := min(runtime.GOMAXPROCS(0), len(fc.Nodes))
	if nw <= 1 {
		for _, nd := range fc.Nodes {
			pass(nd)
		}
		return
	}
	work := make(chan int, len(fc.Nodes))
	for _, nd := range fc.Nodes {
		work <- nd
	}
	close(work)

	var wg sync.WaitGroup
	for i := 0; i < nw; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for nd := range work {
				pass(nd)
			}
		}()
	}
	wg.Wait()
}

// applyNode runs the displacement pass for one node's vertexes.
func (fc *Cache) applyNode(node int, strength float32) {
	relaxFaceSets := fc.relaxFaceSets()

	for _, v := range fc.partition.NodeVertices(node) {
		fade := fc.fade(v, strength)
		if fade == 0 && fc.Kind != SurfaceSmooth {
			// SurfaceSmooth cannot skip: neighbors read this vertex's
			// laplacian in the displace pass even when it is masked.
			continue
		}
		if fc.Kind == Sharpen {
			fade = math32.Clamp(fade, 0, 0.5)
		}

		origCo := fc.origCo(v)

		if fc.Kind == RelaxFaceSets && relaxFaceSets == fc.surface.HasUniqueFaceSet(v) {
			// boundary iterations only move face set boundary
			// vertexes, interior iterations only interior ones
			continue
		}

		disp := fc.displacement(v, origCo, fade)
		disp = fc.ZeroDisabledAxes(disp)

		var final math32.Vector3
		switch fc.Kind {
		case SurfaceSmooth, Sharpen:
			final = fc.co(v).Add(disp.MulScalar(math32.Clamp(fade, 0, 1)))
		default:
			final = origCo.Add(disp)
		}
		fc.surface.SetCo(v, final)
	}
	fc.partition.MarkUpdate(node)
	fc.partition.MarkNormalsUpdate(node)
}

// surfaceSmoothDisplaceNode runs the second SurfaceSmooth pass for one
// node, reading the laplacian buffer finalized by the first pass.
func (fc *Cache) surfaceSmoothDisplaceNode(node int, strength float32) {
	for _, v := range fc.partition.NodeVertices(node) {
		fade := fc.fade(v, strength)
		if fade == 0 {
			continue
		}
		fc.surfaceSmoothDisplaceStep(v, fade)
	}
}
