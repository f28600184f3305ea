// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package automask computes per-vertex weighting factors that attenuate
// sculpt operations independently of the paint mask: restriction to the
// active face set and falloff near mesh or face set boundaries.
// Factors are precomputed into a cache when an operation starts, so
// queries are read-only and safe from concurrent workers.
package automask

import "cogentcore.org/sculpt/mesh"

// Config selects which automasking modes are active for an operation.
type Config struct {
	// FaceSet restricts the operation to vertexes touching ActiveFaceSet.
	FaceSet bool

	// ActiveFaceSet is the face set id used when FaceSet is active.
	ActiveFaceSet int32

	// Boundary masks out vertexes on open mesh boundaries.
	Boundary bool

	// FaceSetBoundary masks out vertexes on face set boundaries.
	FaceSetBoundary bool

	// PropagationSteps grows the boundary automask inward by this many
	// neighbor rings, with linear falloff.
	PropagationSteps int
}

// Enabled returns whether any automasking mode is active.
func (cf *Config) Enabled() bool {
	return cf.FaceSet || cf.Boundary || cf.FaceSetBoundary
}

// Cache holds the precomputed per-vertex automasking factors for one
// running operation. A nil *Cache is valid and fully neutral.
type Cache struct {
	factors []float32
}

// New precomputes the automasking factors for the given mesh and
// config. It returns nil when no mode is active, which all consumers
// treat as a neutral factor of 1 for every vertex.
func New(m *mesh.Mesh, cf *Config) *Cache {
	if cf == nil || !cf.Enabled() {
		return nil
	}
	ac := &Cache{factors: make([]float32, m.NumVertices())}
	for v := range ac.factors {
		ac.factors[v] = 1
	}
	if cf.FaceSet {
		for v := range ac.factors {
			if !m.HasFaceSet(v, cf.ActiveFaceSet) {
				ac.factors[v] = 0
			}
		}
	}
	if cf.Boundary {
		ac.maskBoundary(m, cf.PropagationSteps, m.IsBoundary)
	}
	if cf.FaceSetBoundary {
		ac.maskBoundary(m, cf.PropagationSteps, func(v int) bool {
			return !m.HasUniqueFaceSet(v)
		})
	}
	return ac
}

// maskBoundary zeroes the factor on boundary vertexes and propagates a
// linear falloff outward for the given number of neighbor rings.
func (ac *Cache) maskBoundary(m *mesh.Mesh, steps int, isBoundary func(v int) bool) {
	dist := make([]int, len(ac.factors))
	front := []int{}
	for v := range dist {
		if isBoundary(v) {
			dist[v] = 0
			front = append(front, v)
		} else {
			dist[v] = steps + 1
		}
	}
	for ring := 1; ring <= steps; ring++ {
		next := []int{}
		for _, v := range front {
			for _, nv := range m.Neighbors(v) {
				if dist[nv] > ring {
					dist[nv] = ring
					next = append(next, nv)
				}
			}
		}
		front = next
	}
	for v, d := range dist {
		if d > steps {
			continue
		}
		f := float32(d) / float32(steps+1)
		if f < ac.factors[v] {
			ac.factors[v] = f
		}
	}
}

// Factor returns the automasking factor for vertex v in [0,1].
// Safe for concurrent read-only use.
func (ac *Cache) Factor(v int) float32 {
	if ac == nil {
		return 1
	}
	return ac.factors[v]
}

// Release frees the factor cache. The cache must not be used after
// Release.
func (ac *Cache) Release() {
	if ac != nil {
		ac.factors = nil
	}
}
