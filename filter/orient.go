// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import "cogentcore.org/core/math32"

// ToOrientation converts a direction vector from object space into the
// cache's orientation frame. Only the rotation parts of the frame
// matrices apply; directions have no translation.
func (fc *Cache) ToOrientation(v math32.Vector3) math32.Vector3 {
	switch fc.Orientation {
	case World:
		v = v.MulMatrix4AsVector4(&fc.objectMatrix, 0)
	case View:
		v = v.MulMatrix4AsVector4(&fc.objectMatrix, 0)
		v = v.MulMatrix4AsVector4(&fc.viewMatrix, 0)
	}
	// Local: sculpting already works in object space.
	return v
}

// ToObject converts a direction vector from the cache's orientation
// frame back into object space.
func (fc *Cache) ToObject(v math32.Vector3) math32.Vector3 {
	switch fc.Orientation {
	case World:
		v = v.MulMatrix4AsVector4(&fc.objectMatrixInv, 0)
	case View:
		v = v.MulMatrix4AsVector4(&fc.viewMatrixInv, 0)
		v = v.MulMatrix4AsVector4(&fc.objectMatrixInv, 0)
	}
	return v
}

// ZeroDisabledAxes projects a displacement into the orientation frame,
// zeroes the components of disabled axes, and projects it back.
func (fc *Cache) ZeroDisabledAxes(v math32.Vector3) math32.Vector3 {
	return fc.zeroAxes(v, &fc.EnabledAxis)
}

// ZeroDisabledForceAxes is [Cache.ZeroDisabledAxes] for the force axis
// mask, used by filters that drive an external simulation with forces
// rather than displacing vertexes directly.
func (fc *Cache) ZeroDisabledForceAxes(v math32.Vector3) math32.Vector3 {
	return fc.zeroAxes(v, &fc.EnabledForceAxis)
}

func (fc *Cache) zeroAxes(v math32.Vector3, enabled *[3]bool) math32.Vector3 {
	v = fc.ToOrientation(v)
	for axis := 0; axis < 3; axis++ {
		if !enabled[axis] {
			v.SetDim(math32.Dims(axis), 0)
		}
	}
	return fc.ToObject(v)
}
