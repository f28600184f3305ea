// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides coordinate snapshots for sculpt operations:
// a [Record] captures the original vertex state when an operation
// begins, serves original-state queries while it runs, and restores
// everything on cancel. A [Stack] keeps finished records for undo/redo.
package undo

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/sculpt/mesh"
)

// Record is one sculpt undo record: the vertex positions and normals of
// a mesh as they were when the operation started, plus the final
// positions filled in when the operation commits.
type Record struct {
	// Action describes the operation, for user-facing undo history.
	Action string

	origCo  []math32.Vector3
	origNo  []math32.Vector3
	finalCo []math32.Vector3
}

// NewRecord starts a new record, snapshotting the current positions and
// normals of the given mesh.
func NewRecord(m *mesh.Mesh, action string) *Record {
	rc := &Record{Action: action}
	rc.origCo = make([]math32.Vector3, m.NumVertices())
	rc.origNo = make([]math32.Vector3, m.NumVertices())
	copy(rc.origCo, m.Positions)
	copy(rc.origNo, m.Normals)
	return rc
}

// Co returns the recorded original position of vertex v.
func (rc *Record) Co(v int) math32.Vector3 {
	return rc.origCo[v]
}

// Normal returns the recorded original normal of vertex v.
func (rc *Record) Normal(v int) math32.Vector3 {
	return rc.origNo[v]
}

// Restore writes the recorded original positions and normals back to
// the mesh. It is unconditional: after Restore the mesh is exactly as
// it was at [NewRecord].
func (rc *Record) Restore(m *mesh.Mesh) {
	copy(m.Positions, rc.origCo)
	copy(m.Normals, rc.origNo)
}

// End finalizes the record with the mesh's current (post-operation)
// positions so the record can be redone from a [Stack].
func (rc *Record) End(m *mesh.Mesh) {
	rc.finalCo = make([]math32.Vector3, m.NumVertices())
	copy(rc.finalCo, m.Positions)
}

// Stack is an undo/redo stack of finished records.
// Push after [Record.End]; Undo restores original positions, Redo
// restores final ones.
type Stack struct {
	recs []*Record
	idx  int
}

// Push adds a finished record, dropping any redoable records above the
// current index.
func (st *Stack) Push(rc *Record) {
	st.recs = append(st.recs[:st.idx], rc)
	st.idx++
}

// Undo restores the mesh to the state before the most recent record,
// returning the record, or nil if there is nothing to undo.
func (st *Stack) Undo(m *mesh.Mesh) *Record {
	if st.idx == 0 {
		return nil
	}
	st.idx--
	rc := st.recs[st.idx]
	rc.Restore(m)
	m.UpdateNormals()
	return rc
}

// Redo re-applies the next record's final positions, returning the
// record, or nil if there is nothing to redo.
func (st *Stack) Redo(m *mesh.Mesh) *Record {
	if st.idx >= len(st.recs) {
		return nil
	}
	rc := st.recs[st.idx]
	st.idx++
	if rc.finalCo != nil {
		copy(m.Positions, rc.finalCo)
		m.UpdateNormals()
	}
	return rc
}
