// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// StrengthScale converts pointer movement in dots into filter
// strength: strength = start strength * -dx * StrengthScale * UIScale.
const StrengthScale = 0.001

// States are the lifecycle states of a [Controller].
type States int32 //enums:enum -trim-prefix State -transform kebab

const (
	// StateIdle means no filter operation is active.
	StateIdle States = iota

	// StateStarted means the cache is built and the first motion
	// sample has not yet arrived.
	StateStarted

	// StateRunning means iterations are being applied from motion
	// samples.
	StateRunning

	// StateFinished means the operation committed.
	StateFinished

	// StateCancelled means the operation was cancelled and the mesh
	// restored.
	StateCancelled
)

// SampleKinds are the kinds of interaction input samples.
type SampleKinds int32 //enums:enum -transform kebab

const (
	// Move is a pointer motion sample; it drives one filter iteration.
	Move SampleKinds = iota

	// Release ends the modal interaction and commits the operation.
	Release
)

// Sample is one interaction input sample.
type Sample struct {
	// Kind is the sample kind.
	Kind SampleKinds

	// Pos is the pointer position in dots.
	Pos math32.Vector2

	// Pressure is the tablet pressure in [0,1], 1 for a mouse.
	Pressure float32
}

// Controller drives a filter operation from pointer input. It owns the
// [Cache] for the operation's duration and records the event history
// for continuous kinds, so [Controller.Exec] can replay the exact
// per-iteration strength sequence of the interactive run.
//
// All methods must be called from a single control goroutine; the
// parallelism is inside [Cache.Apply].
type Controller struct {
	// Settings configures the operation. Strength is updated live
	// while running and reset to its start value for continuous kinds
	// on finish.
	Settings *Settings

	// State is the current lifecycle state.
	State States

	// History is the recorded event history: press origin first, then
	// one entry per motion sample. Only populated for continuous
	// kinds.
	History []Sample

	// UIScale scales pointer deltas for monitor density.
	UIScale float32

	// PressPos is the pointer position at press, the origin strength
	// deltas are measured from.
	PressPos math32.Vector2

	cache *Cache

	surface   Surface
	partition Partition
	snapshot  Snapshot
	automask  Automasker
	frame     *Frame
}

// NewController returns a controller over the given collaborators,
// in [StateIdle].
func NewController(sf Surface, pt Partition, snap Snapshot, am Automasker, fr *Frame, set *Settings) *Controller {
	return &Controller{
		Settings:  set,
		UIScale:   1,
		surface:   sf,
		partition: pt,
		snapshot:  snap,
		automask:  am,
		frame:     fr,
	}
}

// Cache returns the running operation's cache, nil unless started.
func (ct *Controller) Cache() *Cache {
	return ct.cache
}

// Start begins the modal path at the given press position. It builds
// the cache and transitions Idle to Started; on refusal (empty axis
// mask, empty surface) the state stays Idle and nothing is mutated.
func (ct *Controller) Start(pressPos math32.Vector2) error {
	if ct.State == StateStarted || ct.State == StateRunning {
		return errors.New("filter.Controller.Start: operation already active")
	}
	fc, err := Start(ct.surface, ct.partition, ct.snapshot, ct.automask, ct.frame, ct.Settings)
	if err != nil {
		return err
	}
	ct.cache = fc
	ct.PressPos = pressPos
	ct.History = ct.History[:0]
	ct.State = StateStarted
	return nil
}

// HandleSample feeds one input sample to the running operation:
// a Move sample applies one iteration at the strength derived from the
// pointer delta; a Release commits and finishes.
func (ct *Controller) HandleSample(sm Sample) {
	if ct.State != StateStarted && ct.State != StateRunning {
		return
	}
	switch sm.Kind {
	case Release:
		ct.finish(true)
	case Move:
		if ct.Settings.Kind.IsContinuous() {
			if len(ct.History) == 0 {
				ct.History = append(ct.History, Sample{Kind: Move, Pos: ct.PressPos, Pressure: 1})
			}
			ct.History = append(ct.History, sm)
		}
		ct.Settings.Strength = ct.strengthAt(sm.Pos)
		ct.cache.Apply(ct.Settings.Strength)
		ct.State = StateRunning
	}
}

// Cancel aborts the running operation, restoring every vertex to its
// pre-start position. This is a terminal transition, not an error.
func (ct *Controller) Cancel() {
	if ct.State != StateStarted && ct.State != StateRunning {
		return
	}
	ct.cache.Finish(false)
	ct.cache = nil
	ct.State = StateCancelled
}

// Exec runs the non-interactive path: start, then the configured
// number of iterations replaying the recorded event history (or the
// current strength when there is none), then commit. With no history
// the reference positions switch to live after the first iteration so
// repeated iterations compound instead of re-deriving from a stale
// origin.
func (ct *Controller) Exec() error {
	if ct.State == StateStarted || ct.State == StateRunning {
		return errors.New("filter.Controller.Exec: operation already active")
	}
	fc, err := Start(ct.surface, ct.partition, ct.snapshot, ct.automask, ct.frame, ct.Settings)
	if err != nil {
		return err
	}
	ct.cache = fc
	ct.State = StateStarted

	if len(ct.History) == 0 {
		fc.NoOrigCo = true
	}
	iters := ct.Settings.IterationCount
	if iters < 1 {
		iters = 1
	}
	for i := 0; i < iters; i++ {
		ct.applyWithHistory()
		fc.NoOrigCo = true
	}
	ct.finish(true)
	return nil
}

// applyWithHistory applies one logical iteration: each recorded motion
// sample in order, or a single apply at the current strength when no
// history was recorded.
func (ct *Controller) applyWithHistory() {
	if len(ct.History) == 0 {
		ct.cache.Apply(ct.Settings.Strength)
		return
	}
	start := ct.History[0].Pos
	initial := ct.cache.StartStrength
	for _, sm := range ct.History[1:] {
		ct.Settings.Strength = ct.cache.StartStrength * -(start.X - sm.Pos.X) * StrengthScale * ct.uiScale()
		ct.cache.Apply(ct.Settings.Strength)
	}
	ct.Settings.Strength = initial
}

// finish commits the operation. For continuous kinds the strength
// parameter is reset to its start value so a later Exec replays the
// history instead of reusing the last interactive strength.
func (ct *Controller) finish(commit bool) {
	initial := ct.cache.StartStrength
	ct.cache.Finish(commit)
	ct.cache = nil
	if ct.Settings.Kind.IsContinuous() {
		ct.Settings.Strength = initial
	}
	ct.State = StateFinished
}

// strengthAt derives the iteration strength from the pointer delta to
// the press origin.
func (ct *Controller) strengthAt(pos math32.Vector2) float32 {
	return ct.cache.StartStrength * -(ct.PressPos.X - pos.X) * StrengthScale * ct.uiScale()
}

func (ct *Controller) uiScale() float32 {
	if ct.UIScale == 0 {
		return 1
	}
	return ct.UIScale
}
