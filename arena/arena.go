// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

// Package arena implements the bump-allocation region that owns every
// AST/Value/Env/Context node produced during one UPLC evaluation.
//
// The design mirrors probe-lang's vm.Memory: a single owner tracks every live
// allocation and releases all of them together, rather than having callers
// free individual nodes. Go's garbage collector does the actual byte
// management, so Arena does not hold raw pointers the way a bump allocator in
// an unmanaged language would; instead it is the single accounting and
// lifetime authority that the rest of the interpreter defers to. Holding a
// *big.Int in the arena's side table is what makes "reset drops the
// arbitrary-precision integers" (spec §4.1) an observable, testable event
// instead of an implementation detail the Go runtime hides.
package arena

import (
	"fmt"
	"math/big"
)

// DefaultCapacityHint is used when New is called with a hint of 0. It has no
// effect on correctness; it only pre-sizes the big.Int side table.
const DefaultCapacityHint = 256

// Arena owns every node allocated during one evaluation. It is created at the
// start of an eval, used to mint Term/Value/Env/Context nodes (indirectly, via
// Alloc), and Reset at the end. An Arena must not be used from more than one
// goroutine and must not outlive the evaluation that created it (§5).
type Arena struct {
	nodeCount int64
	bigints   []*big.Int
	capHint   int64
	resets    int64
}

// New creates an Arena. capacityHint is an implementation hint for the number
// of nodes expected; it does not bound the arena, which grows as needed.
func New(capacityHint int64) *Arena {
	if capacityHint <= 0 {
		capacityHint = DefaultCapacityHint
	}
	return &Arena{
		capHint: capacityHint,
		bigints: make([]*big.Int, 0, capacityHint/4+1),
	}
}

// Alloc records one node allocation and returns a fresh zero-valued T. Every
// constructor in term/machine/builtin that mints a node should route through
// Alloc so the arena's NodeCount reflects the true allocation volume of an
// evaluation (useful for tests asserting §8 "arena soundness").
func Alloc[T any](a *Arena) *T {
	a.nodeCount++
	return new(T)
}

// TrackBigInt registers b as owned by the arena. Integer constants (§3) must
// be tracked this way so Reset can account for dropping them, matching the
// source's "side list of raw pointers" design for non-trivially-droppable
// values (§4.1).
func (a *Arena) TrackBigInt(b *big.Int) *big.Int {
	a.bigints = append(a.bigints, b)
	return b
}

// NodeCount returns the number of nodes allocated through Alloc since the
// arena was created or last Reset.
func (a *Arena) NodeCount() int64 { return a.nodeCount }

// BigIntCount returns the number of tracked arbitrary-precision integers
// currently owned by the arena.
func (a *Arena) BigIntCount() int { return len(a.bigints) }

// Stats is a point-in-time snapshot of arena bookkeeping, returned by Reset
// for diagnostics and tests.
type Stats struct {
	NodeCount   int64
	BigIntCount int
	Resets      int64
}

func (s Stats) String() string {
	return fmt.Sprintf("arena: %d nodes, %d big.Ints, reset #%d", s.NodeCount, s.BigIntCount, s.Resets)
}

// Reset drops every tracked big.Int and bumps the allocation pointer back to
// zero, matching §4.1 and the §3 arena lifecycle invariant: "after reset, all
// borrows are invalid." Callers must not dereference any Term/Value/Env/
// Context obtained from this arena after calling Reset.
func (a *Arena) Reset() Stats {
	a.resets++
	stats := Stats{NodeCount: a.nodeCount, BigIntCount: len(a.bigints), Resets: a.resets}
	for i := range a.bigints {
		a.bigints[i] = nil
	}
	a.bigints = a.bigints[:0]
	a.nodeCount = 0
	return stats
}
