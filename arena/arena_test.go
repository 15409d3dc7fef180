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

package arena

import (
	"math/big"
	"testing"
)

func TestAllocCountsNodes(t *testing.T) {
	a := New(0)
	type node struct{ x int }
	for i := 0; i < 5; i++ {
		Alloc[node](a)
	}
	if got := a.NodeCount(); got != 5 {
		t.Errorf("NodeCount() = %d, want 5", got)
	}
}

func TestTrackBigIntAccumulates(t *testing.T) {
	a := New(0)
	a.TrackBigInt(big.NewInt(1))
	a.TrackBigInt(big.NewInt(2))
	if got := a.BigIntCount(); got != 2 {
		t.Errorf("BigIntCount() = %d, want 2", got)
	}
}

func TestResetClearsState(t *testing.T) {
	a := New(0)
	type node struct{ x int }
	Alloc[node](a)
	a.TrackBigInt(big.NewInt(1))

	stats := a.Reset()
	if stats.NodeCount != 1 || stats.BigIntCount != 1 || stats.Resets != 1 {
		t.Errorf("Reset() stats = %+v, want {NodeCount:1 BigIntCount:1 Resets:1}", stats)
	}
	if a.NodeCount() != 0 || a.BigIntCount() != 0 {
		t.Errorf("arena not cleared after Reset: nodes=%d bigints=%d", a.NodeCount(), a.BigIntCount())
	}
}

func TestResetIsIdempotentAcrossEvaluations(t *testing.T) {
	a := New(8)
	type node struct{ x int }
	Alloc[node](a)
	a.Reset()
	Alloc[node](a)
	Alloc[node](a)
	stats := a.Reset()
	if stats.NodeCount != 2 || stats.Resets != 2 {
		t.Errorf("second Reset() stats = %+v, want {NodeCount:2 Resets:2 ...}", stats)
	}
}

func TestNewDefaultsCapacityHint(t *testing.T) {
	a := New(0)
	if a.capHint != DefaultCapacityHint {
		t.Errorf("capHint = %d, want %d", a.capHint, DefaultCapacityHint)
	}
}
