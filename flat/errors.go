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

// Package flat implements the bit-packed wire format for UPLC programs
// (spec §4.2), plus its textual Constr-tag-and-CBOR embedding for PlutusData.
package flat

import (
	"errors"
	"fmt"
)

// Sentinel decode errors (spec §4.2). Wrap with fmt.Errorf("...: %w", ...) to
// add positional context while letting callers errors.Is against these.
var (
	ErrEndOfBuffer    = errors.New("flat: end of buffer")
	ErrIncorrectBits  = errors.New("flat: incorrect number of bits requested")
	ErrMissingTypeTag = errors.New("flat: missing type tag")
	ErrBlsUnsupported = errors.New("flat: BLS12-381 constants have no flat encoding")
)

// NotEnoughBitsError reports that the buffer ran out mid-read.
type NotEnoughBitsError struct{ Requested int }

func (e *NotEnoughBitsError) Error() string {
	return fmt.Sprintf("flat: not enough bits remaining for a %d-bit read", e.Requested)
}

// UnknownTermConstructorError reports an out-of-range term tag.
type UnknownTermConstructorError struct{ Tag int }

func (e *UnknownTermConstructorError) Error() string {
	return fmt.Sprintf("flat: unknown term constructor tag %d", e.Tag)
}

// UnknownConstantConstructorError reports a type-tag path matching no
// known constant shape.
type UnknownConstantConstructorError struct{ Tags []int }

func (e *UnknownConstantConstructorError) Error() string {
	return fmt.Sprintf("flat: unknown constant constructor for type tags %v", e.Tags)
}

// UnknownTypeTagsError reports a type-tag path that does not parse into a
// single well-formed Type.
type UnknownTypeTagsError struct{ Tags []int }

func (e *UnknownTypeTagsError) Error() string {
	return fmt.Sprintf("flat: malformed type tag sequence %v", e.Tags)
}

// BufferNotByteAlignedError reports an encoder call to a byte-aligned
// primitive (bytes, filler) while mid-byte bits are still pending.
type BufferNotByteAlignedError struct{}

func (e *BufferNotByteAlignedError) Error() string { return "flat: buffer is not byte-aligned" }

// OverflowError reports an encoder call writing a value wider than its
// declared bit width, e.g. a builtin tag above 2^7-1.
type OverflowError struct {
	Value   uint64
	NumBits int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("flat: value %d overflows %d bits", e.Value, e.NumBits)
}
