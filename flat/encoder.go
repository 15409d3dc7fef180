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

package flat

import "math/big"

// Encoder is the write-side counterpart of Decoder: a big-endian,
// bit-granular cursor that accumulates into an in-memory buffer.
type Encoder struct {
	buf         []byte
	usedBits    int
	currentByte byte
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// Bytes returns the accumulated buffer. Callers should call Filler first if
// they need the tail byte flushed with its padding bit.
func (e *Encoder) Bytes() []byte { return e.buf }

// Word encodes an unsigned integer using the 7-bits-per-byte continuation
// scheme (spec §4.2).
func (e *Encoder) Word(v uint64) *Encoder {
	for {
		w := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			w |= 0x80
		}
		e.Bits(8, w)
		if v == 0 {
			return e
		}
	}
}

// BigWord encodes an arbitrary-precision unsigned integer with the same
// continuation scheme as Word.
func (e *Encoder) BigWord(v *big.Int) *Encoder {
	d := new(big.Int).Set(v)
	mask := big.NewInt(0x7f)
	chunk := new(big.Int)
	for {
		chunk.And(d, mask)
		w := byte(chunk.Uint64())
		d.Rsh(d, 7)
		if d.Sign() != 0 {
			w |= 0x80
		}
		e.Bits(8, w)
		if d.Sign() == 0 {
			return e
		}
	}
}

// Bool encodes a single bit: one for true, zero for false.
func (e *Encoder) Bool(v bool) *Encoder {
	if v {
		return e.one()
	}
	return e.zero()
}

// Integer encodes a signed arbitrary-precision integer via ZigZag followed
// by BigWord.
func (e *Encoder) Integer(v *big.Int) *Encoder {
	return e.BigWord(zigzagBig(v))
}

// Bits encodes up to 8 bits of val, byte-alignment agnostic.
func (e *Encoder) Bits(numBits int, val byte) *Encoder {
	e.usedBits += numBits
	unused := 8 - e.usedBits
	switch {
	case unused == 0:
		e.currentByte |= val
		e.nextByte()
	case unused > 0:
		e.currentByte |= val << uint(unused)
	default:
		used := -unused
		e.currentByte |= val >> uint(used)
		e.nextByte()
		e.currentByte = val << uint(8-used)
		e.usedBits = used
	}
	return e
}

func (e *Encoder) nextByte() {
	e.buf = append(e.buf, e.currentByte)
	e.currentByte = 0
	e.usedBits = 0
}

func (e *Encoder) one() *Encoder  { return e.Bits(1, 1) }
func (e *Encoder) zero() *Encoder { return e.Bits(1, 0) }

// Filler pads the remainder of the current byte with zero bits, sets its
// last bit to 1, and flushes it, restoring byte alignment (spec §4.2). The
// matching Decoder.Filler skips zero bits up to and including that 1 bit.
func (e *Encoder) Filler() *Encoder {
	e.currentByte |= 1
	e.nextByte()
	return e
}

// WriteBytes encodes a byte-aligned sequence of length-prefixed ≤255-byte
// chunks terminated by a zero-length chunk.
func (e *Encoder) WriteBytes(b []byte) error {
	e.Filler()
	return e.writeByteArray(b)
}

func (e *Encoder) writeByteArray(b []byte) error {
	if e.usedBits != 0 {
		return &BufferNotByteAlignedError{}
	}
	for len(b) > 0 {
		n := 255
		if n > len(b) {
			n = len(b)
		}
		e.buf = append(e.buf, byte(n))
		e.buf = append(e.buf, b[:n]...)
		b = b[n:]
	}
	e.buf = append(e.buf, 0)
	return nil
}
