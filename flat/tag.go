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

// Bit widths of the fixed-size tags in the wire format (spec §4.2).
const (
	TermTagWidth    = 4
	ConstTagWidth   = 4
	BuiltinTagWidth = 7
)

// Term tags, fixed by the wire format.
const (
	TagVar byte = iota
	TagDelay
	TagLambda
	TagApply
	TagConstant
	TagForce
	TagError
	TagBuiltin
	TagConstr
	TagCase
)

// Type tags used inside a constant's type-tag path: 0..=4 and 8 are leaf
// types, 7 introduces a list(5) or pair(6) constructor (spec §4.2).
const (
	TypeTagInteger byte = iota
	TypeTagByteString
	TypeTagString
	TypeTagUnit
	TypeTagBool
	TypeTagList // only valid as the second tag following TypeTagApply
	TypeTagPair // only valid as the second tag following TypeTagApply
	TypeTagApply
	TypeTagData
)
