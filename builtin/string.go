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

package builtin

import (
	"unicode/utf8"

	"github.com/probechain/uplc/term"
)

func appendString(args []term.Constant) (term.Constant, error) {
	a, err := asString("appendString", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asString("appendString", args[1])
	if err != nil {
		return nil, err
	}
	return term.String{Value: a + b}, nil
}

func equalsString(args []term.Constant) (term.Constant, error) {
	a, err := asString("equalsString", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asString("equalsString", args[1])
	if err != nil {
		return nil, err
	}
	return term.Bool{Value: a == b}, nil
}

func encodeUtf8(args []term.Constant) (term.Constant, error) {
	s, err := asString("encodeUtf8", args[0])
	if err != nil {
		return nil, err
	}
	return term.ByteString{Value: []byte(s)}, nil
}

func decodeUtf8(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("decodeUtf8", args[0])
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, newError("decodeUtf8", "invalid utf-8 byte sequence")
	}
	return term.String{Value: string(b)}, nil
}
