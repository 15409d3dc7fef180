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

// Package builtin implements the semantics of every UPLC builtin function
// that operates purely on term.Constant values (spec §4.5, §7): arithmetic,
// byte-string and bitwise operations, string operations, PlutusData
// construction and destructuring, hashing, and signature verification.
// Polymorphic builtins whose arguments or results are not plain constants
// (ifThenElse, chooseUnit, trace, fstPair, sndPair, chooseList, mkCons,
// headList, tailList, nullList, chooseData) are handled directly by package
// machine, which alone knows about the Value type they operate over.
package builtin

import (
	"fmt"

	"github.com/probechain/uplc/term"
)

// RuntimeError is raised by a builtin when its arguments are well-typed but
// semantically invalid (spec §7): division by zero, an out-of-range index,
// malformed signature material, and so on. It is always wrapped by the
// machine package into a machine.RuntimeError before reaching the caller.
type RuntimeError struct {
	Op      string
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func newError(op, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Op: op, Message: fmt.Sprintf(format, args...)}
}

// TypeMismatchError reports that an argument did not have the Type the
// builtin required.
type TypeMismatchError struct {
	Op       string
	Expected *term.Type
	Got      term.Constant
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Op, e.Expected, e.Got.Type())
}
