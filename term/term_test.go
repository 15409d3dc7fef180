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

package term

import "testing"

func TestTermString(t *testing.T) {
	tests := []struct {
		name string
		term Term
		want string
	}{
		{"var", Var{Index: 1}, "#1"},
		{"lambda", Lambda{Parameter: "x", Body: Var{Index: 1}}, "(lam x #1)"},
		{"apply", Apply{Function: Var{Index: 1}, Argument: Var{Index: 2}}, "[#1 #2]"},
		{"delay", Delay{Body: Var{Index: 1}}, "(delay #1)"},
		{"force", Force{Body: Var{Index: 1}}, "(force #1)"},
		{"constant", NewIntegerTerm(7), "(con integer 7)"},
		{"builtin", NewBuiltinTerm(AddInteger), "(builtin addInteger)"},
		{"error", ErrorTerm{}, "(error)"},
		{"constr", Constr{Tag: 1, Fields: []Term{Var{Index: 1}}}, "(constr 1 #1)"},
		{"case", Case{Subject: Var{Index: 1}, Branches: []Term{Var{Index: 2}, Var{Index: 3}}}, "(case #1 #2 #3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.term.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyChainExample(t *testing.T) {
	// (program 1.1.0 [(builtin addInteger) (con integer 1) (con integer 3)])
	// from the worked examples.
	expr := Apply{
		Function: Apply{
			Function: NewBuiltinTerm(AddInteger),
			Argument: NewIntegerTerm(1),
		},
		Argument: NewIntegerTerm(3),
	}
	want := "[[(builtin addInteger) (con integer 1)] (con integer 3)]"
	if got := expr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
