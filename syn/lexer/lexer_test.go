// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package lexer_test

import (
	"testing"

	"github.com/probechain/uplc/syn/lexer"
	"github.com/probechain/uplc/syn/token"
)

type tokenCase struct {
	typ     token.Type
	literal string
}

func runTokenize(t *testing.T, name, input string, want []tokenCase) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		t.Helper()
		l := lexer.New("test.uplc", input)
		toks := l.Tokenize()

		if len(toks) == 0 {
			t.Fatal("Tokenize returned empty slice")
		}
		last := toks[len(toks)-1]
		if last.Type != token.EOF {
			t.Errorf("last token is %s, want EOF", last.Type)
		}
		body := toks[:len(toks)-1]

		if len(body) != len(want) {
			t.Fatalf("got %d tokens (excl. EOF), want %d", len(body), len(want))
		}
		for i, w := range want {
			got := body[i]
			if got.Type != w.typ {
				t.Errorf("token[%d]: type = %s, want %s (literal %q)", i, got.Type, w.typ, got.Literal)
			}
			if got.Literal != w.literal {
				t.Errorf("token[%d]: literal = %q, want %q", i, got.Literal, w.literal)
			}
		}
	})
}

func TestNextTokenDelimiters(t *testing.T) {
	runTokenize(t, "delimiters", "([])", []tokenCase{
		{token.LPAREN, "("},
		{token.LBRACKET, "["},
		{token.RBRACKET, "]"},
		{token.RPAREN, ")"},
	})
}

func TestNextTokenUnitLiteral(t *testing.T) {
	runTokenize(t, "unit", "()", []tokenCase{
		{token.UNIT_LITERAL, "()"},
	})
}

func TestNextTokenKeywords(t *testing.T) {
	runTokenize(t, "keywords", "program lambda con builtin delay force error constr case", []tokenCase{
		{token.PROGRAM, "program"},
		{token.LAMBDA, "lambda"},
		{token.CON, "con"},
		{token.BUILTIN, "builtin"},
		{token.DELAY, "delay"},
		{token.FORCE, "force"},
		{token.ERROR, "error"},
		{token.CONSTR, "constr"},
		{token.CASE, "case"},
	})
}

func TestNextTokenNumbersAndVersion(t *testing.T) {
	runTokenize(t, "version", "1.0.0", []tokenCase{
		{token.INT, "1"},
		{token.DOT, "."},
		{token.INT, "0"},
		{token.DOT, "."},
		{token.INT, "0"},
	})
}

func TestNextTokenNegativeInteger(t *testing.T) {
	runTokenize(t, "negative", "-42", []tokenCase{
		{token.INT, "-42"},
	})
}

func TestNextTokenBytes(t *testing.T) {
	runTokenize(t, "bytes", "#deadBEEF", []tokenCase{
		{token.BYTES, "deadBEEF"},
	})
}

func TestNextTokenString(t *testing.T) {
	runTokenize(t, "string", `"hello\nworld"`, []tokenCase{
		{token.STRING, "hello\nworld"},
	})
}

func TestNextTokenComment(t *testing.T) {
	runTokenize(t, "comment", "-- a comment\n42", []tokenCase{
		{token.INT, "42"},
	})
}

func TestNextTokenIdentAndBuiltinName(t *testing.T) {
	runTokenize(t, "ident", "addInteger x'", []tokenCase{
		{token.IDENT, "addInteger"},
		{token.IDENT, "x'"},
	})
}
