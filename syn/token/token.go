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

// Package token defines the lexical tokens of the UPLC textual syntax: the
// debug-only, S-expression-like grammar described in spec §6, consumed by
// the CLI and by tests, never by on-chain evaluation.
package token

import "fmt"

// Position locates a token in its source file, mirroring
// probe-lang/lang/token.Position.
type Position struct {
	File   string
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Token is one lexical unit together with its source position.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Type, t.Literal, t.Pos)
}

// Type enumerates the lexical categories of the textual grammar.
type Type int

const (
	ILLEGAL Type = iota
	EOF

	// Literals and identifiers.
	IDENT  // a De Bruijn-bound variable name, or a builtin/type name
	INT    // 123, -45
	BYTES  // #deadbeef
	STRING // "hello"

	// Delimiters.
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	DOT      // . (separates the three components of a program version)
	COMMA    // , (separates list/pair elements)

	// Keywords naming term constructors (spec §6).
	keywordStart
	PROGRAM
	LAMBDA
	CON
	BUILTIN
	DELAY
	FORCE
	ERROR
	CONSTR
	CASE
	keywordEnd

	// Keywords naming constant type tags (spec §3).
	typeKeywordStart
	TYPE_INTEGER
	TYPE_BYTESTRING
	TYPE_STRING
	TYPE_UNIT
	TYPE_BOOL
	TYPE_DATA
	TYPE_LIST
	TYPE_PAIR
	TYPE_ARRAY
	TYPE_G1
	TYPE_G2
	typeKeywordEnd

	// Boolean and unit literals.
	TRUE
	FALSE
	UNIT_LITERAL // ()
)

var typeNames = [...]string{
	ILLEGAL:      "ILLEGAL",
	EOF:          "EOF",
	IDENT:        "IDENT",
	INT:          "INT",
	BYTES:        "BYTES",
	STRING:       "STRING",
	LPAREN:       "(",
	RPAREN:       ")",
	LBRACKET:     "[",
	RBRACKET:     "]",
	DOT:          ".",
	COMMA:        ",",
	PROGRAM:      "program",
	LAMBDA:       "lambda",
	CON:          "con",
	BUILTIN:      "builtin",
	DELAY:        "delay",
	FORCE:        "force",
	ERROR:        "error",
	CONSTR:       "constr",
	CASE:         "case",
	TYPE_INTEGER: "integer",
	TYPE_BYTESTRING: "bytestring",
	TYPE_STRING:  "string",
	TYPE_UNIT:    "unit",
	TYPE_BOOL:    "bool",
	TYPE_DATA:    "data",
	TYPE_LIST:    "list",
	TYPE_PAIR:    "pair",
	TYPE_ARRAY:   "array",
	TYPE_G1:      "bls12_381_G1_element",
	TYPE_G2:      "bls12_381_G2_element",
	TRUE:         "True",
	FALSE:        "False",
	UNIT_LITERAL: "()",
}

func (t Type) String() string {
	if int(t) >= 0 && int(t) < len(typeNames) && typeNames[t] != "" {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsKeyword reports whether t is one of the term-constructor keywords.
func (t Type) IsKeyword() bool { return t > keywordStart && t < keywordEnd }

// IsTypeKeyword reports whether t names a constant type tag.
func (t Type) IsTypeKeyword() bool { return t > typeKeywordStart && t < typeKeywordEnd }

var keywords map[string]Type

func init() {
	keywords = make(map[string]Type)
	for i := keywordStart + 1; i < keywordEnd; i++ {
		keywords[typeNames[i]] = i
	}
	for i := typeKeywordStart + 1; i < typeKeywordEnd; i++ {
		keywords[typeNames[i]] = i
	}
	keywords["True"] = TRUE
	keywords["False"] = FALSE
}

// LookupIdent classifies an already-scanned identifier: a term keyword, a
// type keyword, a boolean literal, or a plain IDENT (a De Bruijn name or a
// builtin name, disambiguated later by the parser).
func LookupIdent(ident string) Type {
	if typ, ok := keywords[ident]; ok {
		return typ
	}
	return IDENT
}
