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

// Package parser implements a recursive-descent parser for the UPLC textual
// syntax (spec §6): "(program M.m.p <term>)", "(lambda x <term>)", "[f a]"
// application, "(con <type> <literal>)", "(delay …)", "(force …)",
// "(constr n [fields…])", "(case <term> [branches…])", "(error)", and
// "(builtin <name>)", with identifiers resolved to De Bruijn indices against
// the enclosing lambda scope.
//
// Unlike probe-lang's error-collecting parser, this one fails fast on the
// first error: a malformed script has nothing sensible to recover into, and
// the CLI just reports the failure and exits non-zero (spec §6).
package parser

import (
	"fmt"
	"math/big"

	"github.com/probechain/uplc/syn/lexer"
	"github.com/probechain/uplc/syn/token"
	"github.com/probechain/uplc/term"
)

// ParseError reports a syntax error together with its source position.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Parser holds the mutable state for a single parse run: the token stream
// and the stack of lambda-bound names in scope, innermost last, used to
// resolve identifiers to 1-based De Bruijn indices.
type Parser struct {
	lex  *lexer.Lexer
	cur  token.Token
	peek token.Token
	env  []string
}

func newParser(filename, source string) *Parser {
	p := &Parser{lex: lexer.New(filename, source)}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) errorf(pos token.Position, format string, args ...interface{}) error {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) expect(typ token.Type) (token.Token, error) {
	if p.cur.Type != typ {
		return p.cur, p.errorf(p.cur.Pos, "expected %s, got %s (%q)", typ, p.cur.Type, p.cur.Literal)
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// ParseTerm parses a standalone term, such as a "-A" CLI argument (spec §6).
func ParseTerm(filename, source string) (term.Term, error) {
	p := newParser(filename, source)
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.EOF {
		return nil, p.errorf(p.cur.Pos, "unexpected trailing input %q", p.cur.Literal)
	}
	return t, nil
}

// ProgramAST is the parsed form of "(program M.m.p <term>)", kept free of
// any dependency on the program package so syn never has to import it.
type ProgramAST struct {
	Major, Minor, Patch uint64
	Term                term.Term
}

// ParseProgram parses a full "(program M.m.p <term>)" script.
func ParseProgram(filename, source string) (*ProgramAST, error) {
	p := newParser(filename, source)
	prog, err := p.parseProgram()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.EOF {
		return nil, p.errorf(p.cur.Pos, "unexpected trailing input %q", p.cur.Literal)
	}
	return prog, nil
}

func (p *Parser) parseProgram() (*ProgramAST, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.PROGRAM); err != nil {
		return nil, err
	}
	major, minor, patch, err := p.parseVersion()
	if err != nil {
		return nil, err
	}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ProgramAST{Major: major, Minor: minor, Patch: patch, Term: t}, nil
}

func (p *Parser) parseVersion() (uint64, uint64, uint64, error) {
	major, err := p.parseUint()
	if err != nil {
		return 0, 0, 0, err
	}
	if _, err := p.expect(token.DOT); err != nil {
		return 0, 0, 0, err
	}
	minor, err := p.parseUint()
	if err != nil {
		return 0, 0, 0, err
	}
	if _, err := p.expect(token.DOT); err != nil {
		return 0, 0, 0, err
	}
	patch, err := p.parseUint()
	if err != nil {
		return 0, 0, 0, err
	}
	return major, minor, patch, nil
}

func (p *Parser) parseUint() (uint64, error) {
	tok, err := p.expect(token.INT)
	if err != nil {
		return 0, err
	}
	n, ok := new(big.Int).SetString(tok.Literal, 10)
	if !ok || n.Sign() < 0 {
		return 0, p.errorf(tok.Pos, "invalid version component %q", tok.Literal)
	}
	return n.Uint64(), nil
}

// parseTerm dispatches on the current token to one of the term forms of
// spec §6: a bare identifier (Var), an application "[f a...]", or one of the
// parenthesized constructor forms.
func (p *Parser) parseTerm() (term.Term, error) {
	switch p.cur.Type {
	case token.IDENT:
		return p.parseVar()
	case token.LBRACKET:
		return p.parseApply()
	case token.LPAREN:
		return p.parseParenTerm()
	default:
		return nil, p.errorf(p.cur.Pos, "unexpected token %s (%q) at start of term", p.cur.Type, p.cur.Literal)
	}
}

func (p *Parser) parseVar() (term.Term, error) {
	name := p.cur.Literal
	pos := p.cur.Pos
	p.advance()
	for i := len(p.env) - 1; i >= 0; i-- {
		if p.env[i] == name {
			return term.Var{Index: len(p.env) - i}, nil
		}
	}
	return nil, p.errorf(pos, "unbound variable %q", name)
}

func (p *Parser) parseApply() (term.Term, error) {
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	fn, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	args := []term.Term{}
	for p.cur.Type != token.RBRACKET {
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return nil, p.errorf(p.cur.Pos, "application requires at least one argument")
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	result := fn
	for _, arg := range args {
		result = term.Apply{Function: result, Argument: arg}
	}
	return result, nil
}

func (p *Parser) parseParenTerm() (term.Term, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var t term.Term
	var err error
	switch p.cur.Type {
	case token.DELAY:
		p.advance()
		t, err = p.wrap1(func(body term.Term) term.Term { return term.Delay{Body: body} })
	case token.FORCE:
		p.advance()
		t, err = p.wrap1(func(body term.Term) term.Term { return term.Force{Body: body} })
	case token.LAMBDA:
		p.advance()
		t, err = p.parseLambdaBody()
	case token.CON:
		p.advance()
		t, err = p.parseConstant()
	case token.BUILTIN:
		p.advance()
		t, err = p.parseBuiltin()
	case token.ERROR:
		p.advance()
		t = term.ErrorTerm{}
	case token.CONSTR:
		p.advance()
		t, err = p.parseConstr()
	case token.CASE:
		p.advance()
		t, err = p.parseCase()
	default:
		return nil, p.errorf(p.cur.Pos, "unknown term constructor %s (%q)", p.cur.Type, p.cur.Literal)
	}
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Parser) wrap1(build func(term.Term) term.Term) (term.Term, error) {
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return build(body), nil
}

func (p *Parser) parseLambdaBody() (term.Term, error) {
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	p.env = append(p.env, name.Literal)
	body, err := p.parseTerm()
	p.env = p.env[:len(p.env)-1]
	if err != nil {
		return nil, err
	}
	return term.Lambda{Parameter: name.Literal, Body: body}, nil
}

func (p *Parser) parseBuiltin() (term.Term, error) {
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	f, ok := term.LookupBuiltin(name.Literal)
	if !ok {
		return nil, p.errorf(name.Pos, "unknown builtin %q", name.Literal)
	}
	return term.NewBuiltinTerm(f), nil
}

func (p *Parser) parseConstr() (term.Term, error) {
	tagTok, err := p.expect(token.INT)
	if err != nil {
		return nil, err
	}
	tag, ok := new(big.Int).SetString(tagTok.Literal, 10)
	if !ok || tag.Sign() < 0 {
		return nil, p.errorf(tagTok.Pos, "invalid constr tag %q", tagTok.Literal)
	}
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	var fields []term.Term
	for p.cur.Type != token.RBRACKET {
		f, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return term.Constr{Tag: tag.Uint64(), Fields: fields}, nil
}

func (p *Parser) parseCase() (term.Term, error) {
	subject, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	var branches []term.Term
	for p.cur.Type != token.RBRACKET {
		b, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return term.Case{Subject: subject, Branches: branches}, nil
}

// ---- constants (spec §3, §6) -----------------------------------------------

func (p *Parser) parseConstant() (term.Term, error) {
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	c, err := p.parseConstantValue(ty)
	if err != nil {
		return nil, err
	}
	return term.ConstantTerm{Value: c}, nil
}

// parseType parses a type tag: a bare keyword for a leaf type ("integer",
// "bool", ...), or a parenthesized "(list T)", "(array T)", "(pair T1 T2)"
// for a compound one.
func (p *Parser) parseType() (*term.Type, error) {
	switch p.cur.Type {
	case token.TYPE_INTEGER:
		p.advance()
		return term.TypeInteger, nil
	case token.TYPE_BYTESTRING:
		p.advance()
		return term.TypeByteString, nil
	case token.TYPE_STRING:
		p.advance()
		return term.TypeString, nil
	case token.TYPE_UNIT:
		p.advance()
		return term.TypeUnit, nil
	case token.TYPE_BOOL:
		p.advance()
		return term.TypeBool, nil
	case token.TYPE_DATA:
		p.advance()
		return term.TypeData, nil
	case token.TYPE_G1:
		p.advance()
		return term.TypeG1, nil
	case token.TYPE_G2:
		p.advance()
		return term.TypeG2, nil
	case token.LPAREN:
		p.advance()
		ty, err := p.parseCompoundType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return ty, nil
	default:
		return nil, p.errorf(p.cur.Pos, "expected a type, got %s (%q)", p.cur.Type, p.cur.Literal)
	}
}

func (p *Parser) parseCompoundType() (*term.Type, error) {
	switch p.cur.Type {
	case token.TYPE_LIST:
		p.advance()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return term.ListOf(elem), nil
	case token.TYPE_ARRAY:
		p.advance()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return term.ArrayOf(elem), nil
	case token.TYPE_PAIR:
		p.advance()
		fst, err := p.parseType()
		if err != nil {
			return nil, err
		}
		snd, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return term.PairOf(fst, snd), nil
	default:
		return nil, p.errorf(p.cur.Pos, "expected list, array or pair, got %s (%q)", p.cur.Type, p.cur.Literal)
	}
}

func (p *Parser) parseConstantValue(ty *term.Type) (term.Constant, error) {
	switch ty.Kind {
	case term.KindInteger:
		tok, err := p.expect(token.INT)
		if err != nil {
			return nil, err
		}
		n, ok := new(big.Int).SetString(tok.Literal, 10)
		if !ok {
			return nil, p.errorf(tok.Pos, "invalid integer literal %q", tok.Literal)
		}
		return term.Integer{Value: n}, nil
	case term.KindByteString:
		tok, err := p.expect(token.BYTES)
		if err != nil {
			return nil, err
		}
		b, decErr := decodeHex(tok.Literal)
		if decErr != nil {
			return nil, p.errorf(tok.Pos, "invalid byte string literal: %v", decErr)
		}
		return term.ByteString{Value: b}, nil
	case term.KindString:
		tok, err := p.expect(token.STRING)
		if err != nil {
			return nil, err
		}
		return term.String{Value: tok.Literal}, nil
	case term.KindBool:
		if p.cur.Type == token.TRUE {
			p.advance()
			return term.Bool{Value: true}, nil
		}
		if p.cur.Type == token.FALSE {
			p.advance()
			return term.Bool{Value: false}, nil
		}
		return nil, p.errorf(p.cur.Pos, "expected True or False, got %q", p.cur.Literal)
	case term.KindUnit:
		if _, err := p.expect(token.UNIT_LITERAL); err != nil {
			return nil, err
		}
		return term.Unit{}, nil
	case term.KindData:
		d, err := p.parseData()
		if err != nil {
			return nil, err
		}
		return term.Data{Value: d}, nil
	case term.KindList:
		if _, err := p.expect(token.LBRACKET); err != nil {
			return nil, err
		}
		var items []term.Constant
		for p.cur.Type != token.RBRACKET {
			if len(items) > 0 {
				if _, err := p.expect(token.COMMA); err != nil {
					return nil, err
				}
			}
			c, err := p.parseConstantValue(ty.Elem)
			if err != nil {
				return nil, err
			}
			items = append(items, c)
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
		return term.ProtoList{ElemType: ty.Elem, Items: items}, nil
	case term.KindPair:
		if _, err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		fst, err := p.parseConstantValue(ty.Fst)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		snd, err := p.parseConstantValue(ty.Snd)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return term.ProtoPair{FstType: ty.Fst, SndType: ty.Snd, Fst: fst, Snd: snd}, nil
	default:
		return nil, p.errorf(p.cur.Pos, "type %s has no textual literal form", ty)
	}
}

// parseData parses the PlutusData literal grammar: "B #hex", "I n",
// "Constr n [fields]", "Map [...]", "List [...]".
func (p *Parser) parseData() (term.PlutusData, error) {
	switch p.cur.Type {
	case token.IDENT:
		switch p.cur.Literal {
		case "B":
			p.advance()
			tok, err := p.expect(token.BYTES)
			if err != nil {
				return nil, err
			}
			b, decErr := decodeHex(tok.Literal)
			if decErr != nil {
				return nil, p.errorf(tok.Pos, "invalid data byte string: %v", decErr)
			}
			return term.PBytes{Value: b}, nil
		case "I":
			p.advance()
			tok, err := p.expect(token.INT)
			if err != nil {
				return nil, err
			}
			n, ok := new(big.Int).SetString(tok.Literal, 10)
			if !ok {
				return nil, p.errorf(tok.Pos, "invalid data integer %q", tok.Literal)
			}
			return term.PInteger{Value: n}, nil
		case "Constr":
			p.advance()
			tagTok, err := p.expect(token.INT)
			if err != nil {
				return nil, err
			}
			tag, ok := new(big.Int).SetString(tagTok.Literal, 10)
			if !ok || tag.Sign() < 0 {
				return nil, p.errorf(tagTok.Pos, "invalid data constr tag %q", tagTok.Literal)
			}
			fields, err := p.parseDataList()
			if err != nil {
				return nil, err
			}
			return term.PConstr{Tag: tag.Uint64(), Fields: fields}, nil
		case "List":
			p.advance()
			items, err := p.parseDataList()
			if err != nil {
				return nil, err
			}
			return term.PList{Items: items}, nil
		case "Map":
			p.advance()
			if _, err := p.expect(token.LBRACKET); err != nil {
				return nil, err
			}
			var entries []term.PMapEntry
			for p.cur.Type != token.RBRACKET {
				if _, err := p.expect(token.LPAREN); err != nil {
					return nil, err
				}
				k, err := p.parseData()
				if err != nil {
					return nil, err
				}
				v, err := p.parseData()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(token.RPAREN); err != nil {
					return nil, err
				}
				entries = append(entries, term.PMapEntry{Key: k, Value: v})
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			return term.PMap{Pairs: entries}, nil
		}
	}
	return nil, p.errorf(p.cur.Pos, "expected a Data literal (B/I/Constr/List/Map), got %q", p.cur.Literal)
}

func (p *Parser) parseDataList() ([]term.PlutusData, error) {
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	var items []term.PlutusData
	for p.cur.Type != token.RBRACKET {
		d, err := p.parseData()
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return items, nil
}

func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex string %q", s)
	}
	out := make([]byte, len(s)/2)
	for i := 0; i < len(out); i++ {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("invalid hex digit in %q", s)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexDigit(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	default:
		return 0, false
	}
}
