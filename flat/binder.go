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

import "fmt"

// Binder is the capability a decoder/encoder needs over how Lambda binders
// and Var occurrences are represented on the wire (spec §4.2): decode/encode
// a binder occurrence (a Var), decode/encode a parameter occurrence (a
// Lambda's bound name, if any), and recover a De Bruijn index from whatever
// was read. The three strategies below share this one interface so decodeTerm
// and encodeTerm never branch on which is in use.
type Binder interface {
	// DecodeParameter reads a Lambda's parameter, returning the textual name
	// (possibly empty) to attach to the resulting term.Lambda.
	DecodeParameter(d *Decoder, scope []string) (name string, err error)
	// EncodeParameter writes a Lambda's parameter.
	EncodeParameter(e *Encoder, name string, scope []string) error
	// DecodeVar reads a Var occurrence and resolves it to a 1-based De Bruijn
	// index against scope (innermost binder last).
	DecodeVar(d *Decoder, scope []string) (index int, err error)
	// EncodeVar writes a Var occurrence given its resolved index.
	EncodeVar(e *Encoder, index int, scope []string) error
}

// PlainDeBruijn is the on-chain binder strategy: occurrences are raw Word()
// indices and parameters carry no name at all.
type PlainDeBruijn struct{}

func (PlainDeBruijn) DecodeParameter(d *Decoder, scope []string) (string, error) {
	return "", nil
}

func (PlainDeBruijn) EncodeParameter(e *Encoder, name string, scope []string) error {
	return nil
}

func (PlainDeBruijn) DecodeVar(d *Decoder, scope []string) (int, error) {
	w, err := d.Word()
	if err != nil {
		return 0, err
	}
	return int(w), nil
}

func (PlainDeBruijn) EncodeVar(e *Encoder, index int, scope []string) error {
	e.Word(uint64(index))
	return nil
}

// NamedDeBruijn decodes/encodes the same raw Word() index as PlainDeBruijn
// but additionally carries a textual name at both binder and occurrence,
// purely for debug/pretty-printing; it plays no role in resolving the index.
type NamedDeBruijn struct{}

func (NamedDeBruijn) DecodeParameter(d *Decoder, scope []string) (string, error) {
	raw, err := d.Bytes()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (NamedDeBruijn) EncodeParameter(e *Encoder, name string, scope []string) error {
	return e.WriteBytes([]byte(name))
}

func (NamedDeBruijn) DecodeVar(d *Decoder, scope []string) (int, error) {
	if _, err := d.Bytes(); err != nil {
		return 0, err
	}
	w, err := d.Word()
	if err != nil {
		return 0, err
	}
	return int(w), nil
}

func (NamedDeBruijn) EncodeVar(e *Encoder, index int, scope []string) error {
	name := ""
	if n := len(scope) - index; n >= 0 && n < len(scope) {
		name = scope[n]
	}
	if err := e.WriteBytes([]byte(name)); err != nil {
		return err
	}
	e.Word(uint64(index))
	return nil
}

// Named is the only-named strategy: both binder and occurrence carry a name
// and no index at all. The index is recovered from scope, a stack of binder
// names in enclosing order (innermost last), by counting from the innermost
// binder out to the first one matching the occurrence's name — the "extra
// pass" the spec describes is this scope walk, done inline during decode/
// encode rather than as a separate tree pass.
type Named struct{}

func (Named) DecodeParameter(d *Decoder, scope []string) (string, error) {
	raw, err := d.Bytes()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (Named) EncodeParameter(e *Encoder, name string, scope []string) error {
	return e.WriteBytes([]byte(name))
}

func (Named) DecodeVar(d *Decoder, scope []string) (int, error) {
	raw, err := d.Bytes()
	if err != nil {
		return 0, err
	}
	name := string(raw)
	for i := len(scope) - 1; i >= 0; i-- {
		if scope[i] == name {
			return len(scope) - i, nil
		}
	}
	return 0, fmt.Errorf("flat: named binder %q not found in enclosing scope", name)
}

func (Named) EncodeVar(e *Encoder, index int, scope []string) error {
	name := ""
	if n := len(scope) - index; n >= 0 && n < len(scope) {
		name = scope[n]
	}
	return e.WriteBytes([]byte(name))
}
