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

import (
	"fmt"
	"math/big"

	"github.com/fxamacker/cbor/v2"
)

// PlutusData is the on-chain serialization sum type (spec §3, §6), distinct
// from Constant though embedded in one via the Data variant. It is its own
// recursive sum acyclic by construction (§9 "ownership of recursive ASTs").
type PlutusData interface {
	plutusDataNode()
	String() string
}

// chunkSize is the threshold past which byte strings are encoded as
// indefinite-length chunked byte strings of 64-byte pieces (spec §6).
const chunkSize = 64

// PConstr is a tagged tuple. Tag is the logical Constr tag (spec §6): tags
// 0..6 round-trip through CBOR tags 121..127, tags 7..127 through the wide
// range 1280..1400, and anything larger through the generic tag-102 form.
type PConstr struct {
	Tag    uint64
	Fields []PlutusData
}

func (PConstr) plutusDataNode() {}
func (c PConstr) String() string {
	s := fmt.Sprintf("Constr %d [", c.Tag)
	for i, f := range c.Fields {
		if i > 0 {
			s += ", "
		}
		s += f.String()
	}
	return s + "]"
}

// PMapEntry is one key/value pair of a PMap.
type PMapEntry struct{ Key, Value PlutusData }

// PMap is an association list (on-chain Data has no true map, just ordered
// pairs — spec §6 "Map ... map to PlutusData::Map").
type PMap struct{ Pairs []PMapEntry }

func (PMap) plutusDataNode() {}
func (m PMap) String() string {
	s := "Map {"
	for i, p := range m.Pairs {
		if i > 0 {
			s += ", "
		}
		s += p.Key.String() + ": " + p.Value.String()
	}
	return s + "}"
}

// PList is an ordered, possibly heterogeneous list of PlutusData.
type PList struct{ Items []PlutusData }

func (PList) plutusDataNode() {}
func (l PList) String() string {
	s := "List ["
	for i, it := range l.Items {
		if i > 0 {
			s += ", "
		}
		s += it.String()
	}
	return s + "]"
}

// PInteger is an arbitrary-precision integer leaf.
type PInteger struct{ Value *big.Int }

func (PInteger) plutusDataNode()  {}
func (i PInteger) String() string { return i.Value.String() }

// PBytes is a byte-string leaf.
type PBytes struct{ Value []byte }

func (PBytes) plutusDataNode()  {}
func (b PBytes) String() string { return fmt.Sprintf("#%x", b.Value) }

// EqualsData implements the structural equality required by the equalsData
// builtin (spec §4.5).
func EqualsData(a, b PlutusData) bool {
	switch av := a.(type) {
	case PConstr:
		bv, ok := b.(PConstr)
		if !ok || av.Tag != bv.Tag || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for i := range av.Fields {
			if !EqualsData(av.Fields[i], bv.Fields[i]) {
				return false
			}
		}
		return true
	case PMap:
		bv, ok := b.(PMap)
		if !ok || len(av.Pairs) != len(bv.Pairs) {
			return false
		}
		for i := range av.Pairs {
			if !EqualsData(av.Pairs[i].Key, bv.Pairs[i].Key) || !EqualsData(av.Pairs[i].Value, bv.Pairs[i].Value) {
				return false
			}
		}
		return true
	case PList:
		bv, ok := b.(PList)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !EqualsData(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case PInteger:
		bv, ok := b.(PInteger)
		return ok && av.Value.Cmp(bv.Value) == 0
	case PBytes:
		bv, ok := b.(PBytes)
		return ok && string(av.Value) == string(bv.Value)
	default:
		return false
	}
}

// IntegerSize implements the §4.6 size function for Integer: 1 for zero,
// otherwise the number of 64-bit words needed to hold |n|. cost.SizeOf calls
// this directly rather than redefining it, so an Integer constant and an
// Integer leaf of Data always cost the same regardless of which package
// measured it.
func IntegerSize(n *big.Int) int64 {
	if n.Sign() == 0 {
		return 1
	}
	bits := new(big.Int).Abs(n).BitLen()
	return int64((bits-1)/64) + 1
}

// ByteStringSize implements the §4.6 size function for ByteString: 1 for the
// empty string, otherwise the number of 8-byte words needed to hold it.
func ByteStringSize(b []byte) int64 {
	if len(b) == 0 {
		return 1
	}
	return int64((len(b)-1)/8) + 1
}

// DataSize implements the §4.6 size function for Data: 4 plus the recursive
// size of children, with Integer/ByteString leaves adding their own size
// beyond the constant 4.
func DataSize(d PlutusData) int64 {
	switch v := d.(type) {
	case PConstr:
		var s int64 = 4
		for _, f := range v.Fields {
			s += DataSize(f)
		}
		return s
	case PMap:
		var s int64 = 4
		for _, p := range v.Pairs {
			s += DataSize(p.Key) + DataSize(p.Value)
		}
		return s
	case PList:
		var s int64 = 4
		for _, it := range v.Items {
			s += DataSize(it)
		}
		return s
	case PInteger:
		return 4 + IntegerSize(v.Value)
	case PBytes:
		return 4 + ByteStringSize(v.Value)
	default:
		return 4
	}
}

// ---- CBOR encoding (spec §6) ------------------------------------------------

// constrCBORTag maps a Constr tag to its CBOR wire tag, following the 121..127
// / 1280..1400 / tag-102 fallback scheme.
func constrCBORTag(tag uint64) (uint64, bool) {
	switch {
	case tag <= 6:
		return 121 + tag, true
	case tag >= 7 && tag <= 127:
		return 1280 + (tag - 7), true
	default:
		return 102, false
	}
}

// bignumEncoding splits a big.Int's magnitude into the CBOR bignum tag (2 for
// non-negative, 3 for negative, per two's-complement-free CBOR bignum
// semantics: the tag 3 payload holds -1-n) and its big-endian byte magnitude.
func bignumEncoding(v *big.Int) (tagNum uint64, magnitude []byte) {
	if v.Sign() < 0 {
		n := new(big.Int).Neg(v)
		n.Sub(n, big.NewInt(1))
		return 3, n.Bytes()
	}
	return 2, v.Bytes()
}

// smallIntFits reports whether v fits in a single CBOR major-type-0/1 integer
// (i.e. fits an int64/uint64) and so can skip the bignum tag encoding.
func smallIntFits(v *big.Int) bool {
	return v.IsInt64()
}

// MarshalCBOR encodes a PlutusData tree using the tag conventions of §6.
//
// Encoding goes through a minimal hand-rolled RFC 8949 writer rather than the
// cbor library's high-level Marshal: the library's generic encoder has no way
// to express the order-preserving maps or 121/1280/102 Constr tag selection
// Data requires, so writeCBOR emits major-type headers directly while
// UnmarshalCBOR (below) leans on the library for the hard direction — robust
// decoding of arbitrary on-chain bytes, including indefinite-length chunking.
func MarshalCBOR(d PlutusData) ([]byte, error) {
	var buf []byte
	buf, err := appendCBOR(buf, d)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func appendCBOR(buf []byte, d PlutusData) ([]byte, error) {
	switch v := d.(type) {
	case PInteger:
		if smallIntFits(v.Value) {
			return appendCBORInt(buf, v.Value.Int64()), nil
		}
		tagNum, mag := bignumEncoding(v.Value)
		buf = appendCBORHead(buf, 6, tagNum)
		return appendCBORBytes(buf, mag), nil
	case PBytes:
		return appendCBORBytes(buf, v.Value), nil
	case PList:
		buf = appendCBORHead(buf, 4, uint64(len(v.Items)))
		for _, it := range v.Items {
			var err error
			buf, err = appendCBOR(buf, it)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	case PMap:
		buf = appendCBORHead(buf, 5, uint64(len(v.Pairs)))
		for _, p := range v.Pairs {
			var err error
			buf, err = appendCBOR(buf, p.Key)
			if err != nil {
				return nil, err
			}
			buf, err = appendCBOR(buf, p.Value)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	case PConstr:
		wireTag, direct := constrCBORTag(v.Tag)
		if direct {
			buf = appendCBORHead(buf, 6, wireTag)
			buf = appendCBORHead(buf, 4, uint64(len(v.Fields)))
			for _, f := range v.Fields {
				var err error
				buf, err = appendCBOR(buf, f)
				if err != nil {
					return nil, err
				}
			}
			return buf, nil
		}
		buf = appendCBORHead(buf, 6, 102)
		buf = appendCBORHead(buf, 4, 2)
		buf = appendCBORInt(buf, int64(v.Tag))
		buf = appendCBORHead(buf, 4, uint64(len(v.Fields)))
		for _, f := range v.Fields {
			var err error
			buf, err = appendCBOR(buf, f)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("term: unknown PlutusData variant %T", d)
	}
}

// appendCBORHead appends a CBOR major-type/argument header. major is 0-7;
// arg is the payload length or (for major 6) the tag number.
func appendCBORHead(buf []byte, major byte, arg uint64) []byte {
	prefix := major << 5
	switch {
	case arg < 24:
		return append(buf, prefix|byte(arg))
	case arg <= 0xff:
		return append(buf, prefix|24, byte(arg))
	case arg <= 0xffff:
		return append(buf, prefix|25, byte(arg>>8), byte(arg))
	case arg <= 0xffffffff:
		return append(buf, prefix|26, byte(arg>>24), byte(arg>>16), byte(arg>>8), byte(arg))
	default:
		return append(buf, prefix|27,
			byte(arg>>56), byte(arg>>48), byte(arg>>40), byte(arg>>32),
			byte(arg>>24), byte(arg>>16), byte(arg>>8), byte(arg))
	}
}

func appendCBORInt(buf []byte, v int64) []byte {
	if v >= 0 {
		return appendCBORHead(buf, 0, uint64(v))
	}
	return appendCBORHead(buf, 1, uint64(-1-v))
}

// appendCBORBytes emits b as one definite byte string if it fits chunkSize,
// else as an indefinite-length byte string of chunkSize-byte chunks (§6).
func appendCBORBytes(buf []byte, b []byte) []byte {
	if len(b) <= chunkSize {
		buf = appendCBORHead(buf, 2, uint64(len(b)))
		return append(buf, b...)
	}
	buf = append(buf, 0x5f) // indefinite-length byte string
	for len(b) > 0 {
		n := chunkSize
		if n > len(b) {
			n = len(b)
		}
		buf = appendCBORHead(buf, 2, uint64(n))
		buf = append(buf, b[:n]...)
		b = b[n:]
	}
	return append(buf, 0xff) // break
}

// UnmarshalCBOR decodes a flat-embedded CBOR blob into a PlutusData tree.
func UnmarshalCBOR(data []byte) (PlutusData, error) {
	var raw interface{}
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("term: decode data: %w", err)
	}
	return fromRaw(raw)
}

func fromRaw(raw interface{}) (PlutusData, error) {
	switch v := raw.(type) {
	case cbor.Tag:
		return constrFromTag(v)
	case []interface{}:
		items := make([]PlutusData, len(v))
		for i, it := range v {
			pd, err := fromRaw(it)
			if err != nil {
				return nil, err
			}
			items[i] = pd
		}
		return PList{Items: items}, nil
	case map[interface{}]interface{}:
		entries := make([]PMapEntry, 0, len(v))
		for k, val := range v {
			kd, err := fromRaw(k)
			if err != nil {
				return nil, err
			}
			vd, err := fromRaw(val)
			if err != nil {
				return nil, err
			}
			entries = append(entries, PMapEntry{Key: kd, Value: vd})
		}
		return PMap{Pairs: entries}, nil
	case []byte:
		return PBytes{Value: v}, nil
	case cbor.ByteString:
		return PBytes{Value: []byte(v)}, nil
	case big.Int:
		return PInteger{Value: new(big.Int).Set(&v)}, nil
	case int64:
		return PInteger{Value: big.NewInt(v)}, nil
	case uint64:
		return PInteger{Value: new(big.Int).SetUint64(v)}, nil
	default:
		return nil, fmt.Errorf("term: malformed data: unsupported CBOR shape %T", raw)
	}
}

// constrFromTag interprets a decoded cbor.Tag per the §6 conventions:
// 121..127 -> Constr tag 0..6; 1280..1400 -> Constr tag 7..127; 2/3 ->
// PosBignum/NegBignum; 102 -> [tag, fields] generic Constr.
func constrFromTag(tag cbor.Tag) (PlutusData, error) {
	switch {
	case tag.Number >= 121 && tag.Number <= 127:
		return constrFromFields(tag.Number-121, tag.Content)
	case tag.Number >= 1280 && tag.Number <= 1400:
		return constrFromFields((tag.Number-1280)+7, tag.Content)
	case tag.Number == 102:
		fields, ok := tag.Content.([]interface{})
		if !ok || len(fields) != 2 {
			return nil, fmt.Errorf("term: malformed tag-102 Constr")
		}
		tagVal, err := toUint64(fields[0])
		if err != nil {
			return nil, err
		}
		return constrFromFields(tagVal, fields[1])
	case tag.Number == 2:
		mag, err := bytesFromContent(tag.Content)
		if err != nil {
			return nil, err
		}
		return PInteger{Value: new(big.Int).SetBytes(mag)}, nil
	case tag.Number == 3:
		mag, err := bytesFromContent(tag.Content)
		if err != nil {
			return nil, err
		}
		n := new(big.Int).SetBytes(mag)
		n.Add(n, big.NewInt(1))
		n.Neg(n)
		return PInteger{Value: n}, nil
	default:
		return nil, fmt.Errorf("term: unsupported CBOR tag %d in Data", tag.Number)
	}
}

func constrFromFields(tag uint64, content interface{}) (PlutusData, error) {
	raw, ok := content.([]interface{})
	if !ok {
		return nil, fmt.Errorf("term: malformed Constr fields")
	}
	fields := make([]PlutusData, len(raw))
	for i, r := range raw {
		pd, err := fromRaw(r)
		if err != nil {
			return nil, err
		}
		fields[i] = pd
	}
	return PConstr{Tag: tag, Fields: fields}, nil
}

func bytesFromContent(content interface{}) ([]byte, error) {
	switch v := content.(type) {
	case []byte:
		return v, nil
	case [][]byte:
		var out []byte
		for _, c := range v {
			out = append(out, c...)
		}
		return out, nil
	case []interface{}:
		var out []byte
		for _, c := range v {
			b, ok := c.([]byte)
			if !ok {
				return nil, fmt.Errorf("term: bignum chunk is not a byte string")
			}
			out = append(out, b...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("term: bignum payload is not a byte string, got %T", content)
	}
}

func toUint64(v interface{}) (uint64, error) {
	switch n := v.(type) {
	case uint64:
		return n, nil
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("term: negative Constr tag")
		}
		return uint64(n), nil
	default:
		return 0, fmt.Errorf("term: Constr tag is not an integer, got %T", v)
	}
}
