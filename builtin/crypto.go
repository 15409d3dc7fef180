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
	"crypto/ed25519"
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/probechain/uplc/term"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // Plutus mandates RIPEMD-160 for ripemd_160
	"golang.org/x/crypto/sha3"
)

func sha2_256(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("sha2_256", args[0])
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(b)
	return term.ByteString{Value: sum[:]}, nil
}

func sha3_256(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("sha3_256", args[0])
	if err != nil {
		return nil, err
	}
	sum := sha3.Sum256(b)
	return term.ByteString{Value: sum[:]}, nil
}

func keccak_256(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("keccak_256", args[0])
	if err != nil {
		return nil, err
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return term.ByteString{Value: h.Sum(nil)}, nil
}

func blake2b_256(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("blake2b_256", args[0])
	if err != nil {
		return nil, err
	}
	sum := blake2b.Sum256(b)
	return term.ByteString{Value: sum[:]}, nil
}

func blake2b_224(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("blake2b_224", args[0])
	if err != nil {
		return nil, err
	}
	h, err := blake2b.New(28, nil)
	if err != nil {
		return nil, newError("blake2b_224", "%v", err)
	}
	h.Write(b)
	return term.ByteString{Value: h.Sum(nil)}, nil
}

func ripemd_160(args []term.Constant) (term.Constant, error) {
	b, err := asByteString("ripemd_160", args[0])
	if err != nil {
		return nil, err
	}
	h := ripemd160.New() //nolint:staticcheck
	h.Write(b)
	return term.ByteString{Value: h.Sum(nil)}, nil
}

func verifyEd25519Signature(args []term.Constant) (term.Constant, error) {
	pub, err := asByteString("verifyEd25519Signature", args[0])
	if err != nil {
		return nil, err
	}
	msg, err := asByteString("verifyEd25519Signature", args[1])
	if err != nil {
		return nil, err
	}
	sig, err := asByteString("verifyEd25519Signature", args[2])
	if err != nil {
		return nil, err
	}
	if len(pub) != ed25519.PublicKeySize {
		return nil, newError("verifyEd25519Signature", "unexpected public key length: got %d, want %d", len(pub), ed25519.PublicKeySize)
	}
	if len(sig) != ed25519.SignatureSize {
		return nil, newError("verifyEd25519Signature", "unexpected signature length: got %d, want %d", len(sig), ed25519.SignatureSize)
	}
	return term.Bool{Value: ed25519.Verify(ed25519.PublicKey(pub), msg, sig)}, nil
}

func verifyEcdsaSecp256k1Signature(args []term.Constant) (term.Constant, error) {
	pub, err := asByteString("verifyEcdsaSecp256k1Signature", args[0])
	if err != nil {
		return nil, err
	}
	msg, err := asByteString("verifyEcdsaSecp256k1Signature", args[1])
	if err != nil {
		return nil, err
	}
	sig, err := asByteString("verifyEcdsaSecp256k1Signature", args[2])
	if err != nil {
		return nil, err
	}
	key, err := btcec.ParsePubKey(pub)
	if err != nil {
		return nil, newError("verifyEcdsaSecp256k1Signature", "%v", err)
	}
	if len(sig) != 64 {
		return nil, newError("verifyEcdsaSecp256k1Signature", "unexpected signature length: got %d, want 64", len(sig))
	}
	r := new(btcec.ModNScalar)
	s := new(btcec.ModNScalar)
	r.SetByteSlice(sig[:32])
	s.SetByteSlice(sig[32:])
	parsed := ecdsa.NewSignature(r, s)
	return term.Bool{Value: parsed.Verify(msg, key)}, nil
}

func verifySchnorrSecp256k1Signature(args []term.Constant) (term.Constant, error) {
	pub, err := asByteString("verifySchnorrSecp256k1Signature", args[0])
	if err != nil {
		return nil, err
	}
	msg, err := asByteString("verifySchnorrSecp256k1Signature", args[1])
	if err != nil {
		return nil, err
	}
	sig, err := asByteString("verifySchnorrSecp256k1Signature", args[2])
	if err != nil {
		return nil, err
	}
	key, err := schnorr.ParsePubKey(pub)
	if err != nil {
		return nil, newError("verifySchnorrSecp256k1Signature", "%v", err)
	}
	parsed, err := schnorr.ParseSignature(sig)
	if err != nil {
		return nil, newError("verifySchnorrSecp256k1Signature", "%v", err)
	}
	return term.Bool{Value: parsed.Verify(msg, key)}, nil
}
