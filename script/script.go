// Package script builds and picks apart pay-to-script-hash output
// scripts. It is deliberately narrow: the address layer only ever needs
// to wrap a script hash or recover one, never to build arbitrary scripts.
package script

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/crypto/ripemd160"
)

const (
	OpHash160       = 0xa9
	OpEqual         = 0x87
	OpCheckMultiSig = 0xae

	// Op1 through Op16 push the small numbers used for multisig
	// thresholds and key counts.
	Op1 = 0x51

	// HashLength is the size of a script hash (RIPEMD160 over SHA256).
	HashLength = 20
)

var ErrNotP2SH = errors.New("script is not a canonical pay-to-script-hash output")

// P2SHOutputScript wraps a 20-byte script hash into the canonical
// OP_HASH160 <hash> OP_EQUAL output script.
func P2SHOutputScript(hash []byte) ([]byte, error) {
	if len(hash) != HashLength {
		return nil, fmt.Errorf("script hash must be %d bytes, got %d", HashLength, len(hash))
	}
	result := make([]byte, 0, 3+HashLength)
	result = append(result, OpHash160, HashLength)
	result = append(result, hash...)
	result = append(result, OpEqual)
	return result, nil
}

// P2SHOutputScriptFromRedeem hashes the redeem script and wraps it.
func P2SHOutputScriptFromRedeem(redeemScript []byte) ([]byte, error) {
	return P2SHOutputScript(Hash160(redeemScript))
}

// MultiSigRedeemScript builds a threshold-of-n redeem script from
// serialized public keys (33-byte compressed or 65-byte uncompressed).
// Keys are sorted lexicographically before being pushed, so every
// permutation of the same key set produces the same script and the same
// p2sh address.
func MultiSigRedeemScript(threshold int, pubKeys [][]byte) ([]byte, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("multisig threshold must be at least 1, got %d", threshold)
	}
	if threshold > len(pubKeys) {
		return nil, fmt.Errorf("multisig threshold %d exceeds number of keys %d", threshold, len(pubKeys))
	}
	if len(pubKeys) > 16 {
		return nil, fmt.Errorf("multisig supports at most 16 keys, got %d", len(pubKeys))
	}
	for i, key := range pubKeys {
		if len(key) != 33 && len(key) != 65 {
			return nil, fmt.Errorf("public key %d must be 33 or 65 bytes, got %d", i, len(key))
		}
	}

	sorted := make([][]byte, len(pubKeys))
	copy(sorted, pubKeys)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i], sorted[j]) < 0
	})

	result := []byte{smallNum(threshold)}
	for _, key := range sorted {
		result = append(result, byte(len(key)))
		result = append(result, key...)
	}
	result = append(result, smallNum(len(pubKeys)), OpCheckMultiSig)
	return result, nil
}

// ExtractP2SHHash recovers the embedded script hash from a canonical
// pay-to-script-hash output script.
func ExtractP2SHHash(outputScript []byte) ([]byte, error) {
	if len(outputScript) != 3+HashLength ||
		outputScript[0] != OpHash160 ||
		outputScript[1] != HashLength ||
		outputScript[len(outputScript)-1] != OpEqual {
		return nil, ErrNotP2SH
	}
	hash := make([]byte, HashLength)
	copy(hash, outputScript[2:2+HashLength])
	return hash, nil
}

// Hash160 is RIPEMD160(SHA256(data)), the hash commitment used by both
// address payloads and script hashes.
func Hash160(data []byte) []byte {
	first := sha256.Sum256(data)
	hasher := ripemd160.New()
	hasher.Write(first[:])
	return hasher.Sum(nil)
}

// smallNum encodes 1..16 as OP_1..OP_16.
func smallNum(n int) byte {
	return byte(Op1 + n - 1)
}
