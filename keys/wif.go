// Package keys imports private keys from their WIF text form. The rest of
// the system only ever consumes the resulting public key bytes; signing
// and derivation stay inside btcec.
package keys

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/tranvictor/coinscope/base58check"
	"github.com/tranvictor/coinscope/coins"
)

// wifVersionOffset maps a coin's address header to its WIF version byte.
const wifVersionOffset = 128

const privateKeyLength = 32

// PrivateKey is an imported key plus the compression flag of its WIF
// form, which decides how PubKeyBytes serializes.
type PrivateKey struct {
	key        *btcec.PrivateKey
	compressed bool
}

// FromWIF decodes a base58check encoded private key. With a non-nil coin
// the version byte must be the coin's address header shifted by the WIF
// offset; with a nil coin any version byte is accepted.
func FromWIF(coin coins.Coin, wif string) (*PrivateKey, error) {
	version, payload, err := base58check.Decode(wif)
	if err != nil {
		return nil, err
	}
	if coin != nil {
		want := byte(coin.GetAddressHeader() + wifVersionOffset)
		if version != want {
			return nil, fmt.Errorf(
				"private key version %d does not match coin %s (want %d)",
				version, coin.GetURIScheme(), want,
			)
		}
	}

	compressed := false
	switch {
	case len(payload) == privateKeyLength:
	case len(payload) == privateKeyLength+1 && payload[privateKeyLength] == 0x01:
		compressed = true
	default:
		return nil, fmt.Errorf(
			"%w: private key payload is %d bytes",
			base58check.ErrAddressFormat, len(payload),
		)
	}

	key, _ := btcec.PrivKeyFromBytes(payload[:privateKeyLength])
	return &PrivateKey{key: key, compressed: compressed}, nil
}

// FromBytes wraps a raw 32-byte private key. Keys built this way
// serialize their public key compressed.
func FromBytes(priv []byte) (*PrivateKey, error) {
	if len(priv) != privateKeyLength {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", privateKeyLength, len(priv))
	}
	key, _ := btcec.PrivKeyFromBytes(priv)
	return &PrivateKey{key: key, compressed: true}, nil
}

func (k *PrivateKey) PubKey() *btcec.PublicKey {
	return k.key.PubKey()
}

// PubKeyBytes serializes the public key honoring the compression flag.
func (k *PrivateKey) PubKeyBytes() []byte {
	if k.compressed {
		return k.key.PubKey().SerializeCompressed()
	}
	return k.key.PubKey().SerializeUncompressed()
}

func (k *PrivateKey) Compressed() bool {
	return k.compressed
}

// Serialize returns the raw 32-byte private key.
func (k *PrivateKey) Serialize() []byte {
	return k.key.Serialize()
}

// ToWIF re-encodes the key for the given coin. FromWIF(coin, k.ToWIF(coin))
// reproduces k.
func (k *PrivateKey) ToWIF(coin coins.Coin) string {
	payload := k.key.Serialize()
	if k.compressed {
		payload = append(payload, 0x01)
	}
	return base58check.Encode(byte(coin.GetAddressHeader()+wifVersionOffset), payload)
}
