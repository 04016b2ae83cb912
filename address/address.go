// Package address decodes base58check address strings and resolves which
// registered coins could own them. Version byte collisions across
// unrelated coins are normal in this space: the resolver enumerates every
// claimant and leaves the choice to the caller, it never guesses.
package address

import (
	"bytes"
	"fmt"

	"github.com/tranvictor/coinscope/base58check"
	"github.com/tranvictor/coinscope/coins"
	"github.com/tranvictor/coinscope/script"
)

// HashLength is the size of the hash160 payload carried by an address.
const HashLength = 20

// Address is an immutable decoded address: a version byte, a 20-byte
// hash160 payload and an optional coin reference used for formatting and
// p2sh checks. The coin reference is shared, never owned.
type Address struct {
	version byte
	hash    [HashLength]byte
	coin    coins.Coin
}

// FromBase58 decodes addr. A nil hint accepts any syntactically valid
// version byte. With a non-nil hint the decoded version byte must be one
// of the hint's acceptable codes, otherwise a *WrongNetworkError carrying
// the decoded byte and the expected set is returned.
func FromBase58(hint coins.Coin, addr string) (*Address, error) {
	version, payload, err := base58check.Decode(addr)
	if err != nil {
		return nil, err
	}
	if len(payload) != HashLength {
		return nil, fmt.Errorf(
			"%w: address payload is %d bytes, want %d",
			base58check.ErrAddressFormat, len(payload), HashLength,
		)
	}
	if hint != nil {
		codes := hint.GetAcceptableAddressCodes()
		if !containsCode(codes, int(version)) {
			return nil, &WrongNetworkError{Version: int(version), AcceptableCodes: codes}
		}
	}

	result := &Address{version: version, coin: hint}
	copy(result.hash[:], payload)
	return result, nil
}

// CoinsFromBase58 decodes addr and returns every registered coin whose
// address header or p2sh header matches its version byte, in registration
// order. Zero matches with a nil error means the address is well formed
// but no registered coin claims it.
func CoinsFromBase58(reg *coins.Registry, addr string) ([]coins.Coin, error) {
	version, payload, err := base58check.Decode(addr)
	if err != nil {
		return nil, err
	}
	if len(payload) != HashLength {
		return nil, fmt.Errorf(
			"%w: address payload is %d bytes, want %d",
			base58check.ErrAddressFormat, len(payload), HashLength,
		)
	}
	return reg.FindByVersionByte(version), nil
}

// NewFromHash builds a pay-to-pubkey-hash address for coin from a
// precomputed hash160.
func NewFromHash(coin coins.Coin, hash []byte) (*Address, error) {
	if coin == nil {
		return nil, fmt.Errorf("coin must not be nil")
	}
	return newWithVersion(byte(coin.GetAddressHeader()), coin, hash)
}

// FromP2SHHash builds a pay-to-script-hash address for coin from a
// precomputed script hash.
func FromP2SHHash(coin coins.Coin, hash []byte) (*Address, error) {
	if coin == nil {
		return nil, fmt.Errorf("coin must not be nil")
	}
	if coin.GetP2SHHeader() == coins.NoP2SH {
		return nil, fmt.Errorf("coin %s has no pay-to-script-hash addresses", coin.GetURIScheme())
	}
	return newWithVersion(byte(coin.GetP2SHHeader()), coin, hash)
}

// FromP2SHScript extracts the script hash embedded in a canonical p2sh
// output script and builds the corresponding address.
func FromP2SHScript(coin coins.Coin, outputScript []byte) (*Address, error) {
	hash, err := script.ExtractP2SHHash(outputScript)
	if err != nil {
		return nil, err
	}
	return FromP2SHHash(coin, hash)
}

func newWithVersion(version byte, coin coins.Coin, hash []byte) (*Address, error) {
	if len(hash) != HashLength {
		return nil, fmt.Errorf("address hash must be %d bytes, got %d", HashLength, len(hash))
	}
	result := &Address{version: version, coin: coin}
	copy(result.hash[:], hash)
	return result, nil
}

func (a *Address) Version() byte {
	return a.version
}

// Hash160 returns a copy of the 20-byte payload.
func (a *Address) Hash160() []byte {
	hash := make([]byte, HashLength)
	copy(hash, a.hash[:])
	return hash
}

// Coin returns the coin this address was decoded against, or nil.
func (a *Address) Coin() coins.Coin {
	return a.coin
}

// IsP2SH reports whether the version byte equals the associated coin's
// p2sh header. Without a coin reference it is false.
func (a *Address) IsP2SH() bool {
	return a.coin != nil && int(a.version) == a.coin.GetP2SHHeader()
}

// ToBase58 re-encodes the address. For any address produced by FromBase58
// this reproduces the original string exactly.
func (a *Address) ToBase58() string {
	return base58check.Encode(a.version, a.hash[:])
}

func (a *Address) String() string {
	return a.ToBase58()
}

// Compare orders addresses by version byte then hash bytes. Note this need
// not agree with lexicographic order of the encoded strings.
func (a *Address) Compare(other *Address) int {
	if a.version != other.version {
		if a.version < other.version {
			return -1
		}
		return 1
	}
	return bytes.Compare(a.hash[:], other.hash[:])
}

func (a *Address) Equal(other *Address) bool {
	return a.Compare(other) == 0
}

// Clone returns an independent address value sharing the coin reference.
func (a *Address) Clone() *Address {
	clone := *a
	return &clone
}

func containsCode(codes []int, code int) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
