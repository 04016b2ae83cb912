// Package base58check implements the Base58Check text encoding used by
// bitcoin-family addresses: a version byte and payload protected by a
// 4-byte double-SHA256 checksum, rendered in the 58-character alphabet
// with leading zero bytes preserved as leading '1' characters.
package base58check

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

// ChecksumLength is the number of checksum bytes appended before encoding.
const ChecksumLength = 4

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrAddressFormat is the class of all decoding failures: empty input,
// characters outside the base-58 alphabet, truncated buffers and checksum
// mismatches all wrap it so callers can match with errors.Is.
var ErrAddressFormat = errors.New("invalid address format")

// Encode renders version + payload + checksum(version + payload) in base-58.
func Encode(version byte, payload []byte) string {
	buf := make([]byte, 0, 1+len(payload)+ChecksumLength)
	buf = append(buf, version)
	buf = append(buf, payload...)
	sum := checksum(buf)
	buf = append(buf, sum[:]...)
	return base58.Encode(buf)
}

// Decode is the inverse of Encode. It returns the version byte and the
// payload with the checksum stripped and verified.
func Decode(input string) (byte, []byte, error) {
	if input == "" {
		return 0, nil, fmt.Errorf("%w: empty string", ErrAddressFormat)
	}
	for _, r := range input {
		if !strings.ContainsRune(alphabet, r) {
			return 0, nil, fmt.Errorf("%w: illegal character %q", ErrAddressFormat, r)
		}
	}
	decoded := base58.Decode(input)
	if len(decoded) < 1+ChecksumLength {
		return 0, nil, fmt.Errorf(
			"%w: decoded to %d bytes, need at least %d",
			ErrAddressFormat, len(decoded), 1+ChecksumLength,
		)
	}
	payloadEnd := len(decoded) - ChecksumLength
	sum := checksum(decoded[:payloadEnd])
	if !bytes.Equal(sum[:], decoded[payloadEnd:]) {
		return 0, nil, fmt.Errorf("%w: checksum mismatch", ErrAddressFormat)
	}
	payload := make([]byte, payloadEnd-1)
	copy(payload, decoded[1:payloadEnd])
	return decoded[0], payload, nil
}

// checksum is the first 4 bytes of SHA256(SHA256(input)).
func checksum(input []byte) [ChecksumLength]byte {
	first := sha256.Sum256(input)
	second := sha256.Sum256(first[:])
	var sum [ChecksumLength]byte
	copy(sum[:], second[:ChecksumLength])
	return sum
}
