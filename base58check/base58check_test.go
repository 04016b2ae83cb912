package base58check_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tranvictor/coinscope/base58check"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEncodeKnownVectors(t *testing.T) {
	require.Equal(
		t,
		"17kzeh4N8g49GFvdDzSf8PjaPfyoD1MndL",
		base58check.Encode(0, mustHex(t, "4a22c3c4cbb31e4d03b15550636762bda0baf85a")),
	)
	require.Equal(
		t,
		"n4eA2nbYqErp7H6jebchxAN59DmNpksexv",
		base58check.Encode(111, mustHex(t, "fda79a24e50ff70ff42f7d89585da5bd19d9e5cc")),
	)
	require.Equal(
		t,
		"35b9vsyH1KoFT5a5KtrKusaCcPLkiSo1tU",
		base58check.Encode(5, mustHex(t, "2ac4b0b501117cc8119c5797b519538d4942e90e")),
	)
	require.Equal(
		t,
		"2MuVSxtfivPKJe93EC1Tb9UhJtGhsoWEHCe",
		base58check.Encode(196, mustHex(t, "18a0e827269b5211eb51a4af1b2fa69333efa722")),
	)
}

func TestRoundTripAllVersionBytes(t *testing.T) {
	for v := 0; v <= 255; v++ {
		payload := make([]byte, 20)
		for i := range payload {
			payload[i] = byte(v + i*7)
		}
		encoded := base58check.Encode(byte(v), payload)
		version, decoded, err := base58check.Decode(encoded)
		require.NoError(t, err, "version byte %d", v)
		require.Equal(t, byte(v), version)
		require.Equal(t, payload, decoded)
	}
}

func TestLeadingZerosPreserved(t *testing.T) {
	payload := make([]byte, 20)
	payload[19] = 1
	encoded := base58check.Encode(0, payload)
	// version 0 plus 19 zero payload bytes must show up as 20 leading '1's
	require.True(t, strings.HasPrefix(encoded, strings.Repeat("1", 20)))
	require.False(t, strings.HasPrefix(encoded, strings.Repeat("1", 21)))

	version, decoded, err := base58check.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, byte(0), version)
	require.Equal(t, payload, decoded)
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"illegal character": "this is not a valid address!",
		"zero glyph":        "0OIl",
		"too short":         "2g",
		"checksum only":     "1111",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := base58check.Decode(input)
			require.ErrorIs(t, err, base58check.ErrAddressFormat)
		})
	}
}

func TestDecodeRejectsTamperedChecksum(t *testing.T) {
	encoded := base58check.Encode(0, mustHex(t, "4a22c3c4cbb31e4d03b15550636762bda0baf85a"))
	tampered := []byte(encoded)
	if tampered[len(tampered)-1] == 'L' {
		tampered[len(tampered)-1] = 'M'
	} else {
		tampered[len(tampered)-1] = 'L'
	}
	_, _, err := base58check.Decode(string(tampered))
	require.ErrorIs(t, err, base58check.ErrAddressFormat)
	require.Contains(t, err.Error(), "checksum")
}

func TestDecodeCopiesPayload(t *testing.T) {
	encoded := base58check.Encode(55, mustHex(t, "4a22c3c4cbb31e4d03b15550636762bda0baf85a"))
	_, payload1, err := base58check.Decode(encoded)
	require.NoError(t, err)
	_, payload2, err := base58check.Decode(encoded)
	require.NoError(t, err)
	payload1[0] ^= 0xff
	require.NotEqual(t, payload1[0], payload2[0])
}
