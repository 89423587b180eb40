package base58

import (
	"bytes"
	"crypto/rand"
	"testing"

	btcbase58 "github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_MatchesReferenceLibrary(t *testing.T) {
	for i := 0; i < 32; i++ {
		size := 1 + i%40
		data := make([]byte, size)
		_, err := rand.Read(data)
		require.NoError(t, err)

		assert.Equal(t, btcbase58.Encode(data), Encode(data))
	}
}

func TestEncode_LeadingZeros(t *testing.T) {
	data := append([]byte{0, 0, 0}, 0xff, 0x01)
	encoded := Encode(data)
	assert.Equal(t, "111", encoded[:3])

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestEncode_Empty(t *testing.T) {
	assert.Equal(t, "", Encode(nil))

	decoded, err := Decode("")
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecode_RoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		data := make([]byte, 1+i)
		_, err := rand.Read(data)
		require.NoError(t, err)

		decoded, err := Decode(Encode(data))
		require.NoError(t, err)
		assert.True(t, bytes.Equal(data, decoded))
	}
}

func TestDecode_InvalidCharacter(t *testing.T) {
	for _, s := range []string{"0", "O", "I", "l", "1abc!", "hello world"} {
		_, err := Decode(s)
		assert.ErrorIs(t, err, ErrInvalidCharacter, "input %q", s)
	}
}

func TestCheckEncode_KnownAddress(t *testing.T) {
	// HASH160 of all-zero bytes under version 0x00 is the well-known
	// "burn" style address prefix 1111...
	payload := make([]byte, 20)
	encoded := CheckEncode(MainnetP2PKH, payload)
	assert.Equal(t, btcbase58.CheckEncode(payload, MainnetP2PKH), encoded)

	version, decoded, err := CheckDecode(encoded)
	require.NoError(t, err)
	assert.Equal(t, MainnetP2PKH, version)
	assert.Equal(t, payload, decoded)
}

func TestCheckDecode_CorruptedChecksum(t *testing.T) {
	payload := bytes.Repeat([]byte{0xab}, 20)
	encoded := CheckEncode(TestnetP2PKH, payload)

	// Swap two distinct characters to corrupt the checksum.
	b := []byte(encoded)
	for i := len(b) - 1; i > 0; i-- {
		if b[i] != b[0] {
			b[0], b[i] = b[i], b[0]
			break
		}
	}
	_, _, err := CheckDecode(string(b))
	assert.ErrorIs(t, err, ErrInvalidChecksum)
}

func TestCheckDecode_TooShort(t *testing.T) {
	_, _, err := CheckDecode("1")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, _, err = CheckDecode("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
