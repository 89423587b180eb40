package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataEncode_Deterministic(t *testing.T) {
	a := Metadata{
		"name":     "Photon",
		"ticker":   "PHO",
		"decimals": uint8(8),
		"supply":   uint64(21_000_000),
		"attrs":    map[string]interface{}{"color": "gold", "rarity": "common"},
	}
	b := Metadata{
		"attrs":    map[string]interface{}{"rarity": "common", "color": "gold"},
		"supply":   uint64(21_000_000),
		"decimals": uint8(8),
		"ticker":   "PHO",
		"name":     "Photon",
	}

	encA, err := a.Encode()
	require.NoError(t, err)
	encB, err := b.Encode()
	require.NoError(t, err)
	assert.Equal(t, encA, encB)

	hashA, err := a.CommitHash()
	require.NoError(t, err)
	hashB, err := b.CommitHash()
	require.NoError(t, err)
	assert.Equal(t, hashA, hashB)
}

func TestMetadataEncode_ContentChangesHash(t *testing.T) {
	a := NewFungibleTokenMetadata("Photon", "PHO", 8, 21_000_000)
	b := NewFungibleTokenMetadata("Photon", "PHO", 8, 21_000_001)

	hashA, err := a.CommitHash()
	require.NoError(t, err)
	hashB, err := b.CommitHash()
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB)
}

func TestMetadataEncode_Empty(t *testing.T) {
	_, err := Metadata{}.Encode()
	assert.ErrorIs(t, err, ErrInvalidMetadata)
	_, err = Metadata(nil).Encode()
	assert.ErrorIs(t, err, ErrInvalidMetadata)
}

func TestDecodeMetadata_Roundtrip(t *testing.T) {
	md := NewFungibleTokenMetadata("Photon", "PHO", 8, 21_000_000)
	encoded, err := md.Encode()
	require.NoError(t, err)

	decoded, err := DecodeMetadata(encoded)
	require.NoError(t, err)
	assert.Equal(t, "Photon", decoded["name"])
	assert.Equal(t, "PHO", decoded["ticker"])
	assert.EqualValues(t, 8, decoded["decimals"])
	assert.EqualValues(t, 21_000_000, decoded["supply"])
}

func TestDecodeMetadata_Garbage(t *testing.T) {
	_, err := DecodeMetadata([]byte{0xff, 0x00, 0x01})
	assert.ErrorIs(t, err, ErrInvalidMetadata)
}

func TestCommitPayload_Roundtrip(t *testing.T) {
	md := NewFungibleTokenMetadata("Photon", "PHO", 8, 21_000_000)
	hash, err := md.CommitHash()
	require.NoError(t, err)

	payload := BuildCommitPayload(FlagMutable, hash)
	require.Len(t, payload, CommitPayloadLen)
	assert.Equal(t, []byte(Magic), payload[:3])

	flags, parsed, err := ParseCommitPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, FlagMutable, flags)
	assert.Equal(t, hash, parsed)
}

func TestParseCommitPayload_Invalid(t *testing.T) {
	var hash [32]byte
	good := BuildCommitPayload(FlagNone, hash)

	badMagic := append([]byte(nil), good...)
	copy(badMagic, "xyz")
	_, _, err := ParseCommitPayload(badMagic)
	assert.ErrorIs(t, err, ErrInvalidEnvelope)

	badVersion := append([]byte(nil), good...)
	badVersion[3] = 0x7f
	_, _, err = ParseCommitPayload(badVersion)
	assert.ErrorIs(t, err, ErrInvalidEnvelope)

	_, _, err = ParseCommitPayload(good[:CommitPayloadLen-1])
	assert.ErrorIs(t, err, ErrInvalidEnvelope)

	_, _, err = ParseCommitPayload(nil)
	assert.ErrorIs(t, err, ErrInvalidEnvelope)
}

func TestVerifyCommitHash(t *testing.T) {
	md := NewFungibleTokenMetadata("Photon", "PHO", 8, 21_000_000)
	encoded, err := md.Encode()
	require.NoError(t, err)
	hash, err := md.CommitHash()
	require.NoError(t, err)
	payload := BuildCommitPayload(FlagNone, hash)

	ok, err := VerifyCommitHash(payload, encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	other, err := NewFungibleTokenMetadata("Other", "OTH", 0, 1).Encode()
	require.NoError(t, err)
	ok, err = VerifyCommitHash(payload, other)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = VerifyCommitHash([]byte("junk"), encoded)
	assert.ErrorIs(t, err, ErrInvalidEnvelope)
}
