package glyph

import (
	"bytes"
	"crypto/sha256"
)

// Commit envelope layout: magic(3) || version(1) || flags(1) || hash(32).
const (
	// Magic prefixes every Glyph data-carrier payload.
	Magic = "gly"

	// EnvelopeVersion is the current commit envelope version.
	EnvelopeVersion byte = 0x01

	// CommitPayloadLen is the exact size of a commit envelope.
	CommitPayloadLen = 3 + 1 + 1 + 32
)

// Envelope flag bits.
const (
	// FlagNone marks a plain token commit.
	FlagNone byte = 0x00

	// FlagMutable marks a token whose metadata may be amended by a later
	// reveal from the same key.
	FlagMutable byte = 0x01
)

// BuildCommitPayload assembles the commit envelope for a metadata hash.
func BuildCommitPayload(flags byte, commitHash [32]byte) []byte {
	payload := make([]byte, 0, CommitPayloadLen)
	payload = append(payload, Magic...)
	payload = append(payload, EnvelopeVersion, flags)
	payload = append(payload, commitHash[:]...)
	return payload
}

// ParseCommitPayload splits a commit envelope into its flags and hash.
func ParseCommitPayload(payload []byte) (flags byte, commitHash [32]byte, err error) {
	if len(payload) != CommitPayloadLen || !bytes.HasPrefix(payload, []byte(Magic)) {
		return 0, [32]byte{}, ErrInvalidEnvelope
	}
	if payload[3] != EnvelopeVersion {
		return 0, [32]byte{}, ErrInvalidEnvelope
	}
	copy(commitHash[:], payload[5:])
	return payload[4], commitHash, nil
}

// buildRevealPrefix is the header pushed ahead of the metadata in a reveal
// transaction's data carrier.
func buildRevealPrefix() []byte {
	return append([]byte(Magic), EnvelopeVersion)
}

// buildBurnPayload marks a token UTXO as destroyed. The marker is the Glyph
// magic and version followed by the literal tag "burn".
func buildBurnPayload() []byte {
	payload := append([]byte(Magic), EnvelopeVersion)
	return append(payload, []byte("burn")...)
}

// VerifyCommitHash checks that the commit envelope in a commit transaction
// matches a candidate metadata encoding.
func VerifyCommitHash(payload, encodedMetadata []byte) (bool, error) {
	_, want, err := ParseCommitPayload(payload)
	if err != nil {
		return false, err
	}
	got := sha256.Sum256(encodedMetadata)
	return got == want, nil
}
