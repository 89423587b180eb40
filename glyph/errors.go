package glyph

import "errors"

var (
	// ErrInvalidMetadata is returned when token metadata is empty or cannot
	// be encoded as canonical CBOR.
	ErrInvalidMetadata = errors.New("glyph: invalid token metadata")

	// ErrInvalidTokenRef is returned when a token reference does not match
	// the "<txid>_<vout>" form.
	ErrInvalidTokenRef = errors.New("glyph: invalid token reference")

	// ErrTokenUTXONotFound is returned when the UTXO a token reference
	// points at is missing from the wallet's unspent set, usually because
	// it was already spent.
	ErrTokenUTXONotFound = errors.New("glyph: token utxo not found")

	// ErrInvalidEnvelope is returned when a commit payload does not carry
	// the Glyph magic or has the wrong length.
	ErrInvalidEnvelope = errors.New("glyph: invalid commit envelope")

	// ErrInvalidProofInput is returned when an inference proof input hash
	// is not valid hex of the expected length.
	ErrInvalidProofInput = errors.New("glyph: invalid proof input")
)
