// Package glyph implements the Glyph token protocol for Radiant: two-phase
// commit/reveal minting, single-UTXO token transfer, and token burn.
//
// Glyph metadata travels on chain as canonically encoded CBOR; the commit
// transaction publishes a hash of that encoding inside a small data-carrier
// envelope, and the reveal transaction publishes the encoding itself.
package glyph

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Glyph protocol identifiers carried in the metadata "p" field.
const (
	ProtocolFungible    = 1
	ProtocolNonFungible = 2
	ProtocolDataStorage = 3
)

// Metadata is the Glyph token metadata map. Nested maps are supported; the
// canonical encoding sorts keys at every level, so encoding is a pure
// function of content regardless of insertion order.
type Metadata map[string]interface{}

// encMode is the deterministic CBOR encoder fixed by the protocol
// (RFC 8949 core deterministic encoding: sorted keys, shortest forms).
var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// NewFungibleTokenMetadata builds the metadata map for a fungible token.
func NewFungibleTokenMetadata(name, ticker string, decimals uint8, supply uint64) Metadata {
	return Metadata{
		"p":        []interface{}{ProtocolFungible},
		"name":     name,
		"ticker":   ticker,
		"decimals": decimals,
		"supply":   supply,
	}
}

// Encode serializes the metadata to canonical CBOR.
func (m Metadata) Encode() ([]byte, error) {
	if len(m) == 0 {
		return nil, ErrInvalidMetadata
	}
	data, err := encMode.Marshal(map[string]interface{}(m))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}
	return data, nil
}

// CommitHash returns SHA256 over the canonical encoding of the metadata.
// Identical metadata always yields an identical hash.
func (m Metadata) CommitHash() ([32]byte, error) {
	data, err := m.Encode()
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(data), nil
}

// DecodeMetadata parses canonical CBOR bytes back into a Metadata map.
func DecodeMetadata(data []byte) (Metadata, error) {
	var m map[string]interface{}
	if err := cbor.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}
	return Metadata(m), nil
}
