// Package hdkey implements BIP32 hierarchical deterministic key derivation
// for private keys along a path string such as "m/44'/0'/0'/0/0".
package hdkey

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/radiantorg/libradiant-go/curve"
)

// HardenedOffset is added to an index for hardened derivation.
const HardenedOffset uint32 = 0x80000000

// masterHMACKey is the HMAC key fixed by BIP32 for master key generation.
var masterHMACKey = []byte("Bitcoin seed")

// ExtendedKey is a private key plus the chain code that extends it for
// child derivation. Both fields stay unexported; callers only ever extract
// the private key bytes.
type ExtendedKey struct {
	key       [32]byte
	chainCode [32]byte
}

// PrivateKeyBytes returns a copy of the 32-byte private key.
func (k *ExtendedKey) PrivateKeyBytes() []byte {
	out := make([]byte, len(k.key))
	copy(out, k.key[:])
	return out
}

// MasterFromSeed derives the BIP32 master key from a seed via
// HMAC-SHA512 keyed with "Bitcoin seed". The left half is the private key,
// the right half the chain code.
//
// An out-of-range left half (zero or >= N) is astronomically unlikely but is
// propagated as ErrInvalidKey rather than silently re-derived.
func MasterFromSeed(seed []byte) (*ExtendedKey, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: empty seed", curve.ErrInvalidKey)
	}

	mac := hmac.New(sha512.New, masterHMACKey)
	mac.Write(seed)
	sum := mac.Sum(nil)

	if err := curve.ValidateScalar(sum[:32]); err != nil {
		return nil, err
	}

	var key ExtendedKey
	copy(key.key[:], sum[:32])
	copy(key.chainCode[:], sum[32:])
	return &key, nil
}

// Child derives the child key at the given index.
//
// For hardened indices (>= HardenedOffset) the HMAC message is
// 0x00 || parentKey || index; otherwise it is compressedPubKey(parentKey) || index.
// The child key is (left + parentKey) mod N; a left half >= N or a zero sum
// yields ErrInvalidKey with no retry.
func (k *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	var msg []byte
	if index >= HardenedOffset {
		msg = make([]byte, 0, 1+32+4)
		msg = append(msg, 0x00)
		msg = append(msg, k.key[:]...)
	} else {
		pub, err := curve.DerivePublicKey(k.key[:])
		if err != nil {
			return nil, err
		}
		msg = append(msg, pub...)
	}
	msg = binary.BigEndian.AppendUint32(msg, index)

	mac := hmac.New(sha512.New, k.chainCode[:])
	mac.Write(msg)
	sum := mac.Sum(nil)

	left := new(big.Int).SetBytes(sum[:32])
	if left.Cmp(curve.N) >= 0 {
		return nil, fmt.Errorf("%w: child %d HMAC exceeds curve order", curve.ErrInvalidKey, index)
	}

	childKey := new(big.Int).SetBytes(k.key[:])
	childKey.Add(childKey, left)
	childKey.Mod(childKey, curve.N)
	if childKey.Sign() == 0 {
		return nil, fmt.Errorf("%w: child %d key is zero", curve.ErrInvalidKey, index)
	}

	var child ExtendedKey
	childKey.FillBytes(child.key[:])
	copy(child.chainCode[:], sum[32:])
	return &child, nil
}

// DerivePath applies the derivation path to the seed and returns the final
// extended key. The path grammar is `"m" ("/" digits ["'"])*`; an apostrophe
// marks hardened derivation.
func DerivePath(seed []byte, path string) (*ExtendedKey, error) {
	indices, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	key, err := MasterFromSeed(seed)
	if err != nil {
		return nil, err
	}
	for _, index := range indices {
		if key, err = key.Child(index); err != nil {
			return nil, err
		}
	}
	return key, nil
}

// ParsePath parses a derivation path string into child indices, with
// HardenedOffset already applied to hardened segments.
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(path, "/")
	if segments[0] != "m" {
		return nil, fmt.Errorf("%w: path must start with \"m\"", ErrInvalidDerivationPath)
	}

	indices := make([]uint32, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		hardened := strings.HasSuffix(segment, "'")
		if hardened {
			segment = strings.TrimSuffix(segment, "'")
		}

		index, err := strconv.ParseUint(segment, 10, 32)
		if err != nil || index >= uint64(HardenedOffset) {
			return nil, fmt.Errorf("%w: segment %q", ErrInvalidDerivationPath, segment)
		}
		if hardened {
			index += uint64(HardenedOffset)
		}
		indices = append(indices, uint32(index))
	}
	return indices, nil
}
