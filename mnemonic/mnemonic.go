// Package mnemonic implements BIP39 mnemonic generation, validation and seed
// derivation.
//
// The 2048-word English list is taken from the reference wordlist shipped
// with tyler-smith/go-bip39; the entropy/checksum arithmetic is implemented
// here so that each step (checksum width, 11-bit grouping) stays explicit.
package mnemonic

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"math/big"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedLen is the byte length of a BIP39 seed.
	SeedLen = 64

	// seedIterations is the PBKDF2 iteration count fixed by BIP39.
	seedIterations = 2048

	// bitsPerWord is the index width of one mnemonic word (2^11 = 2048).
	bitsPerWord = 11
)

// strengthByWordCount maps a word count to its entropy strength in bits.
// The checksum is strength/32 bits, so words = (strength + strength/32) / 11.
var strengthByWordCount = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// wordIndex maps each wordlist entry back to its 11-bit index.
var wordIndex = func() map[string]int {
	m := make(map[string]int, len(wordlists.English))
	for i, w := range wordlists.English {
		m[w] = i
	}
	return m
}()

// Generate creates a new random mnemonic of the given word count
// (12, 15, 18, 21 or 24 words).
func Generate(wordCount int) (string, error) {
	strength, ok := strengthByWordCount[wordCount]
	if !ok {
		return "", fmt.Errorf("%w: %d words", ErrInvalidWordCount, wordCount)
	}

	entropy := make([]byte, strength/8)
	if _, err := rand.Read(entropy); err != nil {
		return "", fmt.Errorf("mnemonic: entropy generation failed: %w", err)
	}

	return FromEntropy(entropy)
}

// FromEntropy encodes entropy bytes (16, 20, 24, 28 or 32 bytes) as a
// mnemonic: the first len(entropy)*8/32 bits of SHA256(entropy) are appended
// as a checksum, and the combined bit string is split into 11-bit word
// indices.
func FromEntropy(entropy []byte) (string, error) {
	strength := len(entropy) * 8
	checksumBits := strength / 32
	wordCount := (strength + checksumBits) / bitsPerWord

	valid := false
	for _, s := range strengthByWordCount {
		if s == strength {
			valid = true
			break
		}
	}
	if !valid {
		return "", fmt.Errorf("%w: %d bytes of entropy", ErrInvalidEntropy, len(entropy))
	}

	hash := sha256.Sum256(entropy)

	// combined = entropy << checksumBits | top checksumBits of the hash
	combined := new(big.Int).SetBytes(entropy)
	combined.Lsh(combined, uint(checksumBits))
	combined.Or(combined, big.NewInt(int64(hash[0]>>(8-checksumBits))))

	words := make([]string, wordCount)
	mask := big.NewInt(1<<bitsPerWord - 1)
	idx := new(big.Int)
	for i := wordCount - 1; i >= 0; i-- {
		idx.And(combined, mask)
		words[i] = wordlists.English[idx.Int64()]
		combined.Rsh(combined, bitsPerWord)
	}

	return strings.Join(words, " "), nil
}

// Validate reports whether the mnemonic has a supported word count, contains
// only wordlist words, and carries a correct checksum.
func Validate(mnemonic string) bool {
	_, err := entropyFromMnemonic(mnemonic)
	return err == nil
}

// Seed derives the 64-byte BIP39 seed from the mnemonic and an optional
// passphrase using PBKDF2-HMAC-SHA512 with 2048 iterations. Both the
// mnemonic and the salt are NFKD-normalized per the standard.
//
// Seed does not validate the mnemonic's checksum; use Validate first when the
// mnemonic comes from user input.
func Seed(mnemonic, passphrase string) []byte {
	password := norm.NFKD.String(mnemonic)
	salt := norm.NFKD.String("mnemonic" + passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), seedIterations, SeedLen, sha512.New)
}

// entropyFromMnemonic reverses the word mapping and verifies the checksum.
func entropyFromMnemonic(mnemonic string) ([]byte, error) {
	words := strings.Fields(norm.NFKD.String(mnemonic))
	strength, ok := strengthByWordCount[len(words)]
	if !ok {
		return nil, fmt.Errorf("%w: %d words", ErrInvalidWordCount, len(words))
	}
	checksumBits := strength / 32

	combined := new(big.Int)
	for _, w := range words {
		idx, ok := wordIndex[w]
		if !ok {
			return nil, fmt.Errorf("%w: unknown word %q", ErrInvalidMnemonic, w)
		}
		combined.Lsh(combined, bitsPerWord)
		combined.Or(combined, big.NewInt(int64(idx)))
	}

	// Split off the trailing checksum bits.
	checksumMask := big.NewInt(1<<checksumBits - 1)
	gotChecksum := new(big.Int).And(combined, checksumMask)

	entropyInt := new(big.Int).Rsh(combined, uint(checksumBits))
	entropy := make([]byte, strength/8)
	entropyInt.FillBytes(entropy)

	hash := sha256.Sum256(entropy)
	wantChecksum := int64(hash[0] >> (8 - checksumBits))
	if gotChecksum.Int64() != wantChecksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidMnemonic)
	}

	return entropy, nil
}
