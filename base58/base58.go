// Package base58 implements Base58 and Base58Check encoding as used by
// Radiant addresses and WIF private keys.
package base58

import (
	"crypto/sha256"
	"fmt"
	"math/big"
)

// Alphabet is the Bitcoin Base58 alphabet. It omits 0, O, I and l to avoid
// visually ambiguous glyphs.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ChecksumLen is the byte length of the Base58Check checksum.
const ChecksumLen = 4

// Address and WIF version bytes.
const (
	MainnetP2PKH byte = 0x00
	MainnetP2SH  byte = 0x05
	TestnetP2PKH byte = 0x6f
	TestnetP2SH  byte = 0xc4

	MainnetWIF byte = 0x80
	TestnetWIF byte = 0xef
)

var (
	radix = big.NewInt(58)

	// decodeTable maps alphabet characters to their values; -1 marks
	// characters outside the alphabet.
	decodeTable [256]int8
)

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}
	for i, c := range Alphabet {
		decodeTable[c] = int8(i)
	}
}

// Encode converts a byte slice to its Base58 representation. Each leading
// zero byte is preserved as a leading '1'.
func Encode(input []byte) string {
	zeros := 0
	for zeros < len(input) && input[zeros] == 0 {
		zeros++
	}

	num := new(big.Int).SetBytes(input)
	mod := new(big.Int)

	// Base58 digits come out least significant first.
	out := make([]byte, 0, len(input)*138/100+1)
	for num.Sign() > 0 {
		num.DivMod(num, radix, mod)
		out = append(out, Alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, Alphabet[0])
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Decode converts a Base58 string back to bytes. It returns
// ErrInvalidCharacter if the string contains characters outside the alphabet.
func Decode(input string) ([]byte, error) {
	zeros := 0
	for zeros < len(input) && input[zeros] == Alphabet[0] {
		zeros++
	}

	num := new(big.Int)
	for i := 0; i < len(input); i++ {
		v := decodeTable[input[i]]
		if v < 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, input[i], i)
		}
		num.Mul(num, radix)
		num.Add(num, big.NewInt(int64(v)))
	}

	decoded := num.Bytes()
	out := make([]byte, zeros+len(decoded))
	copy(out[zeros:], decoded)
	return out, nil
}

// checksum returns the first 4 bytes of doubleSHA256(data).
func checksum(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:ChecksumLen]
}

// CheckEncode prepends the version byte to the payload, appends the
// 4-byte double-SHA256 checksum, and Base58-encodes the result.
func CheckEncode(version byte, payload []byte) string {
	data := make([]byte, 0, 1+len(payload)+ChecksumLen)
	data = append(data, version)
	data = append(data, payload...)
	data = append(data, checksum(data)...)
	return Encode(data)
}

// CheckDecode Base58-decodes the string and verifies its checksum, returning
// the version byte and payload. It returns ErrInvalidChecksum when the
// trailing 4 bytes do not match doubleSHA256(version || payload).
func CheckDecode(input string) (version byte, payload []byte, err error) {
	decoded, err := Decode(input)
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) < 1+ChecksumLen {
		return 0, nil, fmt.Errorf("%w: %d bytes after decoding", ErrInvalidFormat, len(decoded))
	}

	body := decoded[:len(decoded)-ChecksumLen]
	want := decoded[len(decoded)-ChecksumLen:]
	got := checksum(body)
	for i := range want {
		if want[i] != got[i] {
			return 0, nil, ErrInvalidChecksum
		}
	}

	return body[0], body[1:], nil
}
