package base58

import "errors"

var (
	// ErrInvalidCharacter indicates a character outside the Base58 alphabet.
	ErrInvalidCharacter = errors.New("base58: invalid character")

	// ErrInvalidChecksum indicates the Base58Check checksum does not match.
	ErrInvalidChecksum = errors.New("base58: invalid checksum")

	// ErrInvalidFormat indicates the decoded payload is too short to carry a
	// version byte and checksum.
	ErrInvalidFormat = errors.New("base58: invalid format")
)
