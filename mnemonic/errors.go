package mnemonic

import "errors"

var (
	// ErrInvalidMnemonic indicates an unknown word or a failed checksum.
	ErrInvalidMnemonic = errors.New("mnemonic: invalid mnemonic")

	// ErrInvalidWordCount indicates a word count outside {12,15,18,21,24}.
	ErrInvalidWordCount = errors.New("mnemonic: word count must be 12, 15, 18, 21 or 24")

	// ErrInvalidEntropy indicates an entropy length outside {16,20,24,28,32} bytes.
	ErrInvalidEntropy = errors.New("mnemonic: invalid entropy length")
)
