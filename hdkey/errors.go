package hdkey

import "errors"

var (
	// ErrInvalidDerivationPath indicates a malformed derivation path.
	ErrInvalidDerivationPath = errors.New("hdkey: invalid derivation path")
)
