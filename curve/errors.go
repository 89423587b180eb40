package curve

import "errors"

var (
	// ErrInvalidKey indicates a private scalar outside [1, N).
	ErrInvalidKey = errors.New("curve: invalid private key")
)
