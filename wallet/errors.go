package wallet

import "errors"

var (
	// ErrInvalidNetwork indicates an unknown network name.
	ErrInvalidNetwork = errors.New("wallet: invalid network name")

	// ErrUnsupportedAddressVersion indicates an address or WIF version byte
	// that does not belong to a known Radiant network.
	ErrUnsupportedAddressVersion = errors.New("wallet: unsupported address version")
)
