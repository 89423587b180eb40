package network

import "errors"

var (
	// ErrConnectionFailed indicates the client could not reach the indexer.
	ErrConnectionFailed = errors.New("network: connection failed")

	// ErrBroadcastRejected indicates the indexer rejected the broadcast
	// transaction.
	ErrBroadcastRejected = errors.New("network: broadcast rejected")

	// ErrInvalidResponse indicates the indexer returned a malformed or
	// unexpected response.
	ErrInvalidResponse = errors.New("network: invalid response")
)
