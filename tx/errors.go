package tx

import "errors"

var (
	// ErrNoUTXOs indicates an empty UTXO set was offered for selection.
	ErrNoUTXOs = errors.New("tx: no UTXOs available")

	// ErrInsufficientFunds indicates the UTXO set cannot cover the target
	// plus the estimated fee.
	ErrInsufficientFunds = errors.New("tx: insufficient funds")

	// ErrInvalidOutput indicates an output with neither or both of an
	// address and a raw script, or missing change destination.
	ErrInvalidOutput = errors.New("tx: invalid output")

	// ErrInvalidTxID indicates a transaction id that is not 64 hex characters.
	ErrInvalidTxID = errors.New("tx: invalid transaction id")

	// ErrSigningFailed indicates the signing collaborator rejected the skeleton.
	ErrSigningFailed = errors.New("tx: signing failed")

	// ErrScriptBuild indicates locking script construction failed.
	ErrScriptBuild = errors.New("tx: script build failed")
)
