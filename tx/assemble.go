package tx

import (
	"context"
	"encoding/hex"
	"fmt"
)

// Input is one prevout of an unsigned transaction skeleton.
type Input struct {
	TxID         string
	Vout         uint32
	Value        uint64
	ScriptPubKey []byte
}

// Output is one output of an unsigned transaction skeleton: either an
// address payee or a raw locking script, never both.
type Output struct {
	Address string
	Script  []byte
	Value   uint64
}

// Skeleton is an ordered, unsigned input/output layout. It is consumed once
// by the Signer collaborator.
type Skeleton struct {
	Inputs     []Input
	Outputs    []Output
	FeePerByte uint64
	Fee        uint64 // estimated fee the skeleton was balanced against
}

// SignedTx is the Signer collaborator's result.
type SignedTx struct {
	TxID        string `json:"txid"`
	RawTxHex    string `json:"raw_tx_hex"`
	Fee         uint64 `json:"fee"`
	InputCount  int    `json:"input_count"`
	OutputCount int    `json:"output_count"`
}

// Signer serializes and signs a Skeleton with the given private key. Errors
// from the collaborator propagate as-is; this package never retries.
type Signer interface {
	Sign(ctx context.Context, skeleton *Skeleton, privKey []byte) (*SignedTx, error)
}

// NewSkeleton assembles an unsigned skeleton from the selected coins and
// desired outputs. The fee is estimated from the final input/output layout;
// any input surplus above outputs+fee goes to a change output paying
// changeAddress, unless the surplus is below DustLimit, in which case it is
// folded into the fee.
//
// Input and output order is preserved exactly as given.
func NewSkeleton(selection *Selection, outputs []Output, changeAddress string, feePerByte uint64) (*Skeleton, error) {
	if selection == nil || len(selection.Selected) == 0 {
		return nil, ErrNoUTXOs
	}
	if feePerByte == 0 {
		feePerByte = DefaultFeePerByte
	}

	var totalOut uint64
	p2pkhOutputs := 0
	var opReturnSizes []int
	for i, out := range outputs {
		switch {
		case out.Address != "" && out.Script != nil:
			return nil, fmt.Errorf("%w: output %d has both address and script", ErrInvalidOutput, i)
		case out.Address != "":
			p2pkhOutputs++
		case out.Script != nil:
			opReturnSizes = append(opReturnSizes, len(out.Script))
		default:
			return nil, fmt.Errorf("%w: output %d has neither address nor script", ErrInvalidOutput, i)
		}
		totalOut += out.Value
	}

	inputs := make([]Input, len(selection.Selected))
	for i, u := range selection.Selected {
		inputs[i] = Input{
			TxID:         u.TxID,
			Vout:         u.Vout,
			Value:        u.Value,
			ScriptPubKey: u.ScriptPubKey,
		}
	}

	// Reserve the change output in the fee bound, mirroring SelectCoins.
	fee := EstimateFee(len(inputs), p2pkhOutputs+1, opReturnSizes, feePerByte)
	if selection.TotalIn < totalOut+fee {
		return nil, fmt.Errorf("%w: need %d photons, have %d",
			ErrInsufficientFunds, totalOut+fee, selection.TotalIn)
	}

	skeleton := &Skeleton{
		Inputs:     inputs,
		Outputs:    append([]Output(nil), outputs...),
		FeePerByte: feePerByte,
		Fee:        fee,
	}

	change := selection.TotalIn - totalOut - fee
	if change >= DustLimit {
		if changeAddress == "" {
			return nil, fmt.Errorf("%w: change of %d photons with no change address", ErrInvalidOutput, change)
		}
		skeleton.Outputs = append(skeleton.Outputs, Output{Address: changeAddress, Value: change})
	} else {
		skeleton.Fee += change
	}

	return skeleton, nil
}

// TotalIn sums the skeleton's input values.
func (s *Skeleton) TotalIn() uint64 {
	var total uint64
	for _, in := range s.Inputs {
		total += in.Value
	}
	return total
}

// TotalOut sums the skeleton's output values.
func (s *Skeleton) TotalOut() uint64 {
	var total uint64
	for _, out := range s.Outputs {
		total += out.Value
	}
	return total
}

// ValidateTxID checks that a transaction id is 64 hex characters.
func ValidateTxID(txid string) error {
	if len(txid) != 64 {
		return fmt.Errorf("%w: txid %q", ErrInvalidTxID, txid)
	}
	if _, err := hex.DecodeString(txid); err != nil {
		return fmt.Errorf("%w: txid %q", ErrInvalidTxID, txid)
	}
	return nil
}
