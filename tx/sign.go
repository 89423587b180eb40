package tx

import (
	"context"
	"fmt"

	"github.com/bsv-blockchain/go-sdk/chainhash"
	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/bsv-blockchain/go-sdk/script"
	"github.com/bsv-blockchain/go-sdk/transaction"
	"github.com/bsv-blockchain/go-sdk/transaction/template/p2pkh"
)

// SDKSigner signs skeletons with go-sdk's P2PKH template. It is the default
// Signer collaborator; all inputs are assumed to pay to the single supplied
// private key.
type SDKSigner struct{}

// Compile-time interface check.
var _ Signer = (*SDKSigner)(nil)

// Sign serializes the skeleton into a transaction, attaches a P2PKH unlocker
// built from privKey to every input, signs, and returns the signed result.
func (s *SDKSigner) Sign(_ context.Context, skeleton *Skeleton, privKey []byte) (*SignedTx, error) {
	if skeleton == nil || len(skeleton.Inputs) == 0 {
		return nil, fmt.Errorf("%w: empty skeleton", ErrSigningFailed)
	}

	priv, _ := ec.PrivateKeyFromBytes(privKey)
	if priv == nil {
		return nil, fmt.Errorf("%w: invalid private key", ErrSigningFailed)
	}

	unlocker, err := p2pkh.Unlock(priv, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: unlocker: %w", ErrSigningFailed, err)
	}

	sdkTx := transaction.NewTransaction()

	for i, in := range skeleton.Inputs {
		prevHash, err := chainhash.NewHashFromHex(in.TxID)
		if err != nil {
			return nil, fmt.Errorf("%w: input %d txid: %w", ErrSigningFailed, i, err)
		}
		input := &transaction.TransactionInput{
			SourceTXID:       prevHash,
			SourceTxOutIndex: in.Vout,
			SequenceNumber:   transaction.DefaultSequenceNumber,
		}
		input.SetSourceTxOutput(&transaction.TransactionOutput{
			Satoshis:      in.Value,
			LockingScript: script.NewFromBytes(in.ScriptPubKey),
		})
		input.UnlockingScriptTemplate = unlocker
		sdkTx.AddInput(input)
	}

	for i, out := range skeleton.Outputs {
		lockingScript := out.Script
		if out.Address != "" {
			lockingScript, err = AddressToScript(out.Address)
			if err != nil {
				return nil, fmt.Errorf("%w: output %d: %w", ErrSigningFailed, i, err)
			}
		}
		sdkTx.AddOutput(&transaction.TransactionOutput{
			Satoshis:      out.Value,
			LockingScript: script.NewFromBytes(lockingScript),
		})
	}

	if err := sdkTx.Sign(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}

	return &SignedTx{
		TxID:        sdkTx.TxID().String(),
		RawTxHex:    sdkTx.Hex(),
		Fee:         skeleton.TotalIn() - skeleton.TotalOut(),
		InputCount:  len(skeleton.Inputs),
		OutputCount: len(skeleton.Outputs),
	}, nil
}
