package glyph

import (
	"context"
	"fmt"

	"github.com/radiantorg/libradiant-go/network"
	"github.com/radiantorg/libradiant-go/tx"
	"github.com/radiantorg/libradiant-go/wallet"
)

// MintState tracks progress through the two-phase commit/reveal mint.
type MintState int

const (
	StateIdle MintState = iota
	StateCommitBuilt
	StateCommitBroadcast
	StateRevealBuilt
	StateRevealBroadcast
	StateComplete
	StateFailed
)

// String returns the lowercase name of the state.
func (s MintState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCommitBuilt:
		return "commit_built"
	case StateCommitBroadcast:
		return "commit_broadcast"
	case StateRevealBuilt:
		return "reveal_built"
	case StateRevealBroadcast:
		return "reveal_broadcast"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Minter drives Glyph token operations for a single wallet. It composes an
// indexer for UTXO discovery and broadcast with a signer for transaction
// finalization; both are injected so tests can run without a node.
type Minter struct {
	indexer    network.IndexerService
	signer     tx.Signer
	wallet     *wallet.Wallet
	feePerByte uint64
}

// NewMinter builds a Minter. A zero fee rate falls back to the default
// 1 photon per byte.
func NewMinter(indexer network.IndexerService, signer tx.Signer, w *wallet.Wallet, feePerByte uint64) *Minter {
	if feePerByte == 0 {
		feePerByte = tx.DefaultFeePerByte
	}
	return &Minter{
		indexer:    indexer,
		signer:     signer,
		wallet:     w,
		feePerByte: feePerByte,
	}
}

// MintResult reports the outcome of a mint, including how far it got. On a
// partial failure after the commit broadcast, CommitTxID identifies the
// on-chain commit whose dust output remains locked to the wallet.
type MintResult struct {
	State      MintState
	CommitTxID string
	RevealTxID string
	TokenRef   string
}

// MintFungibleToken runs the full commit/reveal sequence for a fungible
// token. The reveal transaction's output 0 carries the token itself, valued
// at the supply (or the dust limit if the supply is below it); the token
// reference is that output.
//
// The returned result is always non-nil: on error its State is StateFailed
// and any txids broadcast before the failure are preserved.
func (m *Minter) MintFungibleToken(ctx context.Context, md Metadata, supply uint64) (*MintResult, error) {
	result := &MintResult{State: StateIdle}

	encoded, err := md.Encode()
	if err != nil {
		return m.fail(result, err)
	}
	commitHash, err := md.CommitHash()
	if err != nil {
		return m.fail(result, err)
	}

	// Phase one: commit. A data carrier publishes the metadata hash and a
	// dust output to the wallet anchors the commitment on chain.
	commitScript, err := tx.DataCarrierScript(BuildCommitPayload(FlagNone, commitHash))
	if err != nil {
		return m.fail(result, err)
	}
	commitOutputs := []tx.Output{
		{Script: commitScript, Value: 0},
		{Address: m.wallet.Address, Value: tx.DustLimit},
	}
	signedCommit, err := m.buildAndSign(ctx, tx.DustLimit, commitOutputs, []int{len(commitScript)}, 1, nil)
	if err != nil {
		return m.fail(result, err)
	}
	result.State = StateCommitBuilt

	commitTxID, err := m.indexer.Broadcast(ctx, signedCommit.RawTxHex)
	if err != nil {
		return m.fail(result, err)
	}
	result.CommitTxID = commitTxID
	result.State = StateCommitBroadcast

	// Phase two: reveal. Output 0 is the token UTXO, output 1 carries the
	// full metadata. The wallet's unspent set is re-queried so the commit
	// change can fund the reveal once the indexer has seen it.
	revealScript, err := tx.DataCarrierScript(buildRevealPrefix(), encoded)
	if err != nil {
		return m.fail(result, err)
	}
	tokenValue := supply
	if tokenValue < tx.DustLimit {
		tokenValue = tx.DustLimit
	}
	revealOutputs := []tx.Output{
		{Address: m.wallet.Address, Value: tokenValue},
		{Script: revealScript, Value: 0},
	}
	signedReveal, err := m.buildAndSign(ctx, tokenValue, revealOutputs, []int{len(revealScript)}, 1, nil)
	if err != nil {
		return m.fail(result, err)
	}
	result.State = StateRevealBuilt

	revealTxID, err := m.indexer.Broadcast(ctx, signedReveal.RawTxHex)
	if err != nil {
		return m.fail(result, err)
	}
	result.RevealTxID = revealTxID
	result.State = StateRevealBroadcast

	result.TokenRef = FormatTokenRef(revealTxID, 0)
	result.State = StateComplete
	return result, nil
}

func (m *Minter) fail(result *MintResult, err error) (*MintResult, error) {
	result.State = StateFailed
	if result.CommitTxID != "" {
		return result, fmt.Errorf("mint failed after commit %s: %w", result.CommitTxID, err)
	}
	return result, err
}

// buildAndSign selects coins for the target amount, assembles a transaction
// paying the given outputs with change back to the wallet, and signs it.
// Pre-selected inputs (a token UTXO being spent) are prepended and excluded
// from selection.
func (m *Minter) buildAndSign(ctx context.Context, target uint64, outputs []tx.Output, carrierSizes []int, p2pkhOutputs int, preselected *tx.UTXO) (*tx.SignedTx, error) {
	utxos, err := m.spendableUTXOs(ctx)
	if err != nil {
		return nil, err
	}

	sel := &tx.Selection{}
	if preselected != nil {
		sel.Selected = append(sel.Selected, preselected)
		sel.TotalIn = preselected.Value
		utxos = excludeUTXO(utxos, preselected.TxID, preselected.Vout)
	}

	// The fee bound counts the preselected input; SelectCoins adds the fee
	// for the inputs it picks on top.
	needed := target + tx.EstimateFee(len(sel.Selected), p2pkhOutputs+1, carrierSizes, m.feePerByte)
	if sel.TotalIn < needed {
		extra, err := tx.SelectCoins(utxos, needed-sel.TotalIn, m.feePerByte, p2pkhOutputs, carrierSizes)
		if err != nil {
			return nil, err
		}
		sel.Selected = append(sel.Selected, extra.Selected...)
		sel.TotalIn += extra.TotalIn
	}

	skeleton, err := tx.NewSkeleton(sel, outputs, m.wallet.Address, m.feePerByte)
	if err != nil {
		return nil, err
	}
	return m.signer.Sign(ctx, skeleton, m.wallet.PrivateKeyBytes())
}

// spendableUTXOs queries the indexer for the wallet's unspent outputs and
// attaches the wallet's locking script to each.
func (m *Minter) spendableUTXOs(ctx context.Context) ([]*tx.UTXO, error) {
	unspent, err := m.indexer.ListUnspent(ctx, m.wallet.ScriptHash())
	if err != nil {
		return nil, err
	}
	script := m.wallet.LockingScript()
	utxos := make([]*tx.UTXO, 0, len(unspent))
	for _, u := range unspent {
		utxos = append(utxos, &tx.UTXO{
			TxID:         u.TxHash,
			Vout:         u.TxPos,
			Value:        u.Value,
			Height:       u.Height,
			ScriptPubKey: script,
		})
	}
	return utxos, nil
}

func excludeUTXO(utxos []*tx.UTXO, txid string, vout uint32) []*tx.UTXO {
	out := make([]*tx.UTXO, 0, len(utxos))
	for _, u := range utxos {
		if u.TxID == txid && u.Vout == vout {
			continue
		}
		out = append(out, u)
	}
	return out
}

// findTokenUTXO locates the UTXO a token reference points at in the
// wallet's unspent set.
func (m *Minter) findTokenUTXO(ctx context.Context, tokenRef string) (*tx.UTXO, error) {
	txid, vout, err := ParseTokenRef(tokenRef)
	if err != nil {
		return nil, err
	}
	utxos, err := m.spendableUTXOs(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range utxos {
		if u.TxID == txid && u.Vout == vout {
			return u, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTokenUTXONotFound, tokenRef)
}
