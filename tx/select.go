package tx

import (
	"fmt"
	"sort"
)

const (
	// DustLimit is the minimum standalone P2PKH output value in photons.
	// Callers must not construct value-carrying outputs below this.
	DustLimit = uint64(546)

	// DefaultFeePerByte is the fee rate assumed when the caller passes 0.
	DefaultFeePerByte = uint64(1)

	// Size constants for fee estimation.
	// Base: version(4) + locktime(4) + input count varint(1) + output count varint(1).
	baseTxOverhead = 10
	// Per input: prevhash(32) + previndex(4) + scriptlen(1) + P2PKH unlock(~107) + sequence(4).
	p2pkhInputSize = 148
	// Per output: value(8) + scriptlen(1) + P2PKH lock(25).
	p2pkhOutputSize = 34
	// Per OP_RETURN output before payload: value(8) + scriptlen varint(3) +
	// OP_FALSE(1) + OP_RETURN(1).
	opReturnOverhead = 13
)

// EstimateSize returns the estimated serialized size in bytes of a
// transaction with the given P2PKH input/output counts plus one OP_RETURN
// output per entry of opReturnSizes (each entry is that output's payload
// size).
func EstimateSize(inputCount, outputCount int, opReturnSizes []int) int {
	size := baseTxOverhead + inputCount*p2pkhInputSize + outputCount*p2pkhOutputSize
	for _, payload := range opReturnSizes {
		size += opReturnOverhead + payload
	}
	return size
}

// EstimateFee returns EstimateSize multiplied by the fee rate in
// photons per byte.
func EstimateFee(inputCount, outputCount int, opReturnSizes []int, feePerByte uint64) uint64 {
	if feePerByte == 0 {
		feePerByte = DefaultFeePerByte
	}
	return uint64(EstimateSize(inputCount, outputCount, opReturnSizes)) * feePerByte
}

// SelectCoins picks UTXOs covering target plus the estimated fee, largest
// first. The fee bound is recomputed after each added input (the fee grows
// with input count), and one extra P2PKH output is reserved for change.
//
// It returns ErrNoUTXOs when the input set is empty and ErrInsufficientFunds
// (carrying required vs available amounts) when even the full set cannot
// cover the bound.
func SelectCoins(utxos []*UTXO, target uint64, feePerByte uint64, outputCount int, opReturnSizes []int) (*Selection, error) {
	if len(utxos) == 0 {
		return nil, ErrNoUTXOs
	}

	sorted := make([]*UTXO, len(utxos))
	copy(sorted, utxos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	sel := &Selection{}
	for _, u := range sorted {
		sel.Selected = append(sel.Selected, u)
		sel.TotalIn += u.Value

		// +1 output reserves room for change.
		fee := EstimateFee(len(sel.Selected), outputCount+1, opReturnSizes, feePerByte)
		if sel.TotalIn >= target+fee {
			return sel, nil
		}
	}

	required := target + EstimateFee(len(sorted), outputCount+1, opReturnSizes, feePerByte)
	return nil, fmt.Errorf("%w: need %d photons, have %d", ErrInsufficientFunds, required, sel.TotalIn)
}
