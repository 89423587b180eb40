package glyph

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// CreateInferenceProof commits to an AI inference result: the BLAKE3 hash of
// the model hash, the input hash, and the raw output bytes concatenated.
// modelHash and inputHash are 64-character hex digests.
func CreateInferenceProof(modelHash, inputHash string, output []byte) (string, error) {
	preimage, err := proofPreimage(modelHash, inputHash, output)
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(preimage)
	return hex.EncodeToString(sum[:]), nil
}

// VerifyInferenceProof recomputes the commitment and compares it to the
// claimed proof.
func VerifyInferenceProof(modelHash, inputHash string, output []byte, proof string) (bool, error) {
	want, err := CreateInferenceProof(modelHash, inputHash, output)
	if err != nil {
		return false, err
	}
	return want == proof, nil
}

func proofPreimage(modelHash, inputHash string, output []byte) ([]byte, error) {
	model, err := decodeDigest(modelHash)
	if err != nil {
		return nil, fmt.Errorf("%w: model hash %q", ErrInvalidProofInput, modelHash)
	}
	input, err := decodeDigest(inputHash)
	if err != nil {
		return nil, fmt.Errorf("%w: input hash %q", ErrInvalidProofInput, inputHash)
	}
	preimage := make([]byte, 0, len(model)+len(input)+len(output))
	preimage = append(preimage, model...)
	preimage = append(preimage, input...)
	preimage = append(preimage, output...)
	return preimage, nil
}

func decodeDigest(s string) ([]byte, error) {
	if len(s) != 64 {
		return nil, ErrInvalidProofInput
	}
	return hex.DecodeString(s)
}
