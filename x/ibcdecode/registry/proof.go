package registry

import (
	"unicode"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ethereum/go-ethereum/common/hexutil"

	ics23 "github.com/cosmos/ics23/go"

	"github.com/cosmos/gogoproto/proto"

	commitmenttypes "github.com/cosmos/ibc-go/v10/modules/core/23-commitment/types"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// SummarizeProof describes bz when it is an ICS-23 MerkleProof and returns
// nil otherwise. It never fails the caller.
func (r *Registry) SummarizeProof(bz []byte) (summary *types.ProofSummary) {
	if len(bz) == 0 {
		return nil
	}
	defer func() {
		if recover() != nil {
			summary = nil
		}
	}()

	// MerkleProof field 1: repeated CommitmentProof proofs
	if _, err := extractProtoField(bz, 1, protowire.BytesType); err != nil {
		return nil
	}
	var mp commitmenttypes.MerkleProof
	if err := proto.Unmarshal(bz, &mp); err != nil || len(mp.Proofs) == 0 {
		return nil
	}

	summary = &types.ProofSummary{Proofs: len(mp.Proofs)}
	for _, p := range mp.Proofs {
		if !addProof(summary, p) {
			return nil
		}
	}
	return summary
}

func addProof(summary *types.ProofSummary, p *ics23.CommitmentProof) bool {
	switch {
	case p.GetExist() != nil:
		summary.Existence++
		summary.Keys = append(summary.Keys, displayKey(p.GetExist().GetKey()))
	case p.GetNonexist() != nil:
		summary.NonExistence++
		summary.Keys = append(summary.Keys, displayKey(p.GetNonexist().GetKey()))
	case p.GetBatch() != nil, p.GetCompressed() != nil:
		summary.Batch++
	default:
		return false
	}
	return true
}

// displayKey shows store keys as text when they are printable and as hex
// otherwise.
func displayKey(key []byte) string {
	if utf8.Valid(key) {
		printable := true
		for _, c := range string(key) {
			if !unicode.IsPrint(c) {
				printable = false
				break
			}
		}
		if printable {
			return string(key)
		}
	}
	return hexutil.Encode(key)
}
