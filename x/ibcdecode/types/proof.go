package types

// Proof is a commitment proof carried as opaque bytes. Summary is filled when
// the bytes parse as an ICS-23 merkle proof.
type Proof struct {
	Raw     []byte        `json:"raw"`
	Summary *ProofSummary `json:"summary,omitempty"`
}

// ProofSummary describes the shape of an ICS-23 merkle proof.
type ProofSummary struct {
	Proofs       int      `json:"proofs"`
	Existence    int      `json:"existence"`
	NonExistence int      `json:"non_existence"`
	Batch        int      `json:"batch"`
	Keys         []string `json:"keys,omitempty"`
}
