package types

import (
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
)

// Height is a (revision number, revision height) pair. Both halves are always
// decoded together.
type Height struct {
	RevisionNumber sdkmath.Uint `json:"revision_number"`
	RevisionHeight sdkmath.Uint `json:"revision_height"`
}

func NewHeight(revisionNumber, revisionHeight uint64) Height {
	return Height{
		RevisionNumber: sdkmath.NewUint(revisionNumber),
		RevisionHeight: sdkmath.NewUint(revisionHeight),
	}
}

// IsZero reports whether both halves are zero.
func (h Height) IsZero() bool {
	return h.RevisionNumber.IsZero() && h.RevisionHeight.IsZero()
}

func (h Height) String() string {
	return fmt.Sprintf("%s-%s", h.RevisionNumber, h.RevisionHeight)
}

// TimeoutHeight is either Never or At(height). The zero value is Never.
type TimeoutHeight struct {
	at *Height
}

func NeverTimeoutHeight() TimeoutHeight { return TimeoutHeight{} }

func TimeoutAtHeight(h Height) TimeoutHeight { return TimeoutHeight{at: &h} }

func (t TimeoutHeight) IsNever() bool { return t.at == nil }

// Height returns the timeout height and true, or false when the timeout is Never.
func (t TimeoutHeight) Height() (Height, bool) {
	if t.at == nil {
		return Height{}, false
	}
	return *t.at, true
}

func (t TimeoutHeight) String() string {
	if t.at == nil {
		return "never"
	}
	return t.at.String()
}

func (t TimeoutHeight) MarshalJSON() ([]byte, error) {
	if t.at == nil {
		return json.Marshal(struct {
			Kind string `json:"kind"`
		}{"never"})
	}
	return json.Marshal(struct {
		Kind   string `json:"kind"`
		Height Height `json:"height"`
	}{"at", *t.at})
}

// TimeoutTimestamp is either Never or At(nanoseconds since epoch). The zero
// value is Never.
type TimeoutTimestamp struct {
	at *sdkmath.Uint
}

func NeverTimeoutTimestamp() TimeoutTimestamp { return TimeoutTimestamp{} }

func TimeoutAtTimestamp(nanos sdkmath.Uint) TimeoutTimestamp {
	return TimeoutTimestamp{at: &nanos}
}

func (t TimeoutTimestamp) IsNever() bool { return t.at == nil }

// Timestamp returns the timeout in nanoseconds and true, or false when the
// timeout is Never.
func (t TimeoutTimestamp) Timestamp() (sdkmath.Uint, bool) {
	if t.at == nil {
		return sdkmath.Uint{}, false
	}
	return *t.at, true
}

func (t TimeoutTimestamp) String() string {
	if t.at == nil {
		return "never"
	}
	return t.at.String()
}

func (t TimeoutTimestamp) MarshalJSON() ([]byte, error) {
	if t.at == nil {
		return json.Marshal(struct {
			Kind string `json:"kind"`
		}{"never"})
	}
	return json.Marshal(struct {
		Kind      string       `json:"kind"`
		Timestamp sdkmath.Uint `json:"timestamp"`
	}{"at", *t.at})
}
