package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DecodeHex decodes a hex string with or without a 0x prefix. Case does not
// matter; odd lengths and non-hex characters are rejected.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	bz, err := hexutil.Decode(s)
	if err != nil {
		return nil, errorsmod.Wrap(ErrInvalidHex, err.Error())
	}
	return bz, nil
}

// EncodeHex renders bz as 0x-prefixed lowercase hex.
func EncodeHex(bz []byte) string {
	return hexutil.Encode(bz)
}
