package types

import (
	"encoding/json"
	"unicode/utf8"

	errorsmod "cosmossdk.io/errors"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

// AckStatus is a parsed channel acknowledgement. On success StatusCode holds
// the first byte of the base64 decoded result; on failure Error holds the
// plaintext reason.
type AckStatus struct {
	Success    bool   `json:"success"`
	Result     []byte `json:"result,omitempty"`
	StatusCode *uint8 `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ParseAcknowledgement parses the JSON form of a channel acknowledgement,
// {"result":"<base64>"} or {"error":"<text>"}.
func ParseAcknowledgement(bz []byte) (*AckStatus, error) {
	if !utf8.Valid(bz) {
		return nil, ErrInvalidUTF8.Wrap("acknowledgement")
	}

	var raw struct {
		Result *[]byte `json:"result"`
		Error  *string `json:"error"`
	}
	if err := json.Unmarshal(bz, &raw); err != nil {
		return nil, errorsmod.Wrap(ErrValidationFailed, err.Error())
	}

	var ack channeltypes.Acknowledgement
	switch {
	case raw.Result != nil && raw.Error != nil:
		return nil, ErrValidationFailed.Wrap("acknowledgement has both result and error")
	case raw.Result != nil:
		ack = channeltypes.Acknowledgement{Response: &channeltypes.Acknowledgement_Result{Result: *raw.Result}}
	case raw.Error != nil:
		ack = channeltypes.Acknowledgement{Response: &channeltypes.Acknowledgement_Error{Error: *raw.Error}}
	default:
		return nil, ErrValidationFailed.Wrap("acknowledgement has neither result nor error")
	}
	if err := ack.ValidateBasic(); err != nil {
		return nil, errorsmod.Wrap(ErrValidationFailed, err.Error())
	}

	status := &AckStatus{Success: ack.Success()}
	if status.Success {
		status.Result = ack.GetResult()
		code := status.Result[0]
		status.StatusCode = &code
	} else {
		status.Error = ack.GetError()
	}
	return status, nil
}
