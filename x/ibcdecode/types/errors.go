package types

import (
	sdkerrors "cosmossdk.io/errors"
)

var (
	ErrMalformedEnvelope = sdkerrors.Register(ModuleName, 1100, "malformed envelope")
	ErrTruncatedBuffer   = sdkerrors.Register(ModuleName, 1101, "truncated buffer")
	ErrUnknownAnyTypeURL = sdkerrors.Register(ModuleName, 1102, "unknown Any type url")
	ErrValidationFailed  = sdkerrors.Register(ModuleName, 1103, "decoded message failed validation")
	ErrInvalidHex        = sdkerrors.Register(ModuleName, 1104, "invalid hex input")
	ErrInvalidUTF8       = sdkerrors.Register(ModuleName, 1105, "invalid utf-8 string")
	ErrNoMatch           = sdkerrors.Register(ModuleName, 1106, "no decoder matched")
	ErrMaxDepth          = sdkerrors.Register(ModuleName, 1107, "maximum Any nesting depth exceeded")
	ErrInvalidEvents     = sdkerrors.Register(ModuleName, 1108, "invalid block results")
)
