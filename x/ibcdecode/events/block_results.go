package events

import (
	"bytes"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"

	abci "github.com/cometbft/cometbft/abci/types"
	cmtjson "github.com/cometbft/cometbft/libs/json"
	rpctypes "github.com/cometbft/cometbft/rpc/jsonrpc/types"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// BlockResults is the part of the RPC block_results response the explorer
// reads. Chains before CometBFT 0.38 report end_block_events; later ones
// report finalize_block_events.
type BlockResults struct {
	Height              int64        `json:"height"`
	EndBlockEvents      []abci.Event `json:"end_block_events"`
	FinalizeBlockEvents []abci.Event `json:"finalize_block_events"`
}

// Events returns end_block_events, or finalize_block_events when the former
// is empty.
func (br *BlockResults) Events() []abci.Event {
	if len(br.EndBlockEvents) > 0 {
		return br.EndBlockEvents
	}
	return br.FinalizeBlockEvents
}

// ParseBlockResults accepts either a full JSON-RPC response or its bare
// result object.
func ParseBlockResults(bz []byte) (*BlockResults, error) {
	bz = bytes.TrimSpace(bz)
	if len(bz) == 0 {
		return nil, types.ErrInvalidEvents.Wrap("empty body")
	}

	var probe struct {
		JSONRPC string `json:"jsonrpc"`
	}
	if err := json.Unmarshal(bz, &probe); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidEvents, err.Error())
	}
	if probe.JSONRPC != "" {
		var resp rpctypes.RPCResponse
		if err := json.Unmarshal(bz, &resp); err != nil {
			return nil, errorsmod.Wrap(types.ErrInvalidEvents, err.Error())
		}
		if resp.Error != nil {
			return nil, types.ErrInvalidEvents.Wrapf("rpc error: %s", resp.Error.Error())
		}
		if len(resp.Result) == 0 {
			return nil, types.ErrInvalidEvents.Wrap("rpc response has no result")
		}
		bz = resp.Result
	}

	var br BlockResults
	if err := cmtjson.Unmarshal(bz, &br); err != nil {
		return nil, errorsmod.Wrap(types.ErrInvalidEvents, err.Error())
	}
	return &br, nil
}
