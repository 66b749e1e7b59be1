package keeper

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/events"
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// Result is what the explorer renders for one hex payload. Decoded=false is
// the undecodable signal; Raw always carries the input so the UI can fall
// back to showing it.
type Result struct {
	Decoded     bool                 `json:"decoded"`
	Kind        string               `json:"kind,omitempty"`
	TypeURL     string               `json:"type_url,omitempty"`
	Name        string               `json:"name,omitempty"`
	Description string               `json:"description,omitempty"`
	Message     types.DecodedMessage `json:"message,omitempty"`
	Nested      types.NestedMessage  `json:"nested,omitempty"`
	Raw         string               `json:"raw"`
	Error       string               `json:"error,omitempty"`
}

// DecodeTxData decodes enveloped transaction data: a two-byte discriminant
// followed by the message fields.
func (k Keeper) DecodeTxData(hexData string) Result {
	res := Result{Raw: strings.TrimSpace(hexData)}

	msg, err := k.decodeTxData(hexData)
	if err != nil {
		k.logger.Debug("undecodable tx data", "err", err, "hex_len", len(res.Raw))
		res.Error = err.Error()
		return res
	}

	display := types.Describe(msg)
	res.Decoded = true
	res.Kind = msg.Kind()
	res.Name = display.Name
	res.Description = display.Description
	res.Message = msg
	return res
}

func (k Keeper) decodeTxData(hexData string) (msg types.DecodedMessage, err error) {
	defer errorsmod.Recover(&err)

	bz, err := types.DecodeHex(hexData)
	if err != nil {
		return nil, err
	}
	return k.decoder.Decode(bz)
}

// DecodeAttribute decodes a protobuf payload with no envelope and no type
// URL, as found in event attributes.
func (k Keeper) DecodeAttribute(hexData string) Result {
	res := Result{Raw: strings.TrimSpace(hexData)}

	typeURL, msg, err := k.decodeAttribute(hexData)
	if err != nil {
		k.logger.Debug("undecodable attribute", "err", err, "hex_len", len(res.Raw))
		res.Error = err.Error()
		return res
	}

	display := types.DescribeNested(msg)
	res.Decoded = true
	res.Kind = msg.TypeTag()
	res.TypeURL = typeURL
	res.Name = display.Name
	res.Description = display.Description
	res.Nested = msg
	return res
}

func (k Keeper) decodeAttribute(hexData string) (typeURL string, msg types.NestedMessage, err error) {
	defer errorsmod.Recover(&err)

	bz, err := types.DecodeHex(hexData)
	if err != nil {
		return "", nil, err
	}
	m, err := k.registry.Search(bz)
	if err != nil {
		return "", nil, err
	}
	return m.TypeURL, m.Message, nil
}

// DecodeTxEvent finds the IBC event emitted for txHash in a block_results
// response and decodes its hex attributes. It returns nil, nil when the block
// has no IBC event for the transaction.
func (k Keeper) DecodeTxEvent(txHash string, blockResults []byte) (ev *events.IBCEvent, err error) {
	defer errorsmod.Recover(&err)

	br, err := events.ParseBlockResults(blockResults)
	if err != nil {
		k.logger.Debug("unreadable block results", "err", err, "body_len", len(blockResults))
		return nil, err
	}

	ev = k.events.DecodeTxEvent(br, txHash)
	if ev == nil {
		k.logger.Debug("no ibc event for tx", "tx_hash", txHash, "height", br.Height)
	}
	return ev, nil
}
