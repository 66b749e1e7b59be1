package events

import (
	"strings"

	abci "github.com/cometbft/cometbft/abci/types"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"github.com/cometbft/cometbft/crypto/tmhash"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/registry"
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// Searcher decodes envelope-less protobuf payloads.
type Searcher interface {
	Search(bz []byte) (*registry.Match, error)
}

// Attribute is an event attribute as shown by the explorer. Value is always
// the original string; Decoded is set when a hex payload was understood.
type Attribute struct {
	Key     string          `json:"key"`
	Value   string          `json:"value"`
	Index   bool            `json:"index,omitempty"`
	Decoded *DecodedPayload `json:"decoded,omitempty"`
}

// DecodedPayload is the structured form of a hex attribute.
type DecodedPayload struct {
	TypeURL     string              `json:"type_url,omitempty"`
	TypeTag     string              `json:"type_tag"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Message     types.NestedMessage `json:"message"`
}

// IBCEvent is the IBC event emitted for one transaction.
type IBCEvent struct {
	Type               string      `json:"type"`
	Description        string      `json:"description"`
	Attributes         []Attribute `json:"attributes"`
	NeedsProtoDecoding bool        `json:"needs_proto_decoding"`
}

// Decoder finds and decodes IBC events in block results.
type Decoder struct {
	searcher Searcher
}

func NewDecoder(searcher Searcher) *Decoder {
	return &Decoder{searcher: searcher}
}

// FindTxEvent returns the IBC event tagged with txHash. When the hash sits on
// a message/module=ibc routing event, the next IBC event is returned. The
// comparison ignores case and a 0x prefix.
func FindTxEvent(events []abci.Event, txHash string) (abci.Event, bool) {
	target := normalizeHash(txHash)
	if target == "" {
		return abci.Event{}, false
	}

	for i, ev := range events {
		hash, ok := attribute(ev, types.AttributeKeyInnerTxHash)
		if !ok || normalizeHash(hash) != target {
			continue
		}
		if types.IsIBCEventType(ev.Type) {
			return ev, true
		}
		if isIBCRoutingEvent(ev) {
			for _, next := range events[i+1:] {
				if types.IsIBCEventType(next.Type) {
					return next, true
				}
			}
		}
	}
	return abci.Event{}, false
}

// DecodeTxEvent locates the IBC event for txHash and decodes its hex
// attributes. It returns nil when the block has no such event.
func (d *Decoder) DecodeTxEvent(br *BlockResults, txHash string) *IBCEvent {
	ev, ok := FindTxEvent(br.Events(), txHash)
	if !ok {
		return nil
	}
	return d.DecodeEvent(ev)
}

// DecodeEvent decodes the hex attributes of a single IBC event in place.
func (d *Decoder) DecodeEvent(ev abci.Event) *IBCEvent {
	out := &IBCEvent{
		Type:               ev.Type,
		Description:        describeEvent(ev),
		Attributes:         make([]Attribute, 0, len(ev.Attributes)),
		NeedsProtoDecoding: types.NeedsProtoDecoding(ev.Type),
	}

	hexKeys := map[string]bool{}
	for _, key := range types.ProtoHexAttributes(ev.Type) {
		hexKeys[key] = true
	}

	for _, attr := range ev.Attributes {
		a := Attribute{Key: attr.Key, Value: attr.Value, Index: attr.Index}
		if hexKeys[attr.Key] {
			a.Decoded = d.DecodeAttribute(attr.Key, attr.Value)
		}
		out.Attributes = append(out.Attributes, a)
	}
	return out
}

// DecodeAttribute decodes one hex attribute value. Failures leave the
// attribute undecoded and return nil.
func (d *Decoder) DecodeAttribute(key, value string) *DecodedPayload {
	bz, err := types.DecodeHex(value)
	if err != nil || len(bz) == 0 {
		return nil
	}

	switch key {
	case types.AttributeKeyWasmChecksum, types.AttributeKeyNewChecksum:
		if len(bz) != tmhash.Size {
			return nil
		}
		return payload("", &types.WasmChecksum{Checksum: wasmvmtypes.Checksum(bz)})

	case types.AttributeKeyPacketAckHex:
		if ack, err := types.ParseAcknowledgement(bz); err == nil {
			return payload("", ack)
		}
	}

	m, err := d.searcher.Search(bz)
	if err != nil {
		return nil
	}
	return payload(m.TypeURL, m.Message)
}

func payload(typeURL string, msg types.NestedMessage) *DecodedPayload {
	display := types.DescribeNested(msg)
	return &DecodedPayload{
		TypeURL:     typeURL,
		TypeTag:     msg.TypeTag(),
		Name:        display.Name,
		Description: display.Description,
		Message:     msg,
	}
}

func isIBCRoutingEvent(ev abci.Event) bool {
	if ev.Type != types.EventTypeMessage {
		return false
	}
	module, ok := attribute(ev, types.AttributeKeyModule)
	return ok && module == types.AttributeValueIBCModule
}

func attribute(ev abci.Event, key string) (string, bool) {
	for _, attr := range ev.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

func normalizeHash(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.TrimPrefix(h, "0x")
}
