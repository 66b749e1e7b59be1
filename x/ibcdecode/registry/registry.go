package registry

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"

	transfertypes "github.com/cosmos/ibc-go/v10/modules/apps/transfer/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	channeltypesv2 "github.com/cosmos/ibc-go/v10/modules/core/04-channel/v2/types"
	ibctm "github.com/cosmos/ibc-go/v10/modules/light-clients/07-tendermint"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

type decodeFn func(r *Registry, bz []byte, depth int) (types.NestedMessage, error)

type validateFn func(types.NestedMessage) bool

// Entry is one Any type the registry understands.
type Entry struct {
	TypeURL string
	Tag     string

	decode   decodeFn
	validate validateFn
}

// Registry maps Any type URLs to decoders. It is built once and only read
// afterwards, so one instance can serve concurrent decodes.
type Registry struct {
	entries  []Entry
	byURL    map[string]int
	maxDepth int
}

// New builds the registry. Entries are listed in fallback priority order.
// maxDepth bounds how many Any values deep nested decoding goes; values
// beyond it keep only their raw bytes.
func New(maxDepth int) *Registry {
	if maxDepth <= 0 {
		maxDepth = types.DefaultMaxAnyDepth
	}
	r := &Registry{maxDepth: maxDepth}
	r.add(&channeltypes.MsgRecvPacket{}, types.TagChannelRecvPacket, decodeChannelRecvPacket, validChannelRecvPacket)
	r.add(&channeltypes.MsgAcknowledgement{}, types.TagChannelAcknowledgement, decodeChannelAcknowledgement, validChannelAcknowledgement)
	r.add(&channeltypes.MsgTimeout{}, types.TagChannelTimeout, decodeChannelTimeout, validChannelTimeout)
	r.add(&channeltypesv2.MsgRecvPacket{}, types.TagChannelV2RecvPacket, decodeChannelV2RecvPacket, validChannelV2RecvPacket)
	r.add(&channeltypesv2.MsgAcknowledgement{}, types.TagChannelV2Acknowledgement, decodeChannelV2Acknowledgement, validChannelV2Acknowledgement)
	r.add(&channeltypesv2.MsgTimeout{}, types.TagChannelV2Timeout, decodeChannelV2Timeout, validChannelV2Timeout)
	r.add(&clienttypes.MsgUpdateClient{}, types.TagClientUpdate, decodeClientUpdate, validClientUpdate)
	r.add(&clienttypes.MsgCreateClient{}, types.TagClientCreate, decodeClientCreate, validClientCreate)
	r.add(&ibctm.Header{}, types.TagTendermintHeader, decodeTendermintHeader, validTendermintHeader)
	r.add(&ibctm.ClientState{}, types.TagTendermintClientState, decodeTendermintClientState, validTendermintClientState)
	r.add(&ibctm.ConsensusState{}, types.TagTendermintConsensusState, decodeTendermintConsensusState, validTendermintConsensusState)
	r.add(&ibctm.Misbehaviour{}, types.TagTendermintMisbehaviour, decodeTendermintMisbehaviour, validTendermintMisbehaviour)
	r.add(&transfertypes.FungibleTokenPacketData{}, types.TagTransferPacketData, decodeTransferPacketData, validTransferPacketData)
	return r
}

func (r *Registry) add(msg proto.Message, tag string, decode decodeFn, validate validateFn) {
	url := sdk.MsgTypeURL(msg)
	if r.byURL == nil {
		r.byURL = make(map[string]int)
	}
	if _, ok := r.byURL[url]; ok {
		panic("registry: duplicate type url " + url)
	}
	r.byURL[url] = len(r.entries)
	r.entries = append(r.entries, Entry{TypeURL: url, Tag: tag, decode: decode, validate: validate})
}

// Entries returns the registered entries in priority order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Lookup returns the entry registered for typeURL.
func (r *Registry) Lookup(typeURL string) (Entry, bool) {
	i, ok := r.byURL[typeURL]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// MaxDepth is the nesting bound for Any values.
func (r *Registry) MaxDepth() int {
	return r.maxDepth
}

// DecodeAny decodes value as the message registered for typeURL. It returns
// nil when the URL is unknown, the value does not parse, or depth has reached
// the nesting bound. It never panics.
func (r *Registry) DecodeAny(typeURL string, value []byte, depth int) types.NestedMessage {
	msg, err := r.TryDecodeAny(typeURL, value, depth)
	if err != nil {
		return nil
	}
	return msg
}

// TryDecodeAny is DecodeAny reporting why nothing was decoded.
func (r *Registry) TryDecodeAny(typeURL string, value []byte, depth int) (msg types.NestedMessage, err error) {
	if depth >= r.maxDepth {
		return nil, types.ErrMaxDepth.Wrapf("%s at depth %d", typeURL, depth)
	}
	e, ok := r.Lookup(typeURL)
	if !ok {
		return nil, types.ErrUnknownAnyTypeURL.Wrap(typeURL)
	}
	return e.run(r, value, depth)
}

func (e Entry) run(r *Registry, bz []byte, depth int) (msg types.NestedMessage, err error) {
	defer errorsmod.Recover(&err)
	msg, err = e.decode(r, bz, depth)
	if err != nil {
		return nil, errorsmod.Wrap(err, e.TypeURL)
	}
	return msg, nil
}

// Valid reports whether msg passes the entry's plausibility check.
func (e Entry) Valid(msg types.NestedMessage) bool {
	return msg != nil && msg.TypeTag() == e.Tag && e.validate(msg)
}
