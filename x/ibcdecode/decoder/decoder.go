package decoder

import (
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// AnyResolver turns Any values and proof bytes into structured data. It is
// satisfied by *registry.Registry.
type AnyResolver interface {
	DecodeAny(typeURL string, value []byte, depth int) types.NestedMessage
	SummarizeProof(bz []byte) *types.ProofSummary
}

// Decoder decodes discriminant prefixed IBC envelopes. It holds no mutable
// state and is safe for concurrent use.
type Decoder struct {
	registry AnyResolver
}

func NewDecoder(registry AnyResolver) *Decoder {
	return &Decoder{registry: registry}
}

type variantDecoder func(d *Decoder, bz []byte, off int) (types.DecodedMessage, int, error)

// routes is the complete address space of envelopes, indexed by category then
// variant.
var routes = [...][]variantDecoder{
	types.CategoryClient: {
		types.VariantClientCreate:       (*Decoder).decodeCreateClient,
		types.VariantClientUpdate:       (*Decoder).decodeUpdateClient,
		types.VariantClientMisbehaviour: (*Decoder).decodeSubmitMisbehaviour,
		types.VariantClientUpgrade:      (*Decoder).decodeUpgradeClient,
		types.VariantClientRecover:      (*Decoder).decodeRecoverClient,
	},
	types.CategoryConnection: {
		types.VariantConnectionOpenInit:    (*Decoder).decodeConnectionOpenInit,
		types.VariantConnectionOpenTry:     (*Decoder).decodeConnectionOpenTry,
		types.VariantConnectionOpenAck:     (*Decoder).decodeConnectionOpenAck,
		types.VariantConnectionOpenConfirm: (*Decoder).decodeConnectionOpenConfirm,
	},
	types.CategoryChannel: {
		types.VariantChannelOpenInit:     (*Decoder).decodeChannelOpenInit,
		types.VariantChannelOpenTry:      (*Decoder).decodeChannelOpenTry,
		types.VariantChannelOpenAck:      (*Decoder).decodeChannelOpenAck,
		types.VariantChannelOpenConfirm:  (*Decoder).decodeChannelOpenConfirm,
		types.VariantChannelCloseInit:    (*Decoder).decodeChannelCloseInit,
		types.VariantChannelCloseConfirm: (*Decoder).decodeChannelCloseConfirm,
	},
	types.CategoryPacket: {
		types.VariantPacketRecv:           (*Decoder).decodeRecvPacket,
		types.VariantPacketAck:            (*Decoder).decodeAcknowledgement,
		types.VariantPacketTimeout:        (*Decoder).decodeTimeout,
		types.VariantPacketTimeoutOnClose: (*Decoder).decodeTimeoutOnClose,
	},
}

// Decode reads the (category, variant) pair at bz[0:2] and decodes the rest
// of bz as that message. The message must consume the buffer exactly.
func (d *Decoder) Decode(bz []byte) (types.DecodedMessage, error) {
	if len(bz) < types.DiscriminantLen {
		return nil, types.ErrTruncatedBuffer.Wrapf("envelope of %d bytes has no discriminant", len(bz))
	}

	category, variant := bz[0], bz[1]
	if int(category) >= len(routes) {
		return nil, types.ErrMalformedEnvelope.Wrapf("unknown category %d", category)
	}
	table := routes[category]
	if int(variant) >= len(table) || table[variant] == nil {
		return nil, types.ErrMalformedEnvelope.Wrapf("unknown %s variant %d", types.Category(category), variant)
	}

	msg, n, err := table[variant](d, bz, types.DiscriminantLen)
	if err != nil {
		return nil, err
	}
	if rest := len(bz) - types.DiscriminantLen - n; rest != 0 {
		return nil, types.ErrMalformedEnvelope.Wrapf("%s: %d trailing bytes", msg.Kind(), rest)
	}
	return msg, nil
}

// Routes reports every (category, variant) pair Decode accepts.
func Routes() [][2]uint8 {
	var out [][2]uint8
	for c, table := range routes {
		for v, fn := range table {
			if fn != nil {
				out = append(out, [2]uint8{uint8(c), uint8(v)})
			}
		}
	}
	return out
}
