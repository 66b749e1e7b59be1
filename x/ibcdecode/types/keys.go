package types

const (
	ModuleName = "ibcdecode"

	// DiscriminantLen is the size of the (category, variant) pair that
	// prefixes every envelope.
	DiscriminantLen = 2

	// DefaultMaxAnyDepth bounds recursive decoding of Any values nested
	// inside other Any values.
	DefaultMaxAnyDepth = 4
)

// Category is the first discriminant byte of an envelope.
type Category uint8

const (
	CategoryClient     Category = 0
	CategoryConnection Category = 1
	CategoryChannel    Category = 2
	CategoryPacket     Category = 3
)

func (c Category) String() string {
	switch c {
	case CategoryClient:
		return "client"
	case CategoryConnection:
		return "connection"
	case CategoryChannel:
		return "channel"
	case CategoryPacket:
		return "packet"
	default:
		return "unknown"
	}
}

// Variant indices within each category.
const (
	VariantClientCreate       uint8 = 0
	VariantClientUpdate       uint8 = 1
	VariantClientMisbehaviour uint8 = 2
	VariantClientUpgrade      uint8 = 3
	VariantClientRecover      uint8 = 4

	VariantConnectionOpenInit    uint8 = 0
	VariantConnectionOpenTry     uint8 = 1
	VariantConnectionOpenAck     uint8 = 2
	VariantConnectionOpenConfirm uint8 = 3

	VariantChannelOpenInit     uint8 = 0
	VariantChannelOpenTry      uint8 = 1
	VariantChannelOpenAck      uint8 = 2
	VariantChannelOpenConfirm  uint8 = 3
	VariantChannelCloseInit    uint8 = 4
	VariantChannelCloseConfirm uint8 = 5

	VariantPacketRecv           uint8 = 0
	VariantPacketAck            uint8 = 1
	VariantPacketTimeout        uint8 = 2
	VariantPacketTimeoutOnClose uint8 = 3
)
