package decoder

import (
	errorsmod "cosmossdk.io/errors"

	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// fieldReader walks the fields of one message in wire order. The first
// failure sticks and later reads are no-ops, so a variant decoder reads its
// fields top to bottom and checks err once.
type fieldReader struct {
	bz  []byte
	off int
	pos int
	err error
}

func newFieldReader(bz []byte, off int) *fieldReader {
	return &fieldReader{bz: bz, off: off, pos: off}
}

// consumed is the number of bytes read since the content offset.
func (r *fieldReader) consumed() int {
	return r.pos - r.off
}

func (r *fieldReader) result(msg types.DecodedMessage) (types.DecodedMessage, int, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	return msg, r.consumed(), nil
}

func field[T any](r *fieldReader, name string, read readFn[T]) T {
	var zero T
	if r.err != nil {
		return zero
	}
	v, n, err := read(r.bz, r.pos)
	if err != nil {
		r.err = errorsmod.Wrap(err, name)
		return zero
	}
	r.pos += n
	return v
}

func readHeight(bz []byte, off int) (types.Height, int, error) {
	number, n, err := readU64(bz, off)
	if err != nil {
		return types.Height{}, 0, errorsmod.Wrap(err, "revision_number")
	}
	height, m, err := readU64(bz, off+n)
	if err != nil {
		return types.Height{}, 0, errorsmod.Wrap(err, "revision_height")
	}
	return types.Height{RevisionNumber: number, RevisionHeight: height}, n + m, nil
}

// readTimeoutHeight reads tag 0 (never) or tag 1 followed by a Height.
func readTimeoutHeight(bz []byte, off int) (types.TimeoutHeight, int, error) {
	tag, n, err := readTag(bz, off, 1, "timeout_height")
	if err != nil {
		return types.TimeoutHeight{}, 0, err
	}
	if tag == 0 {
		return types.NeverTimeoutHeight(), n, nil
	}
	h, m, err := readHeight(bz, off+n)
	if err != nil {
		return types.TimeoutHeight{}, 0, err
	}
	return types.TimeoutAtHeight(h), n + m, nil
}

// readTimeoutTimestamp reads tag 0 (never) or tag 1 followed by u64 nanoseconds.
func readTimeoutTimestamp(bz []byte, off int) (types.TimeoutTimestamp, int, error) {
	tag, n, err := readTag(bz, off, 1, "timeout_timestamp")
	if err != nil {
		return types.TimeoutTimestamp{}, 0, err
	}
	if tag == 0 {
		return types.NeverTimeoutTimestamp(), n, nil
	}
	ts, m, err := readU64(bz, off+n)
	if err != nil {
		return types.TimeoutTimestamp{}, 0, err
	}
	return types.TimeoutAtTimestamp(ts), n + m, nil
}

func readOrder(bz []byte, off int) (channeltypes.Order, int, error) {
	tag, n, err := readTag(bz, off, uint8(channeltypes.ORDERED), "ordering")
	if err != nil {
		return channeltypes.NONE, 0, err
	}
	return channeltypes.Order(tag), n, nil
}

func readConnectionVersion(bz []byte, off int) (types.ConnectionVersion, int, error) {
	r := newFieldReader(bz, off)
	v := types.ConnectionVersion{
		Identifier: field(r, "identifier", readString),
		Features:   field(r, "features", readVecOf(readString)),
	}
	if r.err != nil {
		return types.ConnectionVersion{}, 0, r.err
	}
	return v, r.consumed(), nil
}

func readConnectionCounterparty(bz []byte, off int) (types.ConnectionCounterparty, int, error) {
	r := newFieldReader(bz, off)
	c := types.ConnectionCounterparty{
		ClientID:         field(r, "client_id", readString),
		ConnectionID:     field(r, "connection_id", readOptionOf(readString)),
		CommitmentPrefix: field(r, "commitment_prefix", readBytes),
	}
	if r.err != nil {
		return types.ConnectionCounterparty{}, 0, r.err
	}
	return c, r.consumed(), nil
}

//	sequence          u64
//	source_port       string
//	source_channel    string
//	dest_port         string
//	dest_channel      string
//	data              bytes
//	timeout_height    TimeoutHeight
//	timeout_timestamp TimeoutTimestamp
func readPacket(bz []byte, off int) (types.Packet, int, error) {
	r := newFieldReader(bz, off)
	p := types.Packet{
		Sequence:         field(r, "sequence", readU64),
		SourcePort:       field(r, "source_port", readString),
		SourceChannel:    field(r, "source_channel", readString),
		DestPort:         field(r, "dest_port", readString),
		DestChannel:      field(r, "dest_channel", readString),
		Data:             field(r, "data", readBytes),
		TimeoutHeight:    field(r, "timeout_height", readTimeoutHeight),
		TimeoutTimestamp: field(r, "timeout_timestamp", readTimeoutTimestamp),
	}
	if r.err != nil {
		return types.Packet{}, 0, errorsmod.Wrap(r.err, "packet")
	}
	return p, r.consumed(), nil
}

// readAny reads type_url and value, then asks the registry for a structured
// decode. A registry miss never fails the read.
func (d *Decoder) readAny(bz []byte, off int) (types.ProtobufAny, int, error) {
	r := newFieldReader(bz, off)
	a := types.ProtobufAny{
		TypeURL:  field(r, "type_url", readString),
		RawValue: field(r, "value", readBytes),
	}
	if r.err != nil {
		return types.ProtobufAny{}, 0, r.err
	}
	a.Decoded = d.registry.DecodeAny(a.TypeURL, a.RawValue, 0)
	return a, r.consumed(), nil
}

func (d *Decoder) readProof(bz []byte, off int) (types.Proof, int, error) {
	raw, n, err := readBytes(bz, off)
	if err != nil {
		return types.Proof{}, 0, err
	}
	return types.Proof{Raw: raw, Summary: d.registry.SummarizeProof(raw)}, n, nil
}

// readOptionOf and readVecOf adapt the generic readers to readFn for use
// with field.
func readOptionOf[T any](read readFn[T]) readFn[*T] {
	return func(bz []byte, off int) (*T, int, error) { return readOption(bz, off, read) }
}

func readVecOf[T any](read readFn[T]) readFn[[]T] {
	return func(bz []byte, off int) ([]T, int, error) { return readVec(bz, off, read) }
}
