package decoder

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"

	"github.com/cosmos/gogoproto/proto"

	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	ibctm "github.com/cosmos/ibc-go/v10/modules/light-clients/07-tendermint"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/registry"
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// envelope builds test payloads in the envelope wire format.
type envelope struct {
	buf []byte
}

func newEnvelope(category types.Category, variant uint8) *envelope {
	return &envelope{buf: []byte{uint8(category), variant}}
}

func (e *envelope) u8(v uint8) *envelope {
	e.buf = append(e.buf, v)
	return e
}

func (e *envelope) u32(v uint32) *envelope {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
	return e
}

func (e *envelope) u64(v uint64) *envelope {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, v)
	return e
}

func (e *envelope) bytes(v []byte) *envelope {
	e.u32(uint32(len(v)))
	e.buf = append(e.buf, v...)
	return e
}

func (e *envelope) str(v string) *envelope {
	return e.bytes([]byte(v))
}

func (e *envelope) strs(v ...string) *envelope {
	e.u32(uint32(len(v)))
	for _, s := range v {
		e.str(s)
	}
	return e
}

func (e *envelope) height(number, height uint64) *envelope {
	return e.u64(number).u64(height)
}

func (e *envelope) any(typeURL string, value []byte) *envelope {
	return e.str(typeURL).bytes(value)
}

func (e *envelope) version(id string, features ...string) *envelope {
	return e.str(id).strs(features...)
}

func (e *envelope) counterparty(clientID string, connectionID *string, prefix []byte) *envelope {
	e.str(clientID)
	if connectionID == nil {
		e.u8(0)
	} else {
		e.u8(1).str(*connectionID)
	}
	return e.bytes(prefix)
}

// packet writes sequence 1 transfer/channel-0 -> transfer/channel-1 with no
// data and no timeouts unless overridden by the caller.
func (e *envelope) packet(sequence uint64) *envelope {
	return e.u64(sequence).
		str("transfer").str("channel-0").
		str("transfer").str("channel-1").
		bytes([]byte{}).
		u8(0). // timeout height never
		u8(0)  // timeout timestamp never
}

func (e *envelope) build() []byte {
	return e.buf
}

func newTestDecoder() *Decoder {
	return NewDecoder(registry.New(types.DefaultMaxAnyDepth))
}

const (
	headerTypeURL = "/ibc.lightclients.tendermint.v1.Header"
	wasmTypeURL   = "/ibc.lightclients.wasm.v1.ClientMessage"
)

func testHeaderBytes(t *testing.T) []byte {
	t.Helper()
	bz, err := proto.Marshal(&ibctm.Header{
		SignedHeader: &cmtproto.SignedHeader{
			Header: &cmtproto.Header{
				ChainID: "tsc-1",
				Height:  42,
				Time:    time.Unix(1700000000, 0).UTC(),
			},
			Commit: &cmtproto.Commit{Height: 42},
		},
		ValidatorSet:  &cmtproto.ValidatorSet{},
		TrustedHeight: clienttypes.NewHeight(1, 40),
	})
	require.NoError(t, err)
	return bz
}

func strPtr(s string) *string { return &s }

// fixtures returns one well formed envelope per variant.
func fixtures(t *testing.T) map[string][]byte {
	header := testHeaderBytes(t)
	ack := []byte(`{"result":"AQ=="}`)

	return map[string][]byte{
		types.KindCreateClient: newEnvelope(types.CategoryClient, types.VariantClientCreate).
			any("/ibc.lightclients.tendermint.v1.ClientState", []byte{}).
			any("/ibc.lightclients.tendermint.v1.ConsensusState", []byte{}).
			str("tsc1signer").build(),
		types.KindUpdateClient: newEnvelope(types.CategoryClient, types.VariantClientUpdate).
			str("07-tendermint-1").any(headerTypeURL, header).str("tsc1signer").build(),
		types.KindSubmitMisbehaviour: newEnvelope(types.CategoryClient, types.VariantClientMisbehaviour).
			str("07-tendermint-1").any("/ibc.lightclients.tendermint.v1.Misbehaviour", []byte{0x0a, 0x00}).str("tsc1signer").build(),
		types.KindUpgradeClient: newEnvelope(types.CategoryClient, types.VariantClientUpgrade).
			str("07-tendermint-1").
			any(wasmTypeURL, []byte{1}).any(wasmTypeURL, []byte{2}).
			bytes([]byte{3}).bytes([]byte{4}).
			str("tsc1signer").build(),
		types.KindRecoverClient: newEnvelope(types.CategoryClient, types.VariantClientRecover).
			str("07-tendermint-1").str("07-tendermint-2").str("tsc1authority").build(),

		types.KindConnectionOpenInit: newEnvelope(types.CategoryConnection, types.VariantConnectionOpenInit).
			str("07-tendermint-0").
			counterparty("07-tendermint-5", nil, []byte("ibc")).
			u8(1).version("1", "ORDER_ORDERED", "ORDER_UNORDERED").
			u64(0).
			str("tsc1signer").build(),
		types.KindConnectionOpenTry: newEnvelope(types.CategoryConnection, types.VariantConnectionOpenTry).
			str("07-tendermint-0").
			any(wasmTypeURL, []byte{9}).
			counterparty("07-tendermint-5", strPtr("connection-3"), []byte("ibc")).
			u32(2).version("1", "ORDER_ORDERED").version("2").
			bytes([]byte{1}).bytes([]byte{2}).bytes([]byte{3}).
			height(1, 10).height(1, 9).
			u64(30).
			str("tsc1signer").build(),
		types.KindConnectionOpenAck: newEnvelope(types.CategoryConnection, types.VariantConnectionOpenAck).
			str("connection-0").str("connection-3").
			any(wasmTypeURL, []byte{9}).
			bytes([]byte{1}).bytes([]byte{2}).bytes([]byte{3}).
			height(1, 10).height(1, 9).
			version("1", "ORDER_UNORDERED").
			str("tsc1signer").build(),
		types.KindConnectionOpenConfirm: newEnvelope(types.CategoryConnection, types.VariantConnectionOpenConfirm).
			str("connection-3").bytes([]byte{1}).height(1, 10).str("tsc1signer").build(),

		types.KindChannelOpenInit: newEnvelope(types.CategoryChannel, types.VariantChannelOpenInit).
			str("transfer").strs("connection-0").str("transfer").u8(1).str("tsc1signer").str("ics20-1").build(),
		types.KindChannelOpenTry: newEnvelope(types.CategoryChannel, types.VariantChannelOpenTry).
			str("transfer").strs("connection-3").str("transfer").str("channel-0").str("ics20-1").
			bytes([]byte{1}).height(1, 10).u8(2).str("tsc1signer").str("ics20-1").build(),
		types.KindChannelOpenAck: newEnvelope(types.CategoryChannel, types.VariantChannelOpenAck).
			str("transfer").str("channel-0").str("channel-7").str("ics20-1").
			bytes([]byte{1}).height(1, 10).str("tsc1signer").build(),
		types.KindChannelOpenConfirm: newEnvelope(types.CategoryChannel, types.VariantChannelOpenConfirm).
			str("transfer").str("channel-7").bytes([]byte{1}).height(1, 10).str("tsc1signer").build(),
		types.KindChannelCloseInit: newEnvelope(types.CategoryChannel, types.VariantChannelCloseInit).
			str("transfer").str("channel-0").str("tsc1signer").build(),
		types.KindChannelCloseConfirm: newEnvelope(types.CategoryChannel, types.VariantChannelCloseConfirm).
			str("transfer").str("channel-7").bytes([]byte{1}).height(1, 10).str("tsc1signer").build(),

		types.KindRecv: newEnvelope(types.CategoryPacket, types.VariantPacketRecv).
			packet(1).bytes([]byte{1, 2, 3}).height(0, 10).str("tsc1relayer").build(),
		types.KindAck: newEnvelope(types.CategoryPacket, types.VariantPacketAck).
			packet(2).bytes(ack).bytes([]byte{4}).height(0, 11).str("tsc1relayer").build(),
		types.KindTimeout: newEnvelope(types.CategoryPacket, types.VariantPacketTimeout).
			packet(3).u64(3).bytes([]byte{5}).height(0, 12).str("tsc1relayer").build(),
		types.KindTimeoutOnClose: newEnvelope(types.CategoryPacket, types.VariantPacketTimeoutOnClose).
			packet(4).u64(4).bytes([]byte{6}).bytes([]byte{7}).height(0, 13).str("tsc1relayer").build(),
	}
}
