package events

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	abci "github.com/cometbft/cometbft/abci/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"

	"github.com/cosmos/gogoproto/proto"

	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	ibctm "github.com/cosmos/ibc-go/v10/modules/light-clients/07-tendermint"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/registry"
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

const (
	txHash      = "A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F60718293A4B5C6D7E8F90"
	transferJSON = `{"amount":"100","denom":"utsc","receiver":"cosmos1xyz","sender":"tsc1abc"}`
)

func newTestDecoder() *Decoder {
	return NewDecoder(registry.New(types.DefaultMaxAnyDepth))
}

func headerHex(t *testing.T) string {
	t.Helper()
	bz, err := proto.Marshal(&ibctm.Header{
		SignedHeader: &cmtproto.SignedHeader{
			Header: &cmtproto.Header{ChainID: "tsc-1", Height: 42, Time: time.Unix(1700000000, 0).UTC()},
			Commit: &cmtproto.Commit{Height: 42},
		},
		ValidatorSet:  &cmtproto.ValidatorSet{},
		TrustedHeight: clienttypes.NewHeight(1, 40),
	})
	require.NoError(t, err)
	return hex.EncodeToString(bz)
}

func attr(key, value string) string {
	return fmt.Sprintf(`{"key":%q,"value":%q,"index":true}`, key, value)
}

func event(typ string, attrs ...string) string {
	return fmt.Sprintf(`{"type":%q,"attributes":[%s]}`, typ, strings.Join(attrs, ","))
}

func blockResults(field string, events ...string) string {
	return fmt.Sprintf(`{"height":"12","txs_results":null,"%s":[%s],"validator_updates":null}`, field, strings.Join(events, ","))
}

func rpcEnvelope(result string) string {
	return fmt.Sprintf(`{"jsonrpc":"2.0","id":-1,"result":%s}`, result)
}

func TestParseBlockResults(t *testing.T) {
	ev := event("send_packet", attr("packet_sequence", "1"))

	br, err := ParseBlockResults([]byte(rpcEnvelope(blockResults("end_block_events", ev))))
	require.NoError(t, err)
	require.Equal(t, int64(12), br.Height)
	require.Len(t, br.Events(), 1)
	require.Equal(t, "send_packet", br.Events()[0].Type)

	br, err = ParseBlockResults([]byte(blockResults("finalize_block_events", ev, ev)))
	require.NoError(t, err)
	require.Empty(t, br.EndBlockEvents)
	require.Len(t, br.Events(), 2)
}

func TestParseBlockResultsRejects(t *testing.T) {
	for _, body := range []string{
		"",
		"not json",
		`{"jsonrpc":"2.0","id":-1,"error":{"code":-32603,"message":"Internal error","data":"height 99 must be less than or equal to the current blockchain height 12"}}`,
		`{"jsonrpc":"2.0","id":-1}`,
	} {
		_, err := ParseBlockResults([]byte(body))
		require.True(t, errors.Is(err, types.ErrInvalidEvents), "%q: %v", body, err)
	}
}

func TestFindTxEvent(t *testing.T) {
	events := []abci.Event{
		{Type: "coin_spent", Attributes: []abci.EventAttribute{{Key: "inner-tx-hash", Value: txHash}}},
		{Type: "send_packet", Attributes: []abci.EventAttribute{
			{Key: "packet_sequence", Value: "1"},
			{Key: "inner-tx-hash", Value: strings.ToLower(txHash)},
		}},
	}

	ev, ok := FindTxEvent(events, "0x"+txHash)
	require.True(t, ok)
	require.Equal(t, "send_packet", ev.Type)

	_, ok = FindTxEvent(events, "deadbeef")
	require.False(t, ok)

	_, ok = FindTxEvent(events, "")
	require.False(t, ok)
}

func TestFindTxEventFollowsRoutingMarker(t *testing.T) {
	events := []abci.Event{
		{Type: "message", Attributes: []abci.EventAttribute{
			{Key: "module", Value: "ibc"},
			{Key: "inner-tx-hash", Value: txHash},
		}},
		{Type: "transfer"},
		{Type: "recv_packet", Attributes: []abci.EventAttribute{{Key: "packet_sequence", Value: "9"}}},
		{Type: "write_acknowledgement"},
	}

	ev, ok := FindTxEvent(events, txHash)
	require.True(t, ok)
	require.Equal(t, "recv_packet", ev.Type)

	// a message event from another module is not a marker
	events[0].Attributes[0].Value = "bank"
	_, ok = FindTxEvent(events, txHash)
	require.False(t, ok)
}

func TestDecodeTxEventSendPacket(t *testing.T) {
	d := newTestDecoder()
	body := rpcEnvelope(blockResults("end_block_events",
		event("send_packet",
			attr("packet_data_hex", hex.EncodeToString([]byte(transferJSON))),
			attr("packet_sequence", "7"),
			attr("packet_src_port", "transfer"),
			attr("packet_src_channel", "channel-0"),
			attr("packet_dst_port", "transfer"),
			attr("packet_dst_channel", "channel-3"),
			attr("inner-tx-hash", txHash),
		)))
	br, err := ParseBlockResults([]byte(body))
	require.NoError(t, err)

	ev := d.DecodeTxEvent(br, txHash)
	require.NotNil(t, ev)
	require.Equal(t, "send_packet", ev.Type)
	require.True(t, ev.NeedsProtoDecoding)
	require.Equal(t, "Sent packet #7 from transfer/channel-0 to transfer/channel-3", ev.Description)
	require.Len(t, ev.Attributes, 7)

	data := ev.Attributes[0]
	require.Equal(t, "packet_data_hex", data.Key)
	require.Equal(t, hex.EncodeToString([]byte(transferJSON)), data.Value)
	require.NotNil(t, data.Decoded)
	require.Equal(t, types.TagTransferPacketData, data.Decoded.TypeTag)
	require.Equal(t, "100", data.Decoded.Message.(*types.TransferPacketData).Amount)

	for _, a := range ev.Attributes[1:] {
		require.Nil(t, a.Decoded, a.Key)
	}
}

func TestDecodeTxEventWriteAcknowledgement(t *testing.T) {
	d := newTestDecoder()
	br, err := ParseBlockResults([]byte(blockResults("finalize_block_events",
		event("write_acknowledgement",
			attr("packet_ack_hex", hex.EncodeToString([]byte(`{"result":"AQ=="}`))),
			attr("inner-tx-hash", txHash),
		))))
	require.NoError(t, err)

	ev := d.DecodeTxEvent(br, txHash)
	require.NotNil(t, ev)
	ack := ev.Attributes[0].Decoded
	require.NotNil(t, ack)
	require.Equal(t, types.TagAcknowledgement, ack.TypeTag)
	require.True(t, ack.Message.(*types.AckStatus).Success)
}

func TestDecodeTxEventUpdateClientHeader(t *testing.T) {
	d := newTestDecoder()
	br, err := ParseBlockResults([]byte(blockResults("end_block_events",
		event("update_client",
			attr("client_id", "07-tendermint-1"),
			attr("consensus_heights", "1-42"),
			attr("header", headerHex(t)),
			attr("inner-tx-hash", txHash),
		))))
	require.NoError(t, err)

	ev := d.DecodeTxEvent(br, txHash)
	require.NotNil(t, ev)
	require.Equal(t, "Updated client 07-tendermint-1 to height 1-42", ev.Description)
	header := ev.Attributes[2].Decoded
	require.NotNil(t, header)
	require.Equal(t, types.TagTendermintHeader, header.TypeTag)
	require.Equal(t, "/ibc.lightclients.tendermint.v1.Header", header.TypeURL)
	require.Equal(t, "tsc-1", header.Message.(*types.TendermintHeader).ChainID)
}

func TestDecodeAttributeChecksums(t *testing.T) {
	d := newTestDecoder()
	sum := strings.Repeat("ab", 32)

	p := d.DecodeAttribute("wasm_checksum", sum)
	require.NotNil(t, p)
	require.Equal(t, types.TagWasmChecksum, p.TypeTag)
	cs := p.Message.(*types.WasmChecksum).Checksum
	require.Equal(t, sum, hex.EncodeToString(cs[:]))

	require.Nil(t, d.DecodeAttribute("new_checksum", strings.Repeat("ab", 31)))
	require.Nil(t, d.DecodeAttribute("wasm_checksum", "zz"))
}

func TestDecodeEventKeepsUndecodableValues(t *testing.T) {
	d := newTestDecoder()
	ev := d.DecodeEvent(abci.Event{Type: "recv_packet", Attributes: []abci.EventAttribute{
		{Key: "packet_data_hex", Value: "not-hex"},
		{Key: "packet_sequence", Value: "3"},
	}})

	require.Equal(t, "not-hex", ev.Attributes[0].Value)
	require.Nil(t, ev.Attributes[0].Decoded)
	require.Equal(t, "3", ev.Attributes[1].Value)
}

func TestDecodeTxEventNoMatch(t *testing.T) {
	d := newTestDecoder()
	br, err := ParseBlockResults([]byte(blockResults("end_block_events",
		event("transfer", attr("inner-tx-hash", txHash)))))
	require.NoError(t, err)
	require.Nil(t, d.DecodeTxEvent(br, txHash))
}
