package registry

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"

	"github.com/cosmos/gogoproto/proto"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"

	transfertypes "github.com/cosmos/ibc-go/v10/modules/apps/transfer/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	channeltypesv2 "github.com/cosmos/ibc-go/v10/modules/core/04-channel/v2/types"
	commitmenttypes "github.com/cosmos/ibc-go/v10/modules/core/23-commitment/types"
	ibctm "github.com/cosmos/ibc-go/v10/modules/light-clients/07-tendermint"
)

const (
	headerTypeURL       = "/ibc.lightclients.tendermint.v1.Header"
	updateClientTypeURL = "/ibc.core.client.v1.MsgUpdateClient"
	recvPacketTypeURL   = "/ibc.core.channel.v1.MsgRecvPacket"
)

func mustMarshal(t *testing.T, msg proto.Message) []byte {
	t.Helper()
	bz, err := proto.Marshal(msg)
	require.NoError(t, err)
	return bz
}

func testHeader() *ibctm.Header {
	blockTime := time.Unix(1700000000, 0).UTC()
	return &ibctm.Header{
		SignedHeader: &cmtproto.SignedHeader{
			Header: &cmtproto.Header{
				ChainID:         "tsc-1",
				Height:          42,
				Time:            blockTime,
				AppHash:         []byte{0xaa, 0xbb},
				ValidatorsHash:  []byte{0x01},
				ProposerAddress: []byte{0x02},
			},
			Commit: &cmtproto.Commit{
				Height: 42,
				Signatures: []cmtproto.CommitSig{
					{BlockIdFlag: cmtproto.BlockIDFlagCommit, Timestamp: blockTime},
					{BlockIdFlag: cmtproto.BlockIDFlagCommit, Timestamp: blockTime},
				},
			},
		},
		ValidatorSet:      &cmtproto.ValidatorSet{},
		TrustedHeight:     clienttypes.NewHeight(1, 40),
		TrustedValidators: &cmtproto.ValidatorSet{},
	}
}

func testHeaderBytes(t *testing.T) []byte {
	return mustMarshal(t, testHeader())
}

func testUpdateClientBytes(t *testing.T) []byte {
	return mustMarshal(t, &clienttypes.MsgUpdateClient{
		ClientId:      "07-tendermint-1",
		ClientMessage: &codectypes.Any{TypeUrl: headerTypeURL, Value: testHeaderBytes(t)},
		Signer:        "tsc1relayer",
	})
}

func testRecvPacketBytes(t *testing.T) []byte {
	return mustMarshal(t, &channeltypes.MsgRecvPacket{
		Packet: channeltypes.Packet{
			Sequence:           7,
			SourcePort:         "transfer",
			SourceChannel:      "channel-0",
			DestinationPort:    "transfer",
			DestinationChannel: "channel-1",
			Data:               []byte(`{"amount":"1"}`),
			TimeoutHeight:      clienttypes.NewHeight(1, 100),
		},
		ProofCommitment: []byte{1, 2, 3},
		ProofHeight:     clienttypes.NewHeight(1, 99),
		Signer:          "tsc1relayer",
	})
}

// testProof starts with a length-delimited field 1 so it never reads as a
// Height.
var testProof = []byte{0x0a, 0x02, 0x01, 0x02}

func testPacket() channeltypes.Packet {
	return channeltypes.Packet{
		Sequence:           7,
		SourcePort:         "transfer",
		SourceChannel:      "channel-0",
		DestinationPort:    "transfer",
		DestinationChannel: "channel-1",
		Data:               []byte(`{"amount":"1"}`),
		TimeoutHeight:      clienttypes.NewHeight(1, 100),
	}
}

func testPacketV2() channeltypesv2.Packet {
	return channeltypesv2.Packet{
		Sequence:          3,
		SourceClient:      "07-tendermint-0",
		DestinationClient: "07-tendermint-1",
		TimeoutTimestamp:  1700000600,
		Payloads: []channeltypesv2.Payload{{
			SourcePort:      "transfer",
			DestinationPort: "transfer",
			Version:         "ics20-1",
			Encoding:        "application/json",
			Value:           []byte(`{"amount":"1"}`),
		}},
	}
}

func testClientState() *ibctm.ClientState {
	return &ibctm.ClientState{
		ChainId:         "tsc-1",
		TrustLevel:      ibctm.Fraction{Numerator: 1, Denominator: 3},
		TrustingPeriod:  14 * 24 * time.Hour,
		UnbondingPeriod: 21 * 24 * time.Hour,
		MaxClockDrift:   10 * time.Second,
		LatestHeight:    clienttypes.NewHeight(1, 42),
		UpgradePath:     []string{"upgrade", "upgradedIBCState"},
	}
}

func testConsensusState() *ibctm.ConsensusState {
	return &ibctm.ConsensusState{
		Timestamp:          time.Unix(1700000000, 0).UTC(),
		Root:               commitmenttypes.NewMerkleRoot(bytes.Repeat([]byte{0xab}, 32)),
		NextValidatorsHash: bytes.Repeat([]byte{0x11}, 32),
	}
}

// testEntryBytes holds one realistic encoding per registry tag.
func testEntryBytes(t *testing.T) map[string][]byte {
	t.Helper()
	return map[string][]byte{
		"ChannelRecvPacket": testRecvPacketBytes(t),
		"ChannelAcknowledgement": mustMarshal(t, &channeltypes.MsgAcknowledgement{
			Packet:          testPacket(),
			Acknowledgement: []byte(`{"result":"AQ=="}`),
			ProofAcked:      testProof,
			ProofHeight:     clienttypes.NewHeight(1, 99),
			Signer:          "tsc1relayer",
		}),
		"ChannelTimeout": mustMarshal(t, &channeltypes.MsgTimeout{
			Packet:           testPacket(),
			ProofUnreceived:  testProof,
			ProofHeight:      clienttypes.NewHeight(1, 99),
			NextSequenceRecv: 8,
			Signer:           "tsc1relayer",
		}),
		"ChannelV2RecvPacket": mustMarshal(t, &channeltypesv2.MsgRecvPacket{
			Packet:          testPacketV2(),
			ProofCommitment: testProof,
			ProofHeight:     clienttypes.NewHeight(1, 99),
			Signer:          "tsc1relayer",
		}),
		"ChannelV2Acknowledgement": mustMarshal(t, &channeltypesv2.MsgAcknowledgement{
			Packet:          testPacketV2(),
			Acknowledgement: channeltypesv2.Acknowledgement{AppAcknowledgements: [][]byte{[]byte(`{"result":"AQ=="}`)}},
			ProofAcked:      testProof,
			ProofHeight:     clienttypes.NewHeight(1, 99),
			Signer:          "tsc1relayer",
		}),
		"ChannelV2Timeout": mustMarshal(t, &channeltypesv2.MsgTimeout{
			Packet:          testPacketV2(),
			ProofUnreceived: testProof,
			ProofHeight:     clienttypes.NewHeight(1, 99),
			Signer:          "tsc1relayer",
		}),
		"ClientUpdate": testUpdateClientBytes(t),
		"ClientCreate": mustMarshal(t, &clienttypes.MsgCreateClient{
			ClientState:    &codectypes.Any{TypeUrl: "/ibc.lightclients.tendermint.v1.ClientState", Value: mustMarshal(t, testClientState())},
			ConsensusState: &codectypes.Any{TypeUrl: "/ibc.lightclients.tendermint.v1.ConsensusState", Value: mustMarshal(t, testConsensusState())},
			Signer:         "tsc1relayer",
		}),
		"TendermintHeader":         testHeaderBytes(t),
		"TendermintClientState":    mustMarshal(t, testClientState()),
		"TendermintConsensusState": mustMarshal(t, testConsensusState()),
		"TendermintMisbehaviour": mustMarshal(t, &ibctm.Misbehaviour{
			Header1: testHeader(),
			Header2: testHeader(),
		}),
		"TransferPacketData": mustMarshal(t, &transfertypes.FungibleTokenPacketData{
			Denom:    "utsc",
			Amount:   "100",
			Sender:   "tsc1sender",
			Receiver: "cosmos1receiver",
		}),
	}
}

func encodeProtoVarint(fieldNum protowire.Number, val uint64) []byte {
	buf := protowire.AppendTag(nil, fieldNum, protowire.VarintType)
	return protowire.AppendVarint(buf, val)
}

func encodeProtoString(fieldNum protowire.Number, val string) []byte {
	return encodeProtoBytes(fieldNum, []byte(val))
}

func encodeProtoBytes(fieldNum protowire.Number, val []byte) []byte {
	buf := protowire.AppendTag(nil, fieldNum, protowire.BytesType)
	return protowire.AppendBytes(buf, val)
}
