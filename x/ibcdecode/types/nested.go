package types

import (
	"time"

	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
)

// Type tags of the nested messages understood by the registry.
const (
	TagChannelRecvPacket        = "ChannelRecvPacket"
	TagChannelAcknowledgement   = "ChannelAcknowledgement"
	TagChannelTimeout           = "ChannelTimeout"
	TagChannelV2RecvPacket      = "ChannelV2RecvPacket"
	TagChannelV2Acknowledgement = "ChannelV2Acknowledgement"
	TagChannelV2Timeout         = "ChannelV2Timeout"
	TagClientUpdate             = "ClientUpdate"
	TagClientCreate             = "ClientCreate"
	TagTendermintHeader         = "TendermintHeader"
	TagTendermintClientState    = "TendermintClientState"
	TagTendermintConsensusState = "TendermintConsensusState"
	TagTendermintMisbehaviour   = "TendermintMisbehaviour"
	TagTransferPacketData       = "TransferPacketData"
	TagWasmChecksum             = "WasmChecksum"
	TagAcknowledgement          = "Acknowledgement"
)

var (
	_ NestedMessage = (*ChannelRecvPacket)(nil)
	_ NestedMessage = (*ChannelAcknowledgement)(nil)
	_ NestedMessage = (*ChannelTimeout)(nil)
	_ NestedMessage = (*ChannelV2RecvPacket)(nil)
	_ NestedMessage = (*ChannelV2Acknowledgement)(nil)
	_ NestedMessage = (*ChannelV2Timeout)(nil)
	_ NestedMessage = (*ClientUpdate)(nil)
	_ NestedMessage = (*ClientCreate)(nil)
	_ NestedMessage = (*TendermintHeader)(nil)
	_ NestedMessage = (*TendermintClientState)(nil)
	_ NestedMessage = (*TendermintConsensusState)(nil)
	_ NestedMessage = (*TendermintMisbehaviour)(nil)
	_ NestedMessage = (*TransferPacketData)(nil)
	_ NestedMessage = (*WasmChecksum)(nil)
	_ NestedMessage = (*AckStatus)(nil)
)

// ChannelRecvPacket is /ibc.core.channel.v1.MsgRecvPacket.
type ChannelRecvPacket struct {
	Packet          Packet `json:"packet"`
	ProofCommitment Proof  `json:"proof_commitment"`
	ProofHeight     Height `json:"proof_height"`
	Signer          string `json:"signer"`
}

// ChannelAcknowledgement is /ibc.core.channel.v1.MsgAcknowledgement.
type ChannelAcknowledgement struct {
	Packet          Packet     `json:"packet"`
	Acknowledgement []byte     `json:"acknowledgement"`
	Ack             *AckStatus `json:"ack,omitempty"`
	ProofAcked      Proof      `json:"proof_acked"`
	ProofHeight     Height     `json:"proof_height"`
	Signer          string     `json:"signer"`
}

// ChannelTimeout is /ibc.core.channel.v1.MsgTimeout.
type ChannelTimeout struct {
	Packet           Packet       `json:"packet"`
	ProofUnreceived  Proof        `json:"proof_unreceived"`
	ProofHeight      Height       `json:"proof_height"`
	NextSequenceRecv sdkmath.Uint `json:"next_sequence_recv"`
	Signer           string       `json:"signer"`
}

// ChannelV2RecvPacket is /ibc.core.channel.v2.MsgRecvPacket.
type ChannelV2RecvPacket struct {
	Packet          PacketV2 `json:"packet"`
	ProofCommitment Proof    `json:"proof_commitment"`
	ProofHeight     Height   `json:"proof_height"`
	Signer          string   `json:"signer"`
}

// ChannelV2Acknowledgement is /ibc.core.channel.v2.MsgAcknowledgement.
type ChannelV2Acknowledgement struct {
	Packet              PacketV2 `json:"packet"`
	AppAcknowledgements [][]byte `json:"app_acknowledgements"`
	ProofAcked          Proof    `json:"proof_acked"`
	ProofHeight         Height   `json:"proof_height"`
	Signer              string   `json:"signer"`
}

// ChannelV2Timeout is /ibc.core.channel.v2.MsgTimeout.
type ChannelV2Timeout struct {
	Packet          PacketV2 `json:"packet"`
	ProofUnreceived Proof    `json:"proof_unreceived"`
	ProofHeight     Height   `json:"proof_height"`
	Signer          string   `json:"signer"`
}

// ClientUpdate is /ibc.core.client.v1.MsgUpdateClient.
type ClientUpdate struct {
	ClientID      string      `json:"client_id"`
	ClientMessage ProtobufAny `json:"client_message"`
	Signer        string      `json:"signer"`
}

// ClientCreate is /ibc.core.client.v1.MsgCreateClient.
type ClientCreate struct {
	ClientState    ProtobufAny `json:"client_state"`
	ConsensusState ProtobufAny `json:"consensus_state"`
	Signer         string      `json:"signer"`
}

// TendermintHeader is the part of /ibc.lightclients.tendermint.v1.Header an
// explorer shows. Validator sets are reduced to their sizes.
type TendermintHeader struct {
	ChainID           string            `json:"chain_id"`
	Height            sdkmath.Uint      `json:"height"`
	Time              time.Time         `json:"time"`
	AppHash           cmtbytes.HexBytes `json:"app_hash"`
	ValidatorsHash    cmtbytes.HexBytes `json:"validators_hash"`
	ProposerAddress   cmtbytes.HexBytes `json:"proposer_address"`
	Signatures        int               `json:"signatures"`
	Validators        int               `json:"validators"`
	TrustedHeight     Height            `json:"trusted_height"`
	TrustedValidators int               `json:"trusted_validators"`
}

// TendermintClientState is /ibc.lightclients.tendermint.v1.ClientState.
type TendermintClientState struct {
	ChainID         string   `json:"chain_id"`
	TrustLevel      string   `json:"trust_level"`
	TrustingPeriod  string   `json:"trusting_period"`
	UnbondingPeriod string   `json:"unbonding_period"`
	MaxClockDrift   string   `json:"max_clock_drift"`
	FrozenHeight    Height   `json:"frozen_height"`
	LatestHeight    Height   `json:"latest_height"`
	ProofSpecs      int      `json:"proof_specs"`
	UpgradePath     []string `json:"upgrade_path"`
}

// TendermintConsensusState is /ibc.lightclients.tendermint.v1.ConsensusState.
type TendermintConsensusState struct {
	Timestamp          time.Time         `json:"timestamp"`
	Root               cmtbytes.HexBytes `json:"root"`
	NextValidatorsHash cmtbytes.HexBytes `json:"next_validators_hash"`
}

// TendermintMisbehaviour is /ibc.lightclients.tendermint.v1.Misbehaviour.
type TendermintMisbehaviour struct {
	Header1 *TendermintHeader `json:"header_1"`
	Header2 *TendermintHeader `json:"header_2"`
}

// TransferPacketData is the ICS-20 fungible token packet payload.
type TransferPacketData struct {
	Denom    string `json:"denom"`
	Amount   string `json:"amount"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Memo     string `json:"memo,omitempty"`
}

// WasmChecksum is the code hash of a wasm light client.
type WasmChecksum struct {
	Checksum wasmvmtypes.Checksum `json:"checksum"`
}

func (*ChannelRecvPacket) TypeTag() string        { return TagChannelRecvPacket }
func (*ChannelAcknowledgement) TypeTag() string   { return TagChannelAcknowledgement }
func (*ChannelTimeout) TypeTag() string           { return TagChannelTimeout }
func (*ChannelV2RecvPacket) TypeTag() string      { return TagChannelV2RecvPacket }
func (*ChannelV2Acknowledgement) TypeTag() string { return TagChannelV2Acknowledgement }
func (*ChannelV2Timeout) TypeTag() string         { return TagChannelV2Timeout }
func (*ClientUpdate) TypeTag() string             { return TagClientUpdate }
func (*ClientCreate) TypeTag() string             { return TagClientCreate }
func (*TendermintHeader) TypeTag() string         { return TagTendermintHeader }
func (*TendermintClientState) TypeTag() string    { return TagTendermintClientState }
func (*TendermintConsensusState) TypeTag() string { return TagTendermintConsensusState }
func (*TendermintMisbehaviour) TypeTag() string   { return TagTendermintMisbehaviour }
func (*TransferPacketData) TypeTag() string       { return TagTransferPacketData }
func (*WasmChecksum) TypeTag() string             { return TagWasmChecksum }
func (*AckStatus) TypeTag() string                { return TagAcknowledgement }
