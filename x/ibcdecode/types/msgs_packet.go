package types

import (
	sdkmath "cosmossdk.io/math"
)

var (
	_ DecodedMessage = (*MsgRecvPacket)(nil)
	_ DecodedMessage = (*MsgAcknowledgement)(nil)
	_ DecodedMessage = (*MsgTimeout)(nil)
	_ DecodedMessage = (*MsgTimeoutOnClose)(nil)
)

type MsgRecvPacket struct {
	Packet             Packet `json:"packet"`
	ProofCommitmentOnA Proof  `json:"proof_commitment_on_a"`
	ProofHeightOnA     Height `json:"proof_height_on_a"`
	Signer             string `json:"signer"`
}

// MsgAcknowledgement carries the raw acknowledgement bytes. Ack is set when
// those bytes are a JSON channel acknowledgement.
type MsgAcknowledgement struct {
	Packet          Packet     `json:"packet"`
	Acknowledgement []byte     `json:"acknowledgement"`
	Ack             *AckStatus `json:"ack,omitempty"`
	ProofAckedOnB   Proof      `json:"proof_acked_on_b"`
	ProofHeightOnB  Height     `json:"proof_height_on_b"`
	Signer          string     `json:"signer"`
}

type MsgTimeout struct {
	Packet             Packet       `json:"packet"`
	NextSeqRecvOnB     sdkmath.Uint `json:"next_seq_recv_on_b"`
	ProofUnreceivedOnB Proof        `json:"proof_unreceived_on_b"`
	ProofHeightOnB     Height       `json:"proof_height_on_b"`
	Signer             string       `json:"signer"`
}

type MsgTimeoutOnClose struct {
	Packet             Packet       `json:"packet"`
	NextSeqRecvOnB     sdkmath.Uint `json:"next_seq_recv_on_b"`
	ProofUnreceivedOnB Proof        `json:"proof_unreceived_on_b"`
	ProofCloseOnB      Proof        `json:"proof_close_on_b"`
	ProofHeightOnB     Height       `json:"proof_height_on_b"`
	Signer             string       `json:"signer"`
}

func (*MsgRecvPacket) Kind() string      { return KindRecv }
func (*MsgAcknowledgement) Kind() string { return KindAck }
func (*MsgTimeout) Kind() string         { return KindTimeout }
func (*MsgTimeoutOnClose) Kind() string  { return KindTimeoutOnClose }

func (*MsgRecvPacket) Route() (Category, uint8)      { return CategoryPacket, VariantPacketRecv }
func (*MsgAcknowledgement) Route() (Category, uint8) { return CategoryPacket, VariantPacketAck }
func (*MsgTimeout) Route() (Category, uint8)         { return CategoryPacket, VariantPacketTimeout }
func (*MsgTimeoutOnClose) Route() (Category, uint8)  { return CategoryPacket, VariantPacketTimeoutOnClose }

func (*MsgRecvPacket) isDecodedMessage()      {}
func (*MsgAcknowledgement) isDecodedMessage() {}
func (*MsgTimeout) isDecodedMessage()         {}
func (*MsgTimeoutOnClose) isDecodedMessage()  {}
