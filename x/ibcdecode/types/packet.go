package types

import (
	sdkmath "cosmossdk.io/math"
)

// Packet is an IBC v1 packet as carried by the recv, ack, timeout and
// timeout-on-close envelopes.
type Packet struct {
	Sequence         sdkmath.Uint     `json:"sequence"`
	SourcePort       string           `json:"source_port"`
	SourceChannel    string           `json:"source_channel"`
	DestPort         string           `json:"destination_port"`
	DestChannel      string           `json:"destination_channel"`
	Data             []byte           `json:"data"`
	TimeoutHeight    TimeoutHeight    `json:"timeout_height"`
	TimeoutTimestamp TimeoutTimestamp `json:"timeout_timestamp"`
}

// PacketV2 is an IBC v2 (client-to-client) packet.
type PacketV2 struct {
	Sequence          sdkmath.Uint `json:"sequence"`
	SourceClient      string       `json:"source_client"`
	DestinationClient string       `json:"destination_client"`
	TimeoutTimestamp  sdkmath.Uint `json:"timeout_timestamp"`
	Payloads          []PayloadV2  `json:"payloads"`
}

// PayloadV2 is one application payload of a v2 packet.
type PayloadV2 struct {
	SourcePort      string `json:"source_port"`
	DestinationPort string `json:"destination_port"`
	Version         string `json:"version"`
	Encoding        string `json:"encoding"`
	Value           []byte `json:"value"`
}
