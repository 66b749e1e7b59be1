package types

const (
	EventTypeCreateClient          = "create_client"
	EventTypeUpdateClient          = "update_client"
	EventTypeUpgradeClient         = "upgrade_client"
	EventTypeClientMisbehaviour    = "client_misbehaviour"
	EventTypeRecoverClient         = "recover_client"
	EventTypeConnectionOpenInit    = "connection_open_init"
	EventTypeConnectionOpenTry     = "connection_open_try"
	EventTypeConnectionOpenAck     = "connection_open_ack"
	EventTypeConnectionOpenConfirm = "connection_open_confirm"
	EventTypeChannelOpenInit       = "channel_open_init"
	EventTypeChannelOpenTry        = "channel_open_try"
	EventTypeChannelOpenAck        = "channel_open_ack"
	EventTypeChannelOpenConfirm    = "channel_open_confirm"
	EventTypeChannelCloseInit      = "channel_close_init"
	EventTypeChannelCloseConfirm   = "channel_close_confirm"
	EventTypeChannelClosed         = "channel_close"
	EventTypeSendPacket            = "send_packet"
	EventTypeRecvPacket            = "recv_packet"
	EventTypeWriteAck              = "write_acknowledgement"
	EventTypeAcknowledgePacket     = "acknowledge_packet"
	EventTypeTimeoutPacket         = "timeout_packet"
	EventTypeTimeoutOnClosePacket  = "timeout_on_close_packet"
	EventTypeStoreWasmCode         = "store_wasm_code"
	EventTypeMigrateContract       = "migrate_contract"

	// EventTypeMessage is the routing event emitted for every message.
	EventTypeMessage = "message"

	AttributeKeyInnerTxHash       = "inner-tx-hash"
	AttributeKeyModule            = "module"
	AttributeValueIBCModule       = "ibc"
	AttributeKeyClientID          = "client_id"
	AttributeKeyClientType        = "client_type"
	AttributeKeyConsensusHeight   = "consensus_height"
	AttributeKeyConsensusHeights  = "consensus_heights"
	AttributeKeyHeader            = "header"
	AttributeKeyConnectionID      = "connection_id"
	AttributeKeyCounterpartyConn  = "counterparty_connection_id"
	AttributeKeyCounterpartyCli   = "counterparty_client_id"
	AttributeKeyPortID            = "port_id"
	AttributeKeyChannelID         = "channel_id"
	AttributeKeyCounterpartyPort  = "counterparty_port_id"
	AttributeKeyCounterpartyChan  = "counterparty_channel_id"
	AttributeKeyPacketDataHex     = "packet_data_hex"
	AttributeKeyPacketAckHex      = "packet_ack_hex"
	AttributeKeyPacketSequence    = "packet_sequence"
	AttributeKeyPacketSrcPort     = "packet_src_port"
	AttributeKeyPacketSrcChannel  = "packet_src_channel"
	AttributeKeyPacketDstPort     = "packet_dst_port"
	AttributeKeyPacketDstChannel  = "packet_dst_channel"
	AttributeKeyWasmChecksum      = "wasm_checksum"
	AttributeKeyNewChecksum       = "new_checksum"
	AttributeKeySubjectClientID   = "subject_client_id"
	AttributeKeySubstituteClient  = "substitute_client_id"
)

// ibcEventTypes is the allow-list of event types the explorer treats as IBC.
var ibcEventTypes = map[string]bool{
	EventTypeCreateClient:          true,
	EventTypeUpdateClient:          true,
	EventTypeUpgradeClient:         true,
	EventTypeClientMisbehaviour:    true,
	EventTypeRecoverClient:         true,
	EventTypeConnectionOpenInit:    true,
	EventTypeConnectionOpenTry:     true,
	EventTypeConnectionOpenAck:     true,
	EventTypeConnectionOpenConfirm: true,
	EventTypeChannelOpenInit:       true,
	EventTypeChannelOpenTry:        true,
	EventTypeChannelOpenAck:        true,
	EventTypeChannelOpenConfirm:    true,
	EventTypeChannelCloseInit:      true,
	EventTypeChannelCloseConfirm:   true,
	EventTypeChannelClosed:         true,
	EventTypeSendPacket:            true,
	EventTypeRecvPacket:            true,
	EventTypeWriteAck:              true,
	EventTypeAcknowledgePacket:     true,
	EventTypeTimeoutPacket:         true,
	EventTypeTimeoutOnClosePacket:  true,
	EventTypeStoreWasmCode:         true,
	EventTypeMigrateContract:       true,
}

// protoHexAttributes lists, per event type, the attributes whose values are
// hex-encoded binary payloads.
var protoHexAttributes = map[string][]string{
	EventTypeSendPacket:      {AttributeKeyPacketDataHex},
	EventTypeRecvPacket:      {AttributeKeyPacketDataHex},
	EventTypeWriteAck:        {AttributeKeyPacketDataHex, AttributeKeyPacketAckHex},
	EventTypeUpdateClient:    {AttributeKeyHeader},
	EventTypeStoreWasmCode:   {AttributeKeyWasmChecksum},
	EventTypeMigrateContract: {AttributeKeyWasmChecksum, AttributeKeyNewChecksum},
}

// IsIBCEventType reports whether eventType is on the IBC allow-list.
func IsIBCEventType(eventType string) bool {
	return ibcEventTypes[eventType]
}

// ProtoHexAttributes returns the hex-carrying attribute keys for eventType.
func ProtoHexAttributes(eventType string) []string {
	return protoHexAttributes[eventType]
}

// NeedsProtoDecoding reports whether eventType carries hex-encoded payloads.
func NeedsProtoDecoding(eventType string) bool {
	return len(protoHexAttributes[eventType]) > 0
}
