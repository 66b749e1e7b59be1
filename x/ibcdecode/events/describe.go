package events

import (
	"fmt"

	abci "github.com/cometbft/cometbft/abci/types"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

func describeEvent(ev abci.Event) string {
	attrs := make(map[string]string, len(ev.Attributes))
	for _, a := range ev.Attributes {
		if _, ok := attrs[a.Key]; !ok {
			attrs[a.Key] = a.Value
		}
	}
	get := func(key string) string {
		if v, ok := attrs[key]; ok && v != "" {
			return v
		}
		return "?"
	}
	packet := func(verb string) string {
		return fmt.Sprintf("%s packet #%s from %s/%s to %s/%s", verb,
			get(types.AttributeKeyPacketSequence),
			get(types.AttributeKeyPacketSrcPort), get(types.AttributeKeyPacketSrcChannel),
			get(types.AttributeKeyPacketDstPort), get(types.AttributeKeyPacketDstChannel))
	}

	switch ev.Type {
	case types.EventTypeCreateClient:
		return fmt.Sprintf("Created %s client %s", get(types.AttributeKeyClientType), get(types.AttributeKeyClientID))
	case types.EventTypeUpdateClient:
		height := attrs[types.AttributeKeyConsensusHeights]
		if height == "" {
			height = get(types.AttributeKeyConsensusHeight)
		}
		return fmt.Sprintf("Updated client %s to height %s", get(types.AttributeKeyClientID), height)
	case types.EventTypeUpgradeClient:
		return fmt.Sprintf("Upgraded client %s", get(types.AttributeKeyClientID))
	case types.EventTypeClientMisbehaviour:
		return fmt.Sprintf("Froze client %s for misbehaviour", get(types.AttributeKeyClientID))
	case types.EventTypeRecoverClient:
		return fmt.Sprintf("Recovered client %s from %s", get(types.AttributeKeySubjectClientID), get(types.AttributeKeySubstituteClient))

	case types.EventTypeConnectionOpenInit, types.EventTypeConnectionOpenTry,
		types.EventTypeConnectionOpenAck, types.EventTypeConnectionOpenConfirm:
		return fmt.Sprintf("Connection %s on client %s, counterparty %s on client %s (%s)",
			get(types.AttributeKeyConnectionID), get(types.AttributeKeyClientID),
			get(types.AttributeKeyCounterpartyConn), get(types.AttributeKeyCounterpartyCli), ev.Type)

	case types.EventTypeChannelOpenInit, types.EventTypeChannelOpenTry,
		types.EventTypeChannelOpenAck, types.EventTypeChannelOpenConfirm,
		types.EventTypeChannelCloseInit, types.EventTypeChannelCloseConfirm, types.EventTypeChannelClosed:
		return fmt.Sprintf("Channel %s/%s, counterparty %s/%s (%s)",
			get(types.AttributeKeyPortID), get(types.AttributeKeyChannelID),
			get(types.AttributeKeyCounterpartyPort), get(types.AttributeKeyCounterpartyChan), ev.Type)

	case types.EventTypeSendPacket:
		return packet("Sent")
	case types.EventTypeRecvPacket:
		return packet("Received")
	case types.EventTypeWriteAck:
		return packet("Wrote acknowledgement for")
	case types.EventTypeAcknowledgePacket:
		return packet("Acknowledged")
	case types.EventTypeTimeoutPacket:
		return packet("Timed out")
	case types.EventTypeTimeoutOnClosePacket:
		return packet("Timed out on close")

	case types.EventTypeStoreWasmCode:
		return fmt.Sprintf("Stored wasm light client code %s", get(types.AttributeKeyWasmChecksum))
	case types.EventTypeMigrateContract:
		return fmt.Sprintf("Migrated client %s from code %s to %s", get(types.AttributeKeyClientID),
			get(types.AttributeKeyWasmChecksum), get(types.AttributeKeyNewChecksum))
	}
	return ev.Type
}
