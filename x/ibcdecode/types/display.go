package types

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Display is the short human readable projection of a decoded message.
type Display struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Describe projects a decoded message to its display name and one line
// description.
func Describe(msg DecodedMessage) Display {
	switch m := msg.(type) {
	case *MsgCreateClient:
		return Display{"IBC Create Client", fmt.Sprintf("Create light client from %s", anyName(m.ClientState))}
	case *MsgUpdateClient:
		return Display{"IBC Update Client", fmt.Sprintf("Update client %s with %s", m.ClientID, anyName(m.ClientMessage))}
	case *MsgSubmitMisbehaviour:
		return Display{"IBC Submit Misbehaviour", fmt.Sprintf("Submit misbehaviour for client %s", m.ClientID)}
	case *MsgUpgradeClient:
		return Display{"IBC Upgrade Client", fmt.Sprintf("Upgrade client %s", m.ClientID)}
	case *MsgRecoverClient:
		return Display{"IBC Recover Client", fmt.Sprintf("Recover client %s using %s", m.SubjectClientID, m.SubstituteClientID)}

	case *MsgConnectionOpenInit:
		return Display{"IBC Connection Open Init", fmt.Sprintf("Open connection on client %s to counterparty client %s", m.ClientIDOnA, m.Counterparty.ClientID)}
	case *MsgConnectionOpenTry:
		return Display{"IBC Connection Open Try", fmt.Sprintf("Try connection on client %s from counterparty client %s", m.ClientIDOnB, m.Counterparty.ClientID)}
	case *MsgConnectionOpenAck:
		return Display{"IBC Connection Open Ack", fmt.Sprintf("Acknowledge connection %s with counterparty %s", m.ConnIDOnA, m.ConnIDOnB)}
	case *MsgConnectionOpenConfirm:
		return Display{"IBC Connection Open Confirm", fmt.Sprintf("Confirm connection %s", m.ConnIDOnB)}

	case *MsgChannelOpenInit:
		return Display{"IBC Channel Open Init", fmt.Sprintf("Open channel on port %s over %s", m.PortIDOnA, hops(m.ConnectionHopsOnA))}
	case *MsgChannelOpenTry:
		return Display{"IBC Channel Open Try", fmt.Sprintf("Try channel on port %s from %s/%s", m.PortIDOnB, m.PortIDOnA, m.ChanIDOnA)}
	case *MsgChannelOpenAck:
		return Display{"IBC Channel Open Ack", fmt.Sprintf("Acknowledge channel %s/%s with counterparty %s", m.PortIDOnA, m.ChanIDOnA, m.ChanIDOnB)}
	case *MsgChannelOpenConfirm:
		return Display{"IBC Channel Open Confirm", fmt.Sprintf("Confirm channel %s/%s", m.PortIDOnB, m.ChanIDOnB)}
	case *MsgChannelCloseInit:
		return Display{"IBC Channel Close Init", fmt.Sprintf("Close channel %s/%s", m.PortIDOnA, m.ChanIDOnA)}
	case *MsgChannelCloseConfirm:
		return Display{"IBC Channel Close Confirm", fmt.Sprintf("Confirm close of channel %s/%s", m.PortIDOnB, m.ChanIDOnB)}

	case *MsgRecvPacket:
		return Display{"IBC Receive Packet", "Receive " + packetSummary(m.Packet)}
	case *MsgAcknowledgement:
		desc := "Acknowledge " + packetSummary(m.Packet)
		if m.Ack != nil && !m.Ack.Success {
			desc += " (error: " + m.Ack.Error + ")"
		}
		return Display{"IBC Acknowledge Packet", desc}
	case *MsgTimeout:
		return Display{"IBC Timeout Packet", "Timeout " + packetSummary(m.Packet)}
	case *MsgTimeoutOnClose:
		return Display{"IBC Timeout On Close", "Timeout on close " + packetSummary(m.Packet)}
	}
	return Display{Name: "IBC Message"}
}

// DescribeNested projects a registry result the same way Describe does for
// envelope messages.
func DescribeNested(msg NestedMessage) Display {
	switch m := msg.(type) {
	case *ChannelRecvPacket:
		return Display{"IBC Receive Packet", "Receive " + packetSummary(m.Packet)}
	case *ChannelAcknowledgement:
		return Display{"IBC Acknowledge Packet", "Acknowledge " + packetSummary(m.Packet)}
	case *ChannelTimeout:
		return Display{"IBC Timeout Packet", "Timeout " + packetSummary(m.Packet)}
	case *ChannelV2RecvPacket:
		return Display{"IBC v2 Receive Packet", "Receive " + packetV2Summary(m.Packet)}
	case *ChannelV2Acknowledgement:
		return Display{"IBC v2 Acknowledge Packet", "Acknowledge " + packetV2Summary(m.Packet)}
	case *ChannelV2Timeout:
		return Display{"IBC v2 Timeout Packet", "Timeout " + packetV2Summary(m.Packet)}
	case *ClientUpdate:
		return Display{"IBC Update Client", fmt.Sprintf("Update client %s with %s", m.ClientID, anyName(m.ClientMessage))}
	case *ClientCreate:
		return Display{"IBC Create Client", fmt.Sprintf("Create light client from %s", anyName(m.ClientState))}
	case *TendermintHeader:
		return Display{"Tendermint Header", fmt.Sprintf("Header %s at height %s", m.ChainID, m.Height)}
	case *TendermintClientState:
		return Display{"Tendermint Client State", fmt.Sprintf("Client state for %s at %s", m.ChainID, m.LatestHeight)}
	case *TendermintConsensusState:
		return Display{"Tendermint Consensus State", fmt.Sprintf("Consensus state at %s", m.Timestamp.UTC().Format("2006-01-02T15:04:05Z"))}
	case *TendermintMisbehaviour:
		return Display{"Tendermint Misbehaviour", "Conflicting headers " + headerRef(m.Header1) + " and " + headerRef(m.Header2)}
	case *TransferPacketData:
		return Display{"ICS-20 Transfer", fmt.Sprintf("Transfer %s %s from %s to %s", m.Amount, m.Denom, m.Sender, m.Receiver)}
	case *WasmChecksum:
		return Display{"Wasm Checksum", "Code " + hexutil.Encode(m.Checksum[:])}
	case *AckStatus:
		if m.Success {
			return Display{"IBC Acknowledgement", "Success"}
		}
		return Display{"IBC Acknowledgement", "Error: " + m.Error}
	}
	return Display{Name: "IBC Message"}
}

func packetSummary(p Packet) string {
	return fmt.Sprintf("packet #%s from %s/%s to %s/%s", p.Sequence, p.SourcePort, p.SourceChannel, p.DestPort, p.DestChannel)
}

func packetV2Summary(p PacketV2) string {
	return fmt.Sprintf("packet #%s from client %s to %s", p.Sequence, p.SourceClient, p.DestinationClient)
}

func anyName(a ProtobufAny) string {
	if a.Decoded != nil {
		return a.Decoded.TypeTag()
	}
	if a.TypeURL == "" {
		return "unknown message"
	}
	return a.TypeURL
}

func hops(h []string) string {
	if len(h) == 0 {
		return "no connection"
	}
	return strings.Join(h, ",")
}

func headerRef(h *TendermintHeader) string {
	if h == nil {
		return "?"
	}
	return h.ChainID + "@" + h.Height.String()
}
