package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	sdkmath "cosmossdk.io/math"

	"github.com/cometbft/cometbft/crypto/tmhash"

	"github.com/cosmos/gogoproto/proto"

	transfertypes "github.com/cosmos/ibc-go/v10/modules/apps/transfer/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	channeltypesv2 "github.com/cosmos/ibc-go/v10/modules/core/04-channel/v2/types"
	host "github.com/cosmos/ibc-go/v10/modules/core/24-host"
	ibctm "github.com/cosmos/ibc-go/v10/modules/light-clients/07-tendermint"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// channel v1

func decodeChannelRecvPacket(r *Registry, bz []byte, _ int) (types.NestedMessage, error) {
	var msg channeltypes.MsgRecvPacket
	if err := proto.Unmarshal(bz, &msg); err != nil {
		return nil, err
	}
	return &types.ChannelRecvPacket{
		Packet:          packetFrom(msg.Packet),
		ProofCommitment: r.proofFrom(msg.ProofCommitment),
		ProofHeight:     heightFrom(msg.ProofHeight),
		Signer:          msg.Signer,
	}, nil
}

func decodeChannelAcknowledgement(r *Registry, bz []byte, _ int) (types.NestedMessage, error) {
	var msg channeltypes.MsgAcknowledgement
	if err := proto.Unmarshal(bz, &msg); err != nil {
		return nil, err
	}
	out := &types.ChannelAcknowledgement{
		Packet:          packetFrom(msg.Packet),
		Acknowledgement: msg.Acknowledgement,
		ProofAcked:      r.proofFrom(msg.ProofAcked),
		ProofHeight:     heightFrom(msg.ProofHeight),
		Signer:          msg.Signer,
	}
	out.Ack, _ = types.ParseAcknowledgement(msg.Acknowledgement)
	return out, nil
}

func decodeChannelTimeout(r *Registry, bz []byte, _ int) (types.NestedMessage, error) {
	var msg channeltypes.MsgTimeout
	if err := proto.Unmarshal(bz, &msg); err != nil {
		return nil, err
	}
	return &types.ChannelTimeout{
		Packet:           packetFrom(msg.Packet),
		ProofUnreceived:  r.proofFrom(msg.ProofUnreceived),
		ProofHeight:      heightFrom(msg.ProofHeight),
		NextSequenceRecv: sdkmath.NewUint(msg.NextSequenceRecv),
		Signer:           msg.Signer,
	}, nil
}

func validPacket(p types.Packet) bool {
	return !p.Sequence.IsZero() &&
		host.PortIdentifierValidator(p.SourcePort) == nil &&
		host.ChannelIdentifierValidator(p.SourceChannel) == nil &&
		host.PortIdentifierValidator(p.DestPort) == nil &&
		host.ChannelIdentifierValidator(p.DestChannel) == nil
}

// validProof requires the proof pair every relayed packet message carries.
// A timeout misread as an acknowledgement loses its proof height this way.
func validProof(proof types.Proof, height types.Height) bool {
	return len(proof.Raw) > 0 && !height.IsZero()
}

func validChannelRecvPacket(m types.NestedMessage) bool {
	msg := m.(*types.ChannelRecvPacket)
	return validPacket(msg.Packet) && validProof(msg.ProofCommitment, msg.ProofHeight) && validSigner(msg.Signer)
}

func validChannelAcknowledgement(m types.NestedMessage) bool {
	msg := m.(*types.ChannelAcknowledgement)
	return validPacket(msg.Packet) && len(msg.Acknowledgement) > 0 &&
		validProof(msg.ProofAcked, msg.ProofHeight) && validSigner(msg.Signer)
}

func validChannelTimeout(m types.NestedMessage) bool {
	msg := m.(*types.ChannelTimeout)
	return validPacket(msg.Packet) && !msg.NextSequenceRecv.IsZero() &&
		validProof(msg.ProofUnreceived, msg.ProofHeight) && validSigner(msg.Signer)
}

// channel v2

func decodeChannelV2RecvPacket(r *Registry, bz []byte, _ int) (types.NestedMessage, error) {
	var msg channeltypesv2.MsgRecvPacket
	if err := proto.Unmarshal(bz, &msg); err != nil {
		return nil, err
	}
	return &types.ChannelV2RecvPacket{
		Packet:          packetV2From(msg.Packet),
		ProofCommitment: r.proofFrom(msg.ProofCommitment),
		ProofHeight:     heightFrom(msg.ProofHeight),
		Signer:          msg.Signer,
	}, nil
}

func decodeChannelV2Acknowledgement(r *Registry, bz []byte, _ int) (types.NestedMessage, error) {
	var msg channeltypesv2.MsgAcknowledgement
	if err := proto.Unmarshal(bz, &msg); err != nil {
		return nil, err
	}
	return &types.ChannelV2Acknowledgement{
		Packet:              packetV2From(msg.Packet),
		AppAcknowledgements: msg.Acknowledgement.AppAcknowledgements,
		ProofAcked:          r.proofFrom(msg.ProofAcked),
		ProofHeight:         heightFrom(msg.ProofHeight),
		Signer:              msg.Signer,
	}, nil
}

func decodeChannelV2Timeout(r *Registry, bz []byte, _ int) (types.NestedMessage, error) {
	var msg channeltypesv2.MsgTimeout
	if err := proto.Unmarshal(bz, &msg); err != nil {
		return nil, err
	}
	return &types.ChannelV2Timeout{
		Packet:          packetV2From(msg.Packet),
		ProofUnreceived: r.proofFrom(msg.ProofUnreceived),
		ProofHeight:     heightFrom(msg.ProofHeight),
		Signer:          msg.Signer,
	}, nil
}

func validPacketV2(p types.PacketV2) bool {
	if p.Sequence.IsZero() || len(p.Payloads) == 0 ||
		host.ClientIdentifierValidator(p.SourceClient) != nil ||
		host.ClientIdentifierValidator(p.DestinationClient) != nil {
		return false
	}
	for _, pl := range p.Payloads {
		if host.PortIdentifierValidator(pl.SourcePort) != nil || host.PortIdentifierValidator(pl.DestinationPort) != nil {
			return false
		}
	}
	return true
}

func validChannelV2RecvPacket(m types.NestedMessage) bool {
	msg := m.(*types.ChannelV2RecvPacket)
	return validPacketV2(msg.Packet) && validProof(msg.ProofCommitment, msg.ProofHeight) && validSigner(msg.Signer)
}

func validChannelV2Acknowledgement(m types.NestedMessage) bool {
	msg := m.(*types.ChannelV2Acknowledgement)
	return validPacketV2(msg.Packet) && len(msg.AppAcknowledgements) > 0 &&
		validProof(msg.ProofAcked, msg.ProofHeight) && validSigner(msg.Signer)
}

func validChannelV2Timeout(m types.NestedMessage) bool {
	msg := m.(*types.ChannelV2Timeout)
	return validPacketV2(msg.Packet) && validProof(msg.ProofUnreceived, msg.ProofHeight) && validSigner(msg.Signer)
}

// client

func decodeClientUpdate(r *Registry, bz []byte, depth int) (types.NestedMessage, error) {
	var msg clienttypes.MsgUpdateClient
	if err := proto.Unmarshal(bz, &msg); err != nil {
		return nil, err
	}
	return &types.ClientUpdate{
		ClientID:      msg.ClientId,
		ClientMessage: r.anyFrom(msg.ClientMessage, depth),
		Signer:        msg.Signer,
	}, nil
}

func decodeClientCreate(r *Registry, bz []byte, depth int) (types.NestedMessage, error) {
	var msg clienttypes.MsgCreateClient
	if err := proto.Unmarshal(bz, &msg); err != nil {
		return nil, err
	}
	return &types.ClientCreate{
		ClientState:    r.anyFrom(msg.ClientState, depth),
		ConsensusState: r.anyFrom(msg.ConsensusState, depth),
		Signer:         msg.Signer,
	}, nil
}

// validClientUpdate rejects ids like "/ibc.core..." that appear when an Any
// wrapper is misread as MsgUpdateClient.
func validClientUpdate(m types.NestedMessage) bool {
	msg := m.(*types.ClientUpdate)
	return host.ClientIdentifierValidator(msg.ClientID) == nil &&
		validTypeURL(msg.ClientMessage.TypeURL) && validSigner(msg.Signer)
}

func validClientCreate(m types.NestedMessage) bool {
	msg := m.(*types.ClientCreate)
	return validTypeURL(msg.ClientState.TypeURL) && validTypeURL(msg.ConsensusState.TypeURL) && validSigner(msg.Signer)
}

func validTypeURL(url string) bool {
	return len(url) > 1 && url[0] == '/' && utf8.ValidString(url)
}

// validSigner accepts a non-empty printable address string.
func validSigner(s string) bool {
	return s != "" && utf8.ValidString(s) && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsPrint(r) }) < 0
}

// tendermint light client

func decodeTendermintHeader(_ *Registry, bz []byte, _ int) (types.NestedMessage, error) {
	var msg ibctm.Header
	if err := proto.Unmarshal(bz, &msg); err != nil {
		return nil, err
	}
	return headerFrom(&msg), nil
}

func decodeTendermintClientState(_ *Registry, bz []byte, _ int) (types.NestedMessage, error) {
	var msg ibctm.ClientState
	if err := proto.Unmarshal(bz, &msg); err != nil {
		return nil, err
	}
	return &types.TendermintClientState{
		ChainID:         msg.ChainId,
		TrustLevel:      fmt.Sprintf("%d/%d", msg.TrustLevel.Numerator, msg.TrustLevel.Denominator),
		TrustingPeriod:  msg.TrustingPeriod.String(),
		UnbondingPeriod: msg.UnbondingPeriod.String(),
		MaxClockDrift:   msg.MaxClockDrift.String(),
		FrozenHeight:    heightFrom(msg.FrozenHeight),
		LatestHeight:    heightFrom(msg.LatestHeight),
		ProofSpecs:      len(msg.ProofSpecs),
		UpgradePath:     msg.UpgradePath,
	}, nil
}

func decodeTendermintConsensusState(_ *Registry, bz []byte, _ int) (types.NestedMessage, error) {
	var msg ibctm.ConsensusState
	if err := proto.Unmarshal(bz, &msg); err != nil {
		return nil, err
	}
	return &types.TendermintConsensusState{
		Timestamp:          msg.Timestamp,
		Root:               msg.Root.GetHash(),
		NextValidatorsHash: []byte(msg.NextValidatorsHash),
	}, nil
}

func decodeTendermintMisbehaviour(_ *Registry, bz []byte, _ int) (types.NestedMessage, error) {
	var msg ibctm.Misbehaviour
	if err := proto.Unmarshal(bz, &msg); err != nil {
		return nil, err
	}
	return &types.TendermintMisbehaviour{
		Header1: headerFrom(msg.Header1),
		Header2: headerFrom(msg.Header2),
	}, nil
}

func plausibleHeader(h *types.TendermintHeader) bool {
	return h != nil && h.ChainID != "" && utf8.ValidString(h.ChainID) && !h.Height.IsZero()
}

func validTendermintHeader(m types.NestedMessage) bool {
	return plausibleHeader(m.(*types.TendermintHeader))
}

func validTendermintClientState(m types.NestedMessage) bool {
	msg := m.(*types.TendermintClientState)
	return msg.ChainID != "" && utf8.ValidString(msg.ChainID) && !msg.LatestHeight.RevisionHeight.IsZero()
}

func validTendermintConsensusState(m types.NestedMessage) bool {
	msg := m.(*types.TendermintConsensusState)
	return msg.Timestamp.Unix() > 0 && len(msg.Root) > 0 && len(msg.NextValidatorsHash) == tmhash.Size
}

func validTendermintMisbehaviour(m types.NestedMessage) bool {
	msg := m.(*types.TendermintMisbehaviour)
	return plausibleHeader(msg.Header1) && plausibleHeader(msg.Header2)
}

// transfer

// decodeTransferPacketData accepts both the ICS-20 JSON packet encoding and
// the protobuf encoding of FungibleTokenPacketData.
func decodeTransferPacketData(_ *Registry, bz []byte, _ int) (types.NestedMessage, error) {
	var data transfertypes.FungibleTokenPacketData
	if trimmed := bytes.TrimSpace(bz); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &data); err != nil {
			return nil, err
		}
	} else if err := proto.Unmarshal(bz, &data); err != nil {
		return nil, err
	}
	return &types.TransferPacketData{
		Denom:    data.Denom,
		Amount:   data.Amount,
		Sender:   data.Sender,
		Receiver: data.Receiver,
		Memo:     data.Memo,
	}, nil
}

func validTransferPacketData(m types.NestedMessage) bool {
	msg := m.(*types.TransferPacketData)
	for _, s := range []string{msg.Denom, msg.Amount, msg.Sender, msg.Receiver} {
		if s == "" || !utf8.ValidString(s) {
			return false
		}
	}
	return true
}
