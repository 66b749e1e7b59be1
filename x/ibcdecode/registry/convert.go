package registry

import (
	sdkmath "cosmossdk.io/math"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"

	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
	channeltypesv2 "github.com/cosmos/ibc-go/v10/modules/core/04-channel/v2/types"
	ibctm "github.com/cosmos/ibc-go/v10/modules/light-clients/07-tendermint"

	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// Projections from the ibc-go generated types to the explorer's own model.

func heightFrom(h clienttypes.Height) types.Height {
	return types.NewHeight(h.RevisionNumber, h.RevisionHeight)
}

// packetFrom maps a v1 packet. A zero timeout height or timestamp means the
// packet never times out on that axis.
func packetFrom(p channeltypes.Packet) types.Packet {
	out := types.Packet{
		Sequence:         sdkmath.NewUint(p.Sequence),
		SourcePort:       p.SourcePort,
		SourceChannel:    p.SourceChannel,
		DestPort:         p.DestinationPort,
		DestChannel:      p.DestinationChannel,
		Data:             p.Data,
		TimeoutHeight:    types.NeverTimeoutHeight(),
		TimeoutTimestamp: types.NeverTimeoutTimestamp(),
	}
	if !p.TimeoutHeight.IsZero() {
		out.TimeoutHeight = types.TimeoutAtHeight(heightFrom(p.TimeoutHeight))
	}
	if p.TimeoutTimestamp != 0 {
		out.TimeoutTimestamp = types.TimeoutAtTimestamp(sdkmath.NewUint(p.TimeoutTimestamp))
	}
	return out
}

func packetV2From(p channeltypesv2.Packet) types.PacketV2 {
	out := types.PacketV2{
		Sequence:          sdkmath.NewUint(p.Sequence),
		SourceClient:      p.SourceClient,
		DestinationClient: p.DestinationClient,
		TimeoutTimestamp:  sdkmath.NewUint(p.TimeoutTimestamp),
		Payloads:          make([]types.PayloadV2, 0, len(p.Payloads)),
	}
	for _, pl := range p.Payloads {
		out.Payloads = append(out.Payloads, types.PayloadV2{
			SourcePort:      pl.SourcePort,
			DestinationPort: pl.DestinationPort,
			Version:         pl.Version,
			Encoding:        pl.Encoding,
			Value:           pl.Value,
		})
	}
	return out
}

// anyFrom keeps the raw value and decodes it one level deeper.
func (r *Registry) anyFrom(a *codectypes.Any, depth int) types.ProtobufAny {
	if a == nil {
		return types.ProtobufAny{}
	}
	return types.ProtobufAny{
		TypeURL:  a.TypeUrl,
		RawValue: a.Value,
		Decoded:  r.DecodeAny(a.TypeUrl, a.Value, depth+1),
	}
}

func (r *Registry) proofFrom(bz []byte) types.Proof {
	return types.Proof{Raw: bz, Summary: r.SummarizeProof(bz)}
}

func headerFrom(h *ibctm.Header) *types.TendermintHeader {
	if h == nil {
		return nil
	}
	out := &types.TendermintHeader{
		Height:            sdkmath.ZeroUint(),
		TrustedHeight:     heightFrom(h.TrustedHeight),
		Validators:        validatorCount(h.ValidatorSet),
		TrustedValidators: validatorCount(h.TrustedValidators),
	}
	if h.SignedHeader == nil {
		return out
	}
	if hdr := h.SignedHeader.Header; hdr != nil {
		out.ChainID = hdr.ChainID
		if hdr.Height > 0 {
			out.Height = sdkmath.NewUint(uint64(hdr.Height))
		}
		out.Time = hdr.Time
		out.AppHash = cmtbytes.HexBytes(hdr.AppHash)
		out.ValidatorsHash = cmtbytes.HexBytes(hdr.ValidatorsHash)
		out.ProposerAddress = cmtbytes.HexBytes(hdr.ProposerAddress)
	}
	if commit := h.SignedHeader.Commit; commit != nil {
		out.Signatures = len(commit.Signatures)
	}
	return out
}

func validatorCount(set *cmtproto.ValidatorSet) int {
	if set == nil {
		return 0
	}
	return len(set.Validators)
}
