package types

import (
	channeltypes "github.com/cosmos/ibc-go/v10/modules/core/04-channel/types"
)

var (
	_ DecodedMessage = (*MsgChannelOpenInit)(nil)
	_ DecodedMessage = (*MsgChannelOpenTry)(nil)
	_ DecodedMessage = (*MsgChannelOpenAck)(nil)
	_ DecodedMessage = (*MsgChannelOpenConfirm)(nil)
	_ DecodedMessage = (*MsgChannelCloseInit)(nil)
	_ DecodedMessage = (*MsgChannelCloseConfirm)(nil)
)

type MsgChannelOpenInit struct {
	PortIDOnA         string             `json:"port_id_on_a"`
	ConnectionHopsOnA []string           `json:"connection_hops_on_a"`
	PortIDOnB         string             `json:"port_id_on_b"`
	Ordering          channeltypes.Order `json:"ordering"`
	Signer            string             `json:"signer"`
	VersionProposal   string             `json:"version_proposal"`
}

type MsgChannelOpenTry struct {
	PortIDOnB           string             `json:"port_id_on_b"`
	ConnectionHopsOnB   []string           `json:"connection_hops_on_b"`
	PortIDOnA           string             `json:"port_id_on_a"`
	ChanIDOnA           string             `json:"chan_id_on_a"`
	VersionSupportedOnA string             `json:"version_supported_on_a"`
	ProofChanEndOnA     Proof              `json:"proof_chan_end_on_a"`
	ProofHeightOnA      Height             `json:"proof_height_on_a"`
	Ordering            channeltypes.Order `json:"ordering"`
	Signer              string             `json:"signer"`
	VersionProposal     string             `json:"version_proposal"`
}

type MsgChannelOpenAck struct {
	PortIDOnA       string `json:"port_id_on_a"`
	ChanIDOnA       string `json:"chan_id_on_a"`
	ChanIDOnB       string `json:"chan_id_on_b"`
	VersionOnB      string `json:"version_on_b"`
	ProofChanEndOnB Proof  `json:"proof_chan_end_on_b"`
	ProofHeightOnB  Height `json:"proof_height_on_b"`
	Signer          string `json:"signer"`
}

type MsgChannelOpenConfirm struct {
	PortIDOnB       string `json:"port_id_on_b"`
	ChanIDOnB       string `json:"chan_id_on_b"`
	ProofChanEndOnA Proof  `json:"proof_chan_end_on_a"`
	ProofHeightOnA  Height `json:"proof_height_on_a"`
	Signer          string `json:"signer"`
}

type MsgChannelCloseInit struct {
	PortIDOnA string `json:"port_id_on_a"`
	ChanIDOnA string `json:"chan_id_on_a"`
	Signer    string `json:"signer"`
}

type MsgChannelCloseConfirm struct {
	PortIDOnB       string `json:"port_id_on_b"`
	ChanIDOnB       string `json:"chan_id_on_b"`
	ProofChanEndOnA Proof  `json:"proof_chan_end_on_a"`
	ProofHeightOnA  Height `json:"proof_height_on_a"`
	Signer          string `json:"signer"`
}

func (*MsgChannelOpenInit) Kind() string     { return KindChannelOpenInit }
func (*MsgChannelOpenTry) Kind() string      { return KindChannelOpenTry }
func (*MsgChannelOpenAck) Kind() string      { return KindChannelOpenAck }
func (*MsgChannelOpenConfirm) Kind() string  { return KindChannelOpenConfirm }
func (*MsgChannelCloseInit) Kind() string    { return KindChannelCloseInit }
func (*MsgChannelCloseConfirm) Kind() string { return KindChannelCloseConfirm }

func (*MsgChannelOpenInit) Route() (Category, uint8)     { return CategoryChannel, VariantChannelOpenInit }
func (*MsgChannelOpenTry) Route() (Category, uint8)      { return CategoryChannel, VariantChannelOpenTry }
func (*MsgChannelOpenAck) Route() (Category, uint8)      { return CategoryChannel, VariantChannelOpenAck }
func (*MsgChannelOpenConfirm) Route() (Category, uint8)  { return CategoryChannel, VariantChannelOpenConfirm }
func (*MsgChannelCloseInit) Route() (Category, uint8)    { return CategoryChannel, VariantChannelCloseInit }
func (*MsgChannelCloseConfirm) Route() (Category, uint8) { return CategoryChannel, VariantChannelCloseConfirm }

func (*MsgChannelOpenInit) isDecodedMessage()     {}
func (*MsgChannelOpenTry) isDecodedMessage()      {}
func (*MsgChannelOpenAck) isDecodedMessage()      {}
func (*MsgChannelOpenConfirm) isDecodedMessage()  {}
func (*MsgChannelCloseInit) isDecodedMessage()    {}
func (*MsgChannelCloseConfirm) isDecodedMessage() {}
