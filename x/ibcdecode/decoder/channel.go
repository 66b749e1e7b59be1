package decoder

import (
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

//	port_id_on_a         string
//	connection_hops_on_a vec<string>
//	port_id_on_b         string
//	ordering             u8
//	signer               string
//	version_proposal     string
func (d *Decoder) decodeChannelOpenInit(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgChannelOpenInit{
		PortIDOnA:         field(r, "port_id_on_a", readString),
		ConnectionHopsOnA: field(r, "connection_hops_on_a", readVecOf(readString)),
		PortIDOnB:         field(r, "port_id_on_b", readString),
		Ordering:          field(r, "ordering", readOrder),
		Signer:            field(r, "signer", readString),
		VersionProposal:   field(r, "version_proposal", readString),
	})
}

//	port_id_on_b           string
//	connection_hops_on_b   vec<string>
//	port_id_on_a           string
//	chan_id_on_a           string
//	version_supported_on_a string
//	proof_chan_end_on_a    bytes
//	proof_height_on_a      Height
//	ordering               u8
//	signer                 string
//	version_proposal       string
func (d *Decoder) decodeChannelOpenTry(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgChannelOpenTry{
		PortIDOnB:           field(r, "port_id_on_b", readString),
		ConnectionHopsOnB:   field(r, "connection_hops_on_b", readVecOf(readString)),
		PortIDOnA:           field(r, "port_id_on_a", readString),
		ChanIDOnA:           field(r, "chan_id_on_a", readString),
		VersionSupportedOnA: field(r, "version_supported_on_a", readString),
		ProofChanEndOnA:     field(r, "proof_chan_end_on_a", d.readProof),
		ProofHeightOnA:      field(r, "proof_height_on_a", readHeight),
		Ordering:            field(r, "ordering", readOrder),
		Signer:              field(r, "signer", readString),
		VersionProposal:     field(r, "version_proposal", readString),
	})
}

//	port_id_on_a        string
//	chan_id_on_a        string
//	chan_id_on_b        string
//	version_on_b        string
//	proof_chan_end_on_b bytes
//	proof_height_on_b   Height
//	signer              string
func (d *Decoder) decodeChannelOpenAck(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgChannelOpenAck{
		PortIDOnA:       field(r, "port_id_on_a", readString),
		ChanIDOnA:       field(r, "chan_id_on_a", readString),
		ChanIDOnB:       field(r, "chan_id_on_b", readString),
		VersionOnB:      field(r, "version_on_b", readString),
		ProofChanEndOnB: field(r, "proof_chan_end_on_b", d.readProof),
		ProofHeightOnB:  field(r, "proof_height_on_b", readHeight),
		Signer:          field(r, "signer", readString),
	})
}

//	port_id_on_b        string
//	chan_id_on_b        string
//	proof_chan_end_on_a bytes
//	proof_height_on_a   Height
//	signer              string
func (d *Decoder) decodeChannelOpenConfirm(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgChannelOpenConfirm{
		PortIDOnB:       field(r, "port_id_on_b", readString),
		ChanIDOnB:       field(r, "chan_id_on_b", readString),
		ProofChanEndOnA: field(r, "proof_chan_end_on_a", d.readProof),
		ProofHeightOnA:  field(r, "proof_height_on_a", readHeight),
		Signer:          field(r, "signer", readString),
	})
}

//	port_id_on_a string
//	chan_id_on_a string
//	signer       string
func (d *Decoder) decodeChannelCloseInit(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgChannelCloseInit{
		PortIDOnA: field(r, "port_id_on_a", readString),
		ChanIDOnA: field(r, "chan_id_on_a", readString),
		Signer:    field(r, "signer", readString),
	})
}

//	port_id_on_b        string
//	chan_id_on_b        string
//	proof_chan_end_on_a bytes
//	proof_height_on_a   Height
//	signer              string
func (d *Decoder) decodeChannelCloseConfirm(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgChannelCloseConfirm{
		PortIDOnB:       field(r, "port_id_on_b", readString),
		ChanIDOnB:       field(r, "chan_id_on_b", readString),
		ProofChanEndOnA: field(r, "proof_chan_end_on_a", d.readProof),
		ProofHeightOnA:  field(r, "proof_height_on_a", readHeight),
		Signer:          field(r, "signer", readString),
	})
}
