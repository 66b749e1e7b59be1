package decoder

import (
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

// Packet carrying variants start with a full Packet and continue after it.

//	packet                Packet
//	proof_commitment_on_a bytes
//	proof_height_on_a     Height
//	signer                string
func (d *Decoder) decodeRecvPacket(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgRecvPacket{
		Packet:             field(r, "packet", readPacket),
		ProofCommitmentOnA: field(r, "proof_commitment_on_a", d.readProof),
		ProofHeightOnA:     field(r, "proof_height_on_a", readHeight),
		Signer:             field(r, "signer", readString),
	})
}

//	packet            Packet
//	acknowledgement   bytes
//	proof_acked_on_b  bytes
//	proof_height_on_b Height
//	signer            string
func (d *Decoder) decodeAcknowledgement(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	msg := &types.MsgAcknowledgement{
		Packet:          field(r, "packet", readPacket),
		Acknowledgement: field(r, "acknowledgement", readBytes),
		ProofAckedOnB:   field(r, "proof_acked_on_b", d.readProof),
		ProofHeightOnB:  field(r, "proof_height_on_b", readHeight),
		Signer:          field(r, "signer", readString),
	}
	if r.err == nil {
		// application acks are not required to be JSON; leave Ack unset
		// when they are not
		msg.Ack, _ = types.ParseAcknowledgement(msg.Acknowledgement)
	}
	return r.result(msg)
}

//	packet                Packet
//	next_seq_recv_on_b    u64
//	proof_unreceived_on_b bytes
//	proof_height_on_b     Height
//	signer                string
func (d *Decoder) decodeTimeout(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgTimeout{
		Packet:             field(r, "packet", readPacket),
		NextSeqRecvOnB:     field(r, "next_seq_recv_on_b", readU64),
		ProofUnreceivedOnB: field(r, "proof_unreceived_on_b", d.readProof),
		ProofHeightOnB:     field(r, "proof_height_on_b", readHeight),
		Signer:             field(r, "signer", readString),
	})
}

//	packet                Packet
//	next_seq_recv_on_b    u64
//	proof_unreceived_on_b bytes
//	proof_close_on_b      bytes
//	proof_height_on_b     Height
//	signer                string
func (d *Decoder) decodeTimeoutOnClose(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgTimeoutOnClose{
		Packet:             field(r, "packet", readPacket),
		NextSeqRecvOnB:     field(r, "next_seq_recv_on_b", readU64),
		ProofUnreceivedOnB: field(r, "proof_unreceived_on_b", d.readProof),
		ProofCloseOnB:      field(r, "proof_close_on_b", d.readProof),
		ProofHeightOnB:     field(r, "proof_height_on_b", readHeight),
		Signer:             field(r, "signer", readString),
	})
}
