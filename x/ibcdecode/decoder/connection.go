package decoder

import (
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

//	client_id_on_a string
//	counterparty   ConnectionCounterparty
//	version        option<ConnectionVersion>
//	delay_period   u64
//	signer         string
func (d *Decoder) decodeConnectionOpenInit(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgConnectionOpenInit{
		ClientIDOnA:  field(r, "client_id_on_a", readString),
		Counterparty: field(r, "counterparty", readConnectionCounterparty),
		Version:      field(r, "version", readOptionOf(readConnectionVersion)),
		DelayPeriod:  field(r, "delay_period", readU64),
		Signer:       field(r, "signer", readString),
	})
}

//	client_id_on_b                  string
//	client_state_of_b_on_a          Any
//	counterparty                    ConnectionCounterparty
//	versions_on_a                   vec<ConnectionVersion>
//	proof_conn_end_on_a             bytes
//	proof_client_state_of_b_on_a    bytes
//	proof_consensus_state_of_b_on_a bytes
//	proofs_height_on_a              Height
//	consensus_height_of_b_on_a      Height
//	delay_period                    u64
//	signer                          string
func (d *Decoder) decodeConnectionOpenTry(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgConnectionOpenTry{
		ClientIDOnB:               field(r, "client_id_on_b", readString),
		ClientStateOfBOnA:         field(r, "client_state_of_b_on_a", d.readAny),
		Counterparty:              field(r, "counterparty", readConnectionCounterparty),
		VersionsOnA:               field(r, "versions_on_a", readVecOf(readConnectionVersion)),
		ProofConnEndOnA:           field(r, "proof_conn_end_on_a", d.readProof),
		ProofClientStateOfBOnA:    field(r, "proof_client_state_of_b_on_a", d.readProof),
		ProofConsensusStateOfBOnA: field(r, "proof_consensus_state_of_b_on_a", d.readProof),
		ProofsHeightOnA:           field(r, "proofs_height_on_a", readHeight),
		ConsensusHeightOfBOnA:     field(r, "consensus_height_of_b_on_a", readHeight),
		DelayPeriod:               field(r, "delay_period", readU64),
		Signer:                    field(r, "signer", readString),
	})
}

//	conn_id_on_a                    string
//	conn_id_on_b                    string
//	client_state_of_a_on_b          Any
//	proof_conn_end_on_b             bytes
//	proof_client_state_of_a_on_b    bytes
//	proof_consensus_state_of_a_on_b bytes
//	proofs_height_on_b              Height
//	consensus_height_of_a_on_b      Height
//	version                         ConnectionVersion
//	signer                          string
func (d *Decoder) decodeConnectionOpenAck(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgConnectionOpenAck{
		ConnIDOnA:                 field(r, "conn_id_on_a", readString),
		ConnIDOnB:                 field(r, "conn_id_on_b", readString),
		ClientStateOfAOnB:         field(r, "client_state_of_a_on_b", d.readAny),
		ProofConnEndOnB:           field(r, "proof_conn_end_on_b", d.readProof),
		ProofClientStateOfAOnB:    field(r, "proof_client_state_of_a_on_b", d.readProof),
		ProofConsensusStateOfAOnB: field(r, "proof_consensus_state_of_a_on_b", d.readProof),
		ProofsHeightOnB:           field(r, "proofs_height_on_b", readHeight),
		ConsensusHeightOfAOnB:     field(r, "consensus_height_of_a_on_b", readHeight),
		Version:                   field(r, "version", readConnectionVersion),
		Signer:                    field(r, "signer", readString),
	})
}

//	conn_id_on_b        string
//	proof_conn_end_on_a bytes
//	proof_height_on_a   Height
//	signer              string
func (d *Decoder) decodeConnectionOpenConfirm(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgConnectionOpenConfirm{
		ConnIDOnB:       field(r, "conn_id_on_b", readString),
		ProofConnEndOnA: field(r, "proof_conn_end_on_a", d.readProof),
		ProofHeightOnA:  field(r, "proof_height_on_a", readHeight),
		Signer:          field(r, "signer", readString),
	})
}
