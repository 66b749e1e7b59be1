package decoder

import (
	"github.com/TrustedSmartChain/tscscan/x/ibcdecode/types"
)

//	client_state    Any
//	consensus_state Any
//	signer          string
func (d *Decoder) decodeCreateClient(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgCreateClient{
		ClientState:    field(r, "client_state", d.readAny),
		ConsensusState: field(r, "consensus_state", d.readAny),
		Signer:         field(r, "signer", readString),
	})
}

//	client_id      string
//	client_message Any
//	signer         string
func (d *Decoder) decodeUpdateClient(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgUpdateClient{
		ClientID:      field(r, "client_id", readString),
		ClientMessage: field(r, "client_message", d.readAny),
		Signer:        field(r, "signer", readString),
	})
}

//	client_id    string
//	misbehaviour Any
//	signer       string
func (d *Decoder) decodeSubmitMisbehaviour(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgSubmitMisbehaviour{
		ClientID:     field(r, "client_id", readString),
		Misbehaviour: field(r, "misbehaviour", d.readAny),
		Signer:       field(r, "signer", readString),
	})
}

//	client_id                     string
//	upgraded_client_state         Any
//	upgraded_consensus_state      Any
//	proof_upgrade_client          bytes
//	proof_upgrade_consensus_state bytes
//	signer                        string
func (d *Decoder) decodeUpgradeClient(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgUpgradeClient{
		ClientID:                   field(r, "client_id", readString),
		UpgradedClientState:        field(r, "upgraded_client_state", d.readAny),
		UpgradedConsensusState:     field(r, "upgraded_consensus_state", d.readAny),
		ProofUpgradeClient:         field(r, "proof_upgrade_client", d.readProof),
		ProofUpgradeConsensusState: field(r, "proof_upgrade_consensus_state", d.readProof),
		Signer:                     field(r, "signer", readString),
	})
}

//	subject_client_id    string
//	substitute_client_id string
//	signer               string
func (d *Decoder) decodeRecoverClient(bz []byte, off int) (types.DecodedMessage, int, error) {
	r := newFieldReader(bz, off)
	return r.result(&types.MsgRecoverClient{
		SubjectClientID:    field(r, "subject_client_id", readString),
		SubstituteClientID: field(r, "substitute_client_id", readString),
		Signer:             field(r, "signer", readString),
	})
}
