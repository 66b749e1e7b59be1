package types

import (
	sdkmath "cosmossdk.io/math"
)

var (
	_ DecodedMessage = (*MsgConnectionOpenInit)(nil)
	_ DecodedMessage = (*MsgConnectionOpenTry)(nil)
	_ DecodedMessage = (*MsgConnectionOpenAck)(nil)
	_ DecodedMessage = (*MsgConnectionOpenConfirm)(nil)
)

// ConnectionVersion is a connection version identifier and its feature set.
type ConnectionVersion struct {
	Identifier string   `json:"identifier"`
	Features   []string `json:"features"`
}

// ConnectionCounterparty is the counterparty end of a connection. ConnectionID
// is empty when the counterparty has not yet been assigned one.
type ConnectionCounterparty struct {
	ClientID         string  `json:"client_id"`
	ConnectionID     *string `json:"connection_id,omitempty"`
	CommitmentPrefix []byte  `json:"commitment_prefix"`
}

type MsgConnectionOpenInit struct {
	ClientIDOnA  string                 `json:"client_id_on_a"`
	Counterparty ConnectionCounterparty `json:"counterparty"`
	Version      *ConnectionVersion     `json:"version,omitempty"`
	DelayPeriod  sdkmath.Uint           `json:"delay_period"`
	Signer       string                 `json:"signer"`
}

type MsgConnectionOpenTry struct {
	ClientIDOnB               string                 `json:"client_id_on_b"`
	ClientStateOfBOnA         ProtobufAny            `json:"client_state_of_b_on_a"`
	Counterparty              ConnectionCounterparty `json:"counterparty"`
	VersionsOnA               []ConnectionVersion    `json:"versions_on_a"`
	ProofConnEndOnA           Proof                  `json:"proof_conn_end_on_a"`
	ProofClientStateOfBOnA    Proof                  `json:"proof_client_state_of_b_on_a"`
	ProofConsensusStateOfBOnA Proof                  `json:"proof_consensus_state_of_b_on_a"`
	ProofsHeightOnA           Height                 `json:"proofs_height_on_a"`
	ConsensusHeightOfBOnA     Height                 `json:"consensus_height_of_b_on_a"`
	DelayPeriod               sdkmath.Uint           `json:"delay_period"`
	Signer                    string                 `json:"signer"`
}

type MsgConnectionOpenAck struct {
	ConnIDOnA                 string            `json:"conn_id_on_a"`
	ConnIDOnB                 string            `json:"conn_id_on_b"`
	ClientStateOfAOnB         ProtobufAny       `json:"client_state_of_a_on_b"`
	ProofConnEndOnB           Proof             `json:"proof_conn_end_on_b"`
	ProofClientStateOfAOnB    Proof             `json:"proof_client_state_of_a_on_b"`
	ProofConsensusStateOfAOnB Proof             `json:"proof_consensus_state_of_a_on_b"`
	ProofsHeightOnB           Height            `json:"proofs_height_on_b"`
	ConsensusHeightOfAOnB     Height            `json:"consensus_height_of_a_on_b"`
	Version                   ConnectionVersion `json:"version"`
	Signer                    string            `json:"signer"`
}

type MsgConnectionOpenConfirm struct {
	ConnIDOnB       string `json:"conn_id_on_b"`
	ProofConnEndOnA Proof  `json:"proof_conn_end_on_a"`
	ProofHeightOnA  Height `json:"proof_height_on_a"`
	Signer          string `json:"signer"`
}

func (*MsgConnectionOpenInit) Kind() string    { return KindConnectionOpenInit }
func (*MsgConnectionOpenTry) Kind() string     { return KindConnectionOpenTry }
func (*MsgConnectionOpenAck) Kind() string     { return KindConnectionOpenAck }
func (*MsgConnectionOpenConfirm) Kind() string { return KindConnectionOpenConfirm }

func (*MsgConnectionOpenInit) Route() (Category, uint8) {
	return CategoryConnection, VariantConnectionOpenInit
}

func (*MsgConnectionOpenTry) Route() (Category, uint8) {
	return CategoryConnection, VariantConnectionOpenTry
}

func (*MsgConnectionOpenAck) Route() (Category, uint8) {
	return CategoryConnection, VariantConnectionOpenAck
}

func (*MsgConnectionOpenConfirm) Route() (Category, uint8) {
	return CategoryConnection, VariantConnectionOpenConfirm
}

func (*MsgConnectionOpenInit) isDecodedMessage()    {}
func (*MsgConnectionOpenTry) isDecodedMessage()     {}
func (*MsgConnectionOpenAck) isDecodedMessage()     {}
func (*MsgConnectionOpenConfirm) isDecodedMessage() {}
