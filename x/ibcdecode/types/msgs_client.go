package types

var (
	_ DecodedMessage = (*MsgCreateClient)(nil)
	_ DecodedMessage = (*MsgUpdateClient)(nil)
	_ DecodedMessage = (*MsgSubmitMisbehaviour)(nil)
	_ DecodedMessage = (*MsgUpgradeClient)(nil)
	_ DecodedMessage = (*MsgRecoverClient)(nil)
)

type MsgCreateClient struct {
	ClientState    ProtobufAny `json:"client_state"`
	ConsensusState ProtobufAny `json:"consensus_state"`
	Signer         string      `json:"signer"`
}

type MsgUpdateClient struct {
	ClientID      string      `json:"client_id"`
	ClientMessage ProtobufAny `json:"client_message"`
	Signer        string      `json:"signer"`
}

type MsgSubmitMisbehaviour struct {
	ClientID     string      `json:"client_id"`
	Misbehaviour ProtobufAny `json:"misbehaviour"`
	Signer       string      `json:"signer"`
}

type MsgUpgradeClient struct {
	ClientID                   string      `json:"client_id"`
	UpgradedClientState        ProtobufAny `json:"upgraded_client_state"`
	UpgradedConsensusState     ProtobufAny `json:"upgraded_consensus_state"`
	ProofUpgradeClient         Proof       `json:"proof_upgrade_client"`
	ProofUpgradeConsensusState Proof       `json:"proof_upgrade_consensus_state"`
	Signer                     string      `json:"signer"`
}

type MsgRecoverClient struct {
	SubjectClientID    string `json:"subject_client_id"`
	SubstituteClientID string `json:"substitute_client_id"`
	Signer             string `json:"signer"`
}

func (*MsgCreateClient) Kind() string       { return KindCreateClient }
func (*MsgUpdateClient) Kind() string       { return KindUpdateClient }
func (*MsgSubmitMisbehaviour) Kind() string { return KindSubmitMisbehaviour }
func (*MsgUpgradeClient) Kind() string      { return KindUpgradeClient }
func (*MsgRecoverClient) Kind() string      { return KindRecoverClient }

func (*MsgCreateClient) Route() (Category, uint8)       { return CategoryClient, VariantClientCreate }
func (*MsgUpdateClient) Route() (Category, uint8)       { return CategoryClient, VariantClientUpdate }
func (*MsgSubmitMisbehaviour) Route() (Category, uint8) { return CategoryClient, VariantClientMisbehaviour }
func (*MsgUpgradeClient) Route() (Category, uint8)      { return CategoryClient, VariantClientUpgrade }
func (*MsgRecoverClient) Route() (Category, uint8)      { return CategoryClient, VariantClientRecover }

func (*MsgCreateClient) isDecodedMessage()       {}
func (*MsgUpdateClient) isDecodedMessage()       {}
func (*MsgSubmitMisbehaviour) isDecodedMessage() {}
func (*MsgUpgradeClient) isDecodedMessage()      {}
func (*MsgRecoverClient) isDecodedMessage()      {}
