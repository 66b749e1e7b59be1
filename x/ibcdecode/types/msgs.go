package types

// DecodedMessage is the closed set of messages an envelope can carry.
type DecodedMessage interface {
	// Kind is the snake_case variant name, e.g. "update_client".
	Kind() string
	// Route returns the envelope discriminant pair of the variant.
	Route() (Category, uint8)

	isDecodedMessage()
}

const (
	KindCreateClient          = "create_client"
	KindUpdateClient          = "update_client"
	KindUpgradeClient         = "upgrade_client"
	KindSubmitMisbehaviour    = "submit_misbehaviour"
	KindRecoverClient         = "recover_client"
	KindConnectionOpenInit    = "connection_open_init"
	KindConnectionOpenTry     = "connection_open_try"
	KindConnectionOpenAck     = "connection_open_ack"
	KindConnectionOpenConfirm = "connection_open_confirm"
	KindChannelOpenInit       = "channel_open_init"
	KindChannelOpenTry        = "channel_open_try"
	KindChannelOpenAck        = "channel_open_ack"
	KindChannelOpenConfirm    = "channel_open_confirm"
	KindChannelCloseInit      = "channel_close_init"
	KindChannelCloseConfirm   = "channel_close_confirm"
	KindRecv                  = "recv"
	KindAck                   = "ack"
	KindTimeout               = "timeout"
	KindTimeoutOnClose        = "timeout_on_close"
)
