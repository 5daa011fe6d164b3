package types

// Event types for the vault module
const (
	EventTypeMigrationStarted = "vault_migration_started"
	EventTypePairCreated      = "vault_pair_created"
	EventTypeParamsUpdated    = "vault_params_updated"

	AttributeKeyPlay         = "play"
	AttributeKeyExchange     = "exchange"
	AttributeKeyReplyID      = "reply_id"
	AttributeKeyPairAddress  = "pair_addr"
	AttributeKeyManager      = "manager"
	AttributeKeyFeeRecipient = "fee_recipient"
	AttributeKeyAction       = "action"
)
