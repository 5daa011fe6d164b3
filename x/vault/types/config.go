package types

import (
	"time"

	"cosmossdk.io/math"
)

// MigrationConfig is written once when the vault is created
type MigrationConfig struct {
	Manager                 string      `json:"manager"`
	CreatedBy               string      `json:"created_by"`
	CreatedAt               time.Time   `json:"created_at"`
	Play                    string      `json:"play"`
	FeeRecipient            string      `json:"fee_recipient"`
	InitialBase             TokenAmount `json:"initial_base_token_amount"`
	InitialQuote            TokenAmount `json:"initial_quote_token_amount"`
	InitialVirtualLiquidity math.Uint   `json:"initial_virtual_liquidity"`
}

// NewMigrationConfig captures the creation request
func NewMigrationConfig(sender string, createdAt time.Time, msg MsgInstantiate) MigrationConfig {
	return MigrationConfig{
		Manager:                 msg.Manager,
		CreatedBy:               sender,
		CreatedAt:               createdAt,
		Play:                    msg.Play,
		FeeRecipient:            msg.FeeRecipient,
		InitialBase:             msg.Base,
		InitialQuote:            msg.Quote,
		InitialVirtualLiquidity: msg.VirtualLiquidity,
	}
}

// MigrationStatus tracks how far the migration got
type MigrationStatus uint8

const (
	StatusUnspecified MigrationStatus = iota
	StatusCreated
	StatusPairCreationPending
	StatusPairCreated
	StatusLiquidityProvisionPending
	StatusComplete
	// StatusFailed labels aborted requests. It is never committed because the
	// host rolls the whole request back.
	StatusFailed
)

var statusNames = map[MigrationStatus]string{
	StatusUnspecified:               "unspecified",
	StatusCreated:                   "created",
	StatusPairCreationPending:       "pair_creation_pending",
	StatusPairCreated:               "pair_created",
	StatusLiquidityProvisionPending: "liquidity_provision_pending",
	StatusComplete:                  "complete",
	StatusFailed:                    "failed",
}

func (s MigrationStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

var statusTransitions = map[MigrationStatus][]MigrationStatus{
	StatusUnspecified:               {StatusCreated},
	StatusCreated:                   {StatusPairCreationPending},
	StatusPairCreationPending:       {StatusPairCreated},
	StatusPairCreated:               {StatusLiquidityProvisionPending, StatusComplete},
	StatusLiquidityProvisionPending: {StatusComplete},
}

// CanTransition reports whether next may follow s
func (s MigrationStatus) CanTransition(next MigrationStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
