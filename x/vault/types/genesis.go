package types

import (
	errorsmod "cosmossdk.io/errors"
)

// PairAddress records the pair a migration created on an exchange
type PairAddress struct {
	Exchange string `json:"exchange"`
	Address  string `json:"address"`
}

// GenesisState is the exported vault state
type GenesisState struct {
	Params         Params                `json:"params"`
	Config         *MigrationConfig      `json:"config,omitempty"`
	Status         MigrationStatus       `json:"status"`
	ReplyIDCounter uint64                `json:"reply_id_counter"`
	Pending        []PendingContinuation `json:"pending"`
	PairAddresses  []PairAddress         `json:"pair_addresses"`
}

// DefaultGenesis returns an uninitialized vault
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		Pending:       []PendingContinuation{},
		PairAddresses: []PairAddress{},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenIDs := make(map[uint64]bool, len(gs.Pending))
	for _, p := range gs.Pending {
		if p.ReplyID == 0 || p.ReplyID > gs.ReplyIDCounter {
			return errorsmod.Wrapf(ErrValidation, "pending reply id %d outside issued range 1..%d", p.ReplyID, gs.ReplyIDCounter)
		}
		if seenIDs[p.ReplyID] {
			return errorsmod.Wrapf(ErrDuplicateCorrelationID, "reply id %d", p.ReplyID)
		}
		if p.Continuation.Kind == "" {
			return errorsmod.Wrapf(ErrValidation, "pending reply id %d has no kind", p.ReplyID)
		}
		seenIDs[p.ReplyID] = true
	}

	seenExchanges := make(map[string]bool, len(gs.PairAddresses))
	for _, pa := range gs.PairAddresses {
		if pa.Exchange == "" {
			return ErrValidation.Wrap("pair address without exchange")
		}
		if seenExchanges[pa.Exchange] {
			return ErrValidation.Wrapf("duplicate pair address for exchange %s", pa.Exchange)
		}
		if err := ValidateAddress(pa.Address); err != nil {
			return errorsmod.Wrapf(err, "pair address for %s", pa.Exchange)
		}
		seenExchanges[pa.Exchange] = true
	}

	if gs.Config == nil && (gs.ReplyIDCounter > 0 || len(gs.PairAddresses) > 0) {
		return ErrValidation.Wrap("vault state present without config")
	}
	return nil
}
