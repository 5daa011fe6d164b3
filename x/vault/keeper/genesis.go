package keeper

import (
	"context"
	"fmt"

	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

// InitGenesis initializes the vault state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid vault genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	if genState.Config != nil {
		if err := k.SetConfig(ctx, *genState.Config); err != nil {
			return fmt.Errorf("failed to set config: %w", err)
		}
	}
	k.setStatus(ctx, genState.Status)
	k.SetReplyIDCounter(ctx, genState.ReplyIDCounter)

	for _, p := range genState.Pending {
		if err := k.RegisterContinuation(ctx, p.ReplyID, p.Continuation); err != nil {
			return fmt.Errorf("failed to restore continuation %d: %w", p.ReplyID, err)
		}
	}

	// Pair addresses are restored directly so the status is not advanced twice.
	store := k.getStore(ctx)
	for _, pa := range genState.PairAddresses {
		store.Set(PairAddressKey(pa.Exchange), []byte(pa.Address))
	}

	return nil
}

// ExportGenesis returns the vault's exported genesis
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	pending, err := k.GetPendingContinuations(ctx)
	if err != nil {
		return nil, err
	}

	genesis := &types.GenesisState{
		Params:         params,
		Status:         k.GetStatus(ctx),
		ReplyIDCounter: k.GetReplyIDCounter(ctx),
		Pending:        pending,
		PairAddresses:  k.GetAllPairAddresses(ctx),
	}

	if k.HasConfig(ctx) {
		cfg, err := k.GetConfig(ctx)
		if err != nil {
			return nil, err
		}
		genesis.Config = &cfg
	}

	return genesis, nil
}
