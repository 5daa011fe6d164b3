package keeper

import (
	"context"

	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

// ConfigResponse is the answer to a config query
type ConfigResponse struct {
	Config types.MigrationConfig `json:"config"`
	Params types.Params          `json:"params"`
	Status string                `json:"status"`
}

// QueryConfig returns the migration config, current params and status
func (k Keeper) QueryConfig(ctx context.Context) (*ConfigResponse, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return &ConfigResponse{
		Config: cfg,
		Params: params,
		Status: k.GetStatus(ctx).String(),
	}, nil
}

// QueryPairAddress returns the pair created on exchange
func (k Keeper) QueryPairAddress(ctx context.Context, exchange string) (string, error) {
	addr, ok := k.GetPairAddress(ctx, exchange)
	if !ok {
		return "", types.ErrNotInitialized.Wrapf("no pair recorded for %s", exchange)
	}
	return addr, nil
}

// QueryPending returns continuations still waiting for a reply
func (k Keeper) QueryPending(ctx context.Context) ([]types.PendingContinuation, error) {
	return k.GetPendingContinuations(ctx)
}
