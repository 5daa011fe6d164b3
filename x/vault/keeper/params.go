package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

// HasParams reports whether params have been stored
func (k Keeper) HasParams(ctx context.Context) bool {
	return k.getStore(ctx).Has(ParamsKey)
}

// GetParams returns the current parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	bz := k.getStore(ctx).Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}
	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, errorsmod.Wrap(err, "corrupt params")
	}
	return params, nil
}

// SetParams validates and stores params
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz, err := json.Marshal(params)
	if err != nil {
		return errorsmod.Wrap(err, "failed to marshal params")
	}
	k.getStore(ctx).Set(ParamsKey, bz)
	return nil
}

// UpdateParams replaces the params on behalf of the vault manager
func (k Keeper) UpdateParams(ctx context.Context, msg types.MsgUpdateParams) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if err := validateManager(cfg.Manager, msg.Sender); err != nil {
		return err
	}
	if err := k.SetParams(ctx, msg.Params); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyManager, msg.Sender),
		),
	)
	k.Logger(ctx).Info("vault params updated", "params", msg.Params.String())
	return nil
}

// validateManager checks that sender is the vault manager
func validateManager(expected, actual string) error {
	if expected != actual {
		return types.ErrUnauthorized.Wrapf(
			"invalid manager; expected %s, got %s",
			expected,
			actual,
		)
	}
	return nil
}
