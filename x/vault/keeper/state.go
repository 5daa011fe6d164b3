package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

// HasConfig reports whether the vault has been created
func (k Keeper) HasConfig(ctx context.Context) bool {
	return k.getStore(ctx).Has(ConfigKey)
}

// GetConfig returns the migration config written at creation
func (k Keeper) GetConfig(ctx context.Context) (types.MigrationConfig, error) {
	bz := k.getStore(ctx).Get(ConfigKey)
	if bz == nil {
		return types.MigrationConfig{}, types.ErrNotInitialized
	}
	var cfg types.MigrationConfig
	if err := json.Unmarshal(bz, &cfg); err != nil {
		return types.MigrationConfig{}, errorsmod.Wrap(err, "corrupt migration config")
	}
	return cfg, nil
}

// SetConfig stores the migration config. It can only be written once.
func (k Keeper) SetConfig(ctx context.Context, cfg types.MigrationConfig) error {
	store := k.getStore(ctx)
	if store.Has(ConfigKey) {
		return types.ErrAlreadyInitialized
	}
	bz, err := json.Marshal(cfg)
	if err != nil {
		return errorsmod.Wrap(err, "failed to marshal migration config")
	}
	store.Set(ConfigKey, bz)
	return nil
}

// GetStatus returns the current migration status
func (k Keeper) GetStatus(ctx context.Context) types.MigrationStatus {
	bz := k.getStore(ctx).Get(StatusKey)
	if len(bz) != 1 {
		return types.StatusUnspecified
	}
	return types.MigrationStatus(bz[0])
}

// setStatus stores status without checking the transition
func (k Keeper) setStatus(ctx context.Context, status types.MigrationStatus) {
	k.getStore(ctx).Set(StatusKey, []byte{byte(status)})
}

// advanceStatus moves the migration to next, rejecting out-of-order steps
func (k Keeper) advanceStatus(ctx context.Context, next types.MigrationStatus) error {
	current := k.GetStatus(ctx)
	if !current.CanTransition(next) {
		return errorsmod.Wrapf(types.ErrInvalidStatusTransition, "%s -> %s", current, next)
	}
	k.setStatus(ctx, next)
	k.Logger(ctx).Debug("migration status changed", "from", current.String(), "to", next.String())
	return nil
}

// GetPairAddress returns the pair created on exchange, if any
func (k Keeper) GetPairAddress(ctx context.Context, exchange string) (string, bool) {
	bz := k.getStore(ctx).Get(PairAddressKey(exchange))
	if bz == nil {
		return "", false
	}
	return string(bz), true
}

// SetPairAddress records the pair created on exchange. The address is
// immutable once set.
func (k Keeper) SetPairAddress(ctx context.Context, exchange, addr string) error {
	if err := types.ValidateAddress(addr); err != nil {
		return errorsmod.Wrapf(err, "%s pair address", exchange)
	}
	store := k.getStore(ctx)
	key := PairAddressKey(exchange)
	if store.Has(key) {
		return errorsmod.Wrapf(types.ErrPairAddressAlreadySet, "exchange %s", exchange)
	}
	store.Set(key, []byte(addr))

	if k.GetStatus(ctx) == types.StatusPairCreationPending {
		if err := k.advanceStatus(ctx, types.StatusPairCreated); err != nil {
			return err
		}
	}
	return nil
}

// GetAllPairAddresses returns every recorded pair address
func (k Keeper) GetAllPairAddresses(ctx context.Context) []types.PairAddress {
	store := prefix.NewStore(k.getStore(ctx), PairAddressKeyPrefix)
	iterator := storetypes.KVStorePrefixIterator(store, nil)
	defer iterator.Close()

	pairs := []types.PairAddress{}
	for ; iterator.Valid(); iterator.Next() {
		pairs = append(pairs, types.PairAddress{
			Exchange: string(iterator.Key()),
			Address:  string(iterator.Value()),
		})
	}
	return pairs
}
