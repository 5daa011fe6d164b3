package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

// Keeper of the vault store
type Keeper struct {
	storeKey        storetypes.StoreKey
	querier         types.WasmQuerier
	contractAddress string
	plays           map[string]types.Play
	playsByKind     map[string]types.Play
	metrics         *VaultMetrics
}

// NewKeeper creates a new vault Keeper. contractAddress is the vault's own
// address; plays are the exchange integrations the vault can dispatch to.
func NewKeeper(
	key storetypes.StoreKey,
	querier types.WasmQuerier,
	contractAddress string,
	plays ...types.Play,
) *Keeper {
	k := &Keeper{
		storeKey:        key,
		querier:         querier,
		contractAddress: contractAddress,
		plays:           make(map[string]types.Play, len(plays)),
		playsByKind:     make(map[string]types.Play, len(plays)),
		metrics:         NewVaultMetrics(),
	}
	for _, p := range plays {
		if _, dup := k.plays[p.Name()]; dup {
			panic(fmt.Sprintf("play %s registered twice", p.Name()))
		}
		if _, dup := k.playsByKind[p.ContinuationKind()]; dup {
			panic(fmt.Sprintf("continuation kind %s registered twice", p.ContinuationKind()))
		}
		k.plays[p.Name()] = p
		k.playsByKind[p.ContinuationKind()] = p
	}
	return k
}

// getStore returns the KVStore for the vault module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// ContractAddress returns the vault's own address
func (k Keeper) ContractAddress() string {
	return k.contractAddress
}

// QuerySmart runs a JSON smart query against another contract
func (k Keeper) QuerySmart(ctx context.Context, contractAddr string, req, resp any) error {
	reqBz, err := json.Marshal(req)
	if err != nil {
		return errorsmod.Wrap(err, "failed to marshal smart query")
	}
	respBz, err := k.querier.QuerySmart(ctx, contractAddr, reqBz)
	if err != nil {
		return errorsmod.Wrapf(err, "smart query to %s failed", contractAddr)
	}
	if err := json.Unmarshal(respBz, resp); err != nil {
		return errorsmod.Wrapf(err, "failed to unmarshal smart query response from %s", contractAddr)
	}
	return nil
}

var _ types.PlayHost = Keeper{}
