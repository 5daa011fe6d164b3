package keeper

import (
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/Gelotto/cw-pampit-vault/x/vault/keeper"
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

// GenesisTime is the block time of contexts built by VaultKeeper
var GenesisTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// VaultKeeper creates a test keeper for the vault module backed by an
// in-memory store and the given querier and plays.
func VaultKeeper(t testing.TB, querier types.WasmQuerier, plays ...types.Play) (*keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := keeper.NewKeeper(storeKey, querier, TestAddr("inj", "vault_contract"), plays...)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime, Height: 1}, false, log.NewNopLogger())

	return k, ctx
}

// TestAddr returns a deterministic bech32 address with prefix hrp
func TestAddr(hrp, seed string) string {
	bz := make([]byte, 20)
	copy(bz, seed)
	addr, err := sdk.Bech32ifyAddressBytes(hrp, bz)
	if err != nil {
		panic(fmt.Sprintf("bech32 %s/%s: %v", hrp, seed, err))
	}
	return addr
}
