// Package plays implements the exchange integrations a vault migrates into.
// Each play builds its exchange's create-pair call, registers the state it
// needs to finish, and turns the correlated reply into the liquidity step.
package plays

import (
	"sort"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"

	"github.com/Gelotto/cw-pampit-vault/x/vault/integrations/astroport"
	"github.com/Gelotto/cw-pampit-vault/x/vault/integrations/dojoswap"
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

// DefaultPlays returns every play with its default factory configuration
func DefaultPlays() []types.Play {
	return []types.Play{
		NewAstroport(astroport.DefaultFactoryAddress, astroport.DefaultLPTokenCreationFee),
		NewDojoswap(dojoswap.DefaultFactoryAddress),
	}
}

// replyError turns a failed or empty sub-message result into an error
func replyError(exchange string, result wasmvmtypes.SubMsgResult) error {
	if result.Err != "" {
		return errorsmod.Wrapf(types.ErrExchangeReply, "%s: %s", exchange, result.Err)
	}
	if result.Ok == nil {
		return errorsmod.Wrapf(types.ErrExchangeReply, "%s: empty reply", exchange)
	}
	return nil
}

// feeTransfer pays the platform fee, or returns nothing when the fee is zero
func feeTransfer(quote types.Token, recipient string, fee math.Uint) ([]wasmvmtypes.SubMsg, error) {
	if fee.IsZero() {
		return nil, nil
	}
	msg, err := quote.Transfer(recipient, fee)
	if err != nil {
		return nil, errorsmod.Wrap(err, "platform fee transfer")
	}
	return []wasmvmtypes.SubMsg{msg}, nil
}

// sortCoins orders funds by denom as the bank module requires
func sortCoins(coins wasmvmtypes.Coins) wasmvmtypes.Coins {
	sorted := append(wasmvmtypes.Coins{}, coins...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Denom < sorted[j].Denom })
	return sorted
}
