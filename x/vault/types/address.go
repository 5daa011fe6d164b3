package types

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// ValidateAddress accepts any well-formed bech32 account or contract address,
// independent of the chain prefix the SDK config is set to.
func ValidateAddress(addr string) error {
	if addr == "" {
		return ErrValidation.Wrap("empty address")
	}
	if _, _, err := bech32.DecodeAndConvert(addr); err != nil {
		return errorsmod.Wrapf(ErrValidation, "invalid address %q: %s", addr, err)
	}
	return nil
}

// ValidateDenom checks a native denom against the SDK denom rules
func ValidateDenom(denom string) error {
	if err := sdk.ValidateDenom(denom); err != nil {
		return errorsmod.Wrapf(ErrValidation, "invalid denom %q: %s", denom, err)
	}
	return nil
}
