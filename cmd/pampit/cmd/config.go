package cmd

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/Gelotto/cw-pampit-vault/x/vault/plays"
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

// Config keys, as written in a config file. Environment variables use the
// upper-cased key with dots replaced by underscores, e.g. PAMPIT_ASTROPORT_FACTORY.
const (
	KeyPlatformFeeRate        = "platform_fee_rate"
	KeyAstroportFactory       = "astroport.factory"
	KeyAstroportLPCreationFee = "astroport.lp_creation_fee"
	KeyDojoswapFactory        = "dojoswap.factory"
	KeyContractAddress        = "contract_address"
)

// Config is the effective CLI configuration
type Config struct {
	PlatformFeeRate        uint64    `json:"platform_fee_rate"`
	AstroportFactory       string    `json:"astroport_factory"`
	AstroportLPCreationFee math.Uint `json:"astroport_lp_creation_fee"`
	DojoswapFactory        string    `json:"dojoswap_factory"`
	ContractAddress        string    `json:"contract_address"`
}

func loadConfig(v *viper.Viper) (Config, error) {
	feeRate, err := cast.ToUint64E(v.Get(KeyPlatformFeeRate))
	if err != nil {
		return Config{}, errorsmod.Wrapf(types.ErrInvalidParams, "%s: %s", KeyPlatformFeeRate, err)
	}
	rawFee, err := cast.ToStringE(v.Get(KeyAstroportLPCreationFee))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyAstroportLPCreationFee, err)
	}
	lpFee, err := math.ParseUint(rawFee)
	if err != nil {
		return Config{}, errorsmod.Wrapf(types.ErrValidation, "%s: %s", KeyAstroportLPCreationFee, err)
	}

	cfg := Config{
		PlatformFeeRate:        feeRate,
		AstroportFactory:       v.GetString(KeyAstroportFactory),
		AstroportLPCreationFee: lpFee,
		DojoswapFactory:        v.GetString(KeyDojoswapFactory),
		ContractAddress:        v.GetString(KeyContractAddress),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every configured value
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if err := types.CheckUint128(c.AstroportLPCreationFee); err != nil {
		return errorsmod.Wrap(err, KeyAstroportLPCreationFee)
	}
	for key, addr := range map[string]string{
		KeyAstroportFactory: c.AstroportFactory,
		KeyDojoswapFactory:  c.DojoswapFactory,
		KeyContractAddress:  c.ContractAddress,
	} {
		if err := types.ValidateAddress(addr); err != nil {
			return errorsmod.Wrap(err, key)
		}
	}
	return nil
}

// Params returns the vault params the config selects
func (c Config) Params() types.Params {
	return types.NewParams(c.PlatformFeeRate)
}

// Plays returns the plays wired to the configured factories
func (c Config) Plays() []types.Play {
	return []types.Play{
		plays.NewAstroport(c.AstroportFactory, c.AstroportLPCreationFee),
		plays.NewDojoswap(c.DojoswapFactory),
	}
}

func defaultContractAddress() string {
	addr, err := sdk.Bech32ifyAddressBytes("inj", address.Module(types.ModuleName))
	if err != nil {
		panic(err)
	}
	return addr
}
