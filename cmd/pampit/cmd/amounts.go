package cmd

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Gelotto/cw-pampit-vault/x/vault/plays"
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

const (
	FlagQuote    = "quote"
	FlagBase     = "base"
	FlagVL       = "vl"
	FlagExchange = "exchange"
)

// AmountsCmd computes the amounts a migration would commit
func AmountsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "amounts",
		Short:   "Compute the platform fee and pair amounts of a migration",
		Example: "pampit amounts --quote 1000000000 --base 1000000000 --vl 1000000000 --exchange astroport",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			quote, err := uintFlag(cmd, FlagQuote)
			if err != nil {
				return err
			}
			base, err := uintFlag(cmd, FlagBase)
			if err != nil {
				return err
			}
			vl, err := uintFlag(cmd, FlagVL)
			if err != nil {
				return err
			}

			amounts, err := plays.PrepareAmounts(quote, base, vl, cfg.PlatformFeeRate)
			if err != nil {
				return err
			}

			exchange, err := cmd.Flags().GetString(FlagExchange)
			if err != nil {
				return err
			}
			switch exchange {
			case "", plays.ExchangeDojoswap:
			case plays.ExchangeAstroport:
				amounts, err = plays.AdjustForCreationFee(amounts, cfg.AstroportLPCreationFee)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown exchange %q", exchange)
			}

			return printJSON(cmd.OutOrStdout(), amounts)
		},
	}

	cmd.Flags().String(FlagQuote, "", "quote amount raised by the curve")
	cmd.Flags().String(FlagBase, "", "base amount left on the curve")
	cmd.Flags().String(FlagVL, "", "virtual liquidity of the curve")
	cmd.Flags().String(FlagExchange, "", "deduct the exchange's pair creation fee (astroport)")
	for _, f := range []string{FlagQuote, FlagBase, FlagVL} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}

func uintFlag(cmd *cobra.Command, name string) (math.Uint, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return math.Uint{}, err
	}
	n, err := math.ParseUint(raw)
	if err != nil {
		return math.Uint{}, errorsmod.Wrapf(types.ErrValidation, "--%s: %s", name, err)
	}
	if err := types.CheckUint128(n); err != nil {
		return math.Uint{}, errorsmod.Wrapf(err, "--%s", name)
	}
	return n, nil
}
