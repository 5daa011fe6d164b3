package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Gelotto/cw-pampit-vault/x/vault/integrations/astroport"
	"github.com/Gelotto/cw-pampit-vault/x/vault/integrations/dojoswap"
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

// EnvPrefix prefixes every environment variable the CLI reads
const EnvPrefix = "PAMPIT"

const (
	FlagConfig                 = "config"
	FlagFeeRate                = "fee-rate"
	FlagAstroportFactory       = "astroport-factory"
	FlagAstroportLPCreationFee = "astroport-lp-creation-fee"
	FlagDojoswapFactory        = "dojoswap-factory"
	FlagContractAddress        = "contract-address"
	FlagLogJSON                = "log-json"
)

// flagKeys maps persistent flags to their config keys
var flagKeys = map[string]string{
	FlagFeeRate:                KeyPlatformFeeRate,
	FlagAstroportFactory:       KeyAstroportFactory,
	FlagAstroportLPCreationFee: KeyAstroportLPCreationFee,
	FlagDojoswapFactory:        KeyDojoswapFactory,
	FlagContractAddress:        KeyContractAddress,
}

// NewRootCmd creates the pampit root command. Settings are resolved from
// flags, then PAMPIT_ environment variables, then the --config file.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "pampit",
		Short: "Bonding curve migration vault tooling",
		Long: `pampit computes the amounts a vault migration commits and dry-runs
migrations against an in-memory store.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString(FlagConfig)
			if err != nil {
				return err
			}
			return readConfigFile(v, path)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String(FlagConfig, "", "config file (yaml, json or toml)")
	pf.Uint64(FlagFeeRate, types.DefaultPlatformFeeRate, "platform fee rate in parts per million")
	pf.String(FlagAstroportFactory, astroport.DefaultFactoryAddress, "Astroport factory address")
	pf.String(FlagAstroportLPCreationFee, astroport.DefaultLPTokenCreationFee.String(), "Astroport LP token creation fee, in the quote denom")
	pf.String(FlagDojoswapFactory, dojoswap.DefaultFactoryAddress, "Dojoswap factory address")
	pf.String(FlagContractAddress, defaultContractAddress(), "address the simulated vault runs as")
	pf.Bool(FlagLogJSON, false, "write logs as JSON")
	bindFlags(v, pf)

	rootCmd.AddCommand(
		AmountsCmd(v),
		SimulateCmd(v),
		ParamsCmd(v),
	)

	return rootCmd
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

func newLogger(cmd *cobra.Command) log.Logger {
	opts := []log.Option{log.ColorOption(false)}
	if jsonLogs, _ := cmd.Flags().GetBool(FlagLogJSON); jsonLogs {
		opts = append(opts, log.OutputJSONOption())
	}
	return log.NewLogger(cmd.ErrOrStderr(), opts...)
}

func printJSON(w io.Writer, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(bz))
	return err
}
