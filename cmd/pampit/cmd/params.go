package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ParamsCmd prints the effective params and factory configuration
func ParamsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective vault params and exchange configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), cfg)
		},
	}
}
