// Package cmd contains the CLI command for the cosmic oracle.
package cmd

import (
	"fmt"

	"github.com/f3rmion/cosmic-oracle/internal/catalog"
	"github.com/f3rmion/cosmic-oracle/internal/names"
	"github.com/f3rmion/cosmic-oracle/internal/oracle"
	"github.com/f3rmion/cosmic-oracle/internal/present"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "COSMIC_ORACLE"

// loadCatalog is replaced in tests.
var loadCatalog = catalog.Load

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "cosmic-oracle",
		Short: "Draw a mystical name from the stars",
		Long: `A Cosmic Oracle that provides mystical names from stars and constellations.

Names are drawn uniformly at random from the bundled star and
constellation lists. Use --raw to print only the name, for piping:

  cosmic-oracle
  cosmic-oracle --raw | pbcopy

Raw output can also be selected with COSMIC_ORACLE_RAW=true (accepts
1, t, true and their false counterparts). The flag takes precedence.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOracle(cmd, v)
		},
	}

	rootCmd.Flags().BoolP("raw", "r", false, "Raw output - only the name")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.BindPFlag("raw", rootCmd.Flags().Lookup("raw"))

	return rootCmd
}

func runOracle(cmd *cobra.Command, v *viper.Viper) error {
	mode := present.Decorated
	if v.GetBool("raw") {
		mode = present.Raw
	}

	cat, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	p := present.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	return oracle.Run(cat, p, names.NewSource(), cmd.ErrOrStderr())
}
