// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KasperOmsK/lazysort/internal/logger"
)

// NewRootCommand returns the sort command. Settings are read from CLI flags, environment variables
// prefixed with LAZYSORT, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("LAZYSORT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	configPaths := []string{"/etc/lazysort", "$HOME/.lazysort", "."}
	for _, path := range configPaths {
		v.AddConfigPath(path)
	}

	cmd := &cobra.Command{
		Use:   "lazysort [flags] [file...]",
		Short: "Print the first records of a sorted input without sorting all of it",
		Long: `Print the first records of a sorted input without sorting all of it.

lazysort reads newline separated records from the given files, or from stdin when
no file or "-" is given, and prints them in sorted order. With --limit only the
requested number of records is put in order, which costs roughly one pass over
the input plus a little work per printed record.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfigFile(v); err != nil {
				return err
			}

			cfg, err := ReadConfig(v)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			log, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
			if err != nil {
				return err
			}
			defer func() {
				_ = log.Sync()
			}()

			return runSort(cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}

	bindSortFlags(cmd, v)

	return cmd
}

func readConfigFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to read config file: %w", err)
}
