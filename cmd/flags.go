package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// mustBindPFlag attempts to bind a specific key to a pflag (as used by cobra) and panics
// if the binding fails with a non-nil error.
func mustBindPFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

func mustBindEnv(v *viper.Viper, input ...string) {
	if err := v.BindEnv(input...); err != nil {
		panic("failed to bind env key: " + err.Error())
	}
}

// bindSortFlags binds the cobra cmd flags to the equivalent config value being managed
// by viper. This bridges the config between cobra flags and viper flags.
func bindSortFlags(command *cobra.Command, v *viper.Viper) {
	defaultConfig := DefaultConfig()
	flags := command.Flags()

	flags.IntP("limit", "n", defaultConfig.Limit, "print at most this many records, 0 prints all of them")
	mustBindPFlag(v, "limit", flags.Lookup("limit"))
	mustBindEnv(v, "limit", "LAZYSORT_LIMIT")

	flags.BoolP("reverse", "r", defaultConfig.Reverse, "sort in descending order")
	mustBindPFlag(v, "reverse", flags.Lookup("reverse"))
	mustBindEnv(v, "reverse", "LAZYSORT_REVERSE")

	flags.Bool("numeric", defaultConfig.Numeric, "compare keys as numbers")
	mustBindPFlag(v, "numeric", flags.Lookup("numeric"))
	mustBindEnv(v, "numeric", "LAZYSORT_NUMERIC")

	flags.Bool("nan-first", defaultConfig.NaNFirst, "with --numeric, place records without a numeric key first instead of last")
	mustBindPFlag(v, "nanFirst", flags.Lookup("nan-first"))
	mustBindEnv(v, "nanFirst", "LAZYSORT_NAN_FIRST", "LAZYSORT_NANFIRST")

	flags.IntP("field", "k", defaultConfig.Field, "1-based whitespace separated field used as key, 0 uses the whole line")
	mustBindPFlag(v, "field", flags.Lookup("field"))
	mustBindEnv(v, "field", "LAZYSORT_FIELD")

	flags.String("json-key", defaultConfig.JSONKey, "treat input as JSON lines and sort by the value at this path (overrides --field)")
	mustBindPFlag(v, "jsonKey", flags.Lookup("json-key"))
	mustBindEnv(v, "jsonKey", "LAZYSORT_JSON_KEY", "LAZYSORT_JSONKEY")

	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in, 'text' or 'json'")
	mustBindPFlag(v, "log.format", flags.Lookup("log-format"))
	mustBindEnv(v, "log.format", "LAZYSORT_LOG_FORMAT")

	flags.String("log-level", defaultConfig.Log.Level, "the log level to use, 'none' disables logging")
	mustBindPFlag(v, "log.level", flags.Lookup("log-level"))
	mustBindEnv(v, "log.level", "LAZYSORT_LOG_LEVEL")
}
