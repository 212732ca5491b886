// Package cmd contains all CLI commands for sumpus.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sumpus.exe.dev/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sumpus",
	Short: "Check the rhyme scheme of Thai klon paet poems",
	Long: `sumpus checks the end rhymes (sumpus) of klon paet, the Thai eight-verse
stanza. Verses are separated by whitespace; every eight verses form a stanza.

For each broken rhyme pair it names the verse and syllable at fault and suggests
up to five rhyming words.

Run 'sumpus serve' for the web checker or 'sumpus check' for a file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		setUpLogging(cfg)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("dsn", "", "sqlite path or postgres:// URL")
	rootCmd.PersistentFlags().String("lexicon", "", "extra lexicon TSV")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("dsn", rootCmd.PersistentFlags().Lookup("dsn"))
	viper.BindPFlag("lexicon", rootCmd.PersistentFlags().Lookup("lexicon"))
}

// initConfig reads ENV variables.
func initConfig() {
	viper.SetEnvPrefix("SUMPUS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the config file, or the defaults, and applies flag and
// SUMPUS_* environment overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	overrideString(&cfg.Addr, "addr")
	overrideString(&cfg.DSN, "dsn")
	overrideString(&cfg.Hostname, "hostname")
	overrideString(&cfg.Lexicon, "lexicon")
	overrideString(&cfg.LogLevel, "log_level")
	if viper.IsSet("workers") {
		cfg.Workers = viper.GetInt("workers")
	}
	if viper.IsSet("check_timeout") {
		cfg.CheckTimeout = viper.GetDuration("check_timeout")
	}
	if viper.GetBool("verbose") {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	current = cfg
	return cfg, nil
}

func overrideString(dst *string, key string) {
	if v := viper.GetString(key); v != "" {
		*dst = v
	}
}

// current is the configuration resolved for the running command.
var current *config.Config

// getConfig returns the resolved configuration.
func getConfig() *config.Config {
	if current == nil {
		return config.Default()
	}
	return current
}

// setUpLogging installs a text handler on stderr at the configured level.
func setUpLogging(cfg *config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", cfg.LogLevel)
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
