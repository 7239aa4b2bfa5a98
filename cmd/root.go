package cmd

import (
	"fmt"

	"github.com/bnema/lora-bbs/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Execute() error {
	return newRootCmd().Execute()
}

// rootState is filled by the root command before any subcommand runs.
type rootState struct {
	v   *viper.Viper
	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	state := &rootState{v: viper.New(), log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "bbs",
		Short:         "LoRa BBS gateway: a text bulletin board over a LoRa serial link",
		Long:          "bbs serves a single-session bulletin board system over a LoRa radio's serial link: web lookups, a local LLM, public and private chat, bulletin boards, trivia, a calendar and exchange rates.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(state.v)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log, err := newLogger(cfg.Log.Verbose)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}

			state.cfg = cfg
			state.log = log
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = state.log.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.Bool("verbose", false, "Enable debug logging")
	flags.String("storage-backend", "", "Storage backend: toml, sqlite or badger")
	flags.String("storage-dir", "", "Directory holding the message documents")
	flags.String("llm-url", "", "Base URL of the OpenAI-compatible LLM server")
	bindFlags(state.v, flags, map[string]string{
		config.KeyLogVerbose:     "verbose",
		config.KeyStorageBackend: "storage-backend",
		config.KeyStorageDir:     "storage-dir",
		config.KeyLLMBaseURL:     "llm-url",
	})

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(state),
		newInspectCmd(state),
		newModelsCmd(state),
	)

	return rootCmd
}

// bindFlags maps config keys to flag names.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
