package cli

import (
	"fmt"

	"autocomplete-srv/config"
	"autocomplete-srv/internal/autocomplete"
	"autocomplete-srv/internal/autocomplete/parser"
	"autocomplete-srv/internal/autocomplete/usecase"
	"autocomplete-srv/internal/autocomplete/view"
	"autocomplete-srv/pkg/log"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool

	// set by PersistentPreRunE
	cfg    *config.Config
	logger log.Logger
	uc     autocomplete.UseCase
}

// NewRootCommand creates the root command for the autocomplete CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "autocomplete",
		Short: "Autocomplete query builder",
		Long: `Build autocomplete search queries from clean requests.

The query layout is built once from the configuration; every request is
mapped onto its own variable context and rendered against it.`,
		SilenceErrors: true, // main prints the error once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: ./config/autocomplete-config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	// Add subcommands
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

// setup loads the configuration and builds the use case. A layout the views
// reject stops the command before any input is read.
func (o *RootOptions) setup() error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logCfg := log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	}
	if o.Verbose {
		logCfg.Level = "debug"
	}
	logger := log.Init(logCfg)

	ucCfg := usecase.DefaultConfig()
	ucCfg.CustomBoosts = view.BoostConfig(cfg.API.CustomBoosts)
	ucCfg.ExcludeAddressLength = cfg.API.Autocomplete.ExcludeAddressLength

	uc, err := usecase.New(logger, parser.New(logger), ucCfg)
	if err != nil {
		return fmt.Errorf("build layout: %w", err)
	}

	o.cfg = cfg
	o.logger = logger
	o.uc = uc
	return nil
}
