package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Berison/gocounter/completer"
	"github.com/Berison/gocounter/config"
	"github.com/Berison/gocounter/errs"
	"github.com/Berison/gocounter/executor"
	"github.com/Berison/gocounter/logger"
	"github.com/Berison/gocounter/registry"
	"github.com/Berison/gocounter/repl"
	"github.com/Berison/gocounter/types"
	"github.com/Berison/gocounter/version"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		configPath  string
		debug       bool
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:           "gocounter",
		Short:         "gocounter: interactive console for closure-backed counters",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				version.PrintVersion(out)
				return nil
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				errs.HandleError(err)
				return err
			}
			if debug {
				cfg.Debug = true
			}

			cleanup, err := logger.Setup(logger.Config{Dir: cfg.LogDir, Debug: cfg.Debug})
			if err != nil {
				// ログが書けなくてもREPLは使えるので続行する
				errs.HandleError(err)
			}
			onExit := func() {
				if cleanup != nil {
					_ = cleanup()
				}
			}
			defer onExit()

			if cfg.CheckLatest {
				checkLatest(cmd.Context(), out)
			}

			declRegistry := registry.NewRegistry()
			executor := executor.NewExecutor(declRegistry, logger.L())
			for _, name := range cfg.Counters {
				if err := executor.DeclareCounter(types.DeclName(name)); err != nil {
					errs.HandleError(err)
					return err
				}
			}

			completer := completer.NewCompleter(declRegistry)
			repl.NewRepl(completer, executor, cfg, onExit).Run()
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to the YAML config file")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVarP(&showVersion, "version", "v", false, "print the version and exit")
	return cmd
}

func checkLatest(ctx context.Context, out io.Writer) {
	isLatest, latestVersion, err := version.NewChecker().IsLatestVersion(ctx)
	if err != nil {
		logger.L().Warn("version.check_failed", "error", err)
		return
	}
	if !isLatest {
		version.PrintNoteLatestVersion(out, latestVersion)
	}
}
