package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/eazysvn/eazysvn/internal/cli"
	"github.com/eazysvn/eazysvn/internal/config"
	"github.com/eazysvn/eazysvn/internal/svn"
	"github.com/spf13/cobra"
)

const version = "2.0.0"

// aliases map the historic binary names to sub-commands, so symlinking
// eazysvn to ezmerge keeps working.
var aliases = map[string]string{
	"ezswitch": "switch",
	"ezmerge":  "merge",
	"ezrevert": "revert",
	"ezbranch": "branchurl",
}

var (
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eazysvn",
		Short: "Make simple Subversion branch operations easier",
		Long: `Eazysvn makes simple Subversion revision merges and branch
switching much easier. It infers branch URLs from the working copy's
URL using the conventional trunk/branches/tags layout and hands the
real work to the svn client.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.GetDefaultConfigPath()
			}
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			config.LoadFromEnv(cfg)

			level := slog.LevelInfo
			if verbose || cfg.LogLevel == "debug" {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			cmd.SetContext(config.NewContext(cmd.Context(), cfg))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		cli.NewSwitchCmd(),
		cli.NewMergeCmd(),
		cli.NewRevertCmd(),
		cli.NewTagCmd(),
		cli.NewBranchURLCmd(),
		cli.NewRmBranchCmd(),
		cli.NewMvBranchCmd(),
		cli.NewBranchDiffCmd(),
		cli.NewBranchPointCmd(),
		cli.NewBranchesCmd(),
	)

	args := os.Args[1:]
	if sub, ok := aliases[invokedAs()]; ok {
		args = append([]string{sub}, args...)
	}
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		var toolErr *svn.ToolError
		if errors.As(err, &toolErr) {
			// svn already wrote its own diagnostics to stderr.
			os.Exit(toolErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func invokedAs() string {
	return strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
}
