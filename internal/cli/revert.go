package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eazysvn/eazysvn/internal/revision"
	"github.com/spf13/cobra"
)

func NewRevertCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "revert rev [wc-path]",
		Aliases: []string{"ezrevert"},
		Short:   "Revert checkins",
		Long: `Undo one or more checkins in the working copy by merging the
revision range backwards. The result still has to be committed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(cmd, dryRun)

			revToken := args[0]
			if revToken == "ALL" {
				return errors.New("refusing to revert all checkins in a branch")
			}
			path := "."
			if len(args) > 1 {
				path = args[1]
			}

			rng, err := revision.Parse(revToken)
			if err != nil {
				return err
			}

			what := "revision " + revToken
			if strings.ContainsAny(revToken, "-:") {
				what = "revisions " + revToken
			}

			mergeArgs := []string{"merge", "-r", rng.ReverseArg(), path}
			fmt.Fprintf(cmd.OutOrStdout(), "Revert %s with\n\n  %s\n\n", what, client.CommandLine(mergeArgs...))
			if err := client.Show("log", "-r", rng.LogArg(), path); err != nil {
				return err
			}
			return client.Run(mergeArgs...)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "do not touch any files on disk or in subversion")

	return cmd
}
