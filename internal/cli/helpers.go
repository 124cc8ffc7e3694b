package cli

import (
	"context"
	"fmt"

	"github.com/eazysvn/eazysvn/internal/config"
	"github.com/eazysvn/eazysvn/internal/layout"
	"github.com/eazysvn/eazysvn/internal/svn"
	"github.com/spf13/cobra"
)

type runnerKey struct{}

// WithRunner returns a context that makes commands drive svn through r.
// Tests use it to substitute canned svn output.
func WithRunner(ctx context.Context, r svn.Runner) context.Context {
	return context.WithValue(ctx, runnerKey{}, r)
}

// newClient builds an svn client from the config carried in the command
// context. Nothing is cached between invocations.
func newClient(cmd *cobra.Command, dryRun bool) *svn.Client {
	ctx := cmd.Context()
	opts := []svn.Option{
		svn.WithDryRun(dryRun),
		svn.WithOutput(cmd.OutOrStdout()),
	}
	if r, ok := ctx.Value(runnerKey{}).(svn.Runner); ok {
		opts = append(opts, svn.WithRunner(r))
	}
	return svn.New(config.FromContext(ctx), opts...)
}

// printBranches lists the branch (or tag) names of the repository the
// working copy at path belongs to, one per line.
func printBranches(cmd *cobra.Command, client *svn.Client, path string, tags bool) error {
	url, err := client.WorkingCopyURL(path)
	if err != nil {
		return err
	}
	var listURL string
	if tags {
		listURL, err = layout.TagListURL(url)
	} else {
		listURL, err = layout.BranchListURL(url)
	}
	if err != nil {
		return err
	}
	names, err := client.ListDirs(listURL)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func errTooFewArguments(cmd *cobra.Command) error {
	return fmt.Errorf("too few arguments, try %s --help", cmd.CommandPath())
}
