package cli

import (
	"fmt"

	"github.com/eazysvn/eazysvn/internal/layout"
	"github.com/eazysvn/eazysvn/internal/svn"
	"github.com/spf13/cobra"
)

// branchForDiff resolves the branch URL a diff-style command operates on:
// the named branch when given, the current branch otherwise.
func branchForDiff(client *svn.Client, args []string) (string, error) {
	path := "."
	if len(args) > 1 {
		path = args[1]
	}
	current, err := client.WorkingCopyURL(path)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return current, nil
	}
	return layout.BranchURL(current, args[0])
}

func NewBranchDiffCmd() *cobra.Command {
	var listBranches bool

	cmd := &cobra.Command{
		Use:   "branchdiff [branch [wc-path]]",
		Short: "Show combined diff of all changes on a branch",
		Long:  "Show the combined diff of all changes made on a branch since it was created.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(cmd, false)

			if listBranches {
				return printBranches(cmd, client, ".", false)
			}

			branch, err := branchForDiff(client, args)
			if err != nil {
				return err
			}
			oldest, newest, err := client.BranchPoints(branch)
			if err != nil {
				return err
			}
			return client.Execute("diff", "-r", fmt.Sprintf("%d:%d", oldest, newest), branch)
		},
	}

	cmd.Flags().BoolVarP(&listBranches, "list", "l", false, "list existing branches")

	return cmd
}

func NewBranchPointCmd() *cobra.Command {
	var listBranches bool

	cmd := &cobra.Command{
		Use:   "branchpoint [branch [wc-path]]",
		Short: "Show the revision number when a branch was created",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(cmd, false)

			if listBranches {
				return printBranches(cmd, client, ".", false)
			}

			branch, err := branchForDiff(client, args)
			if err != nil {
				return err
			}
			oldest, _, err := client.BranchPoints(branch)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), oldest)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&listBranches, "list", "l", false, "list existing branches")

	return cmd
}
