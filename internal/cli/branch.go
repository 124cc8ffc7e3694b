package cli

import (
	"fmt"

	"github.com/eazysvn/eazysvn/internal/layout"
	"github.com/spf13/cobra"
)

func NewBranchURLCmd() *cobra.Command {
	var (
		listBranches bool
		tag          bool
	)

	cmd := &cobra.Command{
		Use:     "branchurl [branch] [wc-path]",
		Aliases: []string{"ezbranch"},
		Short:   "Print the full URL of a branch",
		Long: `Print the URL of a named branch of the repository the working
copy belongs to. When run without arguments, prints the URL of the
current branch.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(cmd, false)

			if listBranches {
				return printBranches(cmd, client, ".", tag)
			}

			path := "."
			if len(args) == 0 {
				url, err := client.WorkingCopyURL(path)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), url)
				return nil
			}

			name := args[0]
			if tag {
				name = "tags/" + name
			}
			if len(args) > 1 {
				path = args[1]
			}

			current, err := client.WorkingCopyURL(path)
			if err != nil {
				return err
			}
			url, err := layout.BranchURL(current, name)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&listBranches, "list", "l", false, "list existing branches")
	cmd.Flags().BoolVarP(&tag, "tag", "t", false, "look for a tag instead of a branch")

	return cmd
}

func NewRmBranchCmd() *cobra.Command {
	var (
		listBranches bool
		message      string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "rmbranch [-n] [-m MSG] branch",
		Short: "Remove branches",
		Long:  "Remove a named Subversion branch.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(cmd, dryRun)

			if listBranches {
				return printBranches(cmd, client, ".", false)
			}
			if len(args) < 1 {
				return errTooFewArguments(cmd)
			}

			current, err := client.WorkingCopyURL(".")
			if err != nil {
				return err
			}
			branch, err := layout.BranchURL(current, args[0])
			if err != nil {
				return err
			}

			rmArgs := []string{"rm", branch}
			if message != "" {
				rmArgs = append(rmArgs, "-m", message)
			}
			return client.Execute(rmArgs...)
		},
	}

	cmd.Flags().BoolVarP(&listBranches, "list", "l", false, "list existing branches")
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "do not remove the branch, just print the command")

	return cmd
}

func NewMvBranchCmd() *cobra.Command {
	var (
		listBranches bool
		message      string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "mvbranch [-n] [-m MSG] oldbranch newbranch",
		Short: "Rename branches",
		Long:  "Rename a Subversion branch.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(cmd, dryRun)

			if listBranches {
				return printBranches(cmd, client, ".", false)
			}
			if len(args) < 2 {
				return errTooFewArguments(cmd)
			}

			current, err := client.WorkingCopyURL(".")
			if err != nil {
				return err
			}
			oldBranch, err := layout.BranchURL(current, args[0])
			if err != nil {
				return err
			}
			newBranch, err := layout.BranchURL(current, args[1])
			if err != nil {
				return err
			}

			mvArgs := []string{"mv", oldBranch, newBranch}
			if message != "" {
				mvArgs = append(mvArgs, "-m", message)
			}
			return client.Execute(mvArgs...)
		},
	}

	cmd.Flags().BoolVarP(&listBranches, "list", "l", false, "list existing branches")
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "do not rename the branch, just print the command")

	return cmd
}
