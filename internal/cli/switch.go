package cli

import (
	"fmt"

	"github.com/eazysvn/eazysvn/internal/layout"
	"github.com/spf13/cobra"
)

func NewSwitchCmd() *cobra.Command {
	var (
		listBranches bool
		tag          bool
		create       bool
		message      string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:     "switch [branch] [wc-path]",
		Aliases: []string{"ezswitch"},
		Short:   "Switch the working copy to a different branch",
		Long: `Switch the working directory to a different Subversion branch.
When run without arguments, prints the URL of the current branch.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(cmd, dryRun)

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
			target, err := layout.BranchURL(current, name)
			if err != nil {
				return err
			}

			if create {
				if current == target {
					return fmt.Errorf("refusing to copy %s onto itself", target)
				}
				cpArgs := []string{"cp", current, target}
				if message != "" {
					cpArgs = append(cpArgs, "-m", message)
				}
				if err := client.Execute(cpArgs...); err != nil {
					return err
				}
			}

			return client.Execute("switch", target, path)
		},
	}

	cmd.Flags().BoolVarP(&listBranches, "list", "l", false, "list existing branches")
	cmd.Flags().BoolVarP(&tag, "tag", "t", false, "look for a tag instead of a branch")
	cmd.Flags().BoolVarP(&create, "create-branch", "c", false, "create the new branch before switching to it")
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message for --create-branch")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "do not touch any files on disk or in subversion")

	return cmd
}
