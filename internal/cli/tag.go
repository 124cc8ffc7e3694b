package cli

import (
	"github.com/eazysvn/eazysvn/internal/layout"
	"github.com/spf13/cobra"
)

func NewTagCmd() *cobra.Command {
	var (
		listTags bool
		message  string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "tag [-n] [-m MSG] newtagname",
		Short: "Make tags",
		Long:  "Make a Subversion tag by copying the working copy to the tags location.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(cmd, dryRun)

			if listTags {
				return printBranches(cmd, client, ".", true)
			}
			if len(args) < 1 {
				return errTooFewArguments(cmd)
			}

			path := "."
			current, err := client.WorkingCopyURL(path)
			if err != nil {
				return err
			}
			target, err := layout.TagURL(current, args[0])
			if err != nil {
				return err
			}

			cpArgs := []string{"cp", path, target}
			if message != "" {
				cpArgs = append(cpArgs, "-m", message)
			}
			return client.Execute(cpArgs...)
		},
	}

	cmd.Flags().BoolVarP(&listTags, "list", "l", false, "list existing tags")
	cmd.Flags().StringVarP(&message, "message", "m", "", "commit message")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "do not make the tag, just print the command")

	return cmd
}
