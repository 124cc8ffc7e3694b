package cli

import (
	"github.com/eazysvn/eazysvn/internal/layout"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func NewBranchesCmd() *cobra.Command {
	var tags bool

	cmd := &cobra.Command{
		Use:   "branches [wc-path]",
		Short: "List branches with their full URLs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(cmd, false)

			path := "."
			if len(args) > 0 {
				path = args[0]
			}
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

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			if tags {
				table.SetHeader([]string{"Tag", "URL"})
			} else {
				table.SetHeader([]string{"Branch", "URL"})
			}
			for _, name := range names {
				table.Append([]string{name, listURL + "/" + name})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVarP(&tags, "tag", "t", false, "list tags instead of branches")

	return cmd
}
