package cli

import (
	"fmt"
	"strings"

	"github.com/eazysvn/eazysvn/internal/layout"
	"github.com/eazysvn/eazysvn/internal/revision"
	"github.com/spf13/cobra"
)

func NewMergeCmd() *cobra.Command {
	var (
		listBranches bool
		reintegrate  bool
		accept       string
		diff         bool
		tag          bool
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:     "merge [rev] branch [wc-path]",
		Aliases: []string{"ezmerge"},
		Short:   "Merge changes from another branch",
		Long: `Merge changes from a Subversion branch into the working copy.
With a single argument, merges every change made on that branch since it
was created. The revision argument accepts a single revision (42), an
inclusive range (42-45), or svn's native half-open form (41:45).`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newClient(cmd, dryRun)

			if listBranches {
				return printBranches(cmd, client, ".", tag)
			}
			if len(args) < 1 {
				return errTooFewArguments(cmd)
			}

			revToken := "ALL"
			name := args[0]
			if len(args) >= 2 {
				revToken, name = args[0], args[1]
			}
			path := "."
			if len(args) > 2 {
				path = args[2]
			}

			current, err := client.WorkingCopyURL(path)
			if err != nil {
				return err
			}
			var branch string
			if tag {
				branch, err = layout.TagURL(current, name)
			} else {
				branch, err = layout.BranchURL(current, name)
			}
			if err != nil {
				return err
			}

			label := name
			if name != "trunk" && !strings.HasSuffix(name, "branch") {
				if tag {
					label += " tag"
				} else {
					label += " branch"
				}
			}

			var rng revision.Range
			var summary string
			if revToken == "ALL" {
				point, _, err := client.BranchPoints(branch)
				if err != nil {
					return err
				}
				if name == "trunk" {
					// Merging everything from trunk means everything since
					// the current branch split off, not since trunk began.
					point, _, err = client.BranchPoints(current)
					if err != nil {
						return err
					}
				}
				rng = revision.AllFrom(point)
				summary = fmt.Sprintf("Merge %s", label)
			} else {
				rng, err = revision.Parse(revToken)
				if err != nil {
					return err
				}
				what := "revision " + revToken
				if strings.ContainsAny(revToken, "-:") {
					what = "revisions " + revToken
				}
				summary = fmt.Sprintf("Merge %s from %s", what, label)
			}

			var mergeArgs []string
			if diff {
				mergeArgs = []string{"diff", "-r", rng.Arg(), branch}
			} else {
				mergeArgs = []string{"merge"}
				if reintegrate {
					mergeArgs = append(mergeArgs, "--reintegrate")
				} else {
					mergeArgs = append(mergeArgs, "-r", rng.Arg())
				}
				if accept != "" {
					mergeArgs = append(mergeArgs, "--accept", accept)
				}
				mergeArgs = append(mergeArgs, branch, path)
			}

			out := cmd.OutOrStdout()
			if diff {
				fmt.Fprintln(out, summary)
			} else {
				fmt.Fprintf(out, "%s with\n\n  %s\n\n", summary, client.CommandLine(mergeArgs...))
			}
			if err := client.Show("log", "-r", rng.LogArg(), branch); err != nil {
				return err
			}
			if diff {
				fmt.Fprintf(out, "\n  %s\n\n", client.CommandLine(mergeArgs...))
			}
			return client.Run(mergeArgs...)
		},
	}

	cmd.Flags().BoolVarP(&listBranches, "list", "l", false, "list existing branches")
	cmd.Flags().BoolVarP(&reintegrate, "reintegrate", "r", false, "passed to svn merge")
	cmd.Flags().StringVar(&accept, "accept", "", "passed to svn merge")
	cmd.Flags().BoolVarP(&diff, "diff", "d", false, "show a diff of changes on the branch")
	cmd.Flags().BoolVarP(&tag, "tag", "t", false, "use a tag instead of a branch")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "do not touch any files on disk or in subversion")

	return cmd
}
