package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/eazysvn/eazysvn/internal/config"
	"github.com/eazysvn/eazysvn/internal/svn"
	"github.com/eazysvn/eazysvn/internal/types"
	"github.com/spf13/cobra"
)

const infoBranchFoo = `Path: .
URL: https://x/repo/branches/foo/sub
Repository UUID: ab69c8a2-bfcb-0310-9bff-acb20127a769
Revision: 1654
Node Kind: directory
`

const logFoobar = `<?xml version="1.0" encoding="utf-8"?>
<log>
<logentry revision="4515">
<author>mg</author>
<date>2007-01-11T16:30:07.775378Z</date>
<msg>Blah blah.</msg>
</logentry>
<logentry revision="4504">
<author>mg</author>
<date>2007-01-11T16:29:32.166370Z</date>
<msg>create branch</msg>
</logentry>
</log>
`

type fakeRunner struct {
	outputs map[string]string
	ran     [][]string
}

func (f *fakeRunner) Output(args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	out, ok := f.outputs[key]
	if !ok {
		return nil, fmt.Errorf("unexpected svn %s", key)
	}
	return []byte(out), nil
}

func (f *fakeRunner) Run(args ...string) error {
	f.ran = append(f.ran, args)
	return nil
}

// runCommand executes cmd with canned svn output and captures its output.
func runCommand(t *testing.T, cmd *cobra.Command, runner svn.Runner, args ...string) (string, error) {
	t.Helper()

	ctx := config.NewContext(context.Background(), &types.Config{SvnPath: "svn"})
	ctx = WithRunner(ctx, runner)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func ranCommands(f *fakeRunner) []string {
	var cmds []string
	for _, args := range f.ran {
		cmds = append(cmds, strings.Join(args, " "))
	}
	return cmds
}
