package cli

import (
	"strings"
	"testing"
)

func TestRevertSingleRevision(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{}}

	out, err := runCommand(t, NewRevertCmd(), runner, "1234", "-n")
	if err != nil {
		t.Fatalf("revert 1234 failed: %v", err)
	}
	if !strings.Contains(out, "Revert revision 1234 with") {
		t.Errorf("revert printed %q, want a summary line", out)
	}
	if !strings.Contains(out, "svn merge -r 1234:1233 .") {
		t.Errorf("revert echoed %q, want the reversed range", out)
	}
	cmds := ranCommands(runner)
	if len(cmds) != 1 || cmds[0] != "log -r 1234:1234 ." {
		t.Errorf("dry-run revert ran %v, want only the log display", cmds)
	}
}

func TestRevertRange(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{}}

	out, err := runCommand(t, NewRevertCmd(), runner, "1234-1236", "-n")
	if err != nil {
		t.Fatalf("revert 1234-1236 failed: %v", err)
	}
	if !strings.Contains(out, "Revert revisions 1234-1236 with") {
		t.Errorf("revert printed %q, want the range summary", out)
	}
	if !strings.Contains(out, "svn merge -r 1236:1233 .") {
		t.Errorf("revert echoed %q, want the reversed range", out)
	}
}

func TestRevertRefusesAll(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{}}

	_, err := runCommand(t, NewRevertCmd(), runner, "ALL")
	if err == nil || !strings.Contains(err.Error(), "refus") {
		t.Fatalf("revert ALL: error = %v, want a refusal", err)
	}
	if len(runner.ran) != 0 {
		t.Errorf("revert ALL still ran %v", ranCommands(runner))
	}
}

func TestRevertExecutes(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{}}

	_, err := runCommand(t, NewRevertCmd(), runner, "1234")
	if err != nil {
		t.Fatalf("revert 1234 failed: %v", err)
	}
	cmds := ranCommands(runner)
	if len(cmds) != 2 || cmds[1] != "merge -r 1234:1233 ." {
		t.Errorf("revert ran %v, want log then merge", cmds)
	}
}
