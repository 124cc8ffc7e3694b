package cli

import (
	"strings"
	"testing"
)

func TestBranchURLResolvesTrunk(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"info .": infoBranchFoo,
	}}

	out, err := runCommand(t, NewBranchURLCmd(), runner, "trunk")
	if err != nil {
		t.Fatalf("branchurl trunk failed: %v", err)
	}
	if out != "https://x/repo/trunk/sub\n" {
		t.Errorf("branchurl trunk printed %q, want the trunk URL with subdirs kept", out)
	}
}

func TestBranchURLTagFlag(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"info .": infoBranchFoo,
	}}

	out, err := runCommand(t, NewBranchURLCmd(), runner, "-t", "v1")
	if err != nil {
		t.Fatalf("branchurl -t v1 failed: %v", err)
	}
	if out != "https://x/repo/tags/v1/sub\n" {
		t.Errorf("branchurl -t printed %q, want the tag URL", out)
	}
}

func TestBranchURLNoArgsPrintsCurrent(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"info .": infoBranchFoo,
	}}

	out, err := runCommand(t, NewBranchURLCmd(), runner)
	if err != nil {
		t.Fatalf("branchurl without arguments failed: %v", err)
	}
	if out != "https://x/repo/branches/foo/sub\n" {
		t.Errorf("branchurl printed %q, want the current URL", out)
	}
}

func TestRmBranch(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"info .": infoBranchFoo,
	}}

	out, err := runCommand(t, NewRmBranchCmd(), runner, "-m", "remove dead branch", "dead", "-n")
	if err != nil {
		t.Fatalf("rmbranch failed: %v", err)
	}
	if !strings.Contains(out, "svn rm https://x/repo/branches/dead/sub -m 'remove dead branch'") {
		t.Errorf("rmbranch echoed %q, want the rm command", out)
	}
	if len(runner.ran) != 0 {
		t.Errorf("dry-run rmbranch ran %v", ranCommands(runner))
	}
}

func TestMvBranch(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"info .": infoBranchFoo,
	}}

	out, err := runCommand(t, NewMvBranchCmd(), runner, "old", "new", "-n")
	if err != nil {
		t.Fatalf("mvbranch failed: %v", err)
	}
	if !strings.Contains(out, "svn mv https://x/repo/branches/old/sub https://x/repo/branches/new/sub") {
		t.Errorf("mvbranch echoed %q, want the mv command", out)
	}
}

func TestMvBranchTooFewArguments(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{}}

	_, err := runCommand(t, NewMvBranchCmd(), runner, "onlyone")
	if err == nil || !strings.Contains(err.Error(), "too few arguments") {
		t.Fatalf("mvbranch with one argument: error = %v, want too-few-arguments", err)
	}
}

func TestTagCopiesWorkingCopy(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"info .": infoBranchFoo,
	}}

	out, err := runCommand(t, NewTagCmd(), runner, "-m", "tag 1.0", "1.0", "-n")
	if err != nil {
		t.Fatalf("tag failed: %v", err)
	}
	if !strings.Contains(out, "svn cp . https://x/repo/tags/1.0/sub -m 'tag 1.0'") {
		t.Errorf("tag echoed %q, want a cp of the working copy to the tag URL", out)
	}
}
