// Package svn drives the Subversion command-line client as a subprocess.
// All repository semantics stay with svn itself; this package only builds
// argument lists, captures query output, and propagates exit codes.
package svn

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/eazysvn/eazysvn/internal/types"
	"github.com/kballard/go-shellquote"
)

// Runner executes one svn invocation. Tests substitute canned output.
type Runner interface {
	// Output runs svn with args and captures stdout.
	Output(args ...string) ([]byte, error)
	// Run runs svn with args, passing the standard streams through.
	Run(args ...string) error
}

type execRunner struct {
	bin string
}

func (r execRunner) Output(args ...string) ([]byte, error) {
	cmd := exec.Command(r.bin, args...)
	cmd.Stderr = os.Stderr
	return cmd.Output()
}

func (r execRunner) Run(args ...string) error {
	cmd := exec.Command(r.bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ToolError reports a failed svn invocation. Code carries the child's exit
// status so the process exit code can mirror it.
type ToolError struct {
	Args []string
	Code int
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("svn %s exited with status %d", strings.Join(e.Args, " "), e.Code)
}

func (e *ToolError) Unwrap() error { return e.Err }

// ErrNoHistory is returned when a log query finds no entries, usually
// because the path does not exist in the repository.
var ErrNoHistory = errors.New("no log entries found")

type Client struct {
	bin    string
	runner Runner
	dryRun bool
	out    io.Writer
}

type Option func(*Client)

// WithRunner substitutes the subprocess runner, for tests.
func WithRunner(r Runner) Option {
	return func(c *Client) { c.runner = r }
}

// WithDryRun makes Run a no-op; commands are still echoed.
func WithDryRun(dry bool) Option {
	return func(c *Client) { c.dryRun = dry }
}

// WithOutput redirects the command echo, for tests.
func WithOutput(w io.Writer) Option {
	return func(c *Client) { c.out = w }
}

func New(cfg *types.Config, opts ...Option) *Client {
	bin := cfg.SvnPath
	if bin == "" {
		bin = types.DefaultSvnPath
	}
	c := &Client{
		bin:    bin,
		runner: execRunner{bin: bin},
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WorkingCopyURL reports the repository URL of the working copy at path,
// taken from the URL field of svn info.
func (c *Client) WorkingCopyURL(path string) (string, error) {
	args := []string{"info", path}
	out, err := c.runner.Output(args...)
	if err != nil {
		return "", c.toolError(args, err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "URL: ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "URL: ")), nil
		}
	}
	return "", fmt.Errorf("no URL in svn info output for %s", path)
}

// ListDirs returns the directory entries under url, without the trailing
// slash svn ls prints. Plain files are skipped.
func (c *Client) ListDirs(url string) ([]string, error) {
	args := []string{"ls", url}
	out, err := c.runner.Output(args...)
	if err != nil {
		return nil, c.toolError(args, err)
	}
	var dirs []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasSuffix(line, "/") {
			dirs = append(dirs, strings.TrimSuffix(line, "/"))
		}
	}
	return dirs, nil
}

// History returns the log of url back to the copy that created it, newest
// entry first, as svn prints it.
func (c *Client) History(url string) ([]LogEntry, error) {
	args := []string{"log", "--non-interactive", "--stop-on-copy", "--xml", url}
	out, err := c.runner.Output(args...)
	if err != nil {
		return nil, c.toolError(args, err)
	}
	entries, err := parseLog(out)
	if err != nil {
		return nil, fmt.Errorf("could not parse svn log output: %w", err)
	}
	return entries, nil
}

// BranchPoints returns the oldest and newest logged revisions of url. The
// oldest one is the revision the branch was created at.
func (c *Client) BranchPoints(url string) (oldest, newest int, err error) {
	entries, err := c.History(url)
	if err != nil {
		return 0, 0, err
	}
	if len(entries) == 0 {
		return 0, 0, fmt.Errorf("%w for %s", ErrNoHistory, url)
	}
	return entries[len(entries)-1].Revision, entries[0].Revision, nil
}

// CommandLine renders an svn invocation for display.
func (c *Client) CommandLine(args ...string) string {
	return shellquote.Join(append([]string{c.bin}, args...)...)
}

// Run executes a mutating svn command, or skips it in dry-run mode.
func (c *Client) Run(args ...string) error {
	if c.dryRun {
		slog.Debug("dry run, not executing", "command", c.CommandLine(args...))
		return nil
	}
	slog.Debug("executing", "command", c.CommandLine(args...))
	if err := c.runner.Run(args...); err != nil {
		return c.toolError(args, err)
	}
	return nil
}

// Execute echoes the command line and then runs it.
func (c *Client) Execute(args ...string) error {
	fmt.Fprintln(c.out, c.CommandLine(args...))
	return c.Run(args...)
}

// Show runs a read-only svn command with output passed through. It runs
// even in dry-run mode; showing a log touches nothing.
func (c *Client) Show(args ...string) error {
	if err := c.runner.Run(args...); err != nil {
		return c.toolError(args, err)
	}
	return nil
}

func (c *Client) toolError(args []string, err error) error {
	code := 1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &ToolError{Args: args, Code: code, Err: err}
}
