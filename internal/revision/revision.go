// Package revision turns user-friendly revision tokens into the half-open
// ranges svn merge and svn diff expect.
package revision

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned for revision tokens that match no supported form.
var ErrSyntax = errors.New("bad revision")

// Range is a revision range in svn's native convention: the changes after
// Begin up to and including End. End may be the symbolic HEAD, which svn
// resolves at execution time.
type Range struct {
	Begin     int
	End       int
	EndIsHead bool
}

// Parse interprets a revision token. A single number N covers the change
// set that produced N, so it becomes N-1:N. The friendly form N-M includes
// both endpoints and becomes N-1:M. The svn form N:M passes through
// unchanged; N may exceed M to express an undo. A leading "r" pasted from
// svn log output is ignored.
func Parse(token string) (Range, error) {
	tok := strings.TrimPrefix(token, "r")
	switch {
	case strings.Contains(tok, "-"):
		lo, hi, _ := strings.Cut(tok, "-")
		begin, err := strconv.Atoi(lo)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrSyntax, token)
		}
		if hi == "HEAD" {
			return Range{Begin: begin - 1, EndIsHead: true}, nil
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrSyntax, token)
		}
		if begin-1 >= end {
			return Range{}, fmt.Errorf("%w: empty range (%d-%d)", ErrSyntax, begin, end)
		}
		return Range{Begin: begin - 1, End: end}, nil
	case strings.Contains(tok, ":"):
		lo, hi, _ := strings.Cut(tok, ":")
		begin, err := strconv.Atoi(lo)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrSyntax, token)
		}
		if hi == "HEAD" {
			return Range{Begin: begin, EndIsHead: true}, nil
		}
		end, err := strconv.Atoi(hi)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrSyntax, token)
		}
		return Range{Begin: begin, End: end}, nil
	default:
		n, err := strconv.Atoi(tok)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrSyntax, token)
		}
		return Range{Begin: n - 1, End: n}, nil
	}
}

// AllFrom returns the range covering every change after the branch point.
func AllFrom(branchPoint int) Range {
	return Range{Begin: branchPoint, EndIsHead: true}
}

func (r Range) endToken() string {
	if r.EndIsHead {
		return "HEAD"
	}
	return strconv.Itoa(r.End)
}

// Arg renders the range for svn's -r option.
func (r Range) Arg() string {
	return fmt.Sprintf("%d:%s", r.Begin, r.endToken())
}

// ReverseArg renders the range backwards, which makes svn merge undo the
// changes the range covers.
func (r Range) ReverseArg() string {
	return fmt.Sprintf("%s:%d", r.endToken(), r.Begin)
}

// LogArg renders the inclusive window for svn log: the first revision
// actually contained in the range through the last.
func (r Range) LogArg() string {
	return fmt.Sprintf("%d:%s", r.Begin+1, r.endToken())
}

func (r Range) String() string {
	return r.Arg()
}
