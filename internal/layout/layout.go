// Package layout rewrites repository URLs between the conventional
// trunk/branches/tags locations, including the singular branch/tag
// variant some repositories use.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLayout is returned when a repository URL carries none of the
// conventional layout segments and the target location cannot be inferred.
var ErrUnknownLayout = errors.New("unrecognized repository layout")

// BranchURL rewrites a working-copy URL to point at the named branch,
// keeping any trailing subdirectories. The name "trunk" selects the trunk.
// A ref containing a slash (for example "tags/1.2" or a leading-slash
// custom path) replaces the layout segment verbatim, which supports
// non-standard layouts.
func BranchURL(wcURL, ref string) (string, error) {
	verbatim := strings.Contains(ref, "/")
	ref = strings.TrimPrefix(ref, "/")

	chunks := strings.Split(wcURL, "/")
	out := make([]string, 0, len(chunks)+1)
	matched := false

	for i := 0; i < len(chunks); i++ {
		ch := chunks[i]
		switch {
		case ch == "branch" || ch == "branches" || ch == "tag" || ch == "tags":
			matched = true
			i++ // skip the old branch or tag name
			if ref == "trunk" {
				out = append(out, ref)
				continue
			}
			if !verbatim {
				if ch == "tag" || ch == "tags" {
					out = append(out, "branches")
				} else {
					out = append(out, ch)
				}
			}
			out = append(out, ref)
		case ch == "trunk":
			matched = true
			if ref == "trunk" {
				out = append(out, ch)
				continue
			}
			if !verbatim {
				out = append(out, "branches")
			}
			out = append(out, ref)
		default:
			out = append(out, ch)
		}
	}

	if !matched {
		return "", fmt.Errorf("%w: %s", ErrUnknownLayout, wcURL)
	}
	return strings.Join(out, "/"), nil
}

// TagURL rewrites a working-copy URL to point at the named tag. The tags
// location is used even when the working copy is on trunk or a branch;
// repositories using the singular variant get tag/<name>.
func TagURL(wcURL, name string) (string, error) {
	chunks := strings.Split(wcURL, "/")
	out := make([]string, 0, len(chunks)+1)
	matched := false

	for i := 0; i < len(chunks); i++ {
		ch := chunks[i]
		switch ch {
		case "branches", "tags":
			matched = true
			i++
			out = append(out, "tags", name)
		case "branch", "tag":
			matched = true
			i++
			out = append(out, "tag", name)
		case "trunk":
			matched = true
			out = append(out, "tags", name)
		default:
			out = append(out, ch)
		}
	}

	if !matched {
		return "", fmt.Errorf("%w: %s", ErrUnknownLayout, wcURL)
	}
	return strings.Join(out, "/"), nil
}

// BranchListURL returns the URL of the directory holding all branches of
// the repository the working copy belongs to. The rightmost layout segment
// wins, so a checkout of branches/foo/sub lists the siblings of foo.
func BranchListURL(wcURL string) (string, error) {
	chunks := strings.Split(wcURL, "/")
	for i := len(chunks) - 1; i >= 0; i-- {
		switch chunks[i] {
		case "branch", "tag":
			return strings.Join(append(chunks[:i], "branch"), "/"), nil
		case "branches", "tags", "trunk":
			return strings.Join(append(chunks[:i], "branches"), "/"), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownLayout, wcURL)
}

// TagListURL returns the URL of the directory holding all tags.
func TagListURL(wcURL string) (string, error) {
	chunks := strings.Split(wcURL, "/")
	for i := len(chunks) - 1; i >= 0; i-- {
		switch chunks[i] {
		case "branch", "tag":
			return strings.Join(append(chunks[:i], "tag"), "/"), nil
		case "branches", "tags", "trunk":
			return strings.Join(append(chunks[:i], "tags"), "/"), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownLayout, wcURL)
}
