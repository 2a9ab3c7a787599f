package extension

import (
	"regexp"
	"slices"
	"strings"
)

const (
	// DefaultKey is the sentinel directive token marking where the
	// default extension list is spliced in.
	DefaultKey = "default"

	// RemovePrefix negates the token that follows it: "-foo" removes
	// foo, "-default" removes every default extension.
	RemovePrefix = "-"
)

// Commas may be repeated and padded with whitespace; only whitespace
// adjacent to a comma is consumed.
var commaSplit = regexp.MustCompile(`\s*[,]+\s*`)

// SplitDirective tokenizes a directive string. Empty tokens are
// dropped, so stray leading, trailing, or doubled commas are harmless.
func SplitDirective(directive string) []string {
	if strings.TrimSpace(directive) == "" {
		return nil
	}

	parts := commaSplit.Split(directive, -1)
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			names = append(names, part)
		}
	}
	return names
}

// Merge computes the effective extension list from the system default
// ordering and a user directive.
//
// Each default name is kept only if exists reports it; a nil exists
// keeps all of them. The surviving defaults are spliced in at the
// position of the "default" token (prepended when the token is absent
// or first), unless the directive contains "-default", which suppresses
// them entirely. Negation tokens are applied last, so they remove
// default-derived names as well as explicit ones. The "default"
// sentinel itself never appears in the result.
//
// Malformed directives never fail: unknown names pass through and
// stray separators are ignored.
func Merge(defaults []string, directive string, exists func(string) bool) []string {
	working := make([]string, 0, len(defaults))
	for _, name := range defaults {
		if exists == nil || exists(name) {
			working = append(working, name)
		}
	}

	names := SplitDirective(directive)

	if !slices.Contains(names, RemovePrefix+DefaultKey) {
		if i := slices.Index(names, DefaultKey); i > 0 {
			names = splice(names, i, working)
		} else {
			names = splice(names, 0, working)
		}
	}
	names = removeFirst(names, DefaultKey)

	// Negation runs after the splice so it can cancel defaults too.
	for _, name := range slices.Clone(names) {
		if strings.HasPrefix(name, RemovePrefix) {
			names = removeAll(names, name)
			names = removeAll(names, strings.TrimPrefix(name, RemovePrefix))
		}
	}

	return names
}

func splice(names []string, i int, insert []string) []string {
	out := make([]string, 0, len(names)+len(insert))
	out = append(out, names[:i]...)
	out = append(out, insert...)
	out = append(out, names[i:]...)
	return out
}

func removeFirst(names []string, target string) []string {
	if i := slices.Index(names, target); i >= 0 {
		return slices.Delete(slices.Clone(names), i, i+1)
	}
	return names
}

func removeAll(names []string, target string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name != target {
			out = append(out, name)
		}
	}
	return out
}
