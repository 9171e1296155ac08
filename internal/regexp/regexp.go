package regexp

import (
	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled pattern backed by exactly one engine.
type Regexp struct {
	pattern string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses pattern, choosing regexp2 when needsPCRE reports PCRE-only
// syntax and coregex otherwise.
func Compile(pattern string) (*Regexp, error) {
	if needsPCRE(pattern) {
		re, err := regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, err
		}
		return &Regexp{pattern: pattern, pcre: re}, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, core: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// String returns the source pattern.
func (r *Regexp) String() string {
	return r.pattern
}

// MatchString reports whether s contains any match of r.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindStringSubmatch returns the leftmost match of r in s followed by its
// capture groups, or nil if there is no match.
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.core != nil {
		return r.core.FindStringSubmatch(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	groups := m.Groups()
	out := make([]string, len(groups))
	for i, g := range groups {
		if len(g.Captures) > 0 {
			out[i] = g.String()
		}
	}

	return out
}
