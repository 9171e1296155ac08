package regexp

import "strings"

// pcreOnly lists constructs that RE2 rejects but PCRE accepts.
var pcreOnly = []string{
	// lookarounds
	"(?=", "(?!", "(?<=", "(?<!",
	// atomic, branch reset, conditional and comment groups
	"(?>", "(?|", "(?(", "(?#",
	// recursion and named calls
	"(?R)", "(?P>", "(?&",
	// escapes RE2 does not know
	`\h`, `\H`, `\R`, `\X`, `\K`, `\G`, `\Z`,
	// named backreferences
	`\k<`, `\k'`, `\k{`, `(?P=`,
}

// needsPCRE reports whether pattern can only be compiled by a PCRE engine.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	// numbered backreferences: \1 .. \9 outside an escape
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(pattern) && pattern[i+1] >= '1' && pattern[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// .NET/PCRE named groups; Go only knows (?P<name>...)
	if !strings.Contains(pattern, "(?P<") &&
		(strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'")) {
		return true
	}

	return false
}
