// Package regexp compiles the patterns used to recognise numeric and boolean
// literals in strings.
//
// Patterns run on coregex (an accelerated RE2-compatible engine) unless they
// use PCRE-only constructs such as lookarounds or backreferences, in which
// case they are compiled with [regexp2].
package regexp
