// Package errs collects the sentinel error kinds that the construction
// pipeline can report at its build boundary. None of these are retried
// internally; see spec section 7.
package errs

import (
	"fmt"

	"github.com/pingcap/errors"
)

// Kind identifies one of the closed set of build-time error categories.
type Kind string

const (
	KindInvalidLanguage      = Kind("invalid language")
	KindUnknownSymbol        = Kind("unknown symbol")
	KindUnknownIgnoredToken  = Kind("unknown ignored token")
	KindRegexParseError      = Kind("regex parse error")
	KindAmbiguousGrammar     = Kind("ambiguous grammar")
	KindNotLALR1             = Kind("not LALR(1)")
	KindInternalInvariant    = Kind("internal invariant violation")
)

// BuildError is the concrete error type returned at the build boundary.
// It is returned wrapped with a stack trace; callers match its Kind with
// Is, e.g. Is(err, KindAmbiguousGrammar).
type BuildError struct {
	Kind    Kind
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newf(kind Kind, format string, args ...interface{}) error {
	return errors.Trace(&BuildError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// InvalidLanguage reports malformed Language input: an empty production
// LHS, an empty token name or regex, or an indent-triad misconfiguration.
func InvalidLanguage(format string, args ...interface{}) error {
	return newf(KindInvalidLanguage, format, args...)
}

// UnknownSymbol reports an RHS symbol that resolves to neither a declared
// token nor the LHS of any production.
func UnknownSymbol(name string) error {
	return newf(KindUnknownSymbol, "symbol %q is neither a token nor a production LHS", name)
}

// UnknownIgnoredToken reports an ignored-token name that isn't a declared
// token.
func UnknownIgnoredToken(name string) error {
	return newf(KindUnknownIgnoredToken, "ignored token %q is not a declared token", name)
}

// RegexParseError reports that the bootstrap regex parser rejected a
// token's pattern. message should include the token name; trace, when
// non-empty, carries a debug retrace as described in spec section 7.
func RegexParseError(tokenName, pattern, message, trace string) error {
	msg := fmt.Sprintf("token %q: regex %q: %s", tokenName, pattern, message)
	if trace != "" {
		msg += "\n" + trace
	}
	return newf(KindRegexParseError, "%s", msg)
}

// AmbiguousGrammar reports that lane tracing found an originator already
// on the lane while computing a non-nullable context.
func AmbiguousGrammar(stateConfig string) error {
	return newf(KindAmbiguousGrammar, "originator cycle detected while tracing %s", stateConfig)
}

// Conflict describes a single unresolved shift/reduce or reduce/reduce
// collision surfaced by NotLALR1.
type Conflict struct {
	State      int
	Production int
	Terminal   string
}

// NotLALR1 reports that adequacy still fails after lane tracing.
func NotLALR1(conflicts []Conflict) error {
	msg := fmt.Sprintf("%d unresolved conflict(s):", len(conflicts))
	for _, c := range conflicts {
		msg += fmt.Sprintf("\n  state %d: reduce production %d conflicts on terminal %s", c.State, c.Production, c.Terminal)
	}
	return newf(KindNotLALR1, "%s", msg)
}

// InternalInvariant reports an asserted invariant violation: double
// assignment of a transition cell, a missing reduce action during
// diagnostic emission, and similar conditions that indicate a bug in this
// package rather than bad user input.
func InternalInvariant(format string, args ...interface{}) error {
	return newf(KindInternalInvariant, format, args...)
}

// Is reports whether err (or anything it wraps) is a *BuildError of kind.
func Is(err error, kind Kind) bool {
	cause := errors.Cause(err)
	be, ok := cause.(*BuildError)
	return ok && be.Kind == kind
}
