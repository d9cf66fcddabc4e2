// Package logikuserr holds the structured error types raised by the lex,
// parse, syntax, and engine packages.
//
// Every error type here carries both a technical Error() string and, where
// one makes sense, additional structured detail a caller can pull out
// without parsing the message.
package logikuserr

import "fmt"

// ParseError is raised when a parse.Track matcher commits to an alternative
// and then fails partway through it. It names the input consumed so far, the
// sub-matcher that was expected next, and the token actually found, matching
// the After:/Expected:/Found: triple the original Logikus parser raises.
type ParseError struct {
	After    string
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("After: %s\nExpected: %s\nFound: %s", e.After, e.Expected, e.Found)
}

// Parse builds a ParseError from its three components. If found is empty,
// "-nothing-" is substituted, matching the original parser's sentinel for
// end of input.
func Parse(after, expected, found string) error {
	if found == "" {
		found = "-nothing-"
	}
	return &ParseError{After: after, Expected: expected, Found: found}
}

// EvalError is raised when Term evaluation cannot produce a value: an
// unbound Variable was consulted, or a Write gateway found an undefined
// term. The enclosing Gateway catches this locally; it never escapes the
// engine package as a panic.
type EvalError struct {
	msg  string
	wrap error
}

func (e *EvalError) Error() string {
	return e.msg
}

func (e *EvalError) Unwrap() error {
	return e.wrap
}

// Eval returns a new EvalError with the given technical message.
func Eval(msg string) error {
	return &EvalError{msg: msg}
}

// Evalf returns a new EvalError built from a format string and arguments.
func Evalf(format string, a ...interface{}) error {
	return &EvalError{msg: fmt.Sprintf(format, a...)}
}

// WrapEval returns a new EvalError that wraps another error.
func WrapEval(err error, msg string) error {
	return &EvalError{msg: msg, wrap: err}
}
