// Package errors implements a basic error wrapping pattern, so that errors
// can be annotated with additional information without losing the original
// error.
//
// Example:
//
//	import "github.com/bytom/timefmt/errors"
//
//	func render(pattern string, ts int64) (string, error) {
//		if err := timefmt.Validate(pattern); err != nil {
//			return "", errors.Wrap(err, "validate pattern")
//		}
//		s, err := timefmt.StrftimeUTC(pattern, ts)
//		if err != nil {
//			return "", errors.Wrapf(err, "render %d", ts)
//		}
//		return s, nil
//	}
//
//	func main() {
//		s, err := render("%Q", 0)
//		if errors.Root(err) == timefmt.ErrInvalidFormatString {
//			log.Println("bad pattern:", errors.Detail(err))
//			return
//		} else if err != nil {
//			log.Println(err)
//			return
//		}
//
//		log.Println(s)
//	}
//
// When to wrap errors
//
// Errors should be wrapped with additional messages when the context is ambiguous.
// This includes when the error could arise in multiple locations in the same
// function, when the error is very common and likely to appear at different points
// in the call tree (e.g., JSON serialization errors), or when you need specific
// parameters alongside the original error message.
//
// Error handling best practices
//
// Errors are part of a function's interface. If you expect the caller to perform
// conditional error handling, you should document the errors returned by your
// function in a function comment, and include it as part of your unit tests.
//
// Be disciplined about validating user input. Programs should draw a very clear
// distinction between user errors and internal errors.
//
// Avoid redundant error logging. If you return an error, assume it will be logged
// elsewhere. When a function handles an error without returning it, it should be
// logged.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

type wrapperError struct {
	msg    string
	detail []string
	data   map[string]interface{}
	stack  pkgerrors.StackTrace
	root   error
}

func (e wrapperError) Error() string {
	return e.msg
}

// Cause returns the root error. It lets github.com/pkg/errors.Cause
// see through a wrapped error.
func (e wrapperError) Cause() error {
	return e.root
}

// Unwrap returns the root error, for the standard errors.Is and errors.As.
func (e wrapperError) Unwrap() error {
	return e.root
}

// Format prints the stack captured at the first wrap with %+v.
func (e wrapperError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprint(s, e.msg)
			e.stack.Format(s, verb)
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.msg)
	case 'q':
		fmt.Fprintf(s, "%q", e.msg)
	}
}

// Root returns the original error that was wrapped by one or more
// calls to Wrap. If e does not wrap other errors, it will be returned
// as-is.
func Root(e error) error {
	return pkgerrors.Cause(e)
}

// wrap adds a context message and stack trace to err and returns a new error
// containing the new context. This function is meant to be composed within
// other exported functions, such as Wrap and WithDetail.
// The stack is only captured the first time err is wrapped.
func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}

	werr, ok := err.(wrapperError)
	if !ok {
		werr.root = err
		werr.msg = err.Error()
		werr.stack = captureStack()
	}
	if msg != "" {
		werr.msg = msg + ": " + werr.msg
	}

	return werr
}

func captureStack() pkgerrors.StackTrace {
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	st := pkgerrors.New("").(stackTracer).StackTrace()
	// drop captureStack and its caller
	if len(st) > 2 {
		return st[2:]
	}
	return st
}

// Wrap adds a context message and stack trace to err and returns a new error
// with the new context. Arguments are handled as in fmt.Print.
// Use Root to recover the original error wrapped by one or more calls to Wrap.
// Use Stack to recover the stack trace.
// Wrap returns nil if err is nil.
func Wrap(err error, a ...interface{}) error {
	if err == nil {
		return nil
	}
	return wrap(err, fmt.Sprint(a...))
}

// Wrapf is like Wrap, but arguments are handled as in fmt.Printf.
func Wrapf(err error, format string, a ...interface{}) error {
	if err == nil {
		return nil
	}
	return wrap(err, fmt.Sprintf(format, a...))
}

// Stack returns the stack trace of an error. If the error has no stack
// information, it returns nil.
func Stack(err error) pkgerrors.StackTrace {
	if wErr, ok := err.(wrapperError); ok {
		return wErr.stack
	}
	return nil
}

// Sub returns an error containing root as its root and taking all other
// metadata (stack trace, detail, message, and data items) from err.
//
// Sub returns nil when either root or err is nil.
//
// Use this when you need to substitute a new root error in place of
// an existing error that may already hold a stack trace or other
// metadata.
func Sub(root, err error) error {
	if root == nil || err == nil {
		return nil
	}
	wErr, ok := err.(wrapperError)
	if !ok {
		wErr = wrapperError{msg: err.Error(), stack: captureStack()}
	}
	wErr.msg = root.Error() + ": " + wErr.msg
	wErr.root = root
	return wErr
}

// Detail returns the detail message contained in err, if any.
// An error has a detail message if it was made by WithDetail
// or WithDetailf.
func Detail(err error) string {
	wrapper, _ := err.(wrapperError)
	return strings.Join(wrapper.detail, "; ")
}

// WithDetail returns a new error that wraps
// err as a chain error messsage containing text
// as its additional context.
// Function Detail will return the given text
// when called on the new error value.
func WithDetail(err error, text string) error {
	if err == nil {
		return nil
	}
	if text == "" {
		return err
	}
	e1 := wrap(err, text).(wrapperError)
	e1.detail = append(e1.detail, text)
	return e1
}

// WithDetailf is like WithDetail, except it formats
// the detail message as in fmt.Printf.
// Function Detail will return the formatted text
// when called on the new error value.
func WithDetailf(err error, format string, v ...interface{}) error {
	if err == nil {
		return nil
	}
	return WithDetail(err, fmt.Sprintf(format, v...))
}

// Data returns the data item in err, if any.
func Data(err error) map[string]interface{} {
	wrapper, _ := err.(wrapperError)
	return wrapper.data
}

// WithData returns a new error that wraps err
// as a chain error message containing a value of type
// map[string]interface{} as an extra data item.
// The map contains the values in the map in err,
// if any, plus the items in keyval.
// Keyval takes the form
//   k1, v1, k2, v2, ...
// Values kN must be strings.
// Calling Data on the returned error yields the map.
// Note that if err already has a data item of any other type,
// it will not be accessible via the returned error value.
func WithData(err error, keyval ...interface{}) error {
	if err == nil {
		return nil
	}
	newkv := make(map[string]interface{})
	for k, v := range Data(err) {
		newkv[k] = v
	}
	for i := 0; i < len(keyval); i += 2 {
		newkv[keyval[i].(string)] = keyval[i+1]
	}
	e1 := wrap(err, "").(wrapperError)
	e1.data = newkv
	return e1
}
