// Package svcerrors tags errors from the codec, renderers and tree plumbing
// with a coarse Kind. Callers branch with KindOf and still reach the cause
// through errors.Is and errors.As.
package svcerrors

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation  Kind = "validation"  // bad document or illegal tree edit
	KindParse       Kind = "parse"       // native source rejected
	KindRender      Kind = "render"      // tree cannot be written in the target format
	KindUnsupported Kind = "unsupported" // backend lacks the feature
	KindInternal    Kind = "internal"
)

// ErrNotImplemented is wrapped by the parser stubs.
var ErrNotImplemented = errors.New("serviceast: not implemented")

type Error struct {
	Kind Kind
	Err  error
}

// Error prints "<kind>: <cause>", or just the kind without a cause.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Err == nil:
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New wraps err. A nil err gets a placeholder named after the kind.
func New(kind Kind, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	}
	return &Error{Kind: kind, Err: err}
}

func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}
