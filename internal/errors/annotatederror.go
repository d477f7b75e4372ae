// Package errors provides error wrapping with slog annotations on top of the
// standard library errors package. Wrapped errors remember the call site and
// any structured attributes attached along the way, so a single SlogError
// attribute at the logging boundary carries the whole story.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

// annotatedError carries a message, an optional cause, structured annotations
// and the source location where it was created.
type annotatedError struct {
	msg    string
	cause  error
	attrs  []slog.Attr
	source string
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// callerSource returns "file.go:123" for the caller skip frames up the stack.
// Only the base file name is kept to avoid leaking build paths into logs.
func callerSource(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// New returns an error that formats as the given text, with optional
// structured attributes and the creation site recorded for logging.
func New(msg string, attrs ...slog.Attr) error {
	return &annotatedError{msg: msg, attrs: attrs, source: callerSource(2)}
}

// NewSentinel creates an error intended for Is comparisons, with the creation
// site recorded for logging.
func NewSentinel(msg string) error {
	return &annotatedError{msg: msg, source: callerSource(2)}
}

// Wrap annotates err with a message and optional structured attributes.
// A nil err is tolerated and produces an error with no cause, so that
// defensive wrapping in defer blocks never panics.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{msg: msg, cause: err, attrs: attrs, source: callerSource(2)}
}

// DecoratePanic converts a recovered panic value into an error pointing at the
// recovery site. Returns nil when recovered is nil.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &annotatedError{msg: fmt.Sprintf("panic: %v", recovered), source: callerSource(3)}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join wraps the standard library errors.Join.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// SlogError flattens err into a single grouped attribute holding the message,
// the deepest recorded source location and all annotations collected along
// the wrap chain. Safe to call with a nil error.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("msg", "<nil>"))
	}

	var (
		annotations []any
		source      string
	)
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		ae, ok := e.(*annotatedError)
		if !ok {
			continue
		}
		for _, attr := range ae.attrs {
			annotations = append(annotations, attr)
		}
		if ae.source != "" {
			source = ae.source
		}
	}

	attrs := []any{slog.String("msg", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}
	return slog.Group("error", attrs...)
}
