package infra

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap/zapcore"
)

// ErrorStack is an error that remembers the call stack at the point it was
// created, in the style of github.com/pkg/errors. It exists so that log
// sinks can print machine-parseable call sites (see CallSite.MarshalJSON)
// instead of relying on zap's default, text-only stacktrace.
type ErrorStack interface {
	error
	Unwrap() error

	// MarshalLogObject satisfies zapcore.ObjectMarshaler, so an ErrorStack
	// can be passed to zap.Inline.
	MarshalLogObject(enc zapcore.ObjectEncoder) error

	Frames() []CallSite
}

type errorStack struct {
	msg    string
	cause  error
	frames []CallSite
}

const stackDepth = 32

func captureFrames(skip int) []CallSite {
	var pcs [stackDepth]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := make([]CallSite, n)
	for i := 0; i < n; i++ {
		frames[i] = CallSite(pcs[i])
	}
	return frames
}

// NewErrorStack builds a stack-carrying error from a message.
func NewErrorStack(msg string) ErrorStack {
	return &errorStack{msg: msg, frames: captureFrames(3)}
}

// WrapErrorStack attaches the current call stack to an existing error.
// Returns nil when err is nil, matching errors.Wrap's convention.
func WrapErrorStack(err error, msg string) ErrorStack {
	if err == nil {
		return nil
	}
	return &errorStack{msg: msg, cause: err, frames: captureFrames(3)}
}

func (e *errorStack) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.cause.Error())
}

func (e *errorStack) Unwrap() error {
	return e.cause
}

func (e *errorStack) Frames() []CallSite {
	return e.frames
}

func (e *errorStack) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("msg", e.msg)
	if len(e.frames) > 0 {
		enc.AddString("at", fmt.Sprintf("%v", e.frames[0]))
	}
	return nil
}

// Is allows errors.Is(err, target) to look through the wrapped cause.
func (e *errorStack) Is(target error) bool {
	return errors.Is(e.cause, target)
}
