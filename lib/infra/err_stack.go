package infra

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"
)

// CallSite identifies one return address on the goroutine stack that was
// captured when a tree mutation failed (allocation failure, reentrancy,
// a rejected clobber, ...). It is the unit ErrorStack.Frames() reports,
// styled on github.com/pkg/errors' Frame but renamed to match what this
// package actually uses it for: pinning down where in a Tree operation
// an error originated, not a general-purpose stack trace.
type CallSite uintptr

func (site CallSite) pc() uintptr {
	return uintptr(site) - 1
}

func (site CallSite) file() string {
	pc := site.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknownFile"
	}
	f, _ := fn.FileLine(pc)
	return f
}

func (site CallSite) line() int {
	pc := site.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return 0
	}
	_, l := fn.FileLine(pc)
	return l
}

func (site CallSite) name() string {
	pc := site.pc()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknownFunc"
	}
	return fn.Name()
}

// Format characters:
// %s - source file
// %d - source line
// %n - function name
// %v - verbose, equivalent to %s:%d
// %+s - full path, the root path is relative to the compile time GOPATH
// separated by \n\t (<function-name>\n\t<path>)
// %+v - equivalent to %+s:%d
func (site CallSite) Format(s fmt.State, verb rune) {
	switch verb {
	case 's':
		if s.Flag('+') {
			_, _ = io.WriteString(s, site.name())
			_, _ = io.WriteString(s, "\n\t")
			_, _ = io.WriteString(s, site.file())
		} else {
			_, _ = io.WriteString(s, path.Base(site.file()))
		}
	case 'd':
		_, _ = io.WriteString(s, strconv.Itoa(site.line()))
	case 'n':
		_, _ = io.WriteString(s, shortFuncName(site.name()))
	case 'v':
		site.Format(s, 's')
		_, _ = io.WriteString(s, ":")
		site.Format(s, 'd')
	}
}

// MarshalText renders site as "<function> <file>:<line>" (the %+v text with
// a space in place of the newline and tab), or "unknownCallSite" when no
// function is known for its PC.
func (site CallSite) MarshalText() ([]byte, error) {
	name := site.name()
	if name == "unknownFunc" {
		return []byte("unknownCallSite"), nil
	}
	builder := strings.Builder{}
	_, _ = builder.WriteString(name)
	_, _ = builder.WriteString(" ")
	_, _ = builder.WriteString(site.file())
	_, _ = builder.WriteString(":")
	_, _ = builder.WriteString(strconv.Itoa(site.line()))
	return []byte(builder.String()), nil
}

func (site CallSite) MarshalJSON() ([]byte, error) {
	name := site.name()
	if name == "unknownFunc" {
		return []byte("{\"callSite\":\"unknownCallSite\"}"), nil
	}
	builder := strings.Builder{}
	_, _ = builder.WriteString("{")
	_, _ = builder.WriteString("\"func\":\"")
	_, _ = builder.WriteString(name)
	_, _ = builder.WriteString("\",")
	_, _ = builder.WriteString("\"fileAndLine\":\"")
	_, _ = builder.WriteString(site.file())
	_, _ = builder.WriteString(":")
	_, _ = builder.WriteString(strconv.Itoa(site.line()))
	_, _ = builder.WriteString("\"}")
	return []byte(builder.String()), nil
}

// shortFuncName strips a function's full import path and receiver type,
// leaving just the method/function name Format's %n verb reports.
func shortFuncName(name string) string {
	i := strings.LastIndex(name, "/")
	name = name[i+1:]
	i = strings.Index(name, ".")
	return name[i+1:]
}
