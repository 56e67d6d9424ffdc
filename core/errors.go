package core

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
)

// Kind classifies a failure. Kinds are stable: their numeric values are part
// of the library's ABI and must not be reordered.
type Kind uint8

const (
	// OK reports success; functions signal it by returning a nil error.
	OK Kind = iota

	// Unknown covers failures with no more precise class.
	Unknown

	// InvalidInput reports a malformed argument or container.
	InvalidInput

	// NoMemory reports that an output would need more arcs than the
	// allocation limit in force allows.
	NoMemory

	// NoSolution reports that no clustering satisfies the given constraints.
	NoSolution

	// TooLargeProblem reports that a result would exceed MaxClusterLabel.
	TooLargeProblem

	// TooLargeDigraph reports that a digraph would exceed MaxPointIndex
	// vertices or MaxArcIndex arcs.
	TooLargeDigraph

	// DistSearchError reports a failure inside the nearest-neighbor backend.
	DistSearchError

	// NotImplemented reports a requested variant that is not available.
	NotImplemented
)

// kindMessages are the human-readable class names used by Kind.Error.
var kindMessages = map[Kind]string{
	OK:              "no error",
	Unknown:         "unknown error",
	InvalidInput:    "invalid input",
	NoMemory:        "out of memory",
	NoSolution:      "no solution satisfying the constraints",
	TooLargeProblem: "too large problem",
	TooLargeDigraph: "too large digraph",
	DistSearchError: "distance search error",
	NotImplemented:  "not implemented",
}

// Error implements error, so a bare Kind can serve as an errors.Is target:
//
//	if errors.Is(err, core.NoSolution) { … }
func (k Kind) Error() string {
	if msg, ok := kindMessages[k]; ok {
		return "lvlclust: " + msg
	}

	return "lvlclust: unknown error"
}

// Error is a failure record: the kind, the source location where it was
// raised, and a message. It unwraps to its Kind for errors.Is matching.
type Error struct {
	Kind Kind
	File string
	Line int
	Msg  string
}

// Error renders the record as "(lvlclust:<file>:<line>) <message>".
func (e *Error) Error() string {
	return fmt.Sprintf("(lvlclust:%s:%d) %s", e.File, e.Line, e.Msg)
}

// Unwrap exposes the Kind so errors.Is(err, core.InvalidInput) matches.
func (e *Error) Unwrap() error { return e.Kind }

// latest mirrors the most recent record for LatestError. Guarded by a mutex
// so concurrent clustering runs over disjoint inputs stay safe; the record a
// caller should branch on is always the returned error value itself.
var (
	latestMu sync.Mutex
	latest   *Error
)

// NewError builds a *Error of the given kind with the caller's source
// location, records it as the latest error, and returns it. A kind of OK
// yields nil and records nothing.
func NewError(kind Kind, msg string) error {
	return record(kind, msg, 2)
}

// Errorf is NewError with fmt.Sprintf formatting of the message.
func Errorf(kind Kind, format string, args ...any) error {
	return record(kind, fmt.Sprintf(format, args...), 2)
}

// record captures the location skip frames up the stack and stores the
// resulting record as the latest error.
func record(kind Kind, msg string, skip int) error {
	if kind == OK {
		return nil
	}
	if msg == "" {
		msg = kindMessages[kind]
	}
	file, line := "?", 0
	if _, f, l, ok := runtime.Caller(skip); ok {
		file, line = filepath.Base(f), l
	}
	e := &Error{Kind: kind, File: file, Line: line, Msg: msg}

	latestMu.Lock()
	latest = e
	latestMu.Unlock()

	return e
}

// KindOf extracts the Kind from any error produced by this library.
// A nil error is OK; a foreign error is Unknown.
func KindOf(err error) Kind {
	if err == nil {
		return OK
	}
	for {
		switch e := err.(type) {
		case *Error:
			return e.Kind
		case Kind:
			return e
		case interface{ Unwrap() error }:
			err = e.Unwrap()
			if err == nil {
				return Unknown
			}
		default:
			return Unknown
		}
	}
}

// LatestError returns the human-readable form of the most recent failure,
// or "(lvlclust) No error." if none has occurred since the last reset.
func LatestError() string {
	latestMu.Lock()
	defer latestMu.Unlock()
	if latest == nil {
		return "(lvlclust) No error."
	}

	return latest.Error()
}

// ResetError clears the latest-error record.
func ResetError() {
	latestMu.Lock()
	latest = nil
	latestMu.Unlock()
}
