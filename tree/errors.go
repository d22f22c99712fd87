package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"errors"
	"fmt"
)

// ErrHierarchyRequest is thrown for cyclic or type-incompatible insertions.
var ErrHierarchyRequest = errors.New("hierarchy request error")

// ErrNotFound is thrown if a child is not present for remove/replace.
var ErrNotFound = errors.New("node not found")

// ErrWrongDocument signals an operation violating a cross-document
// constraint. The mutation operations themselves never raise it: inserting a
// node from another document adopts it into the target document, per the
// standard's insertion algorithm. It is exported for callers layering
// stricter document affinity on top of this package.
var ErrWrongDocument = errors.New("node belongs to a different document")

// ErrInvalidObserverOptions is thrown if MutationObserver.Observe is called
// with an inconsistent option set.
var ErrInvalidObserverOptions = errors.New("invalid mutation observer options")

// DOMError carries the error kind of a failed tree operation together with a
// description of what was rejected. It wraps one of the sentinel errors above,
// so callers dispatch with errors.Is.
type DOMError struct {
	Kind error  // one of the sentinel errors
	Op   string // operation that failed, e.g. "insert-before"
	Msg  string
}

func (e *DOMError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Msg)
}

func (e *DOMError) Unwrap() error {
	return e.Kind
}

func hierarchyError(op, format string, args ...interface{}) error {
	return &DOMError{Kind: ErrHierarchyRequest, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func notFoundError(op, format string, args ...interface{}) error {
	return &DOMError{Kind: ErrNotFound, Op: op, Msg: fmt.Sprintf(format, args...)}
}
