package vellum

import "fmt"

// Intra-frame errors are always recovered locally with a safe default:
// a malformed node must never abort rendering of the whole tree. Only
// construction-time misconfiguration (a malformed theme, a nil layout
// engine) is surfaced as a hard failure before any frame renders. The
// types below exist so hosts can observe recoveries through the logger
// hook or errors.As on construction failures.

// InvalidValueError reports a style token or property value that could
// not be resolved against the active theme. The resolver recovers by
// falling back to the kind's theme default for that property.
type InvalidValueError struct {
	Token    TokenName
	Property Property
	Kind     string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value: token %q for %s on kind %q not in theme", e.Token, e.Property, e.Kind)
}

// UnknownKindError reports a descriptor referencing a component kind
// with no registered style defaults. The tree builder substitutes an
// empty placeholder node for the subtree.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown component kind %q", e.Kind)
}

// LayoutRejectedError reports that the external layout engine failed an
// entire solve, or produced an unsatisfiable (negative) box. The
// emitter clamps to zero and continues rather than failing the frame.
type LayoutRejectedError struct {
	Node NodeID
	Err  error
}

func (e *LayoutRejectedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("layout engine rejected node %d: %v", e.Node, e.Err)
	}
	return fmt.Sprintf("layout engine rejected node %d", e.Node)
}

func (e *LayoutRejectedError) Unwrap() error {
	return e.Err
}

// CaptureViolationError reports an input event arriving for a node that
// reconciliation destroyed mid-capture. The tracker silently releases
// capture; the error only surfaces through debug logging.
type CaptureViolationError struct {
	Node NodeID
}

func (e *CaptureViolationError) Error() string {
	return fmt.Sprintf("pointer capture held by destroyed node %d", e.Node)
}
