package vellum

// Input events arrive from the external windowing layer, each carrying
// a target coordinate or target node identity. The engine consumes
// them on its owning goroutine via Engine.Dispatch.

// InputEvent is the closed set of events the engine consumes.
type InputEvent interface {
	isInput()
}

// PointerButton identifies which pointer button an event refers to.
type PointerButton uint8

const (
	ButtonPrimary PointerButton = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerMoveEvent reports pointer motion in viewport pixels.
type PointerMoveEvent struct {
	X, Y float64
}

// PointerDownEvent reports a button press at viewport pixels. The hit
// node captures the pointer until the matching PointerUpEvent.
type PointerDownEvent struct {
	X, Y   float64
	Button PointerButton
}

// PointerUpEvent reports a button release at viewport pixels.
type PointerUpEvent struct {
	X, Y   float64
	Button PointerButton
}

// FocusEvent reports keyboard focus moving to a node (by identity) or
// leaving the surface entirely (Target == NoNode).
type FocusEvent struct {
	Target NodeID
}

// KeyEvent is passed through untouched to the focused node's handler.
type KeyEvent struct {
	Rune rune
	Name string // Named keys: "enter", "escape", "tab", "up", ...
}

func (PointerMoveEvent) isInput() {}
func (PointerDownEvent) isInput() {}
func (PointerUpEvent) isInput()   {}
func (FocusEvent) isInput()       {}
func (KeyEvent) isInput()         {}
