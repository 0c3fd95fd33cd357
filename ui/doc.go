// Package ui is vellum's component kit: descriptor constructors for
// common widgets (buttons, labels, stacks, cards, badges, lists), the
// default dark and light themes, and the style rule set that gives the
// widgets their variant and interaction-state looks.
//
// The kit carries no behavior of its own. Every constructor returns a
// plain vellum.Descriptor; the engine treats kit components exactly
// like host-defined ones.
package ui
