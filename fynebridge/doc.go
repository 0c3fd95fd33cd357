// Package fynebridge hosts a vellum engine inside a Fyne application.
// It translates emitted paint operations into Fyne canvas objects and
// feeds desktop pointer and keyboard events back into the engine.
package fynebridge
