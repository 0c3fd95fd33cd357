// Package story is vellum's demo/showcase harness: a registry of named
// component examples and a terminal browser for them.
//
// Stories are plain descriptor factories. The browser runs the same
// build/resolve/emit pipeline as any host application and paints the
// emitted instructions onto a character-cell canvas; there is no
// special-cased engine API for stories.
package story
