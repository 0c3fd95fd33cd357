// Package vellum is a component styling and composition engine for
// retained-mode GUIs.
//
// Hosts describe their UI as an immutable tree of Descriptors, register
// style rules against a Theme, and submit the tree to an Engine. The
// engine expands descriptors into a reconciled node tree, resolves a
// final style per node (cascading base rules, variants, and interaction
// state against the active theme), and emits layout box requests and
// paint instructions for external layout and rasterization engines.
//
// The engine owns no window, no rasterizer, and no layout algorithm:
// those are collaborators behind the LayoutEngine and TextMeasurer
// contracts and the PaintOp output. The layout subpackage ships a
// reference flexbox LayoutEngine; fynebridge adapts the output to a
// real GUI toolkit; story is a browsable catalog of component examples.
//
// One Engine owns one tree and one interaction state table. All engine
// methods must be called from the goroutine that owns the engine;
// background work must marshal results back before touching it.
package vellum
