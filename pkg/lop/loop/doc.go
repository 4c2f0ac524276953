// Package loop provides the loop drivers that interpret escape signals
// thrown by the unwrap helpers.
//
// Each driver runs its body in a recovering frame. An unlabeled escape
// binds to the innermost frame; a labeled one unwinds until the frame
// created with WithLabel(name). An escape whose label no enclosing
// frame bears keeps unwinding as an ordinary panic.
//
// Drivers:
// - Forever: run until an escape exits
// - Times/Over: bounded iteration over a count or a slice
// - Eval: value-yielding loop collapsing to a lop.Result
//
// Context cancellation is checked between iterations and ends the loop.
package loop
