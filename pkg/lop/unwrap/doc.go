// Package unwrap provides loop-aware unwrapping of two-state containers.
//
// Inside a loop driver, Continue and Break extract the present value of
// any lop.Optional, or redirect the loop's control flow when the value
// is absent. BreakErr does the same for failure-carrying containers,
// making the original failure the loop's result.
//
// Each helper takes up to two extra arguments, a loop label and a
// diagnostic message, in either order:
//
//	n := unwrap.Continue(lop.Try(strconv.Atoi(s)), escape.Msg("not a number"))
//	v := unwrap.Break(cache.Lookup(key), escape.Label("retry"), escape.Msg("miss"))
//
// Calling a helper outside a loop driver panics with the escape signal.
package unwrap
