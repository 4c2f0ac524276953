// Package escape defines the signal protocol between unwrap helpers and
// loop drivers.
//
// A helper that finds its value absent throws a Signal; the enclosing
// loop driver recovers it and performs the selected action (skip the
// iteration, exit the loop, or exit surfacing the failure). Labels ride
// on the signal so it can unwind past inner frames to a named loop.
//
// Call-site arguments (Label, Msg) are order-invariant and normalized by
// NewShape, which rejects malformed argument lists up front.
package escape
