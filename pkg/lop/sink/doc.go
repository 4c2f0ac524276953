// Package sink provides write-line targets for escape diagnostics.
//
// Loop drivers write a caller-supplied message to their sink exactly
// once, between detecting an absent value and performing the escape.
// Writer/Stdout print plain lines, Color renders them with terminal
// attributes, Zap routes them to a structured logger and Discard
// silences them.
package sink
