// Package minigame runs a two-player duel made of short minigames.
//
// A Session draws minigames from a Selector without repeats inside a cycle,
// hands each one to a Judge, scores the Outcome and counts down to the next
// round, forever. Everything advances through Tick calls carrying the time
// since the previous tick and the button state observed during it, so the
// whole loop can be driven by a scripted clock in tests.
//
// Presentation goes out through a Sink. Judges only describe Frames; the
// Session diffs them and performs every Sink call itself.
package minigame
