// Package mouse describes pointer input independent of the terminal library.
//
// Terminals report the set of buttons held at each pointer event rather
// than discrete press and release transitions. Tracker turns that stream
// into press, drag, release and wheel actions.
package mouse
