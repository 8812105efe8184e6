// Package host implements the host side collaborators of the interpreter:
// a terminal display renderer, keyboard mapping and input handling and the
// frame runner that paces instruction execution and the 60 Hz timers.
package host
