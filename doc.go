// Package clarg is a declarative command-line argument parsing library.
//
// An application builds a tree of [Command] values, each owning typed
// [Argument]s, optionally exclusive [ArgumentGroup]s, and nested
// sub-commands, then calls [Command.Parse] on a raw input line. Parsing
// never panics on user input: diagnostics are accumulated with severity
// levels and positions, gated against configurable display/exit
// thresholds, and surfaced through [Command.GetErrorCode] as a
// bitwise-OR across the command tree.
//
// Concrete argument types (string, integer, file, tuple, ...) live in
// the sibling package [github.com/danhart/clarg/argtype]. Help
// rendering is an external collaborator — see the sibling package
// [github.com/danhart/clarg/help] for a default implementation.
package clarg
