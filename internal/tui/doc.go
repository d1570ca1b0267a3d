// Package tui provides the interactive pieces of gup: the editor used to fix
// a commit message that does not parse, and the spinner shown while waiting
// for check runs.
package tui
