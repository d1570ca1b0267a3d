// Package cli defines gup's cobra commands.
//
// The root command is the push workflow; parse, pr, checks and version are
// subcommands. Commands only translate flags into action options, the work
// happens in the actions package.
package cli
