// Package runtime provides the execution context for gup commands.
//
// It carries the collaborators actions need (the repository, the GitHub
// client, the editor, the browser and the logger) so commands can be driven
// by real implementations and tests by fakes.
package runtime
