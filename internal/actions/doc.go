// Package actions provides the business logic behind gup's commands.
//
// Each action takes a runtime.Context, which supplies the repository, the
// GitHub client, the editor and the logger, so actions stay independent of
// how those are built.
package actions
