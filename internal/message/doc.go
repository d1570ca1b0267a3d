// Package message parses ticket-linked commit messages.
//
// A commit message has the canonical form "{kind}: {team}-{id} {body}". It is
// read either from free text typed by the user or, as a fallback, from the name
// of the current branch:
//
//	feat: team-123 add login form     (message grammar)
//	fix/team-123-login-form           (branch grammar)
//
// Parse combines both: the message grammar is tried first and the branch only
// supplies the kind and story when the message carries none.
package message
