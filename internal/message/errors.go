package message

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKind indicates a kind token that is not feat, fix or chore
	ErrInvalidKind = errors.New("invalid message kind (chore, fix, feat)")

	// ErrInvalidCommitMessage indicates input that does not carry a team-id story
	ErrInvalidCommitMessage = errors.New("invalid commit message")
)

// InvalidKindError represents an unrecognized kind token
type InvalidKindError struct {
	Token string
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid message kind %q (chore, fix, feat)", e.Token)
}

// Is returns true if the target error is ErrInvalidKind
func (e *InvalidKindError) Is(target error) bool {
	return target == ErrInvalidKind
}

// Source identifies which grammar rejected the input
type Source string

const (
	// SourceMessage is the free-text commit message grammar
	SourceMessage Source = "message"
	// SourceBranch is the branch name grammar
	SourceBranch Source = "branch"
)

// InvalidMessageError represents input that does not match a grammar
type InvalidMessageError struct {
	Input  string
	Source Source
}

func (e *InvalidMessageError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid commit message: empty %s", e.Source)
	}
	return fmt.Sprintf("invalid commit message: %s %q has no team-id story", e.Source, e.Input)
}

// Is returns true if the target error is ErrInvalidCommitMessage
func (e *InvalidMessageError) Is(target error) bool {
	return target == ErrInvalidCommitMessage
}

func newInvalidMessageError(source Source, input string) *InvalidMessageError {
	return &InvalidMessageError{Input: input, Source: source}
}
