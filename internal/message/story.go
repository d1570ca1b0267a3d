package message

import "fmt"

// StoryID references a ticket: a team code plus a numeric id
type StoryID struct {
	Team string
	ID   uint64
}

// NewStoryID creates a StoryID. The grammars are the only gate on well-formedness.
func NewStoryID(team string, id uint64) StoryID {
	return StoryID{Team: team, ID: id}
}

// String returns the story as "{team}-{id}"
func (s StoryID) String() string {
	return fmt.Sprintf("%s-%d", s.Team, s.ID)
}
