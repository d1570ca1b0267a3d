package message

import (
	"fmt"
	"regexp"
	"strconv"
)

// word matches Unicode word characters; \w in RE2 is ASCII only.
const word = `[\p{L}\p{M}\p{N}\p{Pc}]+`

// Compiled once at package initialization and only read afterwards, so both
// patterns are safe to share between goroutines.
var (
	// [kind:] [team-id ]body, where body may span several lines
	messagePattern = regexp.MustCompile(`(?s)^(?:(?P<kind>` + word + `):\s*)?(?:(?P<team>` + word + `)-(?P<id>\d+)\s+)?(?P<body>.*)$`)

	// [kind/ | kind-]team-id[anything]
	branchPattern = regexp.MustCompile(`^(?:(?P<kind>` + word + `)[/-])?(?P<team>` + word + `)-(?P<id>\d+).*$`)
)

// Message is a ticket-linked commit message
type Message struct {
	Kind  Kind
	Story StoryID
	Body  string
}

// String renders the message as "{kind}: {story} {body}". The separating space
// is kept even when the body is empty.
func (m *Message) String() string {
	return fmt.Sprintf("%s: %s %s", m.Kind, m.Story, m.Body)
}

// ParseMessage parses free text shaped like "[kind: ][team-id ]body".
//
// The team-id story is mandatory. The kind prefix is lenient: when it is
// missing or not a known kind, defaultKind is used, or KindFeature when
// defaultKind is nil.
func ParseMessage(text string, defaultKind *Kind) (*Message, error) {
	loc := messagePattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, newInvalidMessageError(SourceMessage, text)
	}

	team, hasTeam := submatch(messagePattern, text, loc, "team")
	idText, hasID := submatch(messagePattern, text, loc, "id")
	body, hasBody := submatch(messagePattern, text, loc, "body")
	if !hasTeam || !hasID || !hasBody {
		return nil, newInvalidMessageError(SourceMessage, text)
	}

	id, err := strconv.ParseUint(idText, 10, 64)
	if err != nil {
		return nil, newInvalidMessageError(SourceMessage, text)
	}

	kind := KindFeature
	if defaultKind != nil {
		kind = *defaultKind
	}
	if token, ok := submatch(messagePattern, text, loc, "kind"); ok {
		if parsed, err := ParseKind(token); err == nil {
			kind = parsed
		}
	}

	return &Message{
		Kind:  kind,
		Story: NewStoryID(team, id),
		Body:  body,
	}, nil
}

// ParseBranch parses a branch name shaped like "[kind/|kind-]team-id[-words]".
//
// A kind token in the branch is replaced by forceKind when one is given, and
// otherwise must be a known kind. A branch without a kind token is always a
// feature. Words after the story are discarded and the body is empty.
func ParseBranch(branch string, forceKind *Kind) (*Message, error) {
	loc := branchPattern.FindStringSubmatchIndex(branch)
	if loc == nil {
		return nil, newInvalidMessageError(SourceBranch, branch)
	}

	team, _ := submatch(branchPattern, branch, loc, "team")
	idText, _ := submatch(branchPattern, branch, loc, "id")
	id, err := strconv.ParseUint(idText, 10, 64)
	if err != nil {
		return nil, newInvalidMessageError(SourceBranch, branch)
	}

	kind := KindFeature
	if token, ok := submatch(branchPattern, branch, loc, "kind"); ok {
		if forceKind != nil {
			kind = *forceKind
		} else {
			kind, err = ParseKind(token)
			if err != nil {
				return nil, err
			}
		}
	}

	return &Message{
		Kind:  kind,
		Story: NewStoryID(team, id),
	}, nil
}

// Parse reads a message from text, falling back to the branch name.
//
// When text carries its own story it is returned as parsed and the branch is
// not consulted. Multi-line text goes through the message grammar too, with
// every line after the story kept in the body. Otherwise the kind and story come from the branch and the
// whole of text becomes the body.
func Parse(text, branch string, kind *Kind) (*Message, error) {
	if msg, err := ParseMessage(text, kind); err == nil {
		return msg, nil
	}

	msg, err := ParseBranch(branch, kind)
	if err != nil {
		return nil, err
	}
	msg.Body = text
	return msg, nil
}

// submatch returns the text of a named group and whether the group took part
// in the match.
func submatch(pattern *regexp.Regexp, s string, loc []int, name string) (string, bool) {
	i := pattern.SubexpIndex(name)
	if i < 0 || loc[2*i] < 0 {
		return "", false
	}
	return s[loc[2*i]:loc[2*i+1]], true
}
