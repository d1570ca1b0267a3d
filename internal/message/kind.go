package message

// Kind is the work-item category of a change
type Kind int

const (
	// KindFeature is a new feature ("feat")
	KindFeature Kind = iota
	// KindFix is a bug fix ("fix")
	KindFix
	// KindChore is maintenance work ("chore")
	KindChore
)

// Kinds lists every kind in display order
var Kinds = []Kind{KindFeature, KindFix, KindChore}

// ParseKind resolves a kind token. Only the exact tokens feat, fix and chore
// are accepted; callers decide what an empty token means.
func ParseKind(token string) (Kind, error) {
	switch token {
	case "feat":
		return KindFeature, nil
	case "fix":
		return KindFix, nil
	case "chore":
		return KindChore, nil
	default:
		return 0, &InvalidKindError{Token: token}
	}
}

// String returns the canonical token for the kind
func (k Kind) String() string {
	switch k {
	case KindFeature:
		return "feat"
	case KindFix:
		return "fix"
	case KindChore:
		return "chore"
	default:
		return "unknown"
	}
}

// Ptr returns a pointer to a copy of k, for optional kind arguments
func (k Kind) Ptr() *Kind {
	return &k
}
