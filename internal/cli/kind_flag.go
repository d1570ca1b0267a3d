package cli

import (
	"strings"

	"gup.dev/gup/internal/message"
)

// kindFlag is a pflag.Value for an optional message kind
type kindFlag struct {
	kind *message.Kind
}

func (f *kindFlag) String() string {
	if f.kind == nil {
		return ""
	}
	return f.kind.String()
}

func (f *kindFlag) Set(value string) error {
	kind, err := message.ParseKind(value)
	if err != nil {
		return err
	}
	f.kind = &kind
	return nil
}

func (f *kindFlag) Type() string {
	return "kind"
}

func kindUsage(prefix string) string {
	names := make([]string, 0, len(message.Kinds))
	for _, k := range message.Kinds {
		names = append(names, k.String())
	}
	return prefix + " (" + strings.Join(names, ", ") + ")"
}
