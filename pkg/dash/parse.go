package dash

import "fmt"

// ArgError is returned by Parse when the arguments don't fit the destination.
type ArgError struct {
	Command string
	Msg     string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Msg)
}

// Parse builds a Command for s from its positional arguments and the
// optional --section value.
func Parse(s Spec, args []string, section *string) (Command, error) {
	cmd := Command{Kind: s.Kind}

	if section != nil && !s.HasSection {
		return Command{}, &ArgError{Command: s.Name, Msg: "--section is not supported"}
	}
	cmd.Section = section

	limit := 1
	if s.Shape == NoArgs {
		limit = 0
	}
	if len(args) > limit {
		return Command{}, &ArgError{Command: s.Name, Msg: fmt.Sprintf("unexpected argument %q", args[limit])}
	}

	switch s.Shape {
	case ZoneArg:
		if len(args) == 0 {
			return Command{}, &ArgError{Command: s.Name, Msg: fmt.Sprintf("missing required argument <%s>", s.ArgName)}
		}
		zone := args[0]
		cmd.Zone = &zone
	case OptionalZoneArg:
		if len(args) == 1 {
			zone := args[0]
			cmd.Zone = &zone
		}
	case OptionalNameArg:
		if len(args) == 1 {
			name := args[0]
			cmd.Name = &name
		}
	}

	return cmd, nil
}
