package cfflags

import (
	"errors"
	"flag"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

type Flags struct {
	FlagSet     *flag.FlagSet
	urFavFlags  []cli.Flag
	positionals []string
}

// The purpose of this package is to allow commands to accept flags on either side of their positional args,
// for example `cfurl security example.com --section waf`. By default urfave-cli stops parsing flags at the
// first positional argument, so everything after it ends up in c.Args().
//
// Commands using this package set SkipFlagParsing so that c.Args() holds the raw args, including any "--".
// New parses them against the command's flags, peeling positionals off as it goes.
//
// allFlags, err := cfflags.New("security", securityFlags, c)
// allFlags.String("section")
// allFlags.Positionals()
func New(name string, flags []cli.Flag, c *cli.Context) (*Flags, error) {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	for _, f := range flags {
		if err := f.Apply(set); err != nil {
			return nil, err
		}
	}

	set.SetOutput(io.Discard)

	// anything after a "--" terminator is positional and is never parsed as a flag
	rest := c.Args().Slice()
	var literal []string
	for i, a := range rest {
		if a == "--" {
			literal = rest[i+1:]
			rest = rest[:i]
			break
		}
	}

	var positionals []string
	for {
		if err := set.Parse(rest); err != nil {
			return nil, err
		}
		rest = set.Args()
		if len(rest) == 0 {
			break
		}
		positionals = append(positionals, rest[0])
		rest = rest[1:]
	}
	positionals = append(positionals, literal...)

	err := normalizeFlags(flags, set)
	if err != nil {
		return nil, err
	}
	return &Flags{FlagSet: set, urFavFlags: flags, positionals: positionals}, nil
}

func copyFlag(name string, ff *flag.Flag, set *flag.FlagSet) {
	switch ff.Value.(type) {
	case cli.Serializer:
		_ = set.Set(name, ff.Value.(cli.Serializer).Serialize())
	default:
		_ = set.Set(name, ff.Value.String())
	}
}

func normalizeFlags(flags []cli.Flag, set *flag.FlagSet) error {
	visited := make(map[string]bool)
	set.Visit(func(f *flag.Flag) {
		visited[f.Name] = true
	})
	for _, f := range flags {
		parts := f.Names()
		if len(parts) == 1 {
			continue
		}
		var ff *flag.Flag
		for _, name := range parts {
			name = strings.Trim(name, " ")
			if visited[name] {
				if ff != nil {
					return errors.New("Cannot use two forms of the same flag: " + name + " " + ff.Name)
				}
				ff = set.Lookup(name)
			}
		}
		if ff == nil {
			continue
		}
		for _, name := range parts {
			name = strings.Trim(name, " ")
			if !visited[name] {
				copyFlag(name, ff, set)
			}
		}
	}
	return nil
}

func (set *Flags) searchFS(name string) []string {
	for _, f := range set.urFavFlags {
		for _, n := range f.Names() {
			if n == name {
				return f.Names()
			}
		}
	}
	return nil
}

// Positionals returns the non-flag arguments in the order they were given.
func (set *Flags) Positionals() []string {
	return set.positionals
}

// IsSet reports whether the flag, under any of its names, was given.
func (set *Flags) IsSet(name string) bool {
	names := set.searchFS(name)
	found := false
	set.FlagSet.Visit(func(f *flag.Flag) {
		for _, n := range names {
			if f.Name == n {
				found = true
			}
		}
	})
	return found
}

func (set *Flags) String(name string) string {
	names := set.searchFS(name)
	for _, n := range names {
		f := set.FlagSet.Lookup(n)
		if f != nil {
			parsed := f.Value.String()
			if parsed != "" {
				return parsed
			}
		}
	}
	return ""
}

func (set *Flags) Bool(name string) bool {
	names := set.searchFS(name)
	for _, n := range names {
		f := set.FlagSet.Lookup(n)
		if f != nil {
			parsed, _ := strconv.ParseBool(f.Value.String())
			if parsed {
				return parsed
			}
		}
	}
	return false
}
