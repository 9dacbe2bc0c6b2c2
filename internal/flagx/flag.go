// Package flagx contains helpers for parsing a subset of the command line
// without tripping over flags owned by other components.
package flagx

import "strings"

// normalize reduces a flag spelling to its single-dash form, so that
// "-server" and "--server" compare equal the same way the stdlib flag
// package treats them.
func normalize(name string) string {
	if strings.HasPrefix(name, "--") {
		return name[1:]
	}
	return name
}

func toSet(flags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(flags))
	for _, f := range flags {
		set[normalize(f)] = struct{}{}
	}
	return set
}

// FilterArgs returns a slice of command-line arguments that only contains
// the allowed flags (and their values). Single- and double-dash spellings
// are interchangeable, matching stdlib flag parsing.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -server mtx01.cc
//  2. Flag and value combined with '=':      --server=mtx01.cc
//  3. Switch flags with no value:            -dry-run
//
// Parameters:
//
//	args        — the command-line arguments (usually os.Args[1:])
//	valueFlags  — allowed flags that consume the following argument
//	switchFlags — allowed boolean flags that never consume an argument
func FilterArgs(args []string, valueFlags, switchFlags []string) []string {
	takesValue := toSet(valueFlags)
	isSwitch := toSet(switchFlags)

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// Case 1: flag in the form "--flag=value" or "-f=value"
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := normalize(strings.SplitN(arg, "=", 2)[0])
			_, okV := takesValue[name]
			_, okS := isSwitch[name]
			if okV || okS {
				filtered = append(filtered, arg)
			}
			continue
		}

		// Case 2: switch flag, value never follows
		if _, ok := isSwitch[normalize(arg)]; ok {
			filtered = append(filtered, arg)
			continue
		}

		// Case 3: value flag, value may follow as a separate argument
		if _, ok := takesValue[normalize(arg)]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// Positionals returns the arguments that are neither flags nor values
// consumed by one of the value-taking flags in valueFlags.
//
// This is how the tools pick up their positional access-token argument
// while the rest of the command line is handled by a flag.FlagSet.
func Positionals(args []string, valueFlags []string) []string {
	takesValue := toSet(valueFlags)

	positionals := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			if strings.Contains(arg, "=") {
				continue
			}
			if _, ok := takesValue[normalize(arg)]; ok && i+1 < len(args) {
				i++ // skip the flag's value
			}
			continue
		}
		positionals = append(positionals, arg)
	}

	return positionals
}
