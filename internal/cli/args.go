package cli

import "strings"

// ExpandMultiValue rewrites "--name a b c" into "--name a --name b --name c"
// for the given multi-value flags so repeated-value flags accept a
// space-separated list. Everything else passes through untouched.
func ExpandMultiValue(args []string, names []string) []string {
	multi := make(map[string]bool, len(names))
	for _, n := range names {
		multi["--"+n] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		out = append(out, arg)
		if arg == "--" {
			out = append(out, args[i+1:]...)
			break
		}
		if !multi[arg] {
			continue
		}

		// first value belongs to the flag as written
		if i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			out = append(out, arg, args[i])
		}
	}
	return out
}
