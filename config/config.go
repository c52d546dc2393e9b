// Package config holds Fib Bench's command line layout, versions and the
// fixed benchmark workload.
package config

import (
	"fmt"
	"strings"
)

// DefaultTool runs when no tool is named.
const DefaultTool = "compare"

// Options is the split of the command line into a tool, its own arguments
// and the global flags.
type Options struct {
	Tool      string
	Args      []string
	Benchmark bool
	Help      bool
	Version   bool
}

// ParseArgs splits os.Args[1:]. A leading non-flag argument names the tool,
// otherwise DefaultTool runs with every argument. -benchmark and -version are
// global anywhere; -h/-help is global only as the sole argument so tools can
// still show their own flag usage.
func ParseArgs(args []string) Options {
	opts := Options{Tool: DefaultTool}
	if len(args) == 1 && isOneOf(args[0], "-h", "-help", "--help") {
		opts.Help = true
		return opts
	}

	rest := args
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		opts.Tool = args[0]
		rest = args[1:]
	}
	for _, arg := range rest {
		switch {
		case isOneOf(arg, "-benchmark", "--benchmark"):
			opts.Benchmark = true
		case isOneOf(arg, "-v", "-version", "--version"):
			opts.Version = true
		default:
			opts.Args = append(opts.Args, arg)
		}
	}
	return opts
}

func isOneOf(arg string, candidates ...string) bool {
	for _, c := range candidates {
		if arg == c {
			return true
		}
	}
	return false
}

// ParseProviders splits a comma separated provider list, e.g. "native,pure".
func ParseProviders(list string) ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, fmt.Errorf("provider %q listed twice", name)
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no providers selected")
	}
	return names, nil
}
