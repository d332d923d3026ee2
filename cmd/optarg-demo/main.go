// Demo program showing the optarg parsing loop end to end.
package main

import (
	"fmt"
	"os"

	"github.com/arglab/optarg"
)

func main() {
	parser := optarg.NewParser().
		AddOption("h", "help", "", "print this help and exit").
		AddOption("r", "required", "ARG", "option with required argument").
		AddOption("o", "optional", "[ARG]", "option with optional argument")

	result, err := parser.ParseArgv(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "optarg-demo: %v\n", err)
		os.Exit(1)
	}

	if result.Count("help") > 0 {
		fmt.Printf("usage: optarg-demo [options] ARG...\n\nDemo program for optarg.\n\n%s", parser.OptionHelp(78))
		return
	}

	if len(result.PositionalArgs()) < 1 {
		parser.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	for _, opt := range result.ParsedOptions() {
		fmt.Printf("option '%s' appeared %d time(s)", opt.Name, opt.Count)

		if len(opt.Arguments) > 0 {
			fmt.Print(" with argument(s):")
			for _, argument := range opt.Arguments {
				fmt.Printf(" '%s'", argument)
			}
		}

		fmt.Println()
	}

	for _, argument := range result.PositionalArgs() {
		fmt.Printf("positional argument '%s'\n", argument)
	}
}
