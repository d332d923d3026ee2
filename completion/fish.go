package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	for _, flag := range data.Flags {
		cmd := fmt.Sprintf("complete -c %s", programName)

		// Flags without a value never complete files; flags with one
		// require it.
		if flag.TakesValue {
			cmd += " -r"
		} else {
			cmd += " -f"
		}

		if flag.Short != "" {
			cmd += fmt.Sprintf(" -s %s", flag.Short)
		}
		if flag.Long != "" {
			cmd += fmt.Sprintf(" -l %s", flag.Long)
		}
		if flag.Description != "" {
			cmd += fmt.Sprintf(" -d '%s'", escapeFish(flag.Description))
		}

		script.WriteString(cmd + "\n")
	}

	return script.String()
}
