package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	spellings := make([]string, 0, 2*len(data.Flags))
	valueSpellings := make([]string, 0, len(data.Flags))

	for _, flag := range data.Flags {
		for _, spelling := range flag.Spellings() {
			spellings = append(spellings, spelling)
			if flag.TakesValue {
				valueSpellings = append(valueSpellings, spelling)
			}
		}
	}

	script.WriteString("#!/bin/bash\n\n")
	script.WriteString(fmt.Sprintf("function __%s_completion() {\n", programName))
	script.WriteString("    local cur prev\n")
	script.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	script.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")

	// After a flag that takes a value, hand completion to the filesystem.
	if len(valueSpellings) > 0 {
		script.WriteString("\n    case \"${prev}\" in\n")
		script.WriteString(fmt.Sprintf("        %s)\n", strings.Join(valueSpellings, "|")))
		script.WriteString("            COMPREPLY=( $(compgen -f -- \"$cur\") )\n")
		script.WriteString("            return\n")
		script.WriteString("            ;;\n")
		script.WriteString("    esac\n")
	}

	script.WriteString("\n    if [[ \"${cur}\" == -* ]]; then\n")
	script.WriteString(fmt.Sprintf("        COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n",
		strings.Join(spellings, " ")))
	script.WriteString("        return\n")
	script.WriteString("    fi\n\n")
	script.WriteString("    COMPREPLY=( $(compgen -f -- \"$cur\") )\n")
	script.WriteString("}\n\n")
	script.WriteString(fmt.Sprintf("complete -F __%[1]s_completion %[1]s\n", programName))

	return script.String()
}
