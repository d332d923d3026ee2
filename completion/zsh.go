package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf("#compdef %s\n\n_arguments -s", programName))

	for _, flag := range data.Flags {
		desc := escapeZsh(flag.Description)

		value := ""
		if flag.TakesValue {
			value = ":value:_files"
		}

		var entry string
		switch {
		case flag.Short != "" && flag.Long != "":
			entry = fmt.Sprintf("'(-%[1]s --%[2]s)'{-%[1]s,--%[2]s}'[%[3]s]%[4]s'",
				flag.Short, flag.Long, desc, value)
		case flag.Short != "":
			entry = fmt.Sprintf("'-%s[%s]%s'", flag.Short, desc, value)
		default:
			entry = fmt.Sprintf("'--%s[%s]%s'", flag.Long, desc, value)
		}

		script.WriteString(" \\\n    " + entry)
	}

	script.WriteString(" \\\n    '*:file:_files'\n")

	return script.String()
}
