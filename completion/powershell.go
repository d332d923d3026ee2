package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`Register-ArgumentCompleter -Native -CommandName %s -ScriptBlock {
    param($commandName, $wordToComplete, $cursorPosition)

    $flags = @(`, programName))

	for _, flag := range data.Flags {
		for _, spelling := range flag.Spellings() {
			tooltip := escapePowerShell(flag.Description)
			if tooltip == "" {
				tooltip = spelling
			}

			script.WriteString(fmt.Sprintf(`
        [System.Management.Automation.CompletionResult]::new('%s', '%s', 'ParameterName', '%s')`,
				spelling, strings.TrimLeft(spelling, "-"), tooltip))
		}
	}

	script.WriteString(`
    )

    $flags | Where-Object { $_.CompletionText -like "$wordToComplete*" }
}
`)

	return script.String()
}
