package completion

import (
	"strings"
)

var bashEscaper = strings.NewReplacer(
	`"`, `\"`,
	`'`, `\'`,
	`$`, `\$`,
	`[`, `\[`,
	`]`, `\]`,
)

func escapeBash(s string) string {
	return bashEscaper.Replace(s)
}

var zshEscaper = strings.NewReplacer(
	`[`, `\[`,
	`]`, `\]`,
	`"`, `\"`,
)

func escapeZsh(s string) string {
	return zshEscaper.Replace(s)
}

func escapeFish(s string) string {
	return strings.ReplaceAll(s, `'`, `\'`)
}

var powerShellEscaper = strings.NewReplacer(
	"`", "``",
	`"`, "`\"",
	`$`, "`$",
	`'`, `''`,
)

func escapePowerShell(s string) string {
	return powerShellEscaper.Replace(s)
}
