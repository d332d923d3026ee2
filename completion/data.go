// Package completion generates shell completion scripts from a
// declared option table. Bash, zsh, fish and PowerShell are supported.
package completion

// CompletionFlag describes one option for script generation. Spellings
// are stored without their dashes; generators add the dashes the target
// shell expects.
type CompletionFlag struct {
	Long        string
	Short       string
	Description string
	TakesValue  bool
}

// Spellings returns the dashed forms of the flag, short form first.
func (f CompletionFlag) Spellings() []string {
	var spellings []string

	if f.Short != "" {
		spellings = append(spellings, "-"+f.Short)
	}
	if f.Long != "" {
		spellings = append(spellings, "--"+f.Long)
	}

	return spellings
}

// CompletionData holds everything a Generator needs to produce a
// script.
type CompletionData struct {
	Flags []CompletionFlag
}
