package completion

// Generator renders a completion script for one shell.
type Generator interface {
	Generate(programName string, data CompletionData) string
}

// GetGenerator returns the generator for shell. Unknown shells fall
// back to bash.
func GetGenerator(shell string) Generator {
	switch shell {
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	case "powershell":
		return &PowerShellGenerator{}
	case "bash":
		fallthrough
	default:
		return &BashGenerator{}
	}
}
