package completion

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// CompletionPaths names where a shell looks for user completion
// scripts, with a fallback when the primary cannot be used.
type CompletionPaths struct {
	Primary  string
	Fallback string
}

func getCompletionPaths(shell string) (CompletionPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return CompletionPaths{}, fmt.Errorf("resolving home directory: %w", err)
	}

	return completionPaths(runtime.GOOS, home, shell)
}

// completionPaths resolves the conventional per-user completion
// directories. Only powershell differs between operating systems; the
// unix shells use the same locations everywhere.
func completionPaths(goos, home, shell string) (CompletionPaths, error) {
	join := func(parts ...string) string {
		return filepath.Join(append([]string{home}, parts...)...)
	}

	switch shell {
	case "bash":
		return CompletionPaths{
			Primary:  join(".local", "share", "bash-completion", "completions"),
			Fallback: join(".bash_completion.d"),
		}, nil

	case "zsh":
		return CompletionPaths{
			Primary:  join(".zsh", "completion"),
			Fallback: join(".zfunc"),
		}, nil

	case "fish":
		return CompletionPaths{
			Primary:  join(".config", "fish", "completions"),
			Fallback: join(".local", "share", "fish", "completions"),
		}, nil

	case "powershell":
		switch goos {
		case "windows":
			return CompletionPaths{
				Primary:  join("Documents", "PowerShell", "Completions"),
				Fallback: join(".config", "powershell", "Completions"),
			}, nil
		case "darwin":
			return CompletionPaths{
				Primary:  join("Library", "PowerShell", "Completions"),
				Fallback: join(".config", "powershell", "Completions"),
			}, nil
		default:
			return CompletionPaths{
				Primary:  join(".config", "powershell", "Completions"),
				Fallback: join(".local", "share", "powershell", "Completions"),
			}, nil
		}

	default:
		return CompletionPaths{}, fmt.Errorf("unsupported shell: %s", shell)
	}
}
