package completion

import (
	"fmt"
	"os"
	"path/filepath"
)

// CompletionManager generates a completion script for one shell and
// installs it under the shell's conventional per-user directory.
type CompletionManager struct {
	Shell       string
	ProgramName string
	Paths       CompletionPaths

	generator Generator
	script    string
}

// NewCompletionManager creates a manager for shell. The program name
// may be a full path; only its base name is used.
func NewCompletionManager(shell, programName string) (*CompletionManager, error) {
	paths, err := getCompletionPaths(shell)
	if err != nil {
		return nil, fmt.Errorf("resolving completion paths: %w", err)
	}

	return &CompletionManager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   GetGenerator(shell),
	}, nil
}

// Accept generates and stores the completion script for data.
func (m *CompletionManager) Accept(data CompletionData) {
	m.script = m.generator.Generate(m.ProgramName, data)
}

// Save writes the generated script into the shell's completion
// directory and returns the written path. The fallback directory is
// used when the primary cannot be created.
func (m *CompletionManager) Save() (string, error) {
	if m.script == "" {
		return "", fmt.Errorf("no completion script generated")
	}

	dir, err := m.ensureDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, m.scriptName())
	if err := os.WriteFile(path, []byte(m.script), 0644); err != nil {
		return "", fmt.Errorf("writing completion script: %w", err)
	}

	return path, nil
}

func (m *CompletionManager) ensureDir() (string, error) {
	err := os.MkdirAll(m.Paths.Primary, 0755)
	if err == nil {
		return m.Paths.Primary, nil
	}
	if m.Paths.Fallback == "" {
		return "", fmt.Errorf("creating completion directory: %w", err)
	}

	if err := os.MkdirAll(m.Paths.Fallback, 0755); err != nil {
		return "", fmt.Errorf("creating completion directory: %w", err)
	}

	return m.Paths.Fallback, nil
}

// scriptName applies the shell's naming convention: zsh completions
// start with an underscore, fish and powershell need an extension.
func (m *CompletionManager) scriptName() string {
	switch m.Shell {
	case "zsh":
		return "_" + m.ProgramName
	case "fish":
		return m.ProgramName + ".fish"
	case "powershell":
		return m.ProgramName + ".ps1"
	default:
		return m.ProgramName
	}
}
