package optarg

import (
	"github.com/arglab/optarg/completion"
)

// CompletionData returns the declared options in the shape the
// completion generators consume.
func (p *Parser) CompletionData() completion.CompletionData {
	data := completion.CompletionData{}

	for _, opt := range p.options {
		if opt.Short == "" && opt.Long == "" {
			continue
		}

		flag := completion.CompletionFlag{
			Short:       opt.Short,
			Description: opt.Description,
			TakesValue:  opt.TakesArgument(),
		}
		if opt.Long != opt.Short {
			flag.Long = opt.Long
		}

		data.Flags = append(data.Flags, flag)
	}

	return data
}

// GenerateCompletion renders a completion script for shell, one of
// "bash", "zsh", "fish" or "powershell". Unknown shells render the
// bash script.
func (p *Parser) GenerateCompletion(shell, programName string) string {
	return completion.GetGenerator(shell).Generate(programName, p.CompletionData())
}
