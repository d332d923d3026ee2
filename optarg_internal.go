package optarg

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arglab/optarg/parse"
)

func (p *Parser) findLongOption(name string) *Option {
	for _, opt := range p.options {
		if opt.Long == name {
			return opt
		}
	}

	return nil
}

func (p *Parser) findShortOption(flag string) *Option {
	for _, opt := range p.options {
		if opt.Short == flag {
			return opt
		}
	}

	return nil
}

// parseAll classifies one argument per iteration. Occurrences are
// recorded under the matched option's canonical long name; the first
// error aborts the walk.
func (p *Parser) parseAll(state parse.State) (*ParseResult, *ParseError) {
	result := newParseResult()

	for state.Advance() {
		arg := state.CurrentArg()
		switch {
		case !strings.HasPrefix(arg, "-") || arg == "-":
			result.addPositional(arg)
		case arg == "--":
			for _, rest := range state.Drain() {
				result.addPositional(rest)
			}
			return result, nil
		case strings.HasPrefix(arg, "--"):
			if err := p.parseLongOption(state, result, arg[2:]); err != nil {
				return nil, err
			}
		default:
			if err := p.parseShortCluster(state, result, arg[1:]); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// parseLongOption handles one "--name" or "--name=value" element, arg
// stripped of its leading dashes.
func (p *Parser) parseLongOption(state parse.State, result *ParseResult, arg string) *ParseError {
	name := arg
	value := ""
	hasValue := false
	if eq := strings.IndexByte(arg, '='); eq >= 0 {
		name = arg[:eq]
		value = arg[eq+1:]
		hasValue = true
	}

	opt := p.findLongOption(name)
	if opt == nil {
		return &ParseError{
			OriginatingArg: state.Pos(),
			Message:        fmt.Sprintf("unrecognized long option '--%s'", name),
		}
	}

	switch {
	case hasValue && !opt.TakesArgument():
		return &ParseError{
			OriginatingArg: state.Pos(),
			Message:        fmt.Sprintf("extraneous argument in '--%s'", arg),
		}
	case hasValue:
		result.addOptionArgument(opt.Long, value)
	case opt.RequiresArgument():
		// The next element is the value, even when it looks like an option.
		if !state.Advance() {
			return &ParseError{
				OriginatingArg: state.Pos(),
				Message:        fmt.Sprintf("missing required argument for '--%s'", arg),
			}
		}
		result.addOptionArgument(opt.Long, state.CurrentArg())
	default:
		result.addOption(opt.Long)
	}

	return nil
}

// parseShortCluster handles one "-abc" element, cluster stripped of its
// leading dash. The first flag that takes an argument ends the cluster:
// either the remaining characters are its value or the next element is.
func (p *Parser) parseShortCluster(state parse.State, result *ParseResult, cluster string) *ParseError {
	for i := 0; i < len(cluster); {
		_, size := utf8.DecodeRuneInString(cluster[i:])
		flag := cluster[i : i+size]
		i += size

		opt := p.findShortOption(flag)
		if opt == nil {
			return &ParseError{
				OriginatingArg: state.Pos(),
				Message:        fmt.Sprintf("unrecognized short option '%s' in '-%s'", flag, cluster),
			}
		}

		if !opt.TakesArgument() {
			result.addOption(opt.Long)
			continue
		}

		if i < len(cluster) {
			result.addOptionArgument(opt.Long, cluster[i:])
			return nil
		}

		if !opt.RequiresArgument() {
			result.addOption(opt.Long)
			return nil
		}

		if !state.Advance() {
			return &ParseError{
				OriginatingArg: state.Pos(),
				Message:        fmt.Sprintf("missing required argument for '%s' in '-%s'", flag, cluster),
			}
		}
		result.addOptionArgument(opt.Long, state.CurrentArg())
		return nil
	}

	return nil
}
