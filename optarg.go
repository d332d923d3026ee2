// Copyright 2023-2025, the optarg authors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package optarg implements getopt-style command-line option parsing.
//
// A program declares its options on a Parser, one call per option, and
// hands over its argument vector:
//
//	parser := optarg.NewParser().
//		AddOption("h", "help", "", "print this help and exit").
//		AddOption("o", "output", "FILE", "write the result to FILE").
//		AddOption("v", "verbose", "", "increase verbosity")
//
//	result, err := parser.ParseArgv(os.Args)
//
// The placeholder passed to AddOption encodes whether an option takes
// an argument: empty for none, a bracketed form such as "[ARG]" for
// optional, any other non-empty form for required. Its spelling also
// shapes the help text:
//
//	AddOption("f", "foo", "ARG", ...)    ->  -f, --foo ARG
//	AddOption("f", "", "ARG", ...)       ->  -f ARG
//	AddOption("f", "foo", "=ARG", ...)   ->  -f, --foo=ARG
//	AddOption("f", "", "=ARG", ...)      ->  -fARG
//	AddOption("f", "foo", "[ARG]", ...)  ->  -f, --foo[=ARG]
//
// Parsing follows the usual GNU conventions: short flags cluster
// ("-abc"), long options take inline values ("--foo=bar"), a lone "-"
// is positional and "--" ends option processing.
package optarg

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/arglab/optarg/parse"
	"github.com/arglab/optarg/util"
)

// NewParser creates a Parser with an empty option table.
func NewParser() *Parser {
	return &Parser{}
}

// New creates a Parser and applies the given configuration functions.
func New(configs ...ConfigureParserFunc) *Parser {
	parser := NewParser()
	for _, config := range configs {
		config(parser)
	}

	return parser
}

// AddOption declares an option and returns the Parser for chaining.
// A short flag longer than one character is silently truncated to its
// first character. An empty long flag is replaced by the short flag, so
// every option has a canonical name for lookups and results. The
// placeholder is normalized for display: a leading "=" or "[" keeps the
// value glued to the flag in help output, any other non-empty form is
// separated by a space.
func (p *Parser) AddOption(short, long, placeholder, description string) *Parser {
	if utf8.RuneCountInString(short) > 1 {
		_, size := utf8.DecodeRuneInString(short)
		short = short[:size]
	}

	switch {
	case strings.HasPrefix(placeholder, "="):
		if long == "" {
			// No long flag, drop the '=' so -f=ARG becomes -fARG.
			placeholder = placeholder[1:]
		}
	case strings.HasPrefix(placeholder, "["):
		if long == "" {
			// No long flag, drop any '=' so -f[=ARG] becomes -f[ARG].
			if strings.HasPrefix(placeholder, "[=") {
				placeholder = "[" + placeholder[2:]
			}
		} else if !strings.HasPrefix(placeholder, "[=") {
			// Long flag, add '=' so --foo[ARG] becomes --foo[=ARG].
			placeholder = "[=" + placeholder[1:]
		}
	case placeholder != "":
		placeholder = " " + placeholder
	}

	if long == "" {
		long = short
	}

	p.options = append(p.options, &Option{
		Short:       short,
		Long:        long,
		Placeholder: placeholder,
		Description: description,
	})

	return p
}

// Options returns the declared options in declaration order.
func (p *Parser) Options() []*Option {
	return p.options
}

// Parse processes args, which hold the arguments only, no program name.
// On failure the returned error is a *ParseError whose OriginatingArg
// indexes into args.
func (p *Parser) Parse(args []string) (*ParseResult, error) {
	result, perr := p.parseAll(parse.NewState(args))
	if perr != nil {
		return nil, perr
	}

	return result, nil
}

// ParseArgv processes an argument vector exactly as the platform hands
// it to the process, with the program name in argv[0]. On failure
// OriginatingArg is the 1-based index of the offending element.
func (p *Parser) ParseArgv(argv []string) (*ParseResult, error) {
	if len(argv) < 1 {
		return nil, &ParseError{OriginatingArg: 0, Message: "empty argument list"}
	}

	result, perr := p.parseAll(parse.NewState(argv[1:]))
	if perr != nil {
		perr.OriginatingArg++
		return nil, perr
	}

	return result, nil
}

// ParseString splits line like a shell would and parses the pieces.
// The line holds arguments only, no program name.
func (p *Parser) ParseString(line string) (*ParseResult, error) {
	args, err := parse.Split(line)
	if err != nil {
		return nil, err
	}

	return p.Parse(args)
}

// OptionHelp renders the declared options as aligned help text. A
// non-zero lineWidth word-wraps the descriptions so lines stay within
// that total width.
func (p *Parser) OptionHelp(lineWidth int) string {
	return NewRenderer(p).OptionHelp(lineWidth)
}

// PrintUsage writes a usage header and the option help to w. When w is
// a terminal the help wraps to its width, otherwise at 78 columns.
func (p *Parser) PrintUsage(w io.Writer) {
	width := 78
	if f, ok := w.(*os.File); ok {
		if tw, isTerm := util.TerminalWidth(int(f.Fd()), util.DefaultTerminal); isTerm {
			width = tw
		}
	}
	fmt.Fprintf(w, "usage: %s [options]\n\n%s", os.Args[0], p.OptionHelp(width))
}
