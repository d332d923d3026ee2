package optarg

import (
	"errors"
	"strings"
)

// Option is one declared command-line option. Placeholder is the
// normalized display form produced by AddOption and doubles as the
// argument mode: empty means the option takes no argument, a leading
// '[' marks the argument optional, anything else required.
type Option struct {
	Short       string
	Long        string
	Placeholder string
	Description string
}

// TakesArgument reports whether the option accepts an argument at all.
func (o *Option) TakesArgument() bool {
	return o.Placeholder != ""
}

// RequiresArgument reports whether the option cannot appear bare.
func (o *Option) RequiresArgument() bool {
	return o.TakesArgument() && !strings.HasPrefix(o.Placeholder, "[")
}

// Parser holds the declared option table. Declare options up front with
// AddOption, then call Parse, ParseArgv or ParseString as often as
// needed; a Parser is safe for concurrent parsing once declaration is
// finished.
type Parser struct {
	options []*Option
}

// ParseError describes why parsing stopped. OriginatingArg is the index
// of the offending argument: 1-based from ParseArgv, where the program
// name is element 0, and 0-based from Parse and ParseString.
type ParseError struct {
	OriginatingArg int
	Message        string
}

func (e *ParseError) Error() string {
	return e.Message
}

// ConfigureParserFunc is used when building a Parser with New
type ConfigureParserFunc func(parser *Parser)

var (
	// ErrOptionNotSet is returned by the typed getters when the option
	// never occurred on the command line.
	ErrOptionNotSet = errors.New("option not set")
	// ErrNoArgument is returned by the typed getters when the option
	// occurred but never captured a value.
	ErrNoArgument = errors.New("option has no argument")
)

// FmtErrorWithString is a format string for wrapping errors with detail
const FmtErrorWithString = "%w: %s"
