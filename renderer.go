package optarg

import (
	"strings"

	"github.com/arglab/optarg/util"
)

// flagsLenLimit caps the width of the flags column. Options whose flags
// run longer start their description on the next line instead of
// pushing the column out.
const flagsLenLimit = 29

// DefaultRenderer renders a Parser's option table as help text.
type DefaultRenderer struct {
	parser *Parser
}

// NewRenderer creates a renderer for parser.
func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// OptionLine returns the flags part of one option's help entry, such as
// "  -f, --foo=ARG". Options without a short flag are indented onto the
// long flag column.
func (r *DefaultRenderer) OptionLine(opt *Option) string {
	var line strings.Builder

	if opt.Short == "" {
		line.WriteString("    ")
	} else {
		line.WriteString("  -")
		line.WriteString(opt.Short)
	}

	if opt.Long != "" && opt.Long != opt.Short {
		if opt.Short != "" {
			line.WriteString(", ")
		} else {
			line.WriteString("  ")
		}
		line.WriteString("--")
		line.WriteString(opt.Long)
	}

	line.WriteString(opt.Placeholder)

	return line.String()
}

// flagsLen is the width of the flags column: the longest flags part
// plus two separating spaces, capped at flagsLenLimit.
func (r *DefaultRenderer) flagsLen() int {
	longest := 0
	for _, opt := range r.parser.options {
		// Length of "  -f, --" plus long name and placeholder, plus
		// two spaces before the description.
		longest = util.Max(longest, 8+len(opt.Long)+len(opt.Placeholder)+2)
	}

	return util.Min(flagsLenLimit, longest)
}

// OptionHelp renders every declared option, one block per option in
// declaration order. A non-zero lineWidth word-wraps descriptions so
// lines stay within it; it is widened to the flags column when smaller.
func (r *DefaultRenderer) OptionHelp(lineWidth int) string {
	flagsLen := r.flagsLen()

	if lineWidth != 0 && lineWidth < flagsLen {
		lineWidth = flagsLen
	}

	var help strings.Builder

	for _, opt := range r.parser.options {
		optionLine := r.OptionLine(opt)
		help.WriteString(optionLine)

		leadingSpace := flagsLen
		if len(optionLine)+2 > flagsLen {
			help.WriteByte('\n')
		} else {
			leadingSpace = flagsLen - len(optionLine)
		}

		if lineWidth != 0 {
			for _, line := range util.WordWrap(opt.Description, lineWidth-flagsLen) {
				help.WriteString(strings.Repeat(" ", leadingSpace))
				help.WriteString(line)
				help.WriteByte('\n')
				leadingSpace = flagsLen
			}
		} else {
			help.WriteString(strings.Repeat(" ", leadingSpace))
			help.WriteString(opt.Description)
			help.WriteByte('\n')
		}
	}

	return help.String()
}
