package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Split tokenizes a command line into arguments using cmd.exe quoting
// rules: double quotes group words, ^ escapes the next character and
// backslashes are literal except when a run of them precedes a quote.
func Split(s string) ([]string, error) {
	var tokens []string
	var argBuilder strings.Builder
	inQuotes := false
	escaped := false

	i := 0
	length := len(s)

	for i < length {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("invalid UTF-8 encoding at position %d", i)
		}

		if r == '\n' || r == '\r' {
			r = ' '
		}

		if escaped {
			argBuilder.WriteRune(r)
			escaped = false
			i += size
			continue
		}

		if !inQuotes && r == '^' {
			escaped = true
			i += size
			continue
		}

		if r == '"' {
			inQuotes = !inQuotes
			i += size
			continue
		}

		if r == '\\' {
			numBackslashes := 0
			for i < length && s[i] == '\\' {
				numBackslashes++
				i++
			}

			// A run of backslashes is literal unless it ends at a quote:
			// each pair becomes one backslash, an odd run escapes the quote.
			if i < length && s[i] == '"' {
				argBuilder.WriteString(strings.Repeat("\\", numBackslashes/2))
				if numBackslashes%2 == 0 {
					inQuotes = !inQuotes
				} else {
					argBuilder.WriteByte('"')
				}
				i++
			} else {
				argBuilder.WriteString(strings.Repeat("\\", numBackslashes))
			}
			continue
		}

		if !inQuotes && (r == ' ' || r == '\t') {
			if argBuilder.Len() > 0 {
				tokens = append(tokens, argBuilder.String())
				argBuilder.Reset()
			}
			i += size
			continue
		}

		argBuilder.WriteRune(r)
		i += size
	}

	if argBuilder.Len() > 0 {
		tokens = append(tokens, argBuilder.String())
	}

	return tokens, nil
}
