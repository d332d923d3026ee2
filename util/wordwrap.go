package util

// WordWrap splits text into lines no longer than width bytes, breaking
// only at spaces and as late as possible. Leading spaces are skipped, a
// single word longer than width is emitted unbroken, and an empty or
// all-space text yields no lines.
func WordWrap(text string, width int) []string {
	var lines []string
	n := len(text)

	lineStart := 0
	for lineStart < n && text[lineStart] == ' ' {
		lineStart++
	}
	spaceBegin := lineStart
	for spaceBegin < n && text[spaceBegin] != ' ' {
		spaceBegin++
	}

	for spaceBegin < n {
		spaceEnd := spaceBegin
		for spaceEnd < n && text[spaceEnd] == ' ' {
			spaceEnd++
		}
		nextSpaceBegin := spaceEnd
		for nextSpaceBegin < n && text[nextSpaceBegin] != ' ' {
			nextSpaceBegin++
		}
		if nextSpaceBegin-lineStart > width {
			lines = append(lines, text[lineStart:spaceBegin])
			lineStart = spaceEnd
		}
		spaceBegin = nextSpaceBegin
	}

	if lineStart < n {
		lines = append(lines, text[lineStart:])
	}

	return lines
}
