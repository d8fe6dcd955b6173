package gtpprotocol

import (
	"strconv"
	"strings"
)

// Normalize strips everything GTP tells an engine to ignore: control
// characters, comments, repeated blank lines, and runs of spaces and tabs.
// Whitespace at the start of a line is dropped and any run of spaces or
// tabs becomes a single space. Normalize is idempotent.
func Normalize(raw string) string {
	var out strings.Builder
	out.Grow(len(raw))

	last := '\n'
	inComment := false
	for _, c := range raw {
		switch {
		case isControl(c):
			continue
		case c == '\n':
			inComment = false
			if last == '\n' {
				continue
			}
			last = '\n'
			out.WriteRune(c)
		case c == CommentMarker:
			inComment = true
		case inComment:
			continue
		case c == ' ' || c == '\t':
			if last == ' ' || last == '\n' {
				continue
			}
			last = ' '
			out.WriteByte(' ')
		default:
			last = c
			out.WriteRune(c)
		}
	}
	return out.String()
}

// isControl reports whether c is a control character other than tab and
// newline.
func isControl(c rune) bool {
	return (c >= 0 && c <= 8) || (c >= 11 && c <= 31) || c == 127
}

// ParseCommandLine splits one normalized line into an optional numeric id,
// a command name and the raw argument string. It returns false when the
// line holds no command. A line made only of an id, such as "56", holds
// no command.
func ParseCommandLine(line string) (Command, bool) {
	if strings.TrimSpace(line) == "" {
		return Command{}, false
	}

	first, rest, _ := strings.Cut(line, " ")

	var id *uint32
	region := line
	if n, err := strconv.ParseUint(first, 10, 32); err == nil {
		v := uint32(n)
		id = &v
		region = rest
	}

	name, args, _ := strings.Cut(region, " ")
	if name == "" {
		return Command{}, false
	}
	return Command{ID: id, Name: name, Args: args}, true
}

// ParseCommand normalizes raw input and parses the first line that
// remains. Later lines in the same input are discarded: one read, one
// command.
func ParseCommand(input string) (Command, bool) {
	line, _, _ := strings.Cut(Normalize(input), "\n")
	return ParseCommandLine(line)
}
