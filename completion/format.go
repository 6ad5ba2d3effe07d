package completion

import (
	"regexp"
	"strings"
)

var angleTagPattern = regexp.MustCompile(`<[^>]*>`)

// FormatDescription sanitizes free text for embedding inside a
// single-quoted shell string. Single quotes are doubled, <placeholder>
// tags are removed since angle brackets are structurally meaningful in
// completion syntax, and each line is chomped of one trailing period
// before the lines are joined with spaces. Total: never fails, any input
// including "" yields a usable result.
func FormatDescription(text string) string {
	text = strings.ReplaceAll(text, "'", "''")
	text = angleTagPattern.ReplaceAllString(text, "")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, ".")
	}
	return strings.Join(lines, " ")
}

// quoteIfDashed wraps a name in single quotes when it could be mistaken
// for a flag in a generated word list.
func quoteIfDashed(name string) string {
	if strings.HasPrefix(name, "-") {
		return "'" + name + "'"
	}
	return name
}
