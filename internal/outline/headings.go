package outline

import "strings"

// Heading is an ATX markdown heading line.
type Heading struct {
	Level int
	Text  string
}

// Headings returns the ATX headings of content in document order.
func Headings(content string) []Heading {
	var out []Heading
	for _, line := range strings.Split(content, "\n") {
		level := 0
		for level < len(line) && line[level] == '#' {
			level++
		}
		if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
			continue
		}
		out = append(out, Heading{Level: level, Text: strings.TrimSpace(line[level+1:])})
	}
	return out
}
