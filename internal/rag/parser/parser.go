package parser

import (
	"regexp"
	"strings"

	"github.com/ramanshrivastava/build-ai-agents/internal/rag/ragModel"
)

var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// ParseMarkdown splits markdown text into sections, one per heading, each
// carrying its full heading-path lineage. A single pass over the lines.
//
// The heading stack tracks the current heading at each depth. When a document
// jumps levels (an h1 followed directly by an h3) the skipped depths are
// padded with empty strings so Path always has Level entries.
func ParseMarkdown(text string) []ragModel.Section {
	lines := strings.Split(text, "\n")

	var sections []ragModel.Section
	var headingStack []string
	var bodyLines []string
	currentHeading := ""
	currentLevel := 0

	flush := func() {
		body := strings.TrimSpace(strings.Join(bodyLines, "\n"))
		if body == "" && currentHeading == "" {
			return
		}
		path := make([]string, len(headingStack))
		copy(path, headingStack)
		sections = append(sections, ragModel.Section{
			Heading: currentHeading,
			Level:   currentLevel,
			Body:    body,
			Path:    path,
		})
	}

	for _, line := range lines {
		match := headingPattern.FindStringSubmatch(line)
		if match == nil {
			bodyLines = append(bodyLines, line)
			continue
		}

		flush()
		level := len(match[1])
		heading := strings.TrimSpace(match[2])

		// Trim the stack to the parent depth, pad skipped levels, then push.
		if level-1 < len(headingStack) {
			headingStack = headingStack[:level-1]
		}
		for len(headingStack) < level-1 {
			headingStack = append(headingStack, "")
		}
		headingStack = append(headingStack, heading)

		currentHeading = heading
		currentLevel = level
		bodyLines = nil
	}

	flush()
	return sections
}
