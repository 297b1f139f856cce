// Package diff compares resolved styles line by line.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themecss/pkg/css"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Resolved renders both styles as YAML with sorted keys and returns a unified diff
// between them. The result is empty when the styles are structurally equal.
func Resolved(before, after css.Resolved, beforeLabel, afterLabel string) (string, error) {
	left, err := yaml.Marshal(before)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", beforeLabel, err)
	}
	right, err := yaml.Marshal(after)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", afterLabel, err)
	}
	return Lines(left, right, beforeLabel, afterLabel), nil
}

// Lines returns a unified, line-oriented diff of two documents.
// Diffs longer than 10,000 lines are truncated with a marker line.
func Lines(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(doc []byte) int {
	return len(splitLines(string(doc)))
}
