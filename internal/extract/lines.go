package extract

import "strings"

// fallbackTitle seeds the form when the transcript has no usable line.
const fallbackTitle = "Receipt"

// Lines splits raw text into trimmed, non-empty lines, original order
// preserved.
func Lines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// GuessTitle returns the first non-blank line of the transcript. Receipts
// almost always open with the merchant name, so that line makes a reasonable
// default for the form's title field.
func GuessTitle(raw string) string {
	if lines := Lines(raw); len(lines) > 0 {
		return lines[0]
	}
	return fallbackTitle
}
