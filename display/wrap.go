package display

import "strings"

// Wrap splits text into lines no longer than width, breaking at the
// last space at or before the limit. When no space exists in range
// the line is broken hard at the limit, so a single oversized word
// can never stall the loop. Empty text yields no lines.
func Wrap(text string, width int) []string {
	if text == "" {
		return nil
	}
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	var lines []string
	for len(text) > width {
		cut := strings.LastIndexByte(text[:width+1], ' ')
		if cut <= 0 {
			lines = append(lines, text[:width])
			text = text[width:]
			continue
		}
		lines = append(lines, text[:cut])
		text = text[cut+1:]
	}
	if text != "" {
		lines = append(lines, text)
	}
	return lines
}
