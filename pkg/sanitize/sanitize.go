// Package sanitize neutralizes terminal control sequences in strings taken
// from untrusted log content before they are printed in a report. Log files
// are attacker-influenced input; a raw ESC sequence echoed to a terminal can
// rewrite or hide report output.
package sanitize

import "strings"

// DefaultMaxDisplayLength bounds how much of a log-derived token the text
// report will show.
const DefaultMaxDisplayLength = 256

// String sanitizes s for terminal display and truncates it to maxLen bytes
// (with a "..." marker). maxLen <= 0 disables truncation.
func String(s string, maxLen int) string {
	sanitized := Terminal(s)
	if maxLen > 0 && len(sanitized) > maxLen {
		if maxLen > 3 {
			return sanitized[:maxLen-3] + "..."
		}
		return sanitized[:maxLen]
	}
	return sanitized
}

// Terminal replaces control bytes with visible placeholders. ANSI CSI
// sequences are swallowed whole and rendered as a single [ESC] marker.
func Terminal(s string) string {
	clean := true
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < 0x20 || c == 0x7F {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(s) {
		c := s[i]

		if c == 0x1B {
			i++
			if i < len(s) && s[i] == '[' {
				i++
				for i < len(s) && !isCSITerminator(s[i]) {
					i++
				}
				if i < len(s) {
					i++
				}
			}
			b.WriteString("[ESC]")
			continue
		}

		switch {
		case c == '\t' || c == '\n':
			b.WriteByte(' ')
		case c == '\r':
			b.WriteString("[CR]")
		case c < 0x20:
			b.WriteString("[CTRL]")
		case c == 0x7F:
			b.WriteString("[DEL]")
		default:
			b.WriteByte(c)
		}
		i++
	}
	return b.String()
}

func isCSITerminator(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '@' || c == '`'
}
