// Package format contains the pure text and number helpers shared by the
// editor preview contract and the PDF renderer. Both sides must apply the
// exact same rules so the on-screen totals and the rendered document agree.
package format

import (
	"strconv"
	"strings"
)

// Dash is the placeholder printed for empty user-facing fields.
const Dash = "—"

// ParseDecimal parses user-entered decimal text leniently: every character
// except digits and '.' is stripped before parsing, and anything that still
// fails to parse becomes zero. Input is never rejected.
func ParseDecimal(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return n
}

// Money renders n with exactly two decimals and comma thousands separators.
func Money(n float64) string {
	s := strconv.FormatFloat(n, 'f', 2, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		// FormatFloat emits no decimal point only for Inf and NaN, which
		// lenient parsing can produce from overflowing inputs. Print them
		// as-is rather than refusing to render.
		if neg {
			return "-" + s
		}
		return s
	}
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(fracPart)
	return b.String()
}

// Truncate hard-truncates s to at most max runes. No ellipsis is added; the
// fixed-width table column simply cuts the text off.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// WrapText greedily fills lines up to a character budget. A word that would
// push the current line past the budget starts a new line; a single word
// longer than the budget keeps its own line unbroken. Empty input yields a
// single dash line.
func WrapText(text string, maxLen int) []string {
	words := strings.Fields(text)
	lines := make([]string, 0, len(words)/8+1)
	line := ""

	for _, w := range words {
		next := w
		if line != "" {
			next = line + " " + w
		}
		if len([]rune(next)) > maxLen {
			if line != "" {
				lines = append(lines, line)
			}
			line = w
		} else {
			line = next
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return []string{Dash}
	}
	return lines
}

// OrDash substitutes the dash placeholder for an empty string.
func OrDash(s string) string {
	if s == "" {
		return Dash
	}
	return s
}
