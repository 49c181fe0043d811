// Package chart renders abstraction levels as a plain-text bar chart, one row
// per sentence, so a run can be eyeballed in a terminal without extra tooling.
package chart

import (
	"fmt"
	"strings"
)

const barRune = "#"

// Render draws one bar per level in input order. Levels are expected in the
// 1..max scale; values outside it are clamped so a bad input can never break
// the layout. Empty input renders an empty string.
func Render(levels []int, max int) string {
	if len(levels) == 0 {
		return ""
	}
	if max <= 0 {
		max = 5
	}

	var b strings.Builder
	fmt.Fprintf(&b, "abstraction level (1=concrete .. %d=abstract)\n", max)
	for i, level := range levels {
		if level < 1 {
			level = 1
		}
		if level > max {
			level = max
		}
		fmt.Fprintf(&b, "%4d | %s (%d)\n", i+1, strings.Repeat(barRune, level), level)
	}
	b.WriteString("     +" + strings.Repeat("-", max+2) + "\n")
	return b.String()
}
