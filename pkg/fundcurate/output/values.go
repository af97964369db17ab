package output

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxColumnWidth is the widest column Excel accepts.
const maxColumnWidth = 255

// widthPadding is added to the longest value when sizing a column.
const widthPadding = 2

// parseValue attempts to parse a string value as a number so numeric cells
// stay numeric in the curated workbook. Only plain decimals are converted;
// codes such as "00123" or "1e3" stay text.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if !isPlainNumber(s) {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// isPlainNumber reports whether s is an optionally negative decimal with no
// leading zeros, exponent or sign other than "-".
func isPlainNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if !allDigits(intPart) || (hasFrac && !allDigits(frac)) {
		return false
	}
	return len(intPart) == 1 || intPart[0] != '0'
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// columnWidth sizes a column for its longest rendered value.
func columnWidth(longest int) float64 {
	w := float64(longest + widthPadding)
	if w > maxColumnWidth {
		return maxColumnWidth
	}
	return w
}

// displayLength is the rendered length of a cell value in characters.
func displayLength(s string) int {
	return utf8.RuneCountInString(s)
}
