package deluxetable

import (
	"strings"
	"unicode"
)

// SplitRow turns one data line into its fields.
// The row terminator is removed after trailing whitespace so that
// "a & b \\  " is recognized as well as "a & b \\".
func SplitRow(line string) []string {
	line = trimEOL(line)
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	line = strings.TrimSuffix(line, RowEnd)
	return strings.Split(line, FieldSeparator)
}

// JoinRow is the inverse of SplitRow without the row terminator.
func JoinRow(fields []string) string {
	return strings.Join(fields, FieldSeparator)
}
