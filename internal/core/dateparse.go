package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnparsableDate is returned when free-form text does not contain a
// recognizable month, day and year.
var ErrUnparsableDate = errors.New("unparsable date text")

// monthNumbers maps lowercase month names and their standard
// abbreviations to zero-padded month numbers.
var monthNumbers = map[string]string{
	"january": "01", "jan": "01",
	"february": "02", "feb": "02",
	"march": "03", "mar": "03",
	"april": "04", "apr": "04",
	"may":  "05",
	"june": "06", "jun": "06",
	"july": "07", "jul": "07",
	"august": "08", "aug": "08",
	"september": "09", "sep": "09", "sept": "09",
	"october": "10", "oct": "10",
	"november": "11", "nov": "11",
	"december": "12", "dec": "12",
}

// ParseFreeDate parses free-form date text such as "April 15 2024",
// "15 apr 2024" or "2024, December 1" into a YYYY-MM-DD string.
//
// Tokens are split on whitespace, hyphens, commas, slashes and dots, then
// classified as a month name, a 4-digit year, or a 1-2 digit day no
// greater than 31. Token order does not matter and the last token of each
// category wins. All three categories are required.
//
// The day is not cross-checked against the month, so "February 31 2024"
// parses. That mirrors the long-standing creation-flow behavior and the
// rest of the system tolerates such dates.
func ParseFreeDate(text string) (string, error) {
	parts := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '-', ',', '.', '/':
			return true
		}
		return false
	})

	var day, month, year string
	for _, part := range parts {
		if m, ok := monthNumbers[part]; ok {
			month = m
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		switch {
		case len(part) == 4:
			year = part
		case len(part) <= 2 && n <= 31:
			day = fmt.Sprintf("%02d", n)
		}
	}

	if month == "" || day == "" || year == "" {
		return "", ErrUnparsableDate
	}
	return year + "-" + month + "-" + day, nil
}
