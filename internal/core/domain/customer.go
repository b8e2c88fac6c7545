package domain

import "strings"

// CustomerSheet maps a network number (the NN in customer-NN) to the
// customer display name as read from the spreadsheet.
type CustomerSheet map[int]string

// CustomerMapping maps a VPC id to a customer display name.
type CustomerMapping map[string]string

const quoteChars = "\"'`“”‘’"

// StripQuotes trims surrounding whitespace and quote characters.
func StripQuotes(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), quoteChars))
}
