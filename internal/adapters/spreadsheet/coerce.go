package spreadsheet

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/olusolaa/customer-tagsync/internal/errors"
)

// Coerce parses a network-number cell. Known typos (letter O for zero and
// similar) are rewritten through subs before parsing; integral floats such
// as "5.0" are accepted because spreadsheet exports often render them so.
func Coerce(raw string, subs map[string]string) (int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, errors.New(errors.CodeSpreadsheetParseError, "empty network number")
	}
	value = applySubstitutions(value, subs)

	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 {
			return 0, errors.New(errors.CodeSpreadsheetParseError, fmt.Sprintf("negative network number %q", raw))
		}
		return n, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeSpreadsheetParseError, fmt.Sprintf("network number %q is not numeric", raw))
	}
	if f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, errors.New(errors.CodeSpreadsheetParseError, fmt.Sprintf("network number %q is not a whole number", raw))
	}
	return int(f), nil
}

// Longer fragments are replaced first so overlapping entries resolve the
// same way on every run.
func applySubstitutions(value string, subs map[string]string) string {
	if len(subs) == 0 {
		return value
	}
	froms := make([]string, 0, len(subs))
	for from := range subs {
		if from != "" {
			froms = append(froms, from)
		}
	}
	sort.Slice(froms, func(i, j int) bool {
		if len(froms[i]) != len(froms[j]) {
			return len(froms[i]) > len(froms[j])
		}
		return froms[i] < froms[j]
	})
	for _, from := range froms {
		value = strings.ReplaceAll(value, from, subs[from])
	}
	return value
}
