package manager

import (
	"slices"
	"strconv"
	"strings"

	"github.com/kingsmao/perp-ticker-list/pkg/schema"
)

// SortTickers orders tickers in place with CompareTickers.
func SortTickers(tickers []string) {
	slices.SortFunc(tickers, CompareTickers)
}

// CompareTickers compares two ticker strings by their TickerKey.
func CompareTickers(a, b string) int {
	return CompareKeys(schema.TickerKey(a), schema.TickerKey(b))
}

// CompareKeys orders ticker names, first decisive rule wins:
//  1. both start with digits: larger leading number first
//  2. only one starts with digits: that one first
//  3. plain byte-wise comparison
func CompareKeys(a, b string) int {
	aDigits, bDigits := leadingDigits(a), leadingDigits(b)

	if aDigits != "" && bDigits != "" {
		an, bn := parseLeading(aDigits), parseLeading(bDigits)
		if an != bn {
			if an > bn {
				return -1
			}
			return 1
		}
	}

	if (aDigits == "") != (bDigits == "") {
		if aDigits == "" {
			return 1
		}
		return -1
	}

	return strings.Compare(a, b)
}

// leadingDigits returns the run of ASCII digits at the start of s.
func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// parseLeading parses a digit run as uint32, 0 on overflow.
func parseLeading(digits string) uint64 {
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0
	}
	return n
}
