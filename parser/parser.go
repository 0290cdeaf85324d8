// Package parser normalizes raw scraped price text into numeric values.
package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Storefronts localized for Egypt and the Gulf pad prices with
// directional marks and no-break spaces.
var spaceVariants = strings.NewReplacer(
	"\u00a0", " ", // no-break space
	"\u200f", " ", // right-to-left mark
	"\u200e", " ", // left-to-right mark
	"\u202f", " ", // narrow no-break space
)

var (
	currencyTokens = regexp.MustCompile(`(?i)(EGP\.|EGP|\x{062c}\.\x{0645}|\x{062c}\x{0646}\x{064a}\x{0647}|\x{0631}\x{064a}\x{0627}\x{0644}|\x{062f}\x{0631}\x{0647}\x{0645}|SAR|AED|USD)`)
	numberPattern  = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParsePrice extracts the first numeric value from raw price text after
// stripping space variants, thousands-separator commas, and known currency
// tokens. It returns false when no number is present; malformed text is
// never an error.
func ParsePrice(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}

	t := spaceVariants.Replace(text)
	t = strings.ReplaceAll(t, ",", "")
	t = currencyTokens.ReplaceAllString(t, "")

	match := numberPattern.FindString(t)
	if match == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
