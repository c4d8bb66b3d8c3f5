package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const rupeeSymbol = "₹"

// FormatINR renders an amount with the en-IN currency convention: ₹ symbol,
// Indian digit grouping (last three digits, then groups of two) and zero
// fraction digits, e.g. 5000000 -> "₹50,00,000".
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	grouped := groupIndianDigits(rounded.Abs().String())
	if rounded.IsNegative() {
		return "-" + rupeeSymbol + grouped
	}
	return rupeeSymbol + grouped
}

func groupIndianDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	groups := []string{tail}
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",")
}

// ParseINR parses a plain numeric string or a previously formatted INR
// amount back into a decimal, stripping the symbol and group separators.
// FormatINR(ParseINR(FormatINR(x))) == FormatINR(x) for integer rupees.
func ParseINR(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(rupeeSymbol, "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}
