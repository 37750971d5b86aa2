// Package currency formats fare amounts for display. Fares are integer VND;
// formatting only inserts thousands separators.
package currency

import "strconv"

// Format renders an amount with comma thousands separators: 1500000 becomes
// "1,500,000".
func Format(amount int64) string {
	digits := strconv.FormatInt(amount, 10)

	negative := false
	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	if len(digits) <= 3 {
		if negative {
			return "-" + digits
		}
		return digits
	}

	// Work out the first group length so the remainder splits into threes.
	var out []byte
	first := len(digits) % 3
	if first == 0 {
		first = 3
	}
	out = append(out, digits[:first]...)
	for i := first; i < len(digits); i += 3 {
		out = append(out, ',')
		out = append(out, digits[i:i+3]...)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}

// FormatWithUnit renders an amount with its currency code appended, the way
// fares are shown to agents: "1,500,000 VND".
func FormatWithUnit(amount int64, currency string) string {
	if currency == "" {
		return Format(amount)
	}
	return Format(amount) + " " + currency
}
