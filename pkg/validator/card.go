package validator

import (
	"strconv"
	"time"

	"github.com/ticketbay/formkit/pkg/sanitizer"
)

// CardNumber validates a credit card number. Input is normalised and
// stripped of every non-digit before checking, so spaced or hyphenated
// entry is accepted. The number must pass the Luhn checksum and be 13 to 19
// digits long.
func CardNumber(raw string) (string, string) {
	digits := sanitizer.NormalizeCreditCard(raw)

	if !LuhnValid(digits) {
		return "", "Invalid card number by Luhn"
	}
	if len(digits) < 13 || len(digits) > 19 {
		return "", "Card number must be 13 to 19 digits"
	}

	return digits, ""
}

// ExpiryDate validates a card expiry in MM/YY form against the caller's
// reference time. A card expiring in the current month is still accepted;
// only a month strictly before now's year/month is rejected.
func ExpiryDate(raw string, now time.Time) (string, string) {
	exp := sanitizer.Normalize(raw)

	m := expiryRegex.FindStringSubmatch(exp)
	if m == nil {
		return "", "Please use MM/YY format"
	}

	month, _ := strconv.Atoi(m[1])
	if month < 1 || month > 12 {
		return "", "Please use MM/YY format"
	}

	year, _ := strconv.Atoi(m[2])
	year += 2000

	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return "", "Out of date, use another card."
	}

	return exp, ""
}

// CVV validates a card verification value: exactly 3 or 4 digits. The clean
// result is always empty, valid or not, so a CVV can never reach storage.
func CVV(raw string) (string, string) {
	if !cvvRegex.MatchString(sanitizer.Normalize(raw)) {
		return "", "Invalid CVV"
	}
	return "", ""
}
