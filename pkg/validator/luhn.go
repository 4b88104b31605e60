package validator

// LuhnValid reports whether a digit string passes the Luhn mod-10 checksum.
// Empty or non-digit input is rejected outright. The checksum catches
// accidental typos in card numbers; it is not a security control.
func LuhnValid(number string) bool {
	if number == "" || !digitsRegex.MatchString(number) {
		return false
	}

	sum := 0
	double := false

	// Process digits from right to left, doubling every second one
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')

		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}
