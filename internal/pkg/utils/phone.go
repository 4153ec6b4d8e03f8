package utils

import (
	"strings"
)

// NormalizeSMSNumber strips every non-digit from raw. When raw did not start
// with '+' the default country code is prepended. The result is "+<digits>".
func NormalizeSMSNumber(raw, defaultCountryCode string) string {
	trimmed := strings.TrimSpace(raw)
	digits := nonDigitPattern.ReplaceAllString(trimmed, "")

	if !strings.HasPrefix(trimmed, "+") {
		countryCode := nonDigitPattern.ReplaceAllString(defaultCountryCode, "")
		digits = countryCode + digits
	}

	return "+" + digits
}
