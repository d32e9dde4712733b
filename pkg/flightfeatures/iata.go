package flightfeatures

import (
	"fmt"
	"strings"
)

// ValidIATACode reports whether code is exactly three uppercase ASCII letters.
func ValidIATACode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// NormalizeIATACode trims and upper-cases user input. The result still has to
// pass ValidIATACode.
func NormalizeIATACode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateAirportCodes(origin, destination string) error {
	if !ValidIATACode(origin) {
		return fmt.Errorf("%w: origin %q", ErrInvalidAirportCode, origin)
	}
	if !ValidIATACode(destination) {
		return fmt.Errorf("%w: destination %q", ErrInvalidAirportCode, destination)
	}
	if origin == destination {
		return fmt.Errorf("%w: %s", ErrSameAirport, origin)
	}
	return nil
}
