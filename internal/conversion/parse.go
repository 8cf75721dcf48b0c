package conversion

import (
	"strconv"
	"strings"

	"github.com/Aussie4Beer56/tempconvert/internal/model"
)

// ParseFahrenheit trims raw and parses it as a base-10 32 bit integer.
// On failure it returns a *model.Error of kind parse and leaves the choice of
// a fallback to the caller.
func ParseFahrenheit(raw string) (Fahrenheit, error) {
	input := strings.TrimSpace(raw)
	number, err := strconv.ParseInt(input, 10, 32)
	if err != nil {
		return 0, model.NewParseError(input, err)
	}
	return Fahrenheit(number), nil
}
