// Package conversion holds the Fahrenheit to Celsius formula and the parsing
// of user input into a Fahrenheit reading.
package conversion

import "fmt"

type (
	// Fahrenheit is a temperature in whole degrees F
	Fahrenheit int32

	// Celsius is a temperature in whole degrees C
	Celsius int32
)

// Sentinel stands in for input that could not be parsed.
const Sentinel Fahrenheit = -1

// ToCelsius converts a temp in Fahrenheit to Celsius. Division truncates
// toward zero, so 98 gives 36 and -1 gives -18.
func ToCelsius(f Fahrenheit) Celsius {
	return Celsius((int64(f) - 32) * 5 / 9)
}

// FormatResult renders the result line without its newline.
func FormatResult(f Fahrenheit, c Celsius) string {
	return fmt.Sprintf("%d -> %d", f, c)
}
