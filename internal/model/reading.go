package model

// Reading is the value produced by one conversion run.
type Reading struct {
	Raw        string
	Fahrenheit int32
	Celsius    int32
	// Valid is false when Fahrenheit is a substituted value and not what the user typed.
	Valid    bool
	ParseErr error
}
