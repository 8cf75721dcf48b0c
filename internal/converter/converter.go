// Package converter runs the prompt, read, convert, print dialogue.
package converter

import (
	"errors"
	"fmt"
	"io"

	"github.com/Aussie4Beer56/tempconvert/internal/config"
	"github.com/Aussie4Beer56/tempconvert/internal/console"
	"github.com/Aussie4Beer56/tempconvert/internal/conversion"
	"github.com/Aussie4Beer56/tempconvert/internal/model"
	"github.com/Aussie4Beer56/tempconvert/internal/observability"
)

const PromptText = "Input a temp to convert to Celsius"

type Converter struct {
	In           io.Reader
	Out          io.Writer
	InvalidInput config.InvalidInputPolicy
	Logger       observability.Logger
}

// Run prompts on Out, reads one line from In and prints the conversion.
// Read and write failures come back as *model.Error of kind stream or write.
// A line that is not a whole number becomes conversion.Sentinel unless the
// policy is fail, in which case the parse error is returned and no result
// line is printed.
func (c Converter) Run() (model.Reading, error) {
	if err := console.Prompt(c.Out, PromptText); err != nil {
		return model.Reading{}, model.NewWriteError(err)
	}

	raw, err := console.ReadLine(c.In)
	if err != nil {
		return model.Reading{Raw: raw}, model.NewStreamError(err)
	}
	c.Logger.Debugf("read %d bytes", len(raw))

	reading := model.Reading{Raw: raw, Valid: true}
	f, err := conversion.ParseFahrenheit(raw)
	if err != nil {
		if c.InvalidInput == config.InvalidInputFail {
			return model.Reading{Raw: raw, ParseErr: err}, err
		}
		c.Logger.Debugf("%v, using %d", err, conversion.Sentinel)
		f = conversion.Sentinel
		reading.Valid = false
		reading.ParseErr = err
	}

	celsius := conversion.ToCelsius(f)
	reading.Fahrenheit = int32(f)
	reading.Celsius = int32(celsius)

	if _, err := fmt.Fprintln(c.Out, conversion.FormatResult(f, celsius)); err != nil {
		return reading, model.NewWriteError(err)
	}
	return reading, nil
}

// ExitCode maps an error returned by Run to a process exit status.
func ExitCode(err error) int {
	var e *model.Error
	switch {
	case err == nil:
		return 0
	case errors.As(err, &e) && e.Kind == model.ErrorParse:
		return 2
	default:
		return 1
	}
}
