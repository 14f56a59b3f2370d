package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// errInvalidCommand is reported back to the prompt only; command failures
// never reach the display or the mode machine.
var errInvalidCommand = errors.New("invalid command")

const helpText = "g GRAVITY (e.g. g 1.050)  t TEMP_F (e.g. t 65)  h help"

// parseCommand interprets one prompt line. The grammar mirrors the debug
// commands of the original activity: g sets gravity, t sets the temperature
// in Fahrenheit (both reset the last-update clock), h prints usage. It
// returns the override to dispatch (nil for h) and the feedback line for the
// status bar.
func parseCommand(line string) (*OverrideMsg, string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, "", errInvalidCommand
	}

	switch fields[0] {
	case "g":
		if len(fields) != 2 {
			return nil, "", fmt.Errorf("%w: g takes one argument", errInvalidCommand)
		}
		gravity, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %q is not a gravity", errInvalidCommand, fields[1])
		}
		return &OverrideMsg{Gravity: &gravity}, fmt.Sprintf("gravity set to %.3f", gravity), nil
	case "t":
		if len(fields) != 2 {
			return nil, "", fmt.Errorf("%w: t takes one argument", errInvalidCommand)
		}
		tempF, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, "", fmt.Errorf("%w: %q is not a temperature", errInvalidCommand, fields[1])
		}
		return &OverrideMsg{TempF: &tempF}, fmt.Sprintf("temperature set to %dF", tempF), nil
	case "h":
		return nil, helpText, nil
	}
	return nil, "", fmt.Errorf("%w: %s", errInvalidCommand, line)
}
