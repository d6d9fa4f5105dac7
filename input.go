package automaton

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// InvalidInputMessage What users are shown when their input is rejected by ErrInvalidInput.
const InvalidInputMessage = "Invalid input! Only '0' and '1' are allowed."

var (
	ErrInvalidInput = errors.New("invalid input: only '0' and '1' are allowed")
	ErrInputTooLong = errors.New("input too long")
)

var binaryStrings *Automaton

func init() {
	var err error
	binaryStrings, err = defaultAutomata.MakeBinaryString()
	if err != nil {
		panic(err)
	}
}

// ValidateInput
// Trims surrounding whitespace from raw and checks that what is left only holds the symbols 0 and 1. The
// empty string is valid. maxLen <= 0 disables the length check.
func ValidateInput(raw string, maxLen int) (string, error) {
	input := strings.TrimSpace(raw)
	if !Run(binaryStrings, input) {
		return "", ErrInvalidInput
	}
	if n := utf8.RuneCountInString(input); maxLen > 0 && n > maxLen {
		return "", fmt.Errorf("%d symbols, at most %d allowed: %w", n, maxLen, ErrInputTooLong)
	}
	return input, nil
}
