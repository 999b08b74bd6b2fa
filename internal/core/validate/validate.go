// Package validate provides shared validation functions.
package validate

import (
	"errors"
	"strings"

	"github.com/hay-kot/criterio"
)

// ErrBlankText is returned when a text value is empty or whitespace only.
var ErrBlankText = errors.New("text is required")

// ItemText validates that item text is non-empty after trimming whitespace.
func ItemText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrBlankText
	}
	return nil
}

// ItemTextField returns a criterio validator for item text.
func ItemTextField(field, text string) error {
	return criterio.Run(field, text, ItemText)
}
