package timefmt

import (
	"strings"

	"github.com/bytom/timefmt/errors"
)

// conversion specifier characters accepted after '%'
const specifiers = "aAbBcCdDeFgGhHIjklmMnpPrRsStTuUVwWxXyYzZ%EO+"

var validSpecifier [256]bool

func init() {
	for i := 0; i < len(specifiers); i++ {
		validSpecifier[specifiers[i]] = true
	}
}

// Validate checks a pattern for the common authoring mistakes: an empty
// pattern, NUL bytes, unknown or dangling '%' conversions and unbalanced
// braces. It is advisory; a pattern that passes may still be rejected by
// the rendering engine.
//
// A literal percent sign must be written as "%%".
func Validate(pattern string) error {
	if pattern == "" {
		return errors.WithDetail(ErrInvalidFormatString, "empty pattern")
	}

	if i := strings.IndexByte(pattern, 0); i >= 0 {
		return errors.WithDetailf(ErrNullByte, "NUL byte at offset %d", i)
	}

	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		i++
		if i == len(pattern) {
			return errors.WithDetail(ErrInvalidFormatString, "pattern ends with '%'")
		}
		if c := pattern[i]; !validSpecifier[c] {
			return errors.WithDetailf(ErrInvalidFormatString, "unknown conversion %%%c at offset %d", c, i-1)
		}
	}

	if open, closed := strings.Count(pattern, "{"), strings.Count(pattern, "}"); open != closed {
		return errors.WithDetailf(ErrInvalidFormatString, "unbalanced braces: %d '{' and %d '}'", open, closed)
	}
	return nil
}
