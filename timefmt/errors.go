package timefmt

import "github.com/bytom/timefmt/errors"

// Errors returned by the formatting functions. Use errors.Root to compare.
var (
	// ErrTime means the calendar conversion rejected the timestamp.
	ErrTime = errors.New("time processing error")
	// ErrInvalidTimestamp means a value is outside the representable range.
	ErrInvalidTimestamp = errors.New("invalid timestamp value")
	// ErrFormat means the formatter itself could not be set up.
	ErrFormat = errors.New("time formatting error")
	// ErrInvalidFormatString means the pattern failed validation or could
	// not be rendered.
	ErrInvalidFormatString = errors.New("invalid format string")
	// ErrUTF8 means the rendered bytes are not valid UTF-8.
	ErrUTF8 = errors.New("UTF-8 conversion error")
	// ErrNullByte means the pattern contains a NUL byte.
	ErrNullByte = errors.New("string contains null bytes")
)
