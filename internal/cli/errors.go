package cli

import "errors"

// Error variables for configuration and global flag parsing.
var (
	ErrConfigInvalid      = errors.New("invalid config")
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("config file could not be read")
	ErrFlagRequiresArg    = errors.New("flag needs an argument")
	ErrUnknownFlag        = errors.New("unknown flag")
	ErrNewlinesValue      = errors.New(`newlines must be "auto", "always", or "never"`)
	ErrDelimiterWidth     = errors.New("delimiters must be exactly one character")
	ErrDelimitersEqual    = errors.New("segment_terminator and element_separator must differ")
)
