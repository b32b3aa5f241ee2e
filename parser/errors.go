package parser

import "errors"

var (
	ErrNoInput         = errors.New("no input file given")
	ErrInvalidUTF8     = errors.New("input is not valid UTF-8")
	ErrNoLanguage      = errors.New("no language selected")
	ErrUnknownLanguage = errors.New("unsupported language")
	ErrEngineInit      = errors.New("failed to initialize parser")
	ErrParseFailed     = errors.New("parser returned no tree")
)
