package base

import "errors"

var ErrInvalidCharacter = errors.New("invalid character")
var ErrInvalidCode = errors.New("invalid dictionary code")
var ErrTruncated = errors.New("truncated stream")
var ErrOutputTooLarge = errors.New("decompressed output too large")
var ErrUnknownFormat = errors.New("unknown format")
