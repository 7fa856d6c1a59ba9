package base

import "go.uber.org/zap"

// Codec turns text into a compact printable string and back.
type Codec interface {
	Encode(text string) string
	Decode(encoded string) (string, error) // never returns partial text on error
	Format() Format
	SetLogger(logger *zap.SugaredLogger)
}
