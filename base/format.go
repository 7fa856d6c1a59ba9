package base

import (
	"fmt"
	"strings"
)

type Format byte

const (
	FormatURI    Format = 1 // URL-safe alphabet, encoded URI component wrapping
	FormatBase64 Format = 2 // Base64 alphabet, '=' padded
)

func (f Format) String() string {
	switch f {
	case FormatURI:
		return "uri"
	case FormatBase64:
		return "base64"
	}
	return fmt.Sprintf("format(%d)", byte(f))
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uri", "url", "":
		return FormatURI, nil
	case "base64", "b64":
		return FormatBase64, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, s)
}
