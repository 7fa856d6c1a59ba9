package lzstring

import "strings"

const base64pad = '='

// CompressToEncodedURIComponent gives a string usable as is in a URL query or fragment.
func CompressToEncodedURIComponent(text string) string {
	return Compress(text)
}

// DecompressFromEncodedURIComponent accepts the payload after URL form decoding turned
// '+' into spaces and after line wrapping; both are undone before decoding.
func DecompressFromEncodedURIComponent(encoded string) (string, error) {
	return DecompressFromEncodedURIComponentLimit(encoded, 0)
}

// DecompressFromEncodedURIComponentLimit is DecompressFromEncodedURIComponent with an output limit, as in DecompressLimit.
func DecompressFromEncodedURIComponentLimit(encoded string, maxunits int) (string, error) {
	return decompress(URISafe, cleanuri(encoded), maxunits)
}

func cleanuri(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ':
			return '+'
		case '\t', '\r', '\n', '\v', '\f':
			return -1
		}
		return r
	}, s)
}

// CompressToBase64 encodes text with the standard Base64 alphabet, padded to a multiple of 4.
func CompressToBase64(text string) string {
	r := compress(Base64, text)
	for len(r)%4 != 0 {
		r = append(r, base64pad)
	}
	return string(r)
}

// DecompressFromBase64 decodes a string produced by CompressToBase64, padding optional.
func DecompressFromBase64(encoded string) (string, error) {
	return DecompressFromBase64Limit(encoded, 0)
}

// DecompressFromBase64Limit is DecompressFromBase64 with an output limit, as in DecompressLimit.
func DecompressFromBase64Limit(encoded string, maxunits int) (string, error) {
	s := strings.TrimRight(strings.TrimSpace(encoded), string(base64pad))
	return decompress(Base64, s, maxunits)
}
