// Package lzstring implements the LZ-String text codec: an LZ78 family dictionary coder
// packing variable width codes into 6-bit printable symbols.
//
// The stream is a sequence of fields, each written least significant bit first:
//   - control 0 followed by an 8-bit literal, control 1 followed by a 16-bit literal,
//     a literal is sent the first time a unit appears;
//   - control 2, end of stream;
//   - any other value, a dictionary code.
//
// Codes start 2 bits wide and grow by one bit every time the dictionary doubles.
// Text is handled as UTF-16 code units, so payloads are interchangeable with the
// JavaScript lz-string library.
//
// Usage:
//
//	s := lzstring.Compress("hello hello hello")
//	text, err := lzstring.Decompress(s)
package lzstring

const (
	controlliteral8  = 0
	controlliteral16 = 1
	controlend       = 2
)

// Compress encodes text with the URL-safe alphabet. Empty text gives an empty string.
func Compress(text string) string {
	return string(compress(URISafe, text))
}

// Decompress decodes a string produced by Compress.
// Errors wrap base.ErrInvalidCharacter, base.ErrInvalidCode or base.ErrTruncated.
func Decompress(encoded string) (string, error) {
	return decompress(URISafe, encoded, 0)
}

// DecompressLimit is Decompress failing with base.ErrOutputTooLarge once the text would
// exceed maxunits UTF-16 units. Zero or negative maxunits means no limit.
func DecompressLimit(encoded string, maxunits int) (string, error) {
	return decompress(URISafe, encoded, maxunits)
}

// CompressWith encodes text using a custom alphabet.
func CompressWith(alphabet *Alphabet, text string) string {
	return string(compress(alphabet, text))
}

// DecompressWith decodes a string produced by CompressWith with the same alphabet, limited to maxunits when positive.
func DecompressWith(alphabet *Alphabet, encoded string, maxunits int) (string, error) {
	return decompress(alphabet, encoded, maxunits)
}
