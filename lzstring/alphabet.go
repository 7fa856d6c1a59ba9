package lzstring

import (
	"fmt"

	"github.com/cybroslabs/liblzstring-go/base"
)

const (
	symbolbits = 6
	symbols    = 1 << symbolbits

	invalidsymbol = 0xff
)

// Alphabet maps 6-bit groups to printable characters and back.
// It is immutable once built and safe for concurrent use.
type Alphabet struct {
	chars   [symbols]byte
	reverse [256]byte
}

var (
	URISafe = mustalphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-")
	Base64  = mustalphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")
)

func mustalphabet(chars string) *Alphabet {
	a, err := NewAlphabet(chars)
	if err != nil {
		panic(err)
	}
	return a
}

// NewAlphabet builds an alphabet from exactly 64 distinct ASCII characters, in symbol order.
func NewAlphabet(chars string) (*Alphabet, error) {
	if len(chars) != symbols {
		return nil, fmt.Errorf("alphabet must have %d characters, got %d", symbols, len(chars))
	}
	a := &Alphabet{}
	for ii := range a.reverse {
		a.reverse[ii] = invalidsymbol
	}
	for ii := 0; ii < len(chars); ii++ {
		c := chars[ii]
		if c >= 0x80 {
			return nil, fmt.Errorf("alphabet character %q at %d is not ASCII", c, ii)
		}
		if a.reverse[c] != invalidsymbol {
			return nil, fmt.Errorf("alphabet character %q repeated at %d", c, ii)
		}
		a.chars[ii] = c
		a.reverse[c] = byte(ii)
	}
	return a, nil
}

// Symbol returns the character for the 6-bit value v, higher bits are ignored.
func (a *Alphabet) Symbol(v byte) byte {
	return a.chars[v&(symbols-1)]
}

// Value returns the 6-bit value of character c.
func (a *Alphabet) Value(c byte) (byte, error) {
	v := a.reverse[c]
	if v == invalidsymbol {
		return 0, fmt.Errorf("%w %q", base.ErrInvalidCharacter, c)
	}
	return v, nil
}

func (a *Alphabet) String() string {
	return string(a.chars[:])
}

// values translates the whole input up front, so a foreign character is always reported
// no matter where the end marker sits.
func (a *Alphabet) values(s string) ([]byte, error) {
	r := make([]byte, len(s))
	for ii := 0; ii < len(s); ii++ {
		v := a.reverse[s[ii]]
		if v == invalidsymbol {
			return nil, fmt.Errorf("%w %q at position %d", base.ErrInvalidCharacter, s[ii], ii)
		}
		r[ii] = v
	}
	return r, nil
}
