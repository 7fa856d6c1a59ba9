package lzstring

import "unicode/utf16"

type lzkey struct {
	prefix int32
	unit   uint16
}

type lzcompress struct {
	bitwriter
	numbits   int
	enlargein int
	dictsize  int32

	units   map[uint16]int32 // single unit entries
	pending map[uint16]bool  // single units not emitted yet, they go out as literals
	strings map[lzkey]int32  // longer entries keyed by their prefix code

	trace func(numbits int) // called after every width check, tests only
}

func newlzcompress(alphabet *Alphabet, hint int) *lzcompress {
	return &lzcompress{
		bitwriter: bitwriter{
			alphabet: alphabet,
			output:   make([]byte, 0, hint/2+4),
		},
		numbits:   2,
		enlargein: 2,
		dictsize:  3,
		units:     make(map[uint16]int32),
		pending:   make(map[uint16]bool),
		strings:   make(map[lzkey]int32, hint),
	}
}

func (c *lzcompress) countdown() {
	c.enlargein--
	if c.enlargein == 0 {
		c.enlargein = 1 << c.numbits
		c.numbits++
	}
	if c.trace != nil {
		c.trace(c.numbits)
	}
}

// emit writes the current prefix: single unit w as a literal on its first appearance, otherwise as its code.
func (c *lzcompress) emit(code int32, single bool, unit uint16) {
	if single && c.pending[unit] {
		if unit < 256 {
			c.pushbits(controlliteral8, c.numbits)
			c.pushbits(int(unit), 8)
		} else {
			c.pushbits(controlliteral16, c.numbits)
			c.pushbits(int(unit), 16)
		}
		c.countdown() // literal own slot
		delete(c.pending, unit)
	} else {
		c.pushbits(int(code), c.numbits)
	}
	c.countdown()
}

func (c *lzcompress) compress(input []uint16) {
	var (
		w      int32 = -1 // code of the current prefix, -1 for empty
		single bool       // prefix is one unit
		first  uint16     // that unit
	)
	for _, u := range input {
		uc, ok := c.units[u]
		if !ok {
			uc = c.dictsize
			c.units[u] = uc
			c.pending[u] = true
			c.dictsize++
		}

		if w < 0 {
			w, single, first = uc, true, u
			continue
		}
		key := lzkey{prefix: w, unit: u}
		if code, ok := c.strings[key]; ok { // keep extending
			w, single = code, false
			continue
		}

		c.emit(w, single, first)
		c.strings[key] = c.dictsize
		c.dictsize++
		w, single, first = uc, true, u
	}
	if w >= 0 {
		c.emit(w, single, first)
	}
	c.pushbits(controlend, c.numbits)
	c.flush()
}

func compress(alphabet *Alphabet, text string) []byte {
	if len(text) == 0 {
		return nil
	}
	input := utf16.Encode([]rune(text))
	c := newlzcompress(alphabet, len(input))
	c.compress(input)
	return c.output
}
