package lzstring

import (
	"fmt"

	"github.com/cybroslabs/liblzstring-go/base"
)

// bitwriter packs fields into 6-bit symbols, first bit into the symbol's top bit.
type bitwriter struct {
	alphabet  *Alphabet
	output    []byte
	tmp       byte
	bitoffset int
}

func (w *bitwriter) emitbit(b byte) {
	w.tmp = w.tmp<<1 | b
	if w.bitoffset == symbolbits-1 {
		w.output = append(w.output, w.alphabet.Symbol(w.tmp))
		w.bitoffset = 0
		w.tmp = 0
		return
	}
	w.bitoffset++
}

// pushbits emits the low width bits of value, least significant bit first.
func (w *bitwriter) pushbits(value int, width int) {
	for range width {
		w.emitbit(byte(value & 1))
		value >>= 1
	}
}

// flush pads with zeros up to the symbol boundary, at least one bit is always shifted in
func (w *bitwriter) flush() {
	for {
		w.tmp <<= 1
		if w.bitoffset == symbolbits-1 {
			w.output = append(w.output, w.alphabet.Symbol(w.tmp))
			w.bitoffset = 0
			w.tmp = 0
			return
		}
		w.bitoffset++
	}
}

// bitreader is the inverse of bitwriter over already translated symbol values.
type bitreader struct {
	input []byte
	index int
	value byte
	mask  byte
}

func (r *bitreader) readbit() (byte, error) {
	if r.mask == 0 {
		if r.index >= len(r.input) {
			return 0, fmt.Errorf("%w: no more symbols after %d", base.ErrTruncated, len(r.input))
		}
		r.value = r.input[r.index]
		r.index++
		r.mask = 1 << (symbolbits - 1)
	}
	b := byte(0)
	if r.value&r.mask != 0 {
		b = 1
	}
	r.mask >>= 1
	return b, nil
}

// readbits reads a width bit field, least significant bit first.
func (r *bitreader) readbits(width int) (int, error) {
	v := 0
	for ii := range width {
		b, err := r.readbit()
		if err != nil {
			return 0, err
		}
		v |= int(b) << ii
	}
	return v, nil
}
