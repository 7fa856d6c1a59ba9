package lzstring

import (
	"fmt"
	"unicode/utf16"

	"github.com/cybroslabs/liblzstring-go/base"
)

// lzspan is a dictionary entry, always a contiguous run of the output.
type lzspan struct {
	pos    int32
	length int32
}

type lzdecompress struct {
	bitreader
	numbits   int
	enlargein int
	maxunits  int

	output []uint16
	nodes  []lzspan
	prev   lzspan
}

func (d *lzdecompress) countdown() {
	d.enlargein--
	if d.enlargein == 0 {
		d.enlargein = 1 << d.numbits
		d.numbits++
	}
}

func (d *lzdecompress) checklimit(extra int32) error {
	if d.maxunits > 0 && len(d.output)+int(extra) > d.maxunits {
		return fmt.Errorf("%w: more than %d units", base.ErrOutputTooLarge, d.maxunits)
	}
	return nil
}

// readliteral reads a literal of the width selected by the control code and appends it to the output.
func (d *lzdecompress) readliteral(control int) (lzspan, error) {
	width := 8
	if control == controlliteral16 {
		width = 16
	}
	v, err := d.readbits(width)
	if err != nil {
		return lzspan{}, err
	}
	if err = d.checklimit(1); err != nil {
		return lzspan{}, err
	}
	s := lzspan{pos: int32(len(d.output)), length: 1}
	d.output = append(d.output, uint16(v))
	return s, nil
}

func (d *lzdecompress) decompress() ([]uint16, error) {
	control, err := d.readbits(2)
	if err != nil {
		return nil, err
	}
	switch control {
	case controlliteral8, controlliteral16:
	case controlend:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: first code %d", base.ErrInvalidCode, control)
	}
	first, err := d.readliteral(control)
	if err != nil {
		return nil, err
	}
	d.nodes = append(d.nodes, first)
	d.prev = first

	for {
		code, err := d.readbits(d.numbits)
		if err != nil {
			return nil, err
		}

		var entry lzspan
		switch code {
		case controlliteral8, controlliteral16:
			if entry, err = d.readliteral(code); err != nil {
				return nil, err
			}
			d.nodes = append(d.nodes, entry)
			d.countdown()
		case controlend:
			return d.output, nil
		default:
			switch {
			case code < len(d.nodes):
				cn := d.nodes[code]
				if err = d.checklimit(cn.length); err != nil {
					return nil, err
				}
				entry = lzspan{pos: int32(len(d.output)), length: cn.length}
				d.output = append(d.output, d.output[cn.pos:cn.pos+cn.length]...)
			case code == len(d.nodes): // entry being defined right now, prev + prev[0]
				if err = d.checklimit(d.prev.length + 1); err != nil {
					return nil, err
				}
				entry = lzspan{pos: int32(len(d.output)), length: d.prev.length + 1}
				d.output = append(d.output, d.output[d.prev.pos:d.prev.pos+d.prev.length]...)
				d.output = append(d.output, d.output[d.prev.pos])
			default:
				return nil, fmt.Errorf("%w: code %d with %d entries", base.ErrInvalidCode, code, len(d.nodes))
			}
		}

		// entry starts right after prev in the output, so prev + entry[0] is a span as well
		d.nodes = append(d.nodes, lzspan{pos: d.prev.pos, length: d.prev.length + 1})
		d.countdown()
		d.prev = entry
	}
}

func decompress(alphabet *Alphabet, encoded string, maxunits int) (string, error) {
	if len(encoded) == 0 {
		return "", nil
	}
	input, err := alphabet.values(encoded)
	if err != nil {
		return "", err
	}
	d := &lzdecompress{
		bitreader: bitreader{input: input},
		numbits:   3,
		enlargein: 4,
		maxunits:  maxunits,
		output:    make([]uint16, 0, len(input)*2),
		nodes:     make([]lzspan, 3, len(input)+4), // control codes 0..2
	}
	output, err := d.decompress()
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(output)), nil
}
