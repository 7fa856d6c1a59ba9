// Package codec wraps the lzstring variants behind base.Codec.
//
// A codec is configured once from Settings and can be shared, only SetLogger mutates it.
//
// Usage:
//
//	c, err := codec.New(&codec.Settings{Format: ptr.To(base.FormatBase64), Logger: logger})
//	s := c.Encode(text)
package codec

import (
	"fmt"

	"github.com/cybroslabs/liblzstring-go/base"
	"github.com/cybroslabs/liblzstring-go/lzstring"
	"go.uber.org/zap"
	"k8s.io/utils/ptr"
)

type Settings struct {
	Logger    *zap.SugaredLogger
	Format    *base.Format // FormatURI when nil
	MaxOutput *int         // maximal decoded length in UTF-16 units, nil or 0 means unlimited
}

type variant struct {
	encode func(text string) string
	decode func(encoded string, maxunits int) (string, error)
}

var variants = map[base.Format]variant{
	base.FormatURI: {
		encode: lzstring.CompressToEncodedURIComponent,
		decode: lzstring.DecompressFromEncodedURIComponentLimit,
	},
	base.FormatBase64: {
		encode: lzstring.CompressToBase64,
		decode: lzstring.DecompressFromBase64Limit,
	},
}

// Formats lists the supported formats.
func Formats() []base.Format {
	return []base.Format{base.FormatURI, base.FormatBase64}
}

type codec struct {
	logger    *zap.SugaredLogger
	format    base.Format
	maxoutput int
	variant   variant
}

func (c *codec) logf(format string, v ...any) {
	if c.logger != nil {
		c.logger.Debugf(format, v...)
	}
}

func New(settings *Settings) (base.Codec, error) {
	if settings == nil {
		settings = &Settings{}
	}
	format := ptr.Deref(settings.Format, base.FormatURI)
	v, ok := variants[format]
	if !ok {
		return nil, fmt.Errorf("%w: %v", base.ErrUnknownFormat, format)
	}
	maxoutput := ptr.Deref(settings.MaxOutput, 0)
	if maxoutput < 0 {
		return nil, fmt.Errorf("invalid max output %d", maxoutput)
	}
	return &codec{
		logger:    settings.Logger,
		format:    format,
		maxoutput: maxoutput,
		variant:   v,
	}, nil
}

func (c *codec) Encode(text string) string {
	r := c.variant.encode(text)
	c.logf("%s encode: %d -> %d bytes (%.2f%%)", c.format, len(text), len(r), ratio(len(text), len(r)))
	return r
}

func (c *codec) Decode(encoded string) (string, error) {
	r, err := c.variant.decode(encoded, c.maxoutput)
	if err != nil {
		if c.logger != nil {
			c.logger.Warnf("%s decode of %d bytes failed: %v", c.format, len(encoded), err)
		}
		return "", err
	}
	c.logf("%s decode: %d -> %d bytes", c.format, len(encoded), len(r))
	return r, nil
}

func (c *codec) Format() base.Format {
	return c.format
}

func (c *codec) SetLogger(logger *zap.SugaredLogger) {
	c.logger = logger
}

// Ratio returns encoded size as a percentage of the original size.
func Ratio(original int, encoded int) float64 {
	return ratio(original, encoded)
}

func ratio(original int, encoded int) float64 {
	if original == 0 {
		return 0
	}
	return float64(encoded) / float64(original) * 100
}
