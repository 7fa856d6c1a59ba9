// Command lzstring compresses text into URL-safe LZ-String payloads and back.
//
//	lzstring compress [-format uri|base64] [-in file] [-out file]
//	lzstring decompress [-format uri|base64] [-max units] [-in file] [-out file]
//	lzstring bench [-format uri|base64] [-chart ratio.svg] files...
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cybroslabs/liblzstring-go/base"
	"github.com/cybroslabs/liblzstring-go/codec"
	"github.com/fatih/color"
	"go.uber.org/zap"
	"k8s.io/utils/ptr"
)

var commands = [...]string{"compress", "decompress", "bench", "help"}

type options struct {
	format  string
	in      string
	out     string
	max     int
	chart   string
	verbose bool
}

func newflagset(name string, o *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&o.format, "format", "uri", "payload format: uri, base64")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	switch name {
	case "compress", "decompress":
		fs.StringVar(&o.in, "in", "", "input file, stdin when empty")
		fs.StringVar(&o.out, "out", "", "output file, stdout when empty")
	case "bench":
		fs.StringVar(&o.chart, "chart", "", "write an SVG chart of compression ratios")
	}
	if name == "decompress" {
		fs.IntVar(&o.max, "max", 0, "maximal decompressed length in UTF-16 units, 0 means unlimited")
	}
	return fs
}

func newlogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s <command> [options]\n", os.Args[0])
	fmt.Fprintf(w, "Valid commands include:\n\t%s\n", strings.Join(commands[:], ", "))
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return fmt.Errorf("no command given")
	}
	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		usage(stdout)
		return nil
	}
	var o options
	fs := newflagset(name, &o)
	fs.SetOutput(stderr)
	switch name {
	case "compress", "decompress", "bench":
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %s", name)
	}
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	logger, err := newlogger(o.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	format, err := base.ParseFormat(o.format)
	if err != nil {
		return err
	}
	c, err := codec.New(&codec.Settings{
		Logger:    logger,
		Format:    ptr.To(format),
		MaxOutput: ptr.To(o.max),
	})
	if err != nil {
		return err
	}

	switch name {
	case "compress":
		return transform(o, stdin, stdout, func(s string) (string, error) { return c.Encode(s), nil })
	case "decompress":
		return transform(o, stdin, stdout, c.Decode)
	default:
		if fs.NArg() == 0 {
			return fmt.Errorf("no files to benchmark")
		}
		return bench(c, fs.Args(), o.chart, stdout, stderr, logger)
	}
}

func transform(o options, stdin io.Reader, stdout io.Writer, f func(string) (string, error)) error {
	src := stdin
	if o.in != "" {
		fh, err := os.Open(o.in)
		if err != nil {
			return err
		}
		defer fh.Close()
		src = fh
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}
	r, err := f(string(data))
	if err != nil {
		return err
	}
	if o.out == "" {
		_, err = io.WriteString(stdout, r)
		return err
	}
	return os.WriteFile(o.out, []byte(r), 0o644)
}
