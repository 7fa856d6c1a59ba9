package lzstring

import (
	"errors"
	"strings"
	"testing"

	"github.com/cybroslabs/liblzstring-go/base"
)

func TestAlphabetTables(t *testing.T) {
	for _, a := range []*Alphabet{URISafe, Base64} {
		s := a.String()
		for ii := 0; ii < symbols; ii++ {
			c := a.Symbol(byte(ii))
			if c != s[ii] {
				t.Fatalf("Symbol(%d) = %q, want %q", ii, c, s[ii])
			}
			v, err := a.Value(c)
			if err != nil {
				t.Fatalf("Value(%q): %v", c, err)
			}
			if v != byte(ii) {
				t.Fatalf("Value(%q) = %d, want %d", c, v, ii)
			}
		}
	}
	if URISafe.String() != "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-" {
		t.Fatalf("unexpected URL-safe alphabet %s", URISafe)
	}
}

func TestAlphabetInvalidCharacter(t *testing.T) {
	for _, c := range []byte{'!', '/', '=', '$', ' ', 0, 0xff} {
		if _, err := URISafe.Value(c); !errors.Is(err, base.ErrInvalidCharacter) {
			t.Fatalf("Value(%q) error = %v", c, err)
		}
	}
	if _, err := Base64.Value('-'); !errors.Is(err, base.ErrInvalidCharacter) {
		t.Fatalf("'-' accepted by Base64 alphabet")
	}
}

func TestNewAlphabet(t *testing.T) {
	if _, err := NewAlphabet("abc"); err == nil {
		t.Fatalf("short alphabet accepted")
	}
	if _, err := NewAlphabet(strings.Repeat("A", 64)); err == nil {
		t.Fatalf("repeated characters accepted")
	}
	if _, err := NewAlphabet(URISafe.String()[:63] + "é"[:1]); err == nil {
		t.Fatalf("non ASCII character accepted")
	}
	rev := []byte(URISafe.String())
	for ii, jj := 0, len(rev)-1; ii < jj; ii, jj = ii+1, jj-1 {
		rev[ii], rev[jj] = rev[jj], rev[ii]
	}
	a, err := NewAlphabet(string(rev))
	if err != nil {
		t.Fatalf("reversed alphabet: %v", err)
	}
	s := "custom alphabets round-trip too"
	got, err := DecompressWith(a, CompressWith(a, s), 0)
	if err != nil || got != s {
		t.Fatalf("custom alphabet roundtrip: %q, %v", got, err)
	}
}
