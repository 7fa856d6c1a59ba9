package lzstring

import (
	"strings"
	"testing"
)

func TestEncodedURIComponent(t *testing.T) {
	for _, s := range roundtrips {
		enc := CompressToEncodedURIComponent(s)
		if strings.ContainsAny(enc, " /=") {
			t.Fatalf("%q is not URL safe", enc)
		}
		got, err := DecompressFromEncodedURIComponent(enc)
		if err != nil || got != s {
			t.Fatalf("roundtrip %q: %q, %v", s, got, err)
		}
	}
}

func TestEncodedURIComponentFormDecoded(t *testing.T) {
	// "ÿĀ" encodes to "P+AEAg", form decoding turns '+' into a space
	got, err := DecompressFromEncodedURIComponent("P AEAg")
	if err != nil || got != "ÿĀ" {
		t.Fatalf("form decoded payload: %q, %v", got, err)
	}
	got, err = DecompressFromEncodedURIComponent("BIUwNmD2A0AE\nDqkBOYAm\r\nBCIA\t")
	if err != nil || got != "Hello, World!" {
		t.Fatalf("wrapped payload: %q, %v", got, err)
	}
}

func TestBase64(t *testing.T) {
	tests := []struct {
		text    string
		encoded string
	}{
		{"a", "IZA="},
		{"ABAB", "IIIVQ==="},
		{"aaaaaaaaaa", "IY1o"},
		{"ÿĀ", "P+AEAg=="},
		{"hello hello hello", "BYUwNmD2AEoTcpA="},
		{strings.Repeat("x", 1000), "B418ZXTt/DFOS1b0c17Pd/wYUcSaWeRZVdTbXTEA"},
	}
	for _, tt := range tests {
		if got := CompressToBase64(tt.text); got != tt.encoded {
			t.Errorf("CompressToBase64(%q) = %q, want %q", tt.text, got, tt.encoded)
		}
		got, err := DecompressFromBase64(tt.encoded)
		if err != nil || got != tt.text {
			t.Errorf("DecompressFromBase64(%q) = %q, %v", tt.encoded, got, err)
		}
	}
	for _, s := range roundtrips {
		enc := CompressToBase64(s)
		if len(enc)%4 != 0 {
			t.Fatalf("unpadded output %q", enc)
		}
		got, err := DecompressFromBase64(enc)
		if err != nil || got != s {
			t.Fatalf("roundtrip %q: %q, %v", s, got, err)
		}
	}
}
