package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"t", TextFormat},
		{"YAML", YAMLFormat},
		{"j", JSONFormat},
		{"hcl", HCLFormat},
		{"toml", TOMLFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want ErrBadFormat", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range []Format{TextFormat, YAMLFormat, JSONFormat, HCLFormat, TOMLFormat} {
		var g Format
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s round tripped to %s", f, g)
		}
		if s, ok := FromSuffix("x" + f.Suffix()); !ok || s != f {
			t.Errorf("FromSuffix(%s) = %s, %v", f.Suffix(), s, ok)
		}
	}
	if _, ok := FromSuffix("deck.lua"); ok {
		t.Errorf("lua suffix accepted")
	}
}
