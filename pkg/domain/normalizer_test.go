package domain

import (
	"testing"
)

func TestUnicodeToASCII_PassThrough(t *testing.T) {
	inputs := []string{
		"",
		",",
		".",
		"a.",
		"a.b",
		"a..b",
		"a...b",
		".a",
		"..a",
		"Example.COM",
		" apache.org ",
		"http://www.apache.org",
	}

	for _, in := range inputs {
		if got := UnicodeToASCII(in); got != in {
			t.Errorf("UnicodeToASCII(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestUnicodeToASCII_OtherDots(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"b。", "b."},
		{"b．", "b."},
		{"b｡", "b."},
		{"。", "."},
		{"．", "."},
		{"｡", "."},
		{"a。b．c", "a.b.c"},
	}

	for _, tt := range tests {
		if got := UnicodeToASCII(tt.in); got != tt.want {
			t.Errorf("UnicodeToASCII(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnicodeToASCII_IDN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "latin idn", in: "www.bücher.ch", want: "www.xn--bcher-kva.ch"},
		{name: "cyrillic", in: "президент.рф", want: "xn--d1abbgf6aiiy.xn--p1ai"},
		{name: "mixed case", in: "ПрИмер.Рф", want: "xn--e1afmkfd.xn--p1ai"},
		{name: "ideographic separators", in: "bücher。ch", want: "xn--bcher-kva.ch"},
		{name: "trailing dot kept", in: "bücher.ch.", want: "xn--bcher-kva.ch."},
		{name: "trailing ideographic dot kept", in: "bücher.ch。", want: "xn--bcher-kva.ch."},
		{name: "ascii label with double hyphen", in: "ab--cd.bücher.ch", want: "ab--cd.xn--bcher-kva.ch"},
		{name: "leading hyphen run", in: "r3---sn-abc.bücher.ch", want: "r3---sn-abc.xn--bcher-kva.ch"},
		{name: "invalid code point left alone", in: "www.�.ch", want: "www.�.ch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnicodeToASCII(tt.in); got != tt.want {
				t.Fatalf("UnicodeToASCII(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnicodeToASCII_Idempotent(t *testing.T) {
	inputs := []string{
		"", ".", "a.", "a..b", "b。", "．",
		"www.bücher.ch", "президент.рф.", "www.�.ch", "　apache.org",
	}

	for _, in := range inputs {
		once := UnicodeToASCII(in)
		if twice := UnicodeToASCII(once); twice != once {
			t.Errorf("UnicodeToASCII not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func BenchmarkUnicodeToASCII(b *testing.B) {
	inputs := []string{
		"www.apache.org",
		"президент.рф",
		"www.bücher.ch",
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = UnicodeToASCII(inputs[i%len(inputs)])
	}
}
