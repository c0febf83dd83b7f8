// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"testing"
)

func TestParseUBigRadixExamples(t *testing.T) {
	cases := []struct {
		s     string
		radix int
		want  string
	}{
		{"0", 10, "0"},
		{"ff", 16, "255"},
		{"FF", 16, "255"},
		{"1010", 2, "10"},
		{"777", 8, "511"},
		{"z", 36, "35"},
		{"1000000000000000000000000000000000000000", 10, "1000000000000000000000000000000000000000"},
	}
	for _, c := range cases {
		got, err := ParseUBigRadix(c.s, c.radix)
		if err != nil {
			t.Fatalf("ParseUBigRadix(%q, %d): %v", c.s, c.radix, err)
		}
		want := mustUBig(t, c.want)
		if !got.Equal(want) {
			t.Errorf("ParseUBigRadix(%q, %d) = %s, want %s", c.s, c.radix, got.String(), c.want)
		}
	}
}

func TestParseUBigRadixInvalidDigit(t *testing.T) {
	if _, err := ParseUBigRadix("12g", 16); err == nil {
		t.Errorf("expected error parsing 12g as hex")
	}
	if _, err := ParseUBigRadix("", 10); err == nil {
		t.Errorf("expected error parsing empty string")
	}
}

func TestParseUBigWithRadixPrefix(t *testing.T) {
	cases := []struct {
		s    string
		want string
	}{
		{"0x1f", "31"},
		{"0b101", "5"},
		{"0o17", "15"},
		{"42", "42"},
	}
	for _, c := range cases {
		got, err := ParseUBigWithRadixPrefix(c.s)
		if err != nil {
			t.Fatalf("ParseUBigWithRadixPrefix(%q): %v", c.s, err)
		}
		if want := mustUBig(t, c.want); !got.Equal(want) {
			t.Errorf("ParseUBigWithRadixPrefix(%q) = %s, want %s", c.s, got.String(), c.want)
		}
	}
}

func TestRadixFormatParseRoundTrip(t *testing.T) {
	values := []string{
		"0", "1", "255", "65536",
		"123456789012345678901234567890123456789012345678901234567890",
	}
	for _, v := range values {
		u := mustUBig(t, v)
		for radix := 2; radix <= 36; radix++ {
			s := u.FormatRadix(radix, false)
			back, err := ParseUBigRadix(s, radix)
			if err != nil {
				t.Fatalf("radix %d: ParseUBigRadix(%q): %v", radix, s, err)
			}
			if !back.Equal(u) {
				t.Errorf("radix %d: round trip %s -> %q -> %s", radix, v, s, back.String())
			}
		}
	}
}

func TestFormatRadixUppercase(t *testing.T) {
	u := mustUBig(t, "255")
	if got := u.FormatRadix(16, false); got != "ff" {
		t.Errorf("255 in hex lowercase = %q, want ff", got)
	}
	if got := u.FormatRadix(16, true); got != "FF" {
		t.Errorf("255 in hex uppercase = %q, want FF", got)
	}
}

func TestIBigFormatRadixSign(t *testing.T) {
	v := mustIBig(t, "-255")
	if got := v.FormatRadix(16, false); got != "-ff" {
		t.Errorf("-255 in hex = %q, want -ff", got)
	}
}

func TestIBigStringDecimal(t *testing.T) {
	if mustIBig(t, "-42").String() != "-42" {
		t.Errorf("String() for -42 = %q", mustIBig(t, "-42").String())
	}
}

func TestFormatVerbWidthAndSign(t *testing.T) {
	v := mustIBig(t, "42")
	if got := fmt.Sprintf("%+d", v); got != "+42" {
		t.Errorf("%%+d of 42 = %q, want +42", got)
	}
	if got := fmt.Sprintf("%6d", v); got != "    42" {
		t.Errorf("%%6d of 42 = %q, want '    42'", got)
	}
	if got := fmt.Sprintf("%06d", v); got != "000042" {
		t.Errorf("%%06d of 42 = %q, want 000042", got)
	}
	if got := fmt.Sprintf("%x", mustUBig(t, "255")); got != "ff" {
		t.Errorf("%%x of 255 = %q, want ff", got)
	}
}
