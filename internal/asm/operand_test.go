package asm

import "testing"

func TestParseRegisterAliases(t *testing.T) {
	cases := map[string]int{
		"r0": 0, "R0": 0, "r9": 9, "ra": 10, "rF": 15,
		"pc": 15, "PC": 15,
		"out0": 13, "output0": 13, "OUT1": 14, "output1": 14,
		"in": 6, "input": 6, "IN": 6,
	}
	for tok, want := range cases {
		got, err := parseRegister(tok)
		if err != nil {
			t.Errorf("parseRegister(%q) unexpected error: %v", tok, err)
			continue
		}
		if got != want {
			t.Errorf("parseRegister(%q) = %d, want %d", tok, got, want)
		}
	}
}

func TestParseRegisterInvalid(t *testing.T) {
	for _, tok := range []string{"rg", "x1", "", "r", "register0"} {
		if _, err := parseRegister(tok); err == nil {
			t.Errorf("parseRegister(%q) expected error, got none", tok)
		}
	}
}

func TestParseLiteralBases(t *testing.T) {
	cases := map[string]int{
		"10":   10,
		"x0A":  10,
		"X0a":  10,
		"xFF":  255,
		"b101": 5,
		"B1":   1,
		"0":    0,
	}
	for tok, want := range cases {
		got, err := parseLiteral(tok)
		if err != nil {
			t.Errorf("parseLiteral(%q) unexpected error: %v", tok, err)
			continue
		}
		if got != want {
			t.Errorf("parseLiteral(%q) = %d, want %d", tok, got, want)
		}
	}
}

func TestParseLiteralRejectsNegative(t *testing.T) {
	if _, err := parseLiteral("-1"); err == nil {
		t.Error("expected negative literal to be rejected")
	}
}

func TestParseLiteralBinaryIgnoresNonOneBits(t *testing.T) {
	got, err := parseLiteral("b1x1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 { // 1,x->0,1 => 101b = 5
		t.Errorf("got %d, want 5", got)
	}
}
