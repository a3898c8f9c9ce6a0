package asm

import "testing"

func TestEncodeLineThreeRegisterForm(t *testing.T) {
	var diags Diagnostics
	word, ok := encodeLine([]string{"add", "r1", "r0", "r0"}, 1, &diags)
	if !ok {
		t.Fatalf("encode failed: %v", diags.All())
	}
	if word != [2]byte{0x41, 0x00} {
		t.Errorf("got %#v, want {0x41, 0x00}", word)
	}
}

func TestEncodeLineSet(t *testing.T) {
	var diags Diagnostics
	word, ok := encodeLine([]string{"set", "r0", "x0A"}, 1, &diags)
	if !ok {
		t.Fatalf("encode failed: %v", diags.All())
	}
	if word != [2]byte{0x80, 0x0A} {
		t.Errorf("got %#v, want {0x80, 0x0A}", word)
	}
}

func TestEncodeLineLongMnemonic(t *testing.T) {
	var diags Diagnostics
	word, ok := encodeLine([]string{"addi", "r1", "r0", "5"}, 1, &diags)
	if !ok {
		t.Fatalf("encode failed: %v", diags.All())
	}
	if word != [2]byte{0x61, 0x05} {
		t.Errorf("got %#v, want {0x61, 0x05}", word)
	}
}

func TestEncodeLineArityError(t *testing.T) {
	var diags Diagnostics
	if _, ok := encodeLine([]string{"mov", "r0"}, 7, &diags); ok {
		t.Fatal("expected encode to fail on wrong arity")
	}
	got := diags.All()
	if len(got) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", got)
	}
	want := "line 7 - Syntax Error: MOVE (MOV) command takes 2 arguments"
	if got[0].String() != want {
		t.Errorf("got %q, want %q", got[0].String(), want)
	}
}

func TestEncodeLineUnrecognized(t *testing.T) {
	var diags Diagnostics
	if _, ok := encodeLine([]string{"xyzzy", "r0", "r1"}, 1, &diags); ok {
		t.Fatal("expected encode to fail for unrecognized mnemonic")
	}
	want := "line 1 - Unrecognized Command: 'xyzzy'"
	if got := diags.All()[0].String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeLineRangeErrors(t *testing.T) {
	var diags Diagnostics
	if _, ok := encodeLine([]string{"set", "r0", "256"}, 1, &diags); ok {
		t.Error("expected imm8 overflow to fail")
	}
	var diags2 Diagnostics
	if _, ok := encodeLine([]string{"adi", "r0", "r1", "16"}, 1, &diags2); ok {
		t.Error("expected imm4 overflow to fail")
	}
}
