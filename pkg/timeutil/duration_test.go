package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 7 * 24 * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1w2d6h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (7*24 + 2*24 + 6) * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w2d6h" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowPlainHours(t *testing.T) {
	dur, label, err := ParseWindow("48h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 48*time.Hour {
		t.Fatalf("expected 48h, got %v", dur)
	}
	if label != "2d" {
		t.Fatalf("expected canonical label 2d, got %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, input := range []string{"noop", "3x", "0d", "-1d"} {
		if _, _, err := ParseWindow(input); err == nil {
			t.Fatalf("expected error for window %q", input)
		}
	}
}

func TestFormatWindowZero(t *testing.T) {
	if got := FormatWindow(0); got != "0h" {
		t.Fatalf("expected 0h, got %s", got)
	}
}
