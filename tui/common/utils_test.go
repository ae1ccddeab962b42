package common

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestClampLines(t *testing.T) {
	got := ClampLines("HOT SALE IN EUROPE electric racing motorcycle for adults", 16, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(got), got)
	}
	for _, l := range got {
		if ansi.StringWidth(l) > 16 {
			t.Fatalf("line exceeds width: %q", l)
		}
	}
	if !strings.HasSuffix(got[1], "…") {
		t.Fatalf("expected ellipsis on clamped line: %q", got[1])
	}
	if got := ClampLines("short", 16, 2); len(got) != 1 || got[0] != "short" {
		t.Fatalf("short text should pass through: %q", got)
	}
}

func TestStarsAndInitials(t *testing.T) {
	if Stars(4) != "★★★★☆" || Stars(9) != "★★★★★" || Stars(-1) != "☆☆☆☆☆" {
		t.Fatalf("unexpected stars %q %q %q", Stars(4), Stars(9), Stars(-1))
	}
	if Initials("Aditi") != "AD" || Initials("x") != "X" {
		t.Fatalf("unexpected initials")
	}
}

func TestGroupDigitsAndPlural(t *testing.T) {
	cases := map[int]string{0: "0", 999: "999", 1000: "1,000", 1234567: "1,234,567", -4200: "-4,200"}
	for in, want := range cases {
		if got := GroupDigits(in); got != want {
			t.Fatalf("GroupDigits(%d) = %q, want %q", in, got, want)
		}
	}
	if Plural(1) != "" || Plural(0) != "s" || Plural(2) != "s" {
		t.Fatalf("unexpected plural suffixes")
	}
}
