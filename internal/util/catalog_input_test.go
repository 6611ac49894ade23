package util

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeSearchTerm(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  Paris  ", want: "Paris"},
		{in: "<script>x", want: "scriptx"},
		{in: `a"b'c;d\e`, want: "abcde"},
		{in: "<>", want: ""},
		{in: "Amérique du Sud", want: "Amérique du Sud"},
	}
	for _, tt := range tests {
		if got := SanitizeSearchTerm(tt.in); got != tt.want {
			t.Fatalf("SanitizeSearchTerm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeSearchTermTruncates(t *testing.T) {
	got := SanitizeSearchTerm(strings.Repeat("é", 150))
	if utf8.RuneCountInString(got) != MaxSearchLength {
		t.Fatalf("expected %d runes, got %d", MaxSearchLength, utf8.RuneCountInString(got))
	}
	if strings.ContainsAny(SanitizeSearchTerm(strings.Repeat("<a>", 80)), `<>"';\`) {
		t.Fatalf("expected stripped characters to be absent")
	}
}

func TestLikeContainsEscapesWildcards(t *testing.T) {
	if got := LikeContains("50%_off"); got != `%50\%\_off%` {
		t.Fatalf("unexpected pattern %q", got)
	}
}

func TestValidEmail(t *testing.T) {
	for _, email := range []string{"a@b.com", "first.last+tag@example.co"} {
		if !ValidEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}
	for _, email := range []string{"", "plain", "a@b", "a@b.c", "a b@c.com"} {
		if ValidEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestCatalogRangeValidators(t *testing.T) {
	if !ValidRating(0) || !ValidRating(5) || ValidRating(5.01) || ValidRating(-0.1) {
		t.Fatalf("rating bounds are inclusive 0..5")
	}
	if !ValidCoordinates(-90, 180) || ValidCoordinates(91, 0) || ValidCoordinates(0, -181) {
		t.Fatalf("unexpected coordinate validation")
	}
	if !ValidDuration(1) || !ValidDuration(365) || ValidDuration(0) || ValidDuration(366) {
		t.Fatalf("unexpected duration validation")
	}
	if ValidPrice(0) || !ValidPrice(50000) || ValidPrice(50000.5) {
		t.Fatalf("unexpected price validation")
	}
}
