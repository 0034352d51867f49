package deck

import (
	"testing"
)

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Card
	}{
		{"As", Card{Ace, Spades}},
		{"Kh", Card{King, Hearts}},
		{"Td", Card{Ten, Diamonds}},
		{"10d", Card{Ten, Diamonds}},
		{"2c", Card{Two, Clubs}},
		{"9s", Card{Nine, Spades}},
		{"ah", Card{Ace, Hearts}}, // lowercase rank accepted
	}

	for _, tt := range tests {
		got, err := ParseCard(tt.in)
		if err != nil {
			t.Errorf("ParseCard(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCard(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCardInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "A", "1s", "Ax", "11h", "Zz"} {
		if _, err := ParseCard(in); err == nil {
			t.Errorf("ParseCard(%q) should fail", in)
		}
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()

	c := NewCard(Ace, Spades)
	if c.String() != "A♠" {
		t.Errorf("String() = %q, want A♠", c.String())
	}
	if c.Compact() != "As" {
		t.Errorf("Compact() = %q, want As", c.Compact())
	}
}

func TestRankOrdinals(t *testing.T) {
	t.Parallel()

	if int(Two) != 2 || int(Ace) != 14 {
		t.Errorf("rank ordinals wrong: Two=%d Ace=%d", int(Two), int(Ace))
	}
	if !(Ace > King && King > Queen && Queen > Jack && Jack > Ten) {
		t.Error("rank ordering broken")
	}
}
