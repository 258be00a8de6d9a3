package common

import "testing"

func TestTitleWords(t *testing.T) {
	tests := map[string]string{
		"karachi":    "Karachi",
		"tando adam": "Tando Adam",
		"a  b":       "A  B",
		"":           "",
	}
	for in, want := range tests {
		if got := TitleWords(in); got != want {
			t.Errorf("TitleWords(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHasAny(t *testing.T) {
	if !HasAny("light rain", "snow", "rain") {
		t.Error("expected match for rain")
	}
	if HasAny("clear", "cloud") {
		t.Error("unexpected match")
	}
}
