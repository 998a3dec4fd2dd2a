package units

import "testing"

func TestFormatGrams(t *testing.T) {
	tests := []struct {
		grams int64
		want  string
	}{
		{0, "0 g"},
		{200, "200 g"},
		{999, "999 g"},
		{1000, "1.00 kg"},
		{1500, "1.50 kg"},
		{14000, "14.00 kg"},
		{1234, "1.23 kg"},
	}

	for _, tt := range tests {
		if got := FormatGrams(tt.grams); got != tt.want {
			t.Errorf("FormatGrams(%d) = %q, want %q", tt.grams, got, tt.want)
		}
	}
}
