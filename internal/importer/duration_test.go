package importer_test

import (
	"testing"

	"github.com/goliatone/go-recipes/internal/importer"
)

func TestParseISODurationMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"PT5M", 5},
		{"PT1H30M", 90},
		{"PT2H", 120},
		{"PT0M", 0},
		{"", 0},
		{"45 minutes", 0},
		{"P1DT2H", 0}, // date component not supported; PT prefix required
	}
	for _, tc := range cases {
		if got := importer.ParseISODurationMinutes(tc.in); got != tc.want {
			t.Errorf("ParseISODurationMinutes(%q): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestHumanDuration(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{5, "5 minutes"},
		{1, "1 minute"},
		{60, "1 hour"},
		{90, "1 hour 30 minutes"},
		{120, "2 hours"},
		{0, ""},
	}
	for _, tc := range cases {
		if got := importer.HumanDuration(tc.in); got != tc.want {
			t.Errorf("HumanDuration(%d): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
