package angle

import (
	"errors"
	"math"
	"testing"
)

func TestParseSexagesimal(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		in   string
		want float64
	}{
		{"south suffix", Latitude, "10:30:45S", -10.5125},
		{"north suffix", Latitude, "51:30:00N", 51.5},
		{"lowercase suffix", Latitude, "10:30:45s", -10.5125},
		{"suffix after space", Latitude, "10:30:45.00 S", -10.5125},
		{"west suffix", Longitude, "4:04:34.57W", -4.076269444444444},
		{"leading minus", Longitude, "-10:30:45", -10.5125},
		{"leading plus", Longitude, "+10:30:45", 10.5125},
		{"fractional seconds", HourAngle, "0:00:01.5", 1.5 / 3600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.kind, tt.in, Degrees)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got := v.Degrees(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Parse(%q).Degrees() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseUnitMarkers(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		in       string
		fallback Unit
		wantDeg  float64
	}{
		{"degree marker", Longitude, "45d", Hours, 45},
		{"radian marker", Longitude, "1.5r", Degrees, 1.5 * 180 / math.Pi},
		{"hour marker", RightAscension, "5.5h", Degrees, 82.5},
		{"no marker uses fallback", RightAscension, "120", Degrees, 120},
		{"hour fallback", RightAscension, "6", Hours, 90},
		{"marker mid-string", Longitude, "d45.5", Hours, 45.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.kind, tt.in, tt.fallback)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got := v.Degrees(); math.Abs(got-tt.wantDeg) > 1e-9 {
				t.Errorf("Parse(%q).Degrees() = %v, want %v", tt.in, got, tt.wantDeg)
			}
		})
	}
}

func TestParseFloats(t *testing.T) {
	tests := []struct {
		kind Kind
		in   string
		want float64
	}{
		{Latitude, "53.068508", 53.068508},
		{Longitude, "-4.076269", -4.076269},
		{Longitude, "12.5E", 12.5},
		{Longitude, "12.5W", -12.5},
		{Longitude, "1.5e2", 150}, // exponent, not an east suffix
		{FreeRotation, "-725", -5},
	}

	for _, tt := range tests {
		v, err := Parse(tt.kind, tt.in, Degrees)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.in, err)
		}
		if got := v.Degrees(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Parse(%q).Degrees() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		in   string
	}{
		{"empty", Latitude, ""},
		{"junk", Latitude, "north"},
		{"one colon", Latitude, "10:30"},
		{"three colons", Latitude, "1:2:3:4"},
		{"bad minutes", Latitude, "10:xx:45"},
		{"negative minutes", Latitude, "10:-30:45"},
		{"float degrees in triple", Latitude, "10.5:30:45"},
		{"two markers", Longitude, "1d2d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.kind, tt.in, Degrees); !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) error = %v, want ErrParse", tt.in, err)
			}
		})
	}
}
