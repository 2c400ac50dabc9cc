package portset

import (
	"reflect"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	cases := map[string][]uint16{
		"8080":                  {8080},
		"3000,8080":             {3000, 8080},
		"8080,3000":             {3000, 8080},
		"3000-3002":             {3000, 3001, 3002},
		"3000-3002, 8080":       {3000, 3001, 3002, 8080},
		"8080, 3000-3002, 8080": {3000, 3001, 3002, 8080},
		"3000 3001\t3002":       {3000, 3001, 3002},
	}
	for expr, want := range cases {
		t.Run(expr, func(t *testing.T) {
			got, err := Parse(expr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("got %v want %v", got, want)
			}
		})
	}
}

func TestParse_OverlappingRangesDeduplicate(t *testing.T) {
	got, err := Parse("3000-3002,3002-3004")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint16{3000, 3001, 3002, 3003, 3004}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"",          // empty
		"   ",       // whitespace only
		"0",         // port zero
		"65536",     // above range
		"3009-3000", // reversed range
		"nope",      // bad token
		"8080,nope", // one bad token fails the expression
		"1-70000",   // range end out of bounds
	}
	for _, expr := range cases {
		t.Run(expr, func(t *testing.T) {
			if _, err := Parse(expr); err == nil {
				t.Fatalf("expected error for %q", expr)
			}
		})
	}
}

func TestDefaultProfile(t *testing.T) {
	profile := DefaultProfile()
	if profile.Name != DefaultProfileName {
		t.Fatalf("got name %q want %q", profile.Name, DefaultProfileName)
	}

	ports, err := profile.Ports()
	if err != nil {
		t.Fatalf("default profile must parse: %v", err)
	}

	// Four ranges of ten ports each
	if len(ports) != 40 {
		t.Fatalf("got %d ports want 40", len(ports))
	}
	for i := 1; i < len(ports); i++ {
		if ports[i] <= ports[i-1] {
			t.Fatalf("ports not strictly ascending at index %d: %v", i, ports)
		}
	}
}
