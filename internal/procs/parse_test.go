package procs

import "testing"

func TestPortFromAddr(t *testing.T) {
	cases := map[string]uint16{
		"0.0.0.0:8080":       8080,
		"127.0.0.1:3000":     3000,
		"*:5173":             5173,
		"[::]:4200":          4200,
		"[::1]:3000":         3000,
		"[fe80::1%lo0]:9000": 9000,
		"invalid":            0,
		"":                   0,
		"1.2.3.4:":           0,
		"1.2.3.4:0":          0,
		"1.2.3.4:70000":      0,
		"[::]":               0,
	}
	for addr, want := range cases {
		if got := portFromAddr(addr); got != want {
			t.Errorf("portFromAddr(%q) = %d, want %d", addr, got, want)
		}
	}
}
