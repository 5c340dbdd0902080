package config

import "testing"

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	t.Setenv("INT_TEST", "7")
	if got := intEnvOrDefault("INT_TEST", 3); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	for _, raw := range []string{"", "-1", "0", "abc"} {
		t.Setenv("INT_TEST", raw)
		if got := intEnvOrDefault("INT_TEST", 3); got != 3 {
			t.Fatalf("expected default for %q, got %d", raw, got)
		}
	}
}

func TestListEnvOrDefault(t *testing.T) {
	def := []string{"x"}
	t.Setenv("LIST_TEST", " , ")
	if got := listEnvOrDefault("LIST_TEST", def); len(got) != 1 || got[0] != "x" {
		t.Fatalf("expected default for blank list, got %v", got)
	}
	t.Setenv("LIST_TEST", "a,b")
	if got := listEnvOrDefault("LIST_TEST", def); len(got) != 2 || got[1] != "b" {
		t.Fatalf("expected parsed list, got %v", got)
	}
}
