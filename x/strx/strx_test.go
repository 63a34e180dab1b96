package strx

import "testing"

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "d"); got != "d" {
		t.Fatalf("Coalesce(\"\", d) = %q", got)
	}
	if got := Coalesce("s", "d"); got != "s" {
		t.Fatalf("Coalesce(s, d) = %q", got)
	}
}
