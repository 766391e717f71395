package graphemes_test

import (
	"testing"

	"github.com/gocldr/segment/graphemes"
)

func TestSplitASCII(t *testing.T) {
	got, err := graphemes.Split("abc")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	assertEqual(t, got, want)
}

func TestSplitCombiningMarkStaysAttached(t *testing.T) {
	// A plain "e" followed by a combining acute accent (U+0301) is one
	// extended grapheme cluster, not two codepoints.
	s := "éclair"
	got, err := graphemes.Split(s)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"é", "c", "l", "a", "i", "r"}
	assertEqual(t, got, want)
}

func TestIterator(t *testing.T) {
	it := graphemes.FromString("hi")
	var got []string
	for it.Next() {
		got = append(got, it.Value())
	}
	if err := it.Err(); err != nil {
		t.Fatal(err)
	}
	want := []string{"h", "i"}
	assertEqual(t, got, want)
}

func assertEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}
