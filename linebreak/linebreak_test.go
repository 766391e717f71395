package linebreak_test

import (
	"testing"

	"github.com/gocldr/segment/linebreak"
)

func TestSplit(t *testing.T) {
	got, err := linebreak.Split("This is a sentence. And another.")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"This ", "is ", "a ", "sentence. ", "And ", "another."}
	assertEqual(t, got, want)
}

func TestIterator(t *testing.T) {
	it := linebreak.FromString("a b")
	var got []string
	for it.Next() {
		got = append(got, it.Value())
	}
	if err := it.Err(); err != nil {
		t.Fatal(err)
	}
	want := []string{"a ", "b"}
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
