package sentences_test

import (
	"testing"

	"github.com/gocldr/segment/sentences"
)

func TestSplit(t *testing.T) {
	got, err := sentences.Split("This is a sentence. And another.")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"This is a sentence. ", "And another."}
	assertEqual(t, got, want)
}

func TestSplitLocaleSuppressesAbbreviation(t *testing.T) {
	s := "No, I don't have a Ph.D. but I don't think it matters."
	got, err := sentences.SplitLocale(s, "en")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{s}
	assertEqual(t, got, want)
}

func TestIterator(t *testing.T) {
	it := sentences.FromString("One. Two.")
	var got []string
	for it.Next() {
		got = append(got, it.Value())
	}
	if err := it.Err(); err != nil {
		t.Fatal(err)
	}
	want := []string{"One. ", "Two."}
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
