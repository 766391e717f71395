package driver_test

import (
	"testing"

	"github.com/gocldr/segment/internal/driver"
)

func TestSplitDefaultOptionsWordBreak(t *testing.T) {
	d, err := driver.New()
	if err != nil {
		t.Fatal(err)
	}
	got, err := d.Split("Hello, world!", driver.NewOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Hello", ",", " ", "world", "!"}
	assertEqual(t, got, want)
}

func TestSplitConcatenationInvariant(t *testing.T) {
	d, err := driver.New()
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{
		"Hello, world! This is Mr. Smith's dog.",
		"The quick brown fox.",
		"",
	} {
		o := driver.NewOptions()
		o.Kind = driver.Sentence
		segs, err := d.Split(s, o)
		if err != nil {
			t.Fatal(err)
		}
		var joined string
		for _, seg := range segs {
			joined += seg
		}
		if joined != s {
			t.Errorf("concatenation invariant broken: got %q, want %q", joined, s)
		}
	}
}

func TestDictionaryDispatchZh(t *testing.T) {
	d, err := driver.New()
	if err != nil {
		t.Fatal(err)
	}
	o := driver.NewOptions().WithLocale("zh")
	got, err := d.Split("布鲁赫", o)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"布", "鲁", "赫"}
	assertEqual(t, got, want)
}

func TestDictionaryDispatchOnlyAppliesToWordKind(t *testing.T) {
	d, err := driver.New()
	if err != nil {
		t.Fatal(err)
	}
	o := driver.NewOptions().WithLocale("zh")
	o.Kind = driver.Sentence
	// Sentence-break mode must not route through the dictionary
	// word-breaker even for a dictionary locale.
	got, err := d.Split("布鲁赫。", o)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("expected at least one sentence segment")
	}
	var joined string
	for _, seg := range got {
		joined += seg
	}
	if joined != "布鲁赫。" {
		t.Errorf("got %q, want 布鲁赫。", joined)
	}
}

func TestTrimDropsWhitespaceSegments(t *testing.T) {
	d, err := driver.New()
	if err != nil {
		t.Fatal(err)
	}
	o := driver.NewOptions()
	o.Trim = true
	got, err := d.Split("foo  bar", o)
	if err != nil {
		t.Fatal(err)
	}
	for _, seg := range got {
		if seg == " " || seg == "  " {
			t.Errorf("expected whitespace-only segments to be trimmed, found %q in %v", seg, got)
		}
	}
}

func TestUnknownLocaleStrictErrors(t *testing.T) {
	d, err := driver.New()
	if err != nil {
		t.Fatal(err)
	}
	o := driver.NewOptions().WithLocale("xx-Zzzz-YY")
	if _, err := d.Split("hello", o); err == nil {
		t.Fatal("expected an error for a strict unknown locale")
	}
}

func TestUnknownLocaleLenientFallsBackToRoot(t *testing.T) {
	d, err := driver.New()
	if err != nil {
		t.Fatal(err)
	}
	o := driver.NewOptions()
	o.Locale = "xx-Zzzz-YY"
	got, err := d.Split("hello", o)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"hello"}
	assertEqual(t, got, want)
}

func TestStreamMatchesSplit(t *testing.T) {
	d, err := driver.New()
	if err != nil {
		t.Fatal(err)
	}
	s := "Hello, world!"
	o := driver.NewOptions()

	want, err := d.Split(s, o)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	sp := d.Stream(s, o)
	for {
		seg, ok := sp.Next()
		if !ok {
			break
		}
		got = append(got, seg)
	}
	if err := sp.Err(); err != nil {
		t.Fatal(err)
	}
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
