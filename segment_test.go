package segment_test

import (
	"testing"
	"testing/quick"

	seg "github.com/gocldr/segment"
)

func TestScenario1WordBreak(t *testing.T) {
	got, err := seg.Split("This is a sentence. And another.", seg.New().WithBreak(seg.BreakWord))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"This", " ", "is", " ", "a", " ", "sentence", ".", " ", "And", " ", "another", "."}
	assertEqual(t, got, want)
}

func TestScenario2SentenceBreak(t *testing.T) {
	got, err := seg.Split("This is a sentence. And another.", seg.New().WithBreak(seg.BreakSentence))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"This is a sentence. ", "And another."}
	assertEqual(t, got, want)
}

func TestScenario3SentenceSuppressionAbbreviation(t *testing.T) {
	s := "No, I don't have a Ph.D. but I don't think it matters."
	got, err := seg.Split(s, seg.New().WithBreak(seg.BreakSentence))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{s}
	assertEqual(t, got, want)
}

func TestScenario4LineBreak(t *testing.T) {
	got, err := seg.Split("This is a sentence. And another.", seg.New().WithBreak(seg.BreakLine))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"This ", "is ", "a ", "sentence. ", "And ", "another."}
	assertEqual(t, got, want)
}

func TestScenario5DictionaryWordBreakZh(t *testing.T) {
	o := seg.New().WithBreak(seg.BreakWord).WithLocale("zh")
	got, err := seg.Split("布鲁赫", o)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"布", "鲁", "赫"}
	assertEqual(t, got, want)

	got, err = seg.Split("明德", o)
	if err != nil {
		t.Fatal(err)
	}
	want = []string{"明德"}
	assertEqual(t, got, want)
}

func TestScenario6TurkishCasing(t *testing.T) {
	o := seg.New().WithLocale("tr")
	if got := seg.Upcase("Diyarbakır", o); got != "DİYARBAKIR" {
		t.Errorf("Upcase = %q, want DİYARBAKIR", got)
	}
	if got := seg.Downcase("DİYARBAKIR", o); got != "diyarbakır" {
		t.Errorf("Downcase = %q, want diyarbakır", got)
	}
}

func TestScenario7GreekDowncaseFinalSigma(t *testing.T) {
	o := seg.New().WithLocale("el")
	got := seg.Downcase("ὈΔΥΣΣΕΎΣ", o)
	want := "ὀδυσσεύς"
	if got != want {
		t.Errorf("Downcase = %q, want %q", got, want)
	}
}

func TestScenario8GreekUpcaseStripsDiacritics(t *testing.T) {
	o := seg.New().WithLocale("el")
	got := seg.Upcase("Πατάτα, Αέρας, Μυστήριο", o)
	want := "ΠΑΤΑΤΑ, ΑΕΡΑΣ, ΜΥΣΤΗΡΙΟ"
	if got != want {
		t.Errorf("Upcase = %q, want %q", got, want)
	}
}

func TestScenario9DutchTitlecase(t *testing.T) {
	o := seg.New().WithLocale("nl")
	got, err := seg.Titlecase("ijsselmeer", o)
	if err != nil {
		t.Fatal(err)
	}
	want := "IJsselmeer"
	if got != want {
		t.Errorf("Titlecase = %q, want %q", got, want)
	}
}

func TestScenario10FoldEqualsIgnoringCase(t *testing.T) {
	if !seg.EqualsIgnoringCase("beißen", "beissen") {
		t.Error(`expected "beißen" and "beissen" to fold equal`)
	}
	if seg.EqualsIgnoringCase("grüßen", "grussen") {
		t.Error(`expected "grüßen" and "grussen" to fold unequal`)
	}
}

func TestSuppressionsDisabledBreaksAbbreviation(t *testing.T) {
	o := seg.New().WithBreak(seg.BreakSentence).WithSuppressions(false)
	got, err := seg.Split("Mr. Smith", o)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) < 2 {
		t.Fatalf("expected a break after Mr. with suppressions disabled, got %v", got)
	}
}

func TestTrimOmitsWhitespaceSegments(t *testing.T) {
	o := seg.New().WithTrim(true)
	got, err := seg.Split("foo  bar", o)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"foo", "bar"}
	assertEqual(t, got, want)
}

func TestUnknownLocaleIsAHardError(t *testing.T) {
	o := seg.New().WithLocale("xx-Zzzz-YY")
	if _, err := seg.Split("hello", o); err == nil {
		t.Fatal("expected an error for an unresolvable explicit locale")
	}
}

func TestSplitterMatchesSplit(t *testing.T) {
	s := "This is a sentence. And another."
	o := seg.New().WithBreak(seg.BreakWord)

	want, err := seg.Split(s, o)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	sp := seg.NewSplitter(s, o)
	for {
		v, ok := sp.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if err := sp.Err(); err != nil {
		t.Fatal(err)
	}
	assertEqual(t, got, want)
}

// TestConcatenationInvariant checks P1: joining Split's segments with
// trim disabled always reconstructs the original string, across each
// break kind and a range of fuzzed inputs.
func TestConcatenationInvariant(t *testing.T) {
	kinds := []seg.BreakKind{seg.BreakGrapheme, seg.BreakWord, seg.BreakSentence, seg.BreakLine}
	for _, kind := range kinds {
		kind := kind
		f := func(s string) bool {
			o := seg.New().WithBreak(kind)
			segs, err := seg.Split(s, o)
			if err != nil {
				return false
			}
			var joined string
			for _, part := range segs {
				joined += part
			}
			return joined == s
		}
		if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
			t.Errorf("concatenation invariant failed for kind %v: %v", kind, err)
		}
	}
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
