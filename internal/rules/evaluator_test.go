package rules_test

import (
	"testing"

	"github.com/gocldr/segment/internal/rules"
	"github.com/gocldr/segment/internal/segdata"
)

func compileKind(t *testing.T, kind segdata.Kind, suppress bool) *rules.RuleSet {
	t.Helper()
	cat, err := segdata.Default()
	if err != nil {
		t.Fatal(err)
	}
	raw := cat.Effective(segdata.Root, kind)
	rs, err := rules.Compile(raw, suppress)
	if err != nil {
		t.Fatal(err)
	}
	return rs
}

// firstRune splits off s's first codepoint, mirroring the driver's state
// machine (§4.7) without depending on the driver package.
func firstRune(s string) (first, rest string) {
	for i := range s {
		if i == 0 {
			continue
		}
		return s[:i], s[i:]
	}
	return s, ""
}

func splitWith(rs *rules.RuleSet, s string) []string {
	var out []string
	for s != "" {
		before, after := firstRune(s)
		for {
			dec := rules.Evaluate(before, after, rs)
			if dec.Op == rules.Break {
				break
			}
			before += dec.Consumed
			after = dec.Remainder
			if after == "" {
				break
			}
		}
		out = append(out, before)
		s = after
	}
	return out
}

func TestWordBreakScenario1(t *testing.T) {
	rs := compileKind(t, segdata.WordBreak, true)
	got := splitWith(rs, "This is a sentence. And another.")
	want := []string{"This", " ", "is", " ", "a", " ", "sentence", ".", " ", "And", " ", "another", "."}
	assertEqual(t, got, want)
}

func TestSentenceBreakScenario2(t *testing.T) {
	rs := compileKind(t, segdata.SentenceBreak, true)
	got := splitWith(rs, "This is a sentence. And another.")
	want := []string{"This is a sentence. ", "And another."}
	assertEqual(t, got, want)
}

func TestSentenceSuppressionScenario3(t *testing.T) {
	rs := compileKind(t, segdata.SentenceBreak, true)
	got := splitWith(rs, "No, I don't have a Ph.D. but I don't think it matters.")
	want := []string{"No, I don't have a Ph.D. but I don't think it matters."}
	assertEqual(t, got, want)
}

func TestSentenceSuppressionDisabledScenario7(t *testing.T) {
	rs := compileKind(t, segdata.SentenceBreak, false)
	got := splitWith(rs, "Mr. Smith")
	if len(got) < 2 {
		t.Fatalf("expected a break after Mr. with suppressions disabled, got %v", got)
	}
}

func TestLineBreakScenario4(t *testing.T) {
	rs := compileKind(t, segdata.LineBreak, true)
	got := splitWith(rs, "This is a sentence. And another.")
	want := []string{"This ", "is ", "a ", "sentence. ", "And ", "another."}
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
