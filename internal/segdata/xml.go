package segdata

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// xmlLocale is the root element of a data file: <locale>...</locale>,
// containing one <segmentation> per segment kind.
type xmlLocale struct {
	XMLName       xml.Name          `xml:"locale"`
	Segmentations []xmlSegmentation `xml:"segmentation"`
}

type xmlSegmentation struct {
	Type         string        `xml:"type,attr"`
	Variables    []xmlVariable `xml:"variables>variable"`
	Rules        []xmlRule     `xml:"rules>rule"`
	Suppressions []string      `xml:"suppressions>suppression"`
}

type xmlVariable struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

type xmlRule struct {
	ID   string `xml:"id,attr"`
	Text string `xml:",chardata"`
}

// canonicalKind normalizes a data file's "type" attribute to one of the
// four canonical Kind values, accepting the short forms ("word",
// "sentence", "grapheme", "line") as well as the canonical snake_case
// spellings.
func canonicalKind(t string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "grapheme_cluster_break", "grapheme_cluster", "grapheme":
		return GraphemeClusterBreak, nil
	case "word_break", "word":
		return WordBreak, nil
	case "sentence_break", "sentence":
		return SentenceBreak, nil
	case "line_break", "line":
		return LineBreak, nil
	default:
		return "", fmt.Errorf("segdata: %w: %q", ErrUnknownSegmentType, t)
	}
}

// parseRuleID parses a rule's "id" attribute into the rational number used
// for ordering. Plain decimals ("5", "10.5") parse directly. Unicode's
// lettered sub-rule convention ("7a", "7b", "11a") maps the trailing
// letter to a tenths fraction ("7a" → 7.1, "7b" → 7.2), which is how this
// module expresses CLDR's lettered rule variants as the rational ids
// spec.md's rule model calls for.
func parseRuleID(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("segdata: empty rule id")
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	// Lettered form: digits followed by a single trailing letter.
	i := len(s)
	for i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
		i--
	}
	if i == len(s) || i == 0 {
		return 0, fmt.Errorf("segdata: malformed rule id %q", s)
	}
	base, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, fmt.Errorf("segdata: malformed rule id %q: %w", s, err)
	}
	letter := s[i:]
	if len(letter) != 1 {
		return 0, fmt.Errorf("segdata: malformed rule id %q", s)
	}
	return base + float64(letter[0]-'a'+1)/10, nil
}

// parse decodes one data file's bytes into a kind-indexed set of raw
// segment data.
func parse(b []byte) (map[Kind]RawSegmentData, error) {
	var doc xmlLocale
	if err := xml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("segdata: parse: %w", err)
	}

	out := make(map[Kind]RawSegmentData, len(doc.Segmentations))
	for _, seg := range doc.Segmentations {
		kind, err := canonicalKind(seg.Type)
		if err != nil {
			return nil, err
		}

		data := RawSegmentData{
			Suppressions: append([]string{}, seg.Suppressions...),
		}
		for _, v := range seg.Variables {
			data.Variables = append(data.Variables, Variable{
				Name:    strings.TrimSpace(v.ID),
				Pattern: strings.TrimSpace(v.Value),
			})
		}
		for _, r := range seg.Rules {
			id, err := parseRuleID(r.ID)
			if err != nil {
				return nil, err
			}
			data.Rules = append(data.Rules, RawRule{ID: id, Text: strings.TrimSpace(r.Text)})
		}

		if existing, ok := out[kind]; ok {
			out[kind] = merge(existing, data)
		} else {
			out[kind] = data
		}
	}
	return out, nil
}
